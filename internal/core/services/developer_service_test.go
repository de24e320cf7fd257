package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dmaker/internal/adapters/persistence/repositories/mocks"
	"dmaker/internal/core/domain"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*DeveloperDetail
	deleted []string
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*DeveloperDetail{}}
}

func (c *fakeCache) Get(_ context.Context, memberID string) (*DeveloperDetail, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[memberID]
	return d, ok, nil
}

func (c *fakeCache) SetIfAbsent(_ context.Context, d *DeveloperDetail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[d.MemberID]; !ok {
		c.entries[d.MemberID] = d
	}
	return nil
}

func (c *fakeCache) Set(_ context.Context, d *DeveloperDetail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[d.MemberID] = d
	return nil
}

func (c *fakeCache) Delete(_ context.Context, memberID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, memberID)
	c.deleted = append(c.deleted, memberID)
	return nil
}

func (c *fakeCache) entry(memberID string) (*DeveloperDetail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[memberID]
	return d, ok
}

type observation struct {
	operation string
	err       error
}

type fakeRecorder struct {
	observed []observation
}

func (r *fakeRecorder) Observe(operation string, err error) {
	r.observed = append(r.observed, observation{operation: operation, err: err})
}

type ServiceSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockDeveloperRepo *mocks.MockDeveloperRepository
	mockRetiredRepo   *mocks.MockRetiredDeveloperRepository
	mockTx            *mocks.MockTransactor
	cache             *fakeCache
	recorder          *fakeRecorder
	service           *DeveloperService
	ctx               context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDeveloperRepo = mocks.NewMockDeveloperRepository(s.ctrl)
	s.mockRetiredRepo = mocks.NewMockRetiredDeveloperRepository(s.ctrl)
	s.mockTx = mocks.NewMockTransactor(s.ctrl)
	s.mockTx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	s.cache = newFakeCache()
	s.recorder = &fakeRecorder{}
	s.service = NewDeveloperService(s.mockDeveloperRepo, s.mockRetiredRepo, s.mockTx, s.cache, s.recorder)
	s.ctx = context.Background()
}

func (s *ServiceSuite) defaultDeveloper() *domain.Developer {
	age := 30
	dev := domain.NewEmployedDeveloper("member1", "name", &age, domain.LevelSenior, domain.SkillFrontEnd, 12)
	dev.ID = 1
	return dev
}

func (s *ServiceSuite) defaultCreateInput() *CreateDeveloperInput {
	age := 30
	return &CreateDeveloperInput{
		Level:           domain.LevelSenior,
		SkillType:       domain.SkillFrontEnd,
		ExperienceYears: 12,
		MemberID:        "member1",
		Name:            "name",
		Age:             &age,
	}
}

func (s *ServiceSuite) TestGetDetail() {
	s.Run("projects the stored record", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(s.defaultDeveloper(), nil)

		detail, err := s.service.GetDetail(s.ctx, "member1")
		s.Require().NoError(err)
		s.Equal(domain.LevelSenior, detail.DeveloperLevel)
		s.Equal(domain.SkillFrontEnd, detail.DeveloperSkillType)
		s.Equal(12, detail.ExperienceYears)
		s.Equal("name", detail.Name)
		s.Equal(domain.StatusEmployed, detail.StatusCode)
	})

	s.Run("serves repeated lookups from cache", func() {
		detail, err := s.service.GetDetail(s.ctx, "member1")
		s.Require().NoError(err)
		s.Equal("member1", detail.MemberID)
	})

	s.Run("unknown member id", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := s.service.GetDetail(s.ctx, "ghost")
		s.ErrorIs(err, domain.ErrNoDeveloper)
	})
}

func (s *ServiceSuite) TestCreateDeveloper() {
	s.Run("success", func() {
		var saved *domain.Developer
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(nil, gorm.ErrRecordNotFound)
		s.mockDeveloperRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *domain.Developer) error {
				saved = d
				return nil
			}).
			Times(1)

		resp, err := s.service.CreateDeveloper(s.ctx, s.defaultCreateInput())
		s.Require().NoError(err)
		s.Equal(domain.LevelSenior, resp.DeveloperLevel)
		s.Equal(domain.SkillFrontEnd, resp.DeveloperSkillType)
		s.Equal("member1", resp.MemberID)

		s.Require().NotNil(saved)
		s.Equal(domain.LevelSenior, saved.Level)
		s.Equal(domain.SkillFrontEnd, saved.SkillType)
		s.Equal(12, saved.ExperienceYears)
		s.Equal(domain.StatusEmployed, saved.StatusCode)
	})

	s.Run("duplicated member id", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(s.defaultDeveloper(), nil)

		_, err := s.service.CreateDeveloper(s.ctx, s.defaultCreateInput())
		s.ErrorIs(err, domain.ErrDuplicatedMemberID)
	})

	s.Run("concurrent create loses on unique index", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(nil, gorm.ErrRecordNotFound)
		s.mockDeveloperRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := s.service.CreateDeveloper(s.ctx, s.defaultCreateInput())
		s.ErrorIs(err, domain.ErrDuplicatedMemberID)
	})

	s.Run("experience mismatch is checked before the store", func() {
		input := s.defaultCreateInput()
		input.Level = domain.LevelJunior
		input.ExperienceYears = domain.MaxJuniorExperienceYears + 1

		_, err := s.service.CreateDeveloper(s.ctx, input)
		s.ErrorIs(err, domain.ErrLevelExperienceYearsNotMatched)
	})

	s.Run("lookup failure propagates", func() {
		boom := errors.New("db down")
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(nil, boom)

		_, err := s.service.CreateDeveloper(s.ctx, s.defaultCreateInput())
		s.ErrorIs(err, boom)
		s.Equal(domain.CodeInternalServerError, domain.CodeOf(err))
	})
}

func (s *ServiceSuite) TestEditDeveloper() {
	input := &EditDeveloperInput{Level: domain.LevelJungle, SkillType: domain.SkillBackEnd, ExperienceYears: 7}

	s.Run("success patches and saves", func() {
		s.cache.entries["member1"] = &DeveloperDetail{MemberID: "member1"}
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(s.defaultDeveloper(), nil)
		s.mockDeveloperRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *domain.Developer) error {
				s.Equal(domain.LevelJungle, d.Level)
				s.Equal("name", d.Name)
				return nil
			})

		detail, err := s.service.EditDeveloper(s.ctx, "member1", input)
		s.Require().NoError(err)
		s.Equal(domain.LevelJungle, detail.DeveloperLevel)
		s.Equal(domain.SkillBackEnd, detail.DeveloperSkillType)
		s.Equal(7, detail.ExperienceYears)
		s.Require().NotNil(detail.Age)
		s.Equal(30, *detail.Age)

		cached, ok := s.cache.entry("member1")
		s.Require().True(ok)
		s.Equal(detail, cached)
	})

	s.Run("failed cache refresh drops the entry", func() {
		s.cache.entries["member1"] = &DeveloperDetail{MemberID: "member1"}
		s.cache.setErr = errors.New("cache down")
		defer func() { s.cache.setErr = nil }()

		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(s.defaultDeveloper(), nil)
		s.mockDeveloperRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.service.EditDeveloper(s.ctx, "member1", input)
		s.Require().NoError(err)
		s.NotContains(s.cache.entries, "member1")
		s.Contains(s.cache.deleted, "member1")
	})

	s.Run("unknown member id", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := s.service.EditDeveloper(s.ctx, "ghost", input)
		s.ErrorIs(err, domain.ErrNoDeveloper)
	})

	s.Run("experience mismatch is checked before lookup", func() {
		_, err := s.service.EditDeveloper(s.ctx, "ghost", &EditDeveloperInput{
			Level:           domain.LevelSenior,
			SkillType:       domain.SkillBackEnd,
			ExperienceYears: domain.MinSeniorExperienceYears - 2,
		})
		s.ErrorIs(err, domain.ErrLevelExperienceYearsNotMatched)
	})
}

func (s *ServiceSuite) TestRetireDeveloper() {
	s.Run("retires and archives", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(s.defaultDeveloper(), nil)
		s.mockDeveloperRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *domain.Developer) error {
				s.Equal(domain.StatusRetired, d.StatusCode)
				return nil
			})
		s.mockRetiredRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.RetiredDeveloper) error {
				s.Equal("member1", r.MemberID)
				s.Equal("name", r.Name)
				return nil
			})

		detail, err := s.service.RetireDeveloper(s.ctx, "member1")
		s.Require().NoError(err)
		s.Equal(domain.StatusRetired, detail.StatusCode)

		cached, ok := s.cache.entry("member1")
		s.Require().True(ok)
		s.Equal(domain.StatusRetired, cached.StatusCode)
	})

	s.Run("already retired writes nothing", func() {
		dev := s.defaultDeveloper()
		dev.StatusCode = domain.StatusRetired
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(dev, nil)

		detail, err := s.service.RetireDeveloper(s.ctx, "member1")
		s.Require().NoError(err)
		s.Equal(domain.StatusRetired, detail.StatusCode)
	})

	s.Run("archive failure fails the operation", func() {
		boom := errors.New("write failed")
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "member1").Return(s.defaultDeveloper(), nil)
		s.mockDeveloperRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		s.mockRetiredRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

		_, err := s.service.RetireDeveloper(s.ctx, "member1")
		s.ErrorIs(err, boom)
	})

	s.Run("unknown member id", func() {
		s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := s.service.RetireDeveloper(s.ctx, "ghost")
		s.ErrorIs(err, domain.ErrNoDeveloper)
	})
}

func (s *ServiceSuite) TestListEmployed() {
	s.mockDeveloperRepo.EXPECT().FindByStatus(gomock.Any(), domain.StatusEmployed).Return([]*domain.Developer{s.defaultDeveloper()}, nil)

	summaries, err := s.service.ListEmployed(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(&DeveloperSummary{
		DeveloperLevel:     domain.LevelSenior,
		DeveloperSkillType: domain.SkillFrontEnd,
		MemberID:           "member1",
	}, summaries[0])
}

func (s *ServiceSuite) TestListRetired() {
	s.mockRetiredRepo.EXPECT().List(gomock.Any(), 10, 10).Return([]*domain.RetiredDeveloper{{MemberID: "member1", Name: "name"}}, int64(11), nil)

	page, err := s.service.ListRetired(s.ctx, 2, 10)
	s.Require().NoError(err)
	items, ok := page.Data.([]*RetiredDeveloperItem)
	s.Require().True(ok)
	s.Len(items, 1)
	s.Equal(2, page.Meta.TotalPages)
	s.False(page.Meta.HasNext)
}

func (s *ServiceSuite) TestReport() {
	s.mockDeveloperRepo.EXPECT().CountByStatus(gomock.Any(), domain.StatusEmployed).Return(int64(4), nil)
	s.mockDeveloperRepo.EXPECT().CountByStatus(gomock.Any(), domain.StatusRetired).Return(int64(2), nil)

	report, err := s.service.Report(s.ctx)
	s.Require().NoError(err)
	s.Equal(&RosterReport{Employed: 4, Retired: 2}, report)
}

func (s *ServiceSuite) TestRecorderObservesOutcome() {
	s.mockDeveloperRepo.EXPECT().FindByMemberID(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _ = s.service.GetDetail(s.ctx, "ghost")

	s.Require().Len(s.recorder.observed, 1)
	s.Equal(OpGetDetail, s.recorder.observed[0].operation)
	s.ErrorIs(s.recorder.observed[0].err, domain.ErrNoDeveloper)
}
