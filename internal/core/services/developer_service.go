package services

import (
	"context"
	"errors"
	"log"

	"dmaker/internal/adapters/persistence/repositories"
	"dmaker/internal/core/domain"
	"dmaker/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Operation names reported to the OperationRecorder
const (
	OpListEmployed = "list_employed"
	OpGetDetail    = "get_detail"
	OpCreate       = "create"
	OpEdit         = "edit"
	OpRetire       = "retire"
	OpListRetired  = "list_retired"
)

// DeveloperService handles roster business logic
type DeveloperService struct {
	developerRepo repositories.DeveloperRepository
	retiredRepo   repositories.RetiredDeveloperRepository
	tx            repositories.Transactor
	cache         DetailCache
	recorder      OperationRecorder
}

// NewDeveloperService creates a new developer service.
// cache and recorder may be nil.
func NewDeveloperService(
	developerRepo repositories.DeveloperRepository,
	retiredRepo repositories.RetiredDeveloperRepository,
	tx repositories.Transactor,
	cache DetailCache,
	recorder OperationRecorder,
) *DeveloperService {
	if cache == nil {
		cache = noopCache{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &DeveloperService{
		developerRepo: developerRepo,
		retiredRepo:   retiredRepo,
		tx:            tx,
		cache:         cache,
		recorder:      recorder,
	}
}

// ListEmployed lists all employed developers
func (s *DeveloperService) ListEmployed(ctx context.Context) (summaries []*DeveloperSummary, err error) {
	defer func() { s.recorder.Observe(OpListEmployed, err) }()

	developers, err := s.developerRepo.FindByStatus(ctx, domain.StatusEmployed)
	if err != nil {
		return nil, err
	}

	summaries = make([]*DeveloperSummary, len(developers))
	for i, developer := range developers {
		summaries[i] = toSummary(developer)
	}
	return summaries, nil
}

// GetDetail gets a developer's full projection by member id
func (s *DeveloperService) GetDetail(ctx context.Context, memberID string) (detail *DeveloperDetail, err error) {
	defer func() { s.recorder.Observe(OpGetDetail, err) }()

	if cached, found, cacheErr := s.cache.Get(ctx, memberID); cacheErr != nil {
		log.Printf("⚠️ Detail cache read failed for %s: %v", memberID, cacheErr)
	} else if found {
		return cached, nil
	}

	developer, err := s.findDeveloper(ctx, memberID)
	if err != nil {
		return nil, err
	}

	// a committed edit or retire may have refreshed the entry since the load
	detail = toDetail(developer)
	if cacheErr := s.cache.SetIfAbsent(ctx, detail); cacheErr != nil {
		log.Printf("⚠️ Detail cache write failed for %s: %v", memberID, cacheErr)
	}
	return detail, nil
}

// CreateDeveloper creates a new employed developer.
// Experience is validated before the member id uniqueness check; nothing is written if either fails.
func (s *DeveloperService) CreateDeveloper(ctx context.Context, input *CreateDeveloperInput) (resp *CreateDeveloperResponse, err error) {
	defer func() { s.recorder.Observe(OpCreate, err) }()

	if err := domain.ValidateExperience(input.Level, input.ExperienceYears); err != nil {
		return nil, err
	}

	developer := domain.NewEmployedDeveloper(
		input.MemberID,
		input.Name,
		input.Age,
		input.Level,
		input.SkillType,
		input.ExperienceYears,
	)

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.developerRepo.FindByMemberID(ctx, input.MemberID)
		switch {
		case err == nil:
			return domain.ErrDuplicatedMemberID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		// The unique index arbitrates concurrent creates that both passed the lookup
		if err := s.developerRepo.Create(ctx, developer); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicatedMemberID
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCreateResponse(developer), nil
}

// EditDeveloper updates level, skill type and experience years of a developer
func (s *DeveloperService) EditDeveloper(ctx context.Context, memberID string, input *EditDeveloperInput) (detail *DeveloperDetail, err error) {
	defer func() { s.recorder.Observe(OpEdit, err) }()

	if err := domain.ValidateExperience(input.Level, input.ExperienceYears); err != nil {
		return nil, err
	}

	var developer *domain.Developer
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := s.findDeveloper(ctx, memberID)
		if err != nil {
			return err
		}

		found.ApplyEdit(domain.EditPatch{
			Level:           input.Level,
			SkillType:       input.SkillType,
			ExperienceYears: input.ExperienceYears,
		})
		if err := s.developerRepo.Save(ctx, found); err != nil {
			return err
		}

		developer = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	detail = toDetail(developer)
	s.refresh(ctx, detail)
	return detail, nil
}

// RetireDeveloper moves a developer to RETIRED and archives it.
// The status update and the archive insert commit together or not at all.
func (s *DeveloperService) RetireDeveloper(ctx context.Context, memberID string) (detail *DeveloperDetail, err error) {
	defer func() { s.recorder.Observe(OpRetire, err) }()

	var developer *domain.Developer
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := s.findDeveloper(ctx, memberID)
		if err != nil {
			return err
		}

		retired := found.Retire()
		if retired == nil {
			developer = found
			return nil
		}

		if err := s.developerRepo.Save(ctx, found); err != nil {
			return err
		}
		if err := s.retiredRepo.Create(ctx, retired); err != nil {
			return err
		}

		developer = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	detail = toDetail(developer)
	s.refresh(ctx, detail)
	return detail, nil
}

// ListRetired lists archive entries with pagination.
// Data holds []*RetiredDeveloperItem.
func (s *DeveloperService) ListRetired(ctx context.Context, page, limit int) (out *pagination.Response, err error) {
	defer func() { s.recorder.Observe(OpListRetired, err) }()

	window := pagination.New(page, limit)

	entries, total, err := s.retiredRepo.List(ctx, window.Offset(), window.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]*RetiredDeveloperItem, len(entries))
	for i, entry := range entries {
		items[i] = &RetiredDeveloperItem{
			MemberID:  entry.MemberID,
			Name:      entry.Name,
			RetiredAt: entry.RetiredAt,
		}
	}

	return pagination.NewResponse(items, window, total), nil
}

// Report counts employed and retired developers
func (s *DeveloperService) Report(ctx context.Context) (*RosterReport, error) {
	employed, err := s.developerRepo.CountByStatus(ctx, domain.StatusEmployed)
	if err != nil {
		return nil, err
	}
	retired, err := s.developerRepo.CountByStatus(ctx, domain.StatusRetired)
	if err != nil {
		return nil, err
	}
	return &RosterReport{Employed: employed, Retired: retired}, nil
}

func (s *DeveloperService) findDeveloper(ctx context.Context, memberID string) (*domain.Developer, error) {
	developer, err := s.developerRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoDeveloper
		}
		return nil, err
	}
	return developer, nil
}

// refresh replaces the cached detail after a committed write.
// When the write fails the entry is dropped so reads fall back to the store.
func (s *DeveloperService) refresh(ctx context.Context, detail *DeveloperDetail) {
	if err := s.cache.Set(ctx, detail); err != nil {
		log.Printf("⚠️ Detail cache refresh failed for %s: %v", detail.MemberID, err)
		s.invalidate(ctx, detail.MemberID)
	}
}

func (s *DeveloperService) invalidate(ctx context.Context, memberID string) {
	if err := s.cache.Delete(ctx, memberID); err != nil {
		log.Printf("⚠️ Detail cache invalidation failed for %s: %v", memberID, err)
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*DeveloperDetail, bool, error) { return nil, false, nil }
func (noopCache) SetIfAbsent(context.Context, *DeveloperDetail) error { return nil }
func (noopCache) Set(context.Context, *DeveloperDetail) error { return nil }
func (noopCache) Delete(context.Context, string) error { return nil }

type noopRecorder struct{}

func (noopRecorder) Observe(string, error) {}
