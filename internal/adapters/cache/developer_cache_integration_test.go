//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"dmaker/internal/core/domain"
	"dmaker/internal/core/services"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type DeveloperCacheSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	cache     *DeveloperCache
	ctx       context.Context
}

func TestDeveloperCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DeveloperCacheSuite))
}

func (s *DeveloperCacheSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcredis.Run(s.ctx, "valkey/valkey:8-alpine")
	s.Require().NoError(err)
	s.container = container

	addr, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	client, err := Connect(addr)
	s.Require().NoError(err)
	s.cache = NewDeveloperCache(client, time.Minute)
}

func (s *DeveloperCacheSuite) TearDownSuite() {
	if s.cache != nil {
		s.cache.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *DeveloperCacheSuite) TestRoundTrip() {
	age := 30
	detail := &services.DeveloperDetail{
		DeveloperLevel:     domain.LevelSenior,
		DeveloperSkillType: domain.SkillFrontEnd,
		ExperienceYears:    12,
		MemberID:           "member1",
		Name:               "name",
		Age:                &age,
		StatusCode:         domain.StatusEmployed,
	}

	s.Require().NoError(s.cache.Ping(s.ctx))
	s.Require().NoError(s.cache.Set(s.ctx, detail))

	got, found, err := s.cache.Get(s.ctx, "member1")
	s.Require().NoError(err)
	s.True(found)
	s.Equal(detail, got)

	s.Require().NoError(s.cache.Delete(s.ctx, "member1"))
	_, found, err = s.cache.Get(s.ctx, "member1")
	s.Require().NoError(err)
	s.False(found)
}

func (s *DeveloperCacheSuite) TestSetIfAbsentKeepsExistingEntry() {
	fresh := &services.DeveloperDetail{
		DeveloperLevel:     domain.LevelSenior,
		DeveloperSkillType: domain.SkillBackEnd,
		ExperienceYears:    15,
		MemberID:           "member2",
		Name:               "name",
		StatusCode:         domain.StatusEmployed,
	}
	stale := *fresh
	stale.DeveloperLevel = domain.LevelJunior
	stale.ExperienceYears = 2

	s.Require().NoError(s.cache.Set(s.ctx, fresh))
	s.Require().NoError(s.cache.SetIfAbsent(s.ctx, &stale))

	got, found, err := s.cache.Get(s.ctx, "member2")
	s.Require().NoError(err)
	s.True(found)
	s.Equal(fresh, got)

	s.Require().NoError(s.cache.Delete(s.ctx, "member2"))
	s.Require().NoError(s.cache.SetIfAbsent(s.ctx, &stale))

	got, found, err = s.cache.Get(s.ctx, "member2")
	s.Require().NoError(err)
	s.True(found)
	s.Equal(&stale, got)
}
