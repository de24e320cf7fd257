package config

import (
	"context"
	"errors"
	"log"

	"dmaker/internal/core/domain"
	"dmaker/internal/core/services"
)

// DeveloperCreator creates developers through the roster rules
type DeveloperCreator interface {
	CreateDeveloper(ctx context.Context, input *services.CreateDeveloperInput) (*services.CreateDeveloperResponse, error)
}

// Seeder handles database seeding
type Seeder struct {
	creator DeveloperCreator
}

// NewSeeder creates a new seeder instance
func NewSeeder(creator DeveloperCreator) *Seeder {
	return &Seeder{creator: creator}
}

func intPtr(v int) *int { return &v }

// sampleDevelopers is development data only
var sampleDevelopers = []services.CreateDeveloperInput{
	{Level: domain.LevelJunior, SkillType: domain.SkillFrontEnd, ExperienceYears: 1, MemberID: "junior.kim", Name: "Kim Minji", Age: intPtr(24)},
	{Level: domain.LevelJungle, SkillType: domain.SkillBackEnd, ExperienceYears: 7, MemberID: "jungle.lee", Name: "Lee Jihoon", Age: intPtr(31)},
	{Level: domain.LevelSenior, SkillType: domain.SkillFullStack, ExperienceYears: 13, MemberID: "senior.park", Name: "Park Soyeon"},
	{Level: domain.LevelSenior, SkillType: domain.SkillDataEngineer, ExperienceYears: 10, MemberID: "senior.choi", Name: "Choi Yuna", Age: intPtr(38)},
}

// Run executes all seeders. Existing member ids are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running database seeders...")

	created := 0
	for i := range sampleDevelopers {
		input := sampleDevelopers[i]
		if _, err := s.creator.CreateDeveloper(ctx, &input); err != nil {
			if errors.Is(err, domain.ErrDuplicatedMemberID) {
				continue
			}
			return err
		}
		created++
	}

	log.Printf("✅ Database seeding completed (%d developers created)", created)
	return nil
}
