package services

import (
	"context"
	"time"

	"dmaker/internal/core/domain"
)

// DetailCache caches developer detail projections by member id.
// Implementations report a miss with found=false and a nil error.
// SetIfAbsent never replaces an existing entry; Set always does.
type DetailCache interface {
	Get(ctx context.Context, memberID string) (detail *DeveloperDetail, found bool, err error)
	SetIfAbsent(ctx context.Context, detail *DeveloperDetail) error
	Set(ctx context.Context, detail *DeveloperDetail) error
	Delete(ctx context.Context, memberID string) error
}

// OperationRecorder observes the outcome of roster operations
type OperationRecorder interface {
	Observe(operation string, err error)
}

// Input DTOs

// CreateDeveloperInput for creating a developer
type CreateDeveloperInput struct {
	Level           domain.Level
	SkillType       domain.SkillType
	ExperienceYears int
	MemberID        string
	Name            string
	Age             *int
}

// EditDeveloperInput for editing a developer
type EditDeveloperInput struct {
	Level           domain.Level
	SkillType       domain.SkillType
	ExperienceYears int
}

// Output DTOs

// DeveloperSummary is the list projection of a developer
type DeveloperSummary struct {
	DeveloperLevel     domain.Level     `json:"developerLevel"`
	DeveloperSkillType domain.SkillType `json:"developerSkillType"`
	MemberID           string           `json:"memberId"`
}

// CreateDeveloperResponse is returned after a successful create
type CreateDeveloperResponse struct {
	DeveloperLevel     domain.Level     `json:"developerLevel"`
	DeveloperSkillType domain.SkillType `json:"developerSkillType"`
	ExperienceYears    int              `json:"experienceYears"`
	MemberID           string           `json:"memberId"`
}

// DeveloperDetail is the full projection of a developer
type DeveloperDetail struct {
	DeveloperLevel     domain.Level      `json:"developerLevel"`
	DeveloperSkillType domain.SkillType  `json:"developerSkillType"`
	ExperienceYears    int               `json:"experienceYears"`
	MemberID           string            `json:"memberId"`
	Name               string            `json:"name"`
	Age                *int              `json:"age"`
	StatusCode         domain.StatusCode `json:"statusCode"`
}

// RetiredDeveloperItem is the archive listing projection
type RetiredDeveloperItem struct {
	MemberID  string    `json:"memberId"`
	Name      string    `json:"name"`
	RetiredAt time.Time `json:"retiredAt"`
}

// RosterReport holds roster head counts
type RosterReport struct {
	Employed int64 `json:"employed"`
	Retired  int64 `json:"retired"`
}

func toSummary(d *domain.Developer) *DeveloperSummary {
	return &DeveloperSummary{
		DeveloperLevel:     d.Level,
		DeveloperSkillType: d.SkillType,
		MemberID:           d.MemberID,
	}
}

func toCreateResponse(d *domain.Developer) *CreateDeveloperResponse {
	return &CreateDeveloperResponse{
		DeveloperLevel:     d.Level,
		DeveloperSkillType: d.SkillType,
		ExperienceYears:    d.ExperienceYears,
		MemberID:           d.MemberID,
	}
}

func toDetail(d *domain.Developer) *DeveloperDetail {
	return &DeveloperDetail{
		DeveloperLevel:     d.Level,
		DeveloperSkillType: d.SkillType,
		ExperienceYears:    d.ExperienceYears,
		MemberID:           d.MemberID,
		Name:               d.Name,
		Age:                d.Age,
		StatusCode:         d.StatusCode,
	}
}
