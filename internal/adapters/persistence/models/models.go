package models

import (
	"time"

	"dmaker/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Developer represents developers table
// Rows are never physically deleted; retirement only flips status_code.
type Developer struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	MemberID           string    `gorm:"uniqueIndex;size:50;not null" json:"member_id"`
	Name               string    `gorm:"size:20;not null" json:"name"`
	Age                *int      `json:"age"`
	DeveloperLevel     string    `gorm:"size:20;not null" json:"developer_level"`
	DeveloperSkillType string    `gorm:"size:20;not null" json:"developer_skill_type"`
	ExperienceYears    int       `gorm:"not null" json:"experience_years"`
	StatusCode         string    `gorm:"size:20;not null;index" json:"status_code"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Developer) TableName() string {
	return "developers"
}

// ToDomain converts the row into a domain developer
func (d *Developer) ToDomain() *domain.Developer {
	return &domain.Developer{
		ID:              d.ID,
		MemberID:        d.MemberID,
		Name:            d.Name,
		Age:             d.Age,
		Level:           domain.Level(d.DeveloperLevel),
		SkillType:       domain.SkillType(d.DeveloperSkillType),
		ExperienceYears: d.ExperienceYears,
		StatusCode:      domain.StatusCode(d.StatusCode),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// DeveloperFromDomain converts a domain developer into a row
func DeveloperFromDomain(d *domain.Developer) *Developer {
	return &Developer{
		ID:                 d.ID,
		MemberID:           d.MemberID,
		Name:               d.Name,
		Age:                d.Age,
		DeveloperLevel:     string(d.Level),
		DeveloperSkillType: string(d.SkillType),
		ExperienceYears:    d.ExperienceYears,
		StatusCode:         string(d.StatusCode),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// RetiredDeveloper represents retired_developers table (append-only archive)
type RetiredDeveloper struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	MemberID  string    `gorm:"uniqueIndex;size:50;not null" json:"member_id"`
	Name      string    `gorm:"size:20;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RetiredDeveloper) TableName() string {
	return "retired_developers"
}

func (r *RetiredDeveloper) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		r.ID = id.String()
	}
	return nil
}

// ToDomain converts the row into a domain archive entry
func (r *RetiredDeveloper) ToDomain() *domain.RetiredDeveloper {
	return &domain.RetiredDeveloper{
		ID:        r.ID,
		MemberID:  r.MemberID,
		Name:      r.Name,
		RetiredAt: r.CreatedAt,
	}
}

// RetiredDeveloperFromDomain converts a domain archive entry into a row
func RetiredDeveloperFromDomain(r *domain.RetiredDeveloper) *RetiredDeveloper {
	return &RetiredDeveloper{
		ID:        r.ID,
		MemberID:  r.MemberID,
		Name:      r.Name,
		CreatedAt: r.RetiredAt,
	}
}

// AutoMigrate runs auto migration for roster tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Developer{},
		&RetiredDeveloper{},
	)
}
