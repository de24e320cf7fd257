package domain

import "time"

// Level represents developer seniority tier
type Level string

const (
	LevelJunior Level = "JUNIOR"
	LevelJungle Level = "JUNGLE"
	LevelSenior Level = "SENIOR"
)

// SkillType represents developer skill tag
type SkillType string

const (
	SkillFrontEnd     SkillType = "FRONT_END"
	SkillBackEnd      SkillType = "BACK_END"
	SkillFullStack    SkillType = "FULL_STACK"
	SkillDataEngineer SkillType = "DATA_ENGINEER"
)

// StatusCode represents developer employment status
type StatusCode string

const (
	StatusEmployed StatusCode = "EMPLOYED"
	StatusRetired  StatusCode = "RETIRED"
)

// Developer represents a developer record in the domain layer
type Developer struct {
	ID              uint
	MemberID        string
	Name            string
	Age             *int
	Level           Level
	SkillType       SkillType
	ExperienceYears int
	StatusCode      StatusCode
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EditPatch holds the fields an edit may change
type EditPatch struct {
	Level           Level
	SkillType       SkillType
	ExperienceYears int
}

// NewEmployedDeveloper builds a fresh record in EMPLOYED status
func NewEmployedDeveloper(memberID, name string, age *int, level Level, skill SkillType, years int) *Developer {
	return &Developer{
		MemberID:        memberID,
		Name:            name,
		Age:             age,
		Level:           level,
		SkillType:       skill,
		ExperienceYears: years,
		StatusCode:      StatusEmployed,
	}
}

// ApplyEdit overwrites level, skill type and experience years.
// MemberID, Name and Age never change after creation.
func (d *Developer) ApplyEdit(p EditPatch) {
	d.Level = p.Level
	d.SkillType = p.SkillType
	d.ExperienceYears = p.ExperienceYears
}

// Retire moves the record to RETIRED and returns its archive entry.
// Returns nil when the record was already retired.
func (d *Developer) Retire() *RetiredDeveloper {
	if d.IsRetired() {
		return nil
	}
	d.StatusCode = StatusRetired
	return &RetiredDeveloper{
		MemberID: d.MemberID,
		Name:     d.Name,
	}
}

// IsRetired reports whether the record reached its terminal status
func (d *Developer) IsRetired() bool {
	return d.StatusCode == StatusRetired
}

// RetiredDeveloper represents an archive entry written on retirement (append-only)
type RetiredDeveloper struct {
	ID        string
	MemberID  string
	Name      string
	RetiredAt time.Time
}
