package domain

// Experience thresholds per level
const (
	MaxJuniorExperienceYears = 4
	MinSeniorExperienceYears = 10
)

// ValidateExperience checks that experience years fall in the range allowed for level:
//
//	JUNIOR  years <= MaxJuniorExperienceYears
//	JUNGLE  MaxJuniorExperienceYears < years < MinSeniorExperienceYears
//	SENIOR  years >= MinSeniorExperienceYears
func ValidateExperience(level Level, years int) error {
	if level.Accepts(years) {
		return nil
	}
	return ErrLevelExperienceYearsNotMatched
}

// Accepts reports whether years is within the level's range.
// Unknown levels accept nothing.
func (l Level) Accepts(years int) bool {
	switch l {
	case LevelJunior:
		return years <= MaxJuniorExperienceYears
	case LevelJungle:
		return years > MaxJuniorExperienceYears && years < MinSeniorExperienceYears
	case LevelSenior:
		return years >= MinSeniorExperienceYears
	default:
		return false
	}
}
