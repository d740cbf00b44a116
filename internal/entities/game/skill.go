package game

import "fmt"

// SkillCategory represents one trainable attribute
type SkillCategory string

// Skill category constants
const (
	SkillMagic     SkillCategory = "magic"
	SkillFist      SkillCategory = "fist"
	SkillClub      SkillCategory = "club"
	SkillSword     SkillCategory = "sword"
	SkillAxe       SkillCategory = "axe"
	SkillDistance  SkillCategory = "distance"
	SkillShielding SkillCategory = "shielding"
)

// CategoryGroup selects which level-multiplier table applies to a category.
// Magic level progresses on its own table; every weapon and defense skill
// shares the other.
type CategoryGroup string

// Category groups
const (
	GroupMagic  CategoryGroup = "magic"
	GroupWeapon CategoryGroup = "weapon"
)

// SkillCategories lists every known category in display order
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		SkillMagic,
		SkillFist,
		SkillClub,
		SkillSword,
		SkillAxe,
		SkillDistance,
		SkillShielding,
	}
}

// IsValid reports whether c is a known skill category
func (c SkillCategory) IsValid() bool {
	switch c {
	case SkillMagic, SkillFist, SkillClub, SkillSword, SkillAxe, SkillDistance, SkillShielding:
		return true
	}
	return false
}

// Group returns the multiplier-table group the category belongs to
func (c SkillCategory) Group() CategoryGroup {
	if c == SkillMagic {
		return GroupMagic
	}
	return GroupWeapon
}

// String returns the string representation of the category
func (c SkillCategory) String() string {
	return string(c)
}

// ParseSkillCategory converts a string into a SkillCategory
func ParseSkillCategory(s string) (SkillCategory, error) {
	c := SkillCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown skill category %q", s)
	}
	return c, nil
}
