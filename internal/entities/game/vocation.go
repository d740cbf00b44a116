// Package game defines the vocabulary shared by the training engine:
// vocations, skill categories, training progress, and bonus modifiers.
package game

import "fmt"

// Vocation represents a character class
type Vocation string

// Vocation constants
const (
	VocationKnight   Vocation = "knight"
	VocationPaladin  Vocation = "paladin"
	VocationSorcerer Vocation = "sorcerer"
	VocationDruid    Vocation = "druid"
	VocationMonk     Vocation = "monk"
)

// Vocations lists every known vocation in display order
func Vocations() []Vocation {
	return []Vocation{
		VocationKnight,
		VocationPaladin,
		VocationSorcerer,
		VocationDruid,
		VocationMonk,
	}
}

// IsValid reports whether v is a known vocation
func (v Vocation) IsValid() bool {
	switch v {
	case VocationKnight, VocationPaladin, VocationSorcerer, VocationDruid, VocationMonk:
		return true
	}
	return false
}

// String returns the string representation of the vocation
func (v Vocation) String() string {
	return string(v)
}

// ParseVocation converts a string into a Vocation
func ParseVocation(s string) (Vocation, error) {
	v := Vocation(s)
	if !v.IsValid() {
		return "", fmt.Errorf("unknown vocation %q", s)
	}
	return v, nil
}
