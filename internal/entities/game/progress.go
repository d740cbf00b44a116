package game

// Progress is a position within training: fully at Level, with PercentToNext
// percent of the next level's effort already banked.
type Progress struct {
	Level         int
	PercentToNext float64
}

// Normalize folds a PercentToNext of exactly 100 into the next level.
// That input denotes the same position as {Level+1, 0} and callers are
// allowed to send it; anything above 100 stays invalid.
func (p Progress) Normalize() Progress {
	if p.PercentToNext == 100 {
		return Progress{Level: p.Level + 1, PercentToNext: 0}
	}
	return p
}

// IsValid reports whether the position lies inside the representable domain:
// Level >= 0 and PercentToNext in [0, 100).
func (p Progress) IsValid() bool {
	return p.Level >= 0 && p.PercentToNext >= 0 && p.PercentToNext < 100
}
