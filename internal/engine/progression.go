package engine

// XPRequiredForLevel returns the experience needed to advance past the given level.
// Level 1 needs 100, level 2 needs 200, and so on.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}

// ApplyExperience adds gain to (level, experience) and rolls over as many
// levels as the gain covers. Level never drops below 1 and never decreases.
func ApplyExperience(level, experience, gain int) (int, int) {
	if level < 1 {
		level = 1
	}
	if experience < 0 {
		experience = 0
	}
	if gain > 0 {
		experience += gain
	}

	for experience >= XPRequiredForLevel(level) {
		experience -= XPRequiredForLevel(level)
		level++
	}
	return level, experience
}

// ExperienceToNext returns how much experience is missing before the next level-up.
func ExperienceToNext(p Progression) int {
	n := XPRequiredForLevel(p.Level) - p.Experience
	if n < 0 {
		return 0
	}
	return n
}
