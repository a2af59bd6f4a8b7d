package progression

// Progress classifies a cumulative XP total against the rank table.
// It is derived entirely from the XP value and never stored.
type Progress struct {
	XP      int
	Level   int // 1-based position of Current in the rank table
	Current Rank
	Next    *Rank // nil at the top tier

	// ProgressToNext is the percentage [0,100] toward the next rank,
	// exactly 100 at the top tier.
	ProgressToNext float64
}

// Calculate maps xp to the learner's current standing. The scan picks
// the last rank whose threshold is met, so an XP total sitting exactly
// on a threshold belongs to that tier, not the previous one.
// Defined for all xp >= 0; negative xp is a caller contract violation.
func Calculate(xp int) Progress {
	current := Ranks[0]
	level := 1
	var next *Rank

	for i := range Ranks {
		if xp >= Ranks[i].MinXP {
			current = Ranks[i]
			level = i + 1
			if i+1 < len(Ranks) {
				next = &Ranks[i+1]
			} else {
				next = nil
			}
		}
	}

	progressToNext := 100.0
	if next != nil {
		inRank := float64(xp - current.MinXP)
		required := float64(next.MinXP - current.MinXP)
		progressToNext = inRank / required * 100
	}

	return Progress{
		XP:             xp,
		Level:          level,
		Current:        current,
		Next:           next,
		ProgressToNext: progressToNext,
	}
}
