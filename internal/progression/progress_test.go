package progression

import "testing"

func TestRankTableInvariants(t *testing.T) {
	if Ranks[0].MinXP != 0 {
		t.Fatalf("first rank MinXP = %d, want 0", Ranks[0].MinXP)
	}
	for i := 1; i < len(Ranks); i++ {
		if Ranks[i].MinXP <= Ranks[i-1].MinXP {
			t.Errorf("rank %q threshold %d not above %q threshold %d",
				Ranks[i].Name, Ranks[i].MinXP, Ranks[i-1].Name, Ranks[i-1].MinXP)
		}
	}
}

func TestCalculateZero(t *testing.T) {
	p := Calculate(0)
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.Current.Name != "Learner Driver" {
		t.Errorf("current = %q, want Learner Driver", p.Current.Name)
	}
	if p.ProgressToNext != 0 {
		t.Errorf("progressToNext = %v, want 0", p.ProgressToNext)
	}
	if p.Next == nil || p.Next.Name != "Novice Navigator" {
		t.Errorf("next = %v, want Novice Navigator", p.Next)
	}
}

func TestCalculateThresholds(t *testing.T) {
	tests := []struct {
		xp        int
		wantRank  string
		wantLevel int
	}{
		{0, "Learner Driver", 1},
		{99, "Learner Driver", 1},
		{100, "Novice Navigator", 2}, // exact threshold belongs to the new tier
		{299, "Novice Navigator", 2},
		{300, "Road Scholar", 3},
		{600, "Highway Hero", 4},
		{999, "Highway Hero", 4},
		{1000, "Theory Master", 5},
		{2000, "Grandmaster of Roads", 6},
		{5000, "Grandmaster of Roads", 6},
	}

	for _, tt := range tests {
		p := Calculate(tt.xp)
		if p.Current.Name != tt.wantRank {
			t.Errorf("Calculate(%d).Current = %q, want %q", tt.xp, p.Current.Name, tt.wantRank)
		}
		if p.Level != tt.wantLevel {
			t.Errorf("Calculate(%d).Level = %d, want %d", tt.xp, p.Level, tt.wantLevel)
		}
	}
}

func TestCalculateCurrentIsLastQualifying(t *testing.T) {
	for xp := 0; xp <= 2500; xp += 7 {
		p := Calculate(xp)
		if xp < p.Current.MinXP {
			t.Fatalf("xp %d below own rank threshold %d", xp, p.Current.MinXP)
		}
		if p.Next != nil && xp >= p.Next.MinXP {
			t.Fatalf("xp %d already qualifies for next rank %q", xp, p.Next.Name)
		}
	}
}

func TestCalculateTopTier(t *testing.T) {
	for _, xp := range []int{2000, 2001, 99999} {
		p := Calculate(xp)
		if p.Next != nil {
			t.Errorf("Calculate(%d).Next = %v, want nil", xp, p.Next)
		}
		if p.ProgressToNext != 100 {
			t.Errorf("Calculate(%d).ProgressToNext = %v, want 100", xp, p.ProgressToNext)
		}
	}
}

func TestProgressToNextMidRank(t *testing.T) {
	// 200 XP: halfway from Novice Navigator (100) to Road Scholar (300).
	p := Calculate(200)
	if p.ProgressToNext != 50 {
		t.Errorf("progressToNext = %v, want 50", p.ProgressToNext)
	}
}
