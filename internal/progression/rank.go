package progression

// Rank is a named tier unlocked at a cumulative XP threshold.
type Rank struct {
	Name  string
	MinXP int
	Icon  string
	Color string // hex color for UI display
}

// Ranks is the static rank table, ordered ascending by MinXP.
// The first entry must have MinXP 0.
var Ranks = []Rank{
	{Name: "Learner Driver", MinXP: 0, Icon: "🔰", Color: "#94A3B8"},
	{Name: "Novice Navigator", MinXP: 100, Icon: "🚗", Color: "#3B82F6"},
	{Name: "Road Scholar", MinXP: 300, Icon: "📚", Color: "#10B981"},
	{Name: "Highway Hero", MinXP: 600, Icon: "🛣️", Color: "#8B5CF6"},
	{Name: "Theory Master", MinXP: 1000, Icon: "🎓", Color: "#F59E0B"},
	{Name: "Grandmaster of Roads", MinXP: 2000, Icon: "👑", Color: "#F43F5E"},
}
