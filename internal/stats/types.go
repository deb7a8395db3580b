package stats

// QualifyingMatches is the number of matches a player needs before they can
// rank above unqualified players.
const QualifyingMatches = 3

const (
	StreakWin  = "W"
	StreakLoss = "L"

	// HotStreakLength is the streak length flagged as hot or cold.
	HotStreakLength = 3
)

// Badge is an achievement derived from the standings.
type Badge string

const (
	BadgeChampion  Badge = "Champion"
	BadgeTopScorer Badge = "Top Scorer"
	BadgeVeteran   Badge = "Veteran"
	BadgeElite     Badge = "Elite"
)

const (
	veteranMatches  = 20
	eliteWinRate    = 70
	eliteMinMatches = 5
)

// Medal marks the qualified podium.
type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

// PlayerStats is the derived record for a single player. It is recomputed on
// every call and never persisted.
type PlayerStats struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	MatchesPlayed int    `json:"matchesPlayed"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	WinRate       int    `json:"winRate"`
	Streak        int    `json:"streak"`
	StreakType    string `json:"streakType"`
	GoalsScored   int    `json:"goalsScored"`
	GoalsConceded int    `json:"goalsConceded"`
}

// Standing is a ranked row of the leaderboard.
type Standing struct {
	PlayerStats
	Rank       int     `json:"rank"`
	Qualified  bool    `json:"qualified"`
	Medal      Medal   `json:"medal,omitempty"`
	Badges     []Badge `json:"badges"`
	HotStreak  bool    `json:"hotStreak"`
	ColdStreak bool    `json:"coldStreak"`
}

// Leaderboard holds the standings and the top scorers view built from the
// same snapshot.
type Leaderboard struct {
	Standings  []Standing    `json:"standings"`
	TopScorers []PlayerStats `json:"topScorers"`
}
