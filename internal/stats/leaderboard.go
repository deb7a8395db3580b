package stats

import (
	"strings"

	"github.com/mauv0809/fc-ladder/internal/ladder"
)

var podium = []Medal{MedalGold, MedalSilver, MedalBronze}

// Build computes the standings and the top scorers view for one snapshot and
// derives ranks, medals, badges and streak flags.
func Build(players []ladder.Player, matches []ladder.Match) Leaderboard {
	computed := Compute(players, matches)
	scorers := TopScorers(computed)

	var topScorerID string
	if len(scorers) > 0 && scorers[0].GoalsScored > 0 {
		topScorerID = scorers[0].ID
	}

	standings := make([]Standing, len(computed))
	for i, ps := range computed {
		st := Standing{
			PlayerStats: ps,
			Rank:        i + 1,
			Qualified:   ps.IsQualified(),
			Badges:      []Badge{},
			HotStreak:   ps.StreakType == StreakWin && ps.Streak >= HotStreakLength,
			ColdStreak:  ps.StreakType == StreakLoss && ps.Streak >= HotStreakLength,
		}
		if st.Qualified && i < len(podium) {
			st.Medal = podium[i]
		}
		if i == 0 && ps.IsQualified() {
			st.Badges = append(st.Badges, BadgeChampion)
		}
		if ps.ID == topScorerID {
			st.Badges = append(st.Badges, BadgeTopScorer)
		}
		if ps.MatchesPlayed >= veteranMatches {
			st.Badges = append(st.Badges, BadgeVeteran)
		}
		if ps.WinRate >= eliteWinRate && ps.MatchesPlayed >= eliteMinMatches {
			st.Badges = append(st.Badges, BadgeElite)
		}
		standings[i] = st
	}

	return Leaderboard{Standings: standings, TopScorers: scorers}
}

// HasBadge reports whether the standing holds b.
func (s Standing) HasBadge(b Badge) bool {
	for _, have := range s.Badges {
		if have == b {
			return true
		}
	}
	return false
}

// Find returns the standing for a player id.
func (l Leaderboard) Find(id string) (*Standing, bool) {
	for i := range l.Standings {
		if l.Standings[i].ID == id {
			return &l.Standings[i], true
		}
	}
	return nil, false
}

// Search looks a player up by name. An exact slug match wins, otherwise the
// first standing whose slug contains the query is returned.
func (l Leaderboard) Search(query string) (*Standing, bool) {
	q := ladder.Slug(query)
	if q == "" {
		return nil, false
	}
	for i := range l.Standings {
		if ladder.Slug(l.Standings[i].Name) == q {
			return &l.Standings[i], true
		}
	}
	for i := range l.Standings {
		if strings.Contains(ladder.Slug(l.Standings[i].Name), q) {
			return &l.Standings[i], true
		}
	}
	return nil, false
}
