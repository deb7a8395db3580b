package stats

import (
	"sort"

	"github.com/mauv0809/fc-ladder/internal/ladder"
)

// Compute derives one PlayerStats per roster player from the full match
// history and returns them in standings order.
//
// Matches are replayed oldest first by timestamp, ties broken by match id, so
// the order of the input slice does not matter. Matches referencing a player
// outside the roster are ignored. Neither input is modified.
func Compute(players []ladder.Player, matches []ladder.Match) []PlayerStats {
	out := make([]PlayerStats, len(players))
	index := make(map[string]int, len(players))
	streaks := make([]int, len(players))
	for i, p := range players {
		out[i] = PlayerStats{ID: p.ID, Name: p.Name, Avatar: p.Avatar}
		index[p.ID] = i
	}

	for _, m := range chronological(matches) {
		i1, ok1 := index[m.Player1ID]
		i2, ok2 := index[m.Player2ID]
		if !ok1 || !ok2 {
			continue
		}
		p1, p2 := &out[i1], &out[i2]

		p1.MatchesPlayed++
		p2.MatchesPlayed++
		p1.GoalsScored += m.Score1
		p1.GoalsConceded += m.Score2
		p2.GoalsScored += m.Score2
		p2.GoalsConceded += m.Score1

		switch {
		case m.Score1 > m.Score2:
			p1.Wins++
			p2.Losses++
			streaks[i1] = extendWin(streaks[i1])
			streaks[i2] = extendLoss(streaks[i2])
		case m.Score2 > m.Score1:
			p2.Wins++
			p1.Losses++
			streaks[i2] = extendWin(streaks[i2])
			streaks[i1] = extendLoss(streaks[i1])
		default:
			p1.Draws++
			p2.Draws++
			streaks[i1] = 0
			streaks[i2] = 0
		}
	}

	for i := range out {
		out[i].WinRate = winRate(out[i].Wins, out[i].MatchesPlayed)
		out[i].StreakType, out[i].Streak = splitStreak(streaks[i])
	}

	sort.SliceStable(out, func(i, j int) bool {
		qi, qj := out[i].IsQualified(), out[j].IsQualified()
		if qi != qj {
			return qi
		}
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].Wins > out[j].Wins
	})
	return out
}

// TopScorers returns a copy of stats ordered by goals scored, then matches
// played. No qualification threshold applies.
func TopScorers(stats []PlayerStats) []PlayerStats {
	out := make([]PlayerStats, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GoalsScored != out[j].GoalsScored {
			return out[i].GoalsScored > out[j].GoalsScored
		}
		return out[i].MatchesPlayed > out[j].MatchesPlayed
	})
	return out
}

// IsQualified reports whether the player has played enough matches to rank.
func (s PlayerStats) IsQualified() bool {
	return s.MatchesPlayed >= QualifyingMatches
}

// GoalDifference is goals scored minus goals conceded.
func (s PlayerStats) GoalDifference() int {
	return s.GoalsScored - s.GoalsConceded
}

func chronological(matches []ladder.Match) []ladder.Match {
	sorted := make([]ladder.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func extendWin(streak int) int {
	if streak >= 0 {
		return streak + 1
	}
	return 1
}

func extendLoss(streak int) int {
	if streak <= 0 {
		return streak - 1
	}
	return -1
}

// splitStreak turns a signed streak into its direction and magnitude. Zero
// reports as a loss streak of length 0.
func splitStreak(streak int) (string, int) {
	if streak > 0 {
		return StreakWin, streak
	}
	return StreakLoss, -streak
}

// winRate is the rounded win percentage, halves rounded up.
func winRate(wins, played int) int {
	if played == 0 {
		return 0
	}
	return (wins*200 + played) / (2 * played)
}
