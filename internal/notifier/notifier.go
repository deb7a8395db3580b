package notifier

import (
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/stats"
)

// UnknownPlayerName is shown for a match participant who is no longer on the roster.
const UnknownPlayerName = "Unknown"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded matches
	SendResultNotification(result MatchResult, dryRun bool) error
	// For the scheduled digest
	SendLeaderboard(board stats.Leaderboard, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(board stats.Leaderboard) (any, error)
	FormatPlayerStatsResponse(standing *stats.Standing, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}

// MatchResult is a recorded match with both players' standings after it.
// A nil standing means the player is not on the current roster.
type MatchResult struct {
	Match   ladder.Match
	Player1 *stats.Standing
	Player2 *stats.Standing
}

// Player1Name returns the display name of the first player.
func (r MatchResult) Player1Name() string {
	return nameOf(r.Player1)
}

// Player2Name returns the display name of the second player.
func (r MatchResult) Player2Name() string {
	return nameOf(r.Player2)
}

// Winner returns the name of the winning side, or ok=false for a draw.
func (r MatchResult) Winner() (name string, ok bool) {
	switch {
	case r.Match.Score1 > r.Match.Score2:
		return r.Player1Name(), true
	case r.Match.Score2 > r.Match.Score1:
		return r.Player2Name(), true
	}
	return "", false
}

func nameOf(s *stats.Standing) string {
	if s == nil || s.Name == "" {
		return UnknownPlayerName
	}
	return s.Name
}
