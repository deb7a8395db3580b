package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/notifier"
	"github.com/mauv0809/fc-ladder/internal/stats"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	// offline is set when no bot token is configured; every send is then a dry run.
	offline bool
}

// NewNotifier creates a new Notifier. Without a token, messages are only logged.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	if token == "" {
		log.Warn("SLACK_BOT_TOKEN not set, Slack notifications will only be logged")
		return &Notifier{channelID: channelID, metrics: metrics, offline: true}
	}
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.offline {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendResultNotification(result notifier.MatchResult, dryRun bool) error {
	msg := s.formatResultNotification(result)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(board stats.Leaderboard, dryRun bool) error {
	msg := s.formatLeaderboard(board)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(board stats.Leaderboard) (any, error) {
	return s.formatLeaderboard(board), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(standing *stats.Standing, query string) (any, error) {
	if standing == nil {
		return s.formatPlayerNotFound(query), nil
	}
	return s.formatPlayerStats(standing), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// formatResultNotification creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatResultNotification(result notifier.MatchResult) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ Match recorded! ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	scoreText := fmt.Sprintf("*%s* %d - %d *%s*", result.Player1Name(), result.Match.Score1, result.Match.Score2, result.Player2Name())
	if winner, ok := result.Winner(); ok {
		scoreText += fmt.Sprintf("\n%s won! 🏆", winner)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", scoreText, false, false), nil, nil))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", standingSummary(result.Player1Name(), result.Player1), false, false),
		slack.NewTextBlockObject("mrkdwn", standingSummary(result.Player2Name(), result.Player2), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	if !result.Match.Timestamp.IsZero() {
		when := result.Match.Timestamp.Format("Monday 02 Jan, 15:04")
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", "Played "+when, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the standings.
func (s *Notifier) formatLeaderboard(board stats.Leaderboard) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 FC Ladder Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(board.Standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players yet. Add some players and record a match!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, st := range board.Standings {
		name := st.Name
		if medal := medalEmoji(st.Medal); medal != "" {
			name = medal + " " + name
		}
		line := fmt.Sprintf("%d. %s%s\n> Win rate: %d%% (%d/%d) | GD: %+d | Streak: %s",
			st.Rank,
			name,
			qualifiedSuffix(st),
			st.WinRate,
			st.Wins,
			st.MatchesPlayed,
			st.GoalDifference(),
			streakText(st),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", line, false, false), nil, nil))
	}

	var contextElements []slack.MixedElement
	if len(board.TopScorers) > 0 && board.TopScorers[0].GoalsScored > 0 {
		top := board.TopScorers[0]
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("⚽ Top scorer: %s (%d goals)", top.Name, top.GoalsScored), true, false))
	}
	contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("Players need %d matches to qualify for the ranking.", stats.QualifyingMatches), true, false))
	blocks = append(blocks, slack.NewContextBlock("", contextElements...))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(st *stats.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("📊 Stats for %s 📊", st.Name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *Rank*: #%d%s\n> *Record*: %dW - %dL (%d played)\n> *Win rate*: %d%%\n> *Goals*: %d scored, %d conceded (%+d)\n> *Streak*: %s",
		st.Rank,
		qualifiedSuffix(*st),
		st.Wins,
		st.Losses,
		st.MatchesPlayed,
		st.WinRate,
		st.GoalsScored,
		st.GoalsConceded,
		st.GoalDifference(),
		streakText(*st),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	if len(st.Badges) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", "Badges: "+badgeList(st.Badges), true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

func standingSummary(name string, st *stats.Standing) string {
	if st == nil {
		return fmt.Sprintf("*%s*\nNot on the ladder", name)
	}
	text := fmt.Sprintf("*%s*\nRank: #%d%s\nRecord: %dW - %dL\nWin rate: %d%%\nStreak: %s",
		name, st.Rank, qualifiedSuffix(*st), st.Wins, st.Losses, st.WinRate, streakText(*st))
	if len(st.Badges) > 0 {
		text += "\nBadges: " + badgeList(st.Badges)
	}
	return text
}

func medalEmoji(m stats.Medal) string {
	switch m {
	case stats.MedalGold:
		return "🥇"
	case stats.MedalSilver:
		return "🥈"
	case stats.MedalBronze:
		return "🥉"
	}
	return ""
}

func qualifiedSuffix(st stats.Standing) string {
	if st.Qualified {
		return ""
	}
	return " (unqualified)"
}

func streakText(st stats.Standing) string {
	text := fmt.Sprintf("%s%d", st.StreakType, st.Streak)
	switch {
	case st.HotStreak:
		text += " 🔥"
	case st.ColdStreak:
		text += " 🥶"
	}
	return text
}

func badgeList(badges []stats.Badge) string {
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}
