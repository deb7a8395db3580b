package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/notifier"
	"github.com/mauv0809/fc-ladder/internal/stats"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func testBoard() stats.Leaderboard {
	players := []ladder.Player{
		{ID: "a", Name: "Alex", Avatar: "AL"},
		{ID: "s", Name: "Sam", Avatar: "SA"},
		{ID: "j", Name: "Jordan", Avatar: "JO"},
	}
	at := time.Date(2025, 3, 7, 18, 0, 0, 0, time.UTC)
	var matches []ladder.Match
	for i, m := range []struct {
		p1, p2 string
		s1, s2 int
	}{
		{"a", "s", 3, 1}, {"a", "s", 2, 0}, {"a", "s", 4, 2}, {"s", "j", 1, 0},
	} {
		matches = append(matches, ladder.Match{
			ID: string(rune('0' + i)), Player1ID: m.p1, Player2ID: m.p2, Score1: m.s1, Score2: m.s2,
			Timestamp: at.Add(time.Duration(i) * time.Hour),
		})
	}
	return stats.Build(players, matches)
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestNewNotifier_WithoutTokenIsOffline(t *testing.T) {
	metrics := metrics.NewMock()
	n := NewNotifier("", "C123", metrics)

	require.NoError(t, n.SendLeaderboard(testBoard(), false))
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendResultNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	board := testBoard()
	alex, _ := board.Find("a")
	err := n.SendResultNotification(notifier.MatchResult{
		Match:   ladder.Match{Player1ID: "a", Player2ID: "x", Score1: 2, Score2: 1},
		Player1: alex,
	}, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendResultNotification")
}

func TestFormatResultNotification(t *testing.T) {
	board := testBoard()
	alex, _ := board.Find("a")
	sam, _ := board.Find("s")
	result := notifier.MatchResult{
		Match: ladder.Match{Player1ID: "a", Player2ID: "s", Score1: 4, Score2: 2,
			Timestamp: time.Date(2025, 3, 7, 20, 0, 0, 0, time.UTC)},
		Player1: alex,
		Player2: sam,
	}

	msg := (&Notifier{channelID: "C123"}).formatResultNotification(result)
	require.Len(t, msg.Blocks.BlockSet, 4)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Equal(t, "⚽ Match recorded! ⚽", header.Text.Text)

	score, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Alex* 4 - 2 *Sam*\nAlex won! 🏆", score.Text.Text)

	players, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	require.Len(t, players.Fields, 2)
	assert.Equal(t, "*Alex*\nRank: #1\nRecord: 3W - 0L\nWin rate: 100%\nStreak: W3 🔥\nBadges: Champion, Top Scorer", players.Fields[0].Text)
	assert.Equal(t, "*Sam*\nRank: #2\nRecord: 1W - 3L\nWin rate: 25%\nStreak: W1", players.Fields[1].Text)

	contextBlock, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, contextBlock.ContextElements.Elements, 1)
	assert.Equal(t, "Played Friday 07 Mar, 20:00", contextBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject).Text)
}

func TestFormatResultNotification_UnknownPlayer(t *testing.T) {
	result := notifier.MatchResult{
		Match: ladder.Match{Player1ID: "gone", Player2ID: "s", Score1: 0, Score2: 1},
	}

	msg := (&Notifier{}).formatResultNotification(result)
	require.Len(t, msg.Blocks.BlockSet, 3, "no context block without a timestamp")

	score := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "*Unknown* 0 - 1 *Unknown*\nUnknown won! 🏆", score.Text.Text)

	players := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	assert.Equal(t, "*Unknown*\nNot on the ladder", players.Fields[0].Text)
}

func TestFormatLeaderboard(t *testing.T) {
	msg := (&Notifier{}).formatLeaderboard(testBoard())
	// Header, three players and the context footer.
	require.Len(t, msg.Blocks.BlockSet, 5)

	header := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Equal(t, "🏆 FC Ladder Leaderboard 🏆", header.Text.Text)

	first := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "1. 🥇 Alex\n> Win rate: 100% (3/3) | GD: +6 | Streak: W3 🔥", first.Text.Text)

	second := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	assert.Equal(t, "2. 🥈 Sam\n> Win rate: 25% (1/4) | GD: -5 | Streak: W1", second.Text.Text)

	third := msg.Blocks.BlockSet[3].(*slackapi.SectionBlock)
	assert.Equal(t, "3. Jordan (unqualified)\n> Win rate: 0% (0/1) | GD: -1 | Streak: L1", third.Text.Text)

	footer := msg.Blocks.BlockSet[4].(*slackapi.ContextBlock)
	require.Len(t, footer.ContextElements.Elements, 2)
	assert.Equal(t, "⚽ Top scorer: Alex (9 goals)", footer.ContextElements.Elements[0].(*slackapi.TextBlockObject).Text)
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	msg := (&Notifier{}).formatLeaderboard(stats.Leaderboard{})
	require.Len(t, msg.Blocks.BlockSet, 2)
	section := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "No players yet. Add some players and record a match!", section.Text.Text)
}

func TestFormatPlayerStatsResponse(t *testing.T) {
	n := &Notifier{}
	board := testBoard()
	alex, _ := board.Find("a")

	resp, err := n.FormatPlayerStatsResponse(alex, "alex")
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 3)

	header := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Equal(t, "📊 Stats for Alex 📊", header.Text.Text)
	body := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Contains(t, body.Text.Text, "*Goals*: 9 scored, 3 conceded (+6)")
	badges := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	assert.Equal(t, "Badges: Champion, Top Scorer", badges.ContextElements.Elements[0].(*slackapi.TextBlockObject).Text)

	resp, err = n.FormatPlayerStatsResponse(nil, "nobody")
	require.NoError(t, err)
	notFound := resp.(slackapi.Message).Blocks.BlockSet[0].(*slackapi.SectionBlock)
	assert.Contains(t, notFound.Text.Text, "*nobody*")
}
