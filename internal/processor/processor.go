package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/notifier"
	"github.com/mauv0809/fc-ladder/internal/pubsub"
	"github.com/mauv0809/fc-ladder/internal/stats"
	"golang.org/x/sync/errgroup"
)

// New creates a new Processor. pubsub may be nil, in which case events are
// handled in-process.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// LoadSnapshot reads the roster and the match history concurrently.
func (p *Processor) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		players, err := p.store.ListActivePlayers()
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}
		snap.Players = players
		return nil
	})
	g.Go(func() error {
		matches, err := p.store.ListMatches()
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}
		snap.Matches = matches
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Leaderboard builds the current leaderboard.
func (p *Processor) Leaderboard(ctx context.Context) (stats.Leaderboard, error) {
	snap, err := p.LoadSnapshot(ctx)
	if err != nil {
		return stats.Leaderboard{}, err
	}
	startTime := time.Now()
	board := stats.Build(snap.Players, snap.Matches)
	p.metrics.ObserveLeaderboardBuild(time.Since(startTime).Seconds())
	log.Debug("Built leaderboard", "players", len(snap.Players), "matches", len(snap.Matches))
	return board, nil
}

// PublishMatchRecorded announces a new match. With Pub/Sub configured the
// match is published to the match-recorded topic and handled by the push
// subscription, otherwise it is handled right away.
func (p *Processor) PublishMatchRecorded(ctx context.Context, match ladder.Match, dryRun bool) error {
	if p.pubsub == nil {
		return p.HandleMatchRecorded(ctx, match, dryRun)
	}
	if err := p.pubsub.SendMessage(pubsub.EventMatchRecorded, match); err != nil {
		return fmt.Errorf("failed to publish match: %w", err)
	}
	return nil
}

// HandleMatchRecorded posts the result of a match together with both players'
// standings after it.
func (p *Processor) HandleMatchRecorded(ctx context.Context, match ladder.Match, dryRun bool) error {
	log.Info("Handling recorded match", "matchID", match.ID, "dryRun", dryRun)
	board, err := p.Leaderboard(ctx)
	if err != nil {
		log.Error("Failed to build leaderboard for match", "error", err, "matchID", match.ID)
		return err
	}

	result := notifier.MatchResult{Match: match}
	if st, ok := board.Find(match.Player1ID); ok {
		result.Player1 = st
	}
	if st, ok := board.Find(match.Player2ID); ok {
		result.Player2 = st
	}

	if err := p.notifier.SendResultNotification(result, dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "matchID", match.ID)
		return err
	}
	return nil
}

// PostDigest posts the current leaderboard.
func (p *Processor) PostDigest(ctx context.Context, dryRun bool) error {
	log.Info("Posting leaderboard digest", "dryRun", dryRun)
	board, err := p.Leaderboard(ctx)
	if err != nil {
		log.Error("Failed to build leaderboard for digest", "error", err)
		return err
	}
	if err := p.notifier.SendLeaderboard(board, dryRun); err != nil {
		log.Error("Failed to send leaderboard digest", "error", err)
		return err
	}
	p.metrics.IncDigestRuns()
	return nil
}
