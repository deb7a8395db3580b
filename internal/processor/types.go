package processor

import (
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/pubsub"
)

// Processor builds leaderboards from store snapshots and reacts to ladder events.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}

// Snapshot is the roster and match history read together.
type Snapshot struct {
	Players []ladder.Player
	Matches []ladder.Match
}
