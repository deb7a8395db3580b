package processor

import (
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	ListActivePlayers() ([]ladder.Player, error)
	ListMatches() ([]ladder.Match, error)
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
