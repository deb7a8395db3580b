package ladder

// Store defines the interface for the durable player and match store.
type Store interface {
	ListActivePlayers() ([]Player, error)
	GetPlayer(id string) (*Player, error)
	CreatePlayer(name string) (*Player, error)
	DeletePlayer(id string) error
	ListMatches() ([]Match, error)
	CreateMatch(m NewMatch) (*Match, error)
	DeleteMatch(id string) error
	Clear() error
}
