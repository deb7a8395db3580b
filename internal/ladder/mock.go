package ladder

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListActivePlayersFunc func() ([]Player, error)
	GetPlayerFunc         func(id string) (*Player, error)
	CreatePlayerFunc      func(name string) (*Player, error)
	DeletePlayerFunc      func(id string) error
	ListMatchesFunc       func() ([]Match, error)
	CreateMatchFunc       func(m NewMatch) (*Match, error)
	DeleteMatchFunc       func(id string) error
	ClearFunc             func() error

	// Call records
	CreatePlayerCalls []string
	DeletePlayerCalls []string
	CreateMatchCalls  []NewMatch
	DeleteMatchCalls  []string
	ClearCalls        int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = nil
	m.DeletePlayerCalls = nil
	m.CreateMatchCalls = nil
	m.DeleteMatchCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) ListActivePlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListActivePlayersFunc != nil {
		return m.ListActivePlayersFunc()
	}
	return []Player{}, nil
}

func (m *MockStore) GetPlayer(id string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) CreatePlayer(name string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, name)
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(name)
	}
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Player{ID: "mock-" + Slug(name), Name: name, Avatar: Avatar(name), IsActive: true}, nil
}

func (m *MockStore) DeletePlayer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) ListMatches() ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc()
	}
	return []Match{}, nil
}

func (m *MockStore) CreateMatch(nm NewMatch) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, nm)
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(nm)
	}
	if err := nm.Validate(); err != nil {
		return nil, err
	}
	return &Match{ID: "mock-match", Player1ID: nm.Player1ID, Player2ID: nm.Player2ID, Score1: nm.Score1, Score2: nm.Score2}, nil
}

func (m *MockStore) DeleteMatch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, id)
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(id)
	}
	return nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
