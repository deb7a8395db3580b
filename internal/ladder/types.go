package ladder

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// MinNameLength is the shortest accepted player name after trimming.
const MinNameLength = 2

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrInvalidName    = errors.New("name must be at least 2 characters")
	ErrMissingPlayer  = errors.New("both players are required")
	ErrSamePlayer     = errors.New("players must be different")
	ErrNegativeScore  = errors.New("scores must be non-negative")
	ErrDraw           = errors.New("match cannot end in a draw")
	ErrUnknownPlayer  = errors.New("player does not exist or is inactive")
)

// store handles all database operations for the ladder.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Player is a registered ladder participant.
type Player struct {
	ID        string    `json:"id" msgpack:"id"`
	Name      string    `json:"name" msgpack:"name"`
	Avatar    string    `json:"avatar" msgpack:"avatar"`
	IsActive  bool      `json:"isActive" msgpack:"is_active"`
	CreatedAt time.Time `json:"createdAt" msgpack:"created_at"`
}

// Match is a recorded 1v1 result.
type Match struct {
	ID        string    `json:"id" msgpack:"id"`
	Player1ID string    `json:"player1Id" msgpack:"player1_id"`
	Player2ID string    `json:"player2Id" msgpack:"player2_id"`
	Score1    int       `json:"score1" msgpack:"score1"`
	Score2    int       `json:"score2" msgpack:"score2"`
	Timestamp time.Time `json:"timestamp" msgpack:"timestamp"`
}

// NewMatch is the input for recording a match.
type NewMatch struct {
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
	Score1    int    `json:"score1"`
	Score2    int    `json:"score2"`
}
