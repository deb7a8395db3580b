package auth

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrAdminNotFound      = errors.New("admin not found")
)

// store handles admin_users access.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Admin is a privileged user allowed to write to the ladder.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Claims is the payload of a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service checks admin credentials.
type Service struct {
	store Store
}

// Manager issues, verifies and revokes session tokens.
type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoker Revoker
	now     func() time.Time
}
