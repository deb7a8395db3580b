package auth

import (
	"context"
	"time"
)

// Store is the persistence for admin accounts.
type Store interface {
	GetAdminByUsername(username string) (*Admin, error)
	// CreateAdmin inserts an admin unless the username is taken, and returns
	// the stored account either way.
	CreateAdmin(username, passwordHash string) (*Admin, error)
}

// Revoker remembers logged-out session ids until their tokens expire.
type Revoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
