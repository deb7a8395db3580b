package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new admin Store backed by db.
func New(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) GetAdminByUsername(username string) (*Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getAdmin(username)
}

func (s *store) CreateAdmin(username, passwordHash string) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("INSERT OR IGNORE INTO admin_users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)",
		uuid.NewString(), username, passwordHash, time.Now().UnixNano())
	if err != nil {
		log.Error("Failed to create admin", "error", err, "username", username)
		return nil, fmt.Errorf("failed to insert admin: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Info("Admin already exists", "username", username)
	} else {
		log.Info("Created admin", "username", username)
	}
	return s.getAdmin(username)
}

func (s *store) getAdmin(username string) (*Admin, error) {
	var a Admin
	var createdAt int64
	err := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM admin_users WHERE username = ?", username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	a.CreatedAt = time.Unix(0, createdAt).UTC()
	return &a, nil
}
