package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// NewService creates a login service over the admin store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Login returns the admin whose password matches. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *Service) Login(username, password string) (*Admin, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	admin, err := s.store.GetAdminByUsername(username)
	if errors.Is(err, ErrAdminNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
