package auth

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/mauv0809/fc-ladder/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return db
}

func seedAdmin(t *testing.T, s Store, username, password string) *Admin {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	admin, err := s.CreateAdmin(username, hash)
	require.NoError(t, err)
	return admin
}

func TestCreateAdmin_IsIdempotent(t *testing.T) {
	s := New(setupTestDB(t))

	first := seedAdmin(t, s, "root", "secret")
	second := seedAdmin(t, s, "root", "another")

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash, "the original password is kept")

	_, err := s.GetAdminByUsername("nobody")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestLogin(t *testing.T) {
	s := New(setupTestDB(t))
	admin := seedAdmin(t, s, "root", "correct horse")
	svc := NewService(s)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Login("root", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, got.ID)
	})

	for name, creds := range map[string][2]string{
		"wrong password": {"root", "battery staple"},
		"unknown user":   {"admin", "correct horse"},
		"empty password": {"root", ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(creds[0], creds[1])
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour, nil)
	admin := &Admin{ID: "admin-1", Username: "root"}

	token, issued, err := m.Issue(admin)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, issued.ID, claims.ID)

	_, other, err := m.Issue(admin)
	require.NoError(t, err)
	assert.NotEqual(t, issued.ID, other.ID, "every session gets its own id")
}

func TestManager_RejectsBadTokens(t *testing.T) {
	m := NewManager("test-secret", time.Hour, nil)
	token, _, err := m.Issue(&Admin{ID: "admin-1", Username: "root"})
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour, nil)
		_, err := other.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := m.Verify(context.Background(), token+"a")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewManager("test-secret", time.Hour, nil)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestManager_RevokeWithSQL(t *testing.T) {
	revoker := NewSQLRevoker(setupTestDB(t))
	m := NewManager("test-secret", time.Hour, revoker)
	ctx := context.Background()

	token, _, err := m.Issue(&Admin{ID: "admin-1", Username: "root"})
	require.NoError(t, err)
	keep, _, err := m.Issue(&Admin{ID: "admin-1", Username: "root"})
	require.NoError(t, err)

	claims, err := m.Verify(ctx, token)
	require.NoError(t, err)
	require.NoError(t, m.Revoke(ctx, claims))

	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = m.Verify(ctx, keep)
	assert.NoError(t, err, "other sessions stay valid")
}

func TestSQLRevoker_ForgetsExpiredEntries(t *testing.T) {
	r := NewSQLRevoker(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	revoked, err := r.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "current", time.Now().Add(time.Minute)))
	revoked, err = r.IsRevoked(ctx, "current")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisRevoker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	r, err := NewRedisRevoker(ctx, addr, os.Getenv("REDIS_PASSWORD"))
	require.NoError(t, err)
	defer r.Close()

	jti := "test-" + time.Now().Format("150405.000000000")
	revoked, err := r.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, jti, time.Now().Add(time.Minute)))
	revoked, err = r.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)
}
