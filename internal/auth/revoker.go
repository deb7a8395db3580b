package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// SQLRevoker keeps revoked session ids in the revoked_sessions table.
type SQLRevoker struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLRevoker creates a revoker on the application database.
func NewSQLRevoker(db *sql.DB) *SQLRevoker {
	return &SQLRevoker{db: db, now: time.Now}
}

func (r *SQLRevoker) Revoke(ctx context.Context, jti string, until time.Time) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM revoked_sessions WHERE expires_at < ?", r.now().UnixNano()); err != nil {
		log.Warn("Failed to prune revoked sessions", "error", err)
	}
	_, err := r.db.ExecContext(ctx, "INSERT OR REPLACE INTO revoked_sessions (jti, expires_at) VALUES (?, ?)", jti, until.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (r *SQLRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM revoked_sessions WHERE jti = ? AND expires_at >= ?", jti, r.now().UnixNano()).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

const redisKeyPrefix = "fc-ladder:revoked:"

// RedisRevoker keeps revoked session ids as expiring Redis keys.
type RedisRevoker struct {
	client *redis.Client
}

// NewRedisRevoker connects to Redis and checks the connection.
func NewRedisRevoker(ctx context.Context, addr, password string) (*RedisRevoker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("Connected to Redis", "addr", addr)
	return &RedisRevoker{client: client}, nil
}

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, redisKeyPrefix+jti, 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, redisKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the Redis connection.
func (r *RedisRevoker) Close() error {
	return r.client.Close()
}
