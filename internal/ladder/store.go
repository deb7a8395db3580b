package ladder

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new Store backed by db.
func New(db *sql.DB) Store {
	return &store{
		db:  db,
		now: time.Now,
	}
}

// ListActivePlayers returns the roster ordered by name.
func (s *store) ListActivePlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, avatar, is_active, created_at FROM players WHERE is_active = 1 ORDER BY name")
	if err != nil {
		log.Error("Failed to query active players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// GetPlayer returns a player by id, active or not.
func (s *store) GetPlayer(id string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, name, avatar, is_active, created_at FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}

func (s *store) CreatePlayer(name string) (*Player, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &Player{
		ID:        uuid.NewString(),
		Name:      name,
		Avatar:    Avatar(name),
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}
	_, err = s.db.Exec("INSERT INTO players (id, name, avatar, is_active, created_at) VALUES (?, ?, ?, 1, ?)",
		p.ID, p.Name, p.Avatar, p.CreatedAt.UnixNano())
	if err != nil {
		log.Error("Failed to add player", "error", err, "name", name)
		return nil, fmt.Errorf("failed to insert player: %w", err)
	}
	log.Info("Added new player to the ladder", "playerID", p.ID, "name", p.Name)
	return p, nil
}

// DeletePlayer deactivates a player. Their matches stay in the history.
func (s *store) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET is_active = 0 WHERE id = ?", id)
	if err != nil {
		log.Error("Failed to deactivate player", "error", err, "playerID", id)
		return fmt.Errorf("failed to deactivate player: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlayerNotFound
	}
	log.Info("Deactivated player", "playerID", id)
	return nil
}

// ListMatches returns every match, newest first.
func (s *store) ListMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, player1_id, player2_id, score1, score2, timestamp FROM matches ORDER BY timestamp DESC, id DESC")
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		var m Match
		var ts int64
		if err := rows.Scan(&m.ID, &m.Player1ID, &m.Player2ID, &m.Score1, &m.Score2, &ts); err != nil {
			return nil, err
		}
		m.Timestamp = time.Unix(0, ts).UTC()
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *store) CreateMatch(nm NewMatch) (*Match, error) {
	if err := nm.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	var active int
	err = tx.QueryRow("SELECT COUNT(*) FROM players WHERE id IN (?, ?) AND is_active = 1", nm.Player1ID, nm.Player2ID).Scan(&active)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to check players: %w", err)
	}
	if active != 2 {
		tx.Rollback()
		return nil, ErrUnknownPlayer
	}

	m := &Match{
		ID:        uuid.NewString(),
		Player1ID: nm.Player1ID,
		Player2ID: nm.Player2ID,
		Score1:    nm.Score1,
		Score2:    nm.Score2,
		Timestamp: s.now().UTC(),
	}
	_, err = tx.Exec("INSERT INTO matches (id, player1_id, player2_id, score1, score2, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		m.ID, m.Player1ID, m.Player2ID, m.Score1, m.Score2, m.Timestamp.UnixNano())
	if err != nil {
		tx.Rollback()
		log.Error("Failed to record match", "error", err)
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info("Recorded match", "matchID", m.ID, "player1", m.Player1ID, "player2", m.Player2ID, "score", fmt.Sprintf("%d-%d", m.Score1, m.Score2))
	return m, nil
}

func (s *store) DeleteMatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM matches WHERE id = ?", id)
	if err != nil {
		log.Error("Failed to delete match", "error", err, "matchID", id)
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMatchNotFound
	}
	log.Info("Deleted match", "matchID", id)
	return nil
}

// Clear removes all matches and players.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		log.Error("Failed to clear matches table", "error", err)
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// scanPlayer is a helper function to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var createdAt int64
	if err := scanner.Scan(&p.ID, &p.Name, &p.Avatar, &p.IsActive, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return &p, nil
}
