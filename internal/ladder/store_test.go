package ladder

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mauv0809/fc-ladder/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database with a store whose clock
// advances one minute per call.
func setupTestDB(t *testing.T) (*store, *sql.DB) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(db).(*store)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s, db
}

func TestCreateAndListPlayers(t *testing.T) {
	s, _ := setupTestDB(t)

	sam, err := s.CreatePlayer("  Sam ")
	require.NoError(t, err)
	assert.Equal(t, "Sam", sam.Name)
	assert.Equal(t, "SA", sam.Avatar)
	assert.True(t, sam.IsActive)

	_, err = s.CreatePlayer("alex")
	require.NoError(t, err)

	players, err := s.ListActivePlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Sam", players[0].Name, "roster is ordered by name (binary collation)")
	assert.Equal(t, "AL", players[1].Avatar)
}

func TestCreatePlayer_RejectsShortNames(t *testing.T) {
	s, _ := setupTestDB(t)

	for _, name := range []string{"", " ", "A", "  B  "} {
		_, err := s.CreatePlayer(name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestDeletePlayer_SoftDeletes(t *testing.T) {
	s, _ := setupTestDB(t)

	p, err := s.CreatePlayer("Jordan")
	require.NoError(t, err)
	require.NoError(t, s.DeletePlayer(p.ID))

	players, err := s.ListActivePlayers()
	require.NoError(t, err)
	assert.Empty(t, players)

	got, err := s.GetPlayer(p.ID)
	require.NoError(t, err, "a deleted player is still retrievable")
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, s.DeletePlayer("missing"), ErrPlayerNotFound)
}

func TestGetPlayer_NotFound(t *testing.T) {
	s, _ := setupTestDB(t)

	_, err := s.GetPlayer("missing")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestCreateMatch(t *testing.T) {
	s, _ := setupTestDB(t)

	a, err := s.CreatePlayer("Alex")
	require.NoError(t, err)
	b, err := s.CreatePlayer("Sam")
	require.NoError(t, err)

	t.Run("records a valid match", func(t *testing.T) {
		m, err := s.CreateMatch(NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: 3, Score2: 1})
		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.False(t, m.Timestamp.IsZero())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := []struct {
			name string
			in   NewMatch
			want error
		}{
			{"missing player", NewMatch{Player1ID: a.ID, Score1: 1}, ErrMissingPlayer},
			{"same player", NewMatch{Player1ID: a.ID, Player2ID: a.ID, Score1: 1}, ErrSamePlayer},
			{"negative score", NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: -1, Score2: 2}, ErrNegativeScore},
			{"draw", NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: 2, Score2: 2}, ErrDraw},
			{"unknown player", NewMatch{Player1ID: a.ID, Player2ID: "ghost", Score1: 2, Score2: 0}, ErrUnknownPlayer},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := s.CreateMatch(tc.in)
				assert.ErrorIs(t, err, tc.want)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects inactive player", func(t *testing.T) {
		c, err := s.CreatePlayer("Taylor")
		require.NoError(t, err)
		require.NoError(t, s.DeletePlayer(c.ID))

		_, err = s.CreateMatch(NewMatch{Player1ID: a.ID, Player2ID: c.ID, Score1: 1, Score2: 0})
		assert.ErrorIs(t, err, ErrUnknownPlayer)
	})
}

func TestListMatches_NewestFirst(t *testing.T) {
	s, _ := setupTestDB(t)

	a, _ := s.CreatePlayer("Alex")
	b, _ := s.CreatePlayer("Sam")

	first, err := s.CreateMatch(NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: 1, Score2: 0})
	require.NoError(t, err)
	second, err := s.CreateMatch(NewMatch{Player1ID: b.ID, Player2ID: a.ID, Score1: 4, Score2: 2})
	require.NoError(t, err)

	matches, err := s.ListMatches()
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, second.ID, matches[0].ID)
	assert.Equal(t, first.ID, matches[1].ID)
	assert.True(t, matches[0].Timestamp.Equal(second.Timestamp), "timestamps round-trip through storage")
}

func TestMatchesOutliveDeletedPlayers(t *testing.T) {
	s, _ := setupTestDB(t)

	a, _ := s.CreatePlayer("Alex")
	b, _ := s.CreatePlayer("Sam")
	_, err := s.CreateMatch(NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: 2, Score2: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeletePlayer(b.ID))

	matches, err := s.ListMatches()
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestDeleteMatch(t *testing.T) {
	s, _ := setupTestDB(t)

	a, _ := s.CreatePlayer("Alex")
	b, _ := s.CreatePlayer("Sam")
	m, err := s.CreateMatch(NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: 2, Score2: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMatch(m.ID))
	assert.ErrorIs(t, s.DeleteMatch(m.ID), ErrMatchNotFound)

	matches, err := s.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestClear(t *testing.T) {
	s, _ := setupTestDB(t)

	a, _ := s.CreatePlayer("Alex")
	b, _ := s.CreatePlayer("Sam")
	_, err := s.CreateMatch(NewMatch{Player1ID: a.ID, Player2ID: b.ID, Score1: 2, Score2: 1})
	require.NoError(t, err)

	require.NoError(t, s.Clear())

	players, err := s.ListActivePlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
	matches, err := s.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}
