package main

import (
	"path/filepath"
	"testing"

	"github.com/mauv0809/fc-ladder/internal/auth"
	"github.com/mauv0809/fc-ladder/internal/database"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) map[string]string {
	return map[string]string{
		"DB_NAME":             filepath.Join(t.TempDir(), "seed.db"),
		"SEED_ADMIN_USERNAME": "root",
		"SEED_ADMIN_PASSWORD": "secret",
	}
}

func players(t *testing.T, cfg map[string]string) []ladder.Player {
	t.Helper()
	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "")
	require.NoError(t, err)
	defer teardown()
	list, err := ladder.New(db).ListActivePlayers()
	require.NoError(t, err)
	return list
}

func TestSeed_IsIdempotent(t *testing.T) {
	cfg := testConfig(t)

	require.NoError(t, seed(cfg, false))
	require.NoError(t, seed(cfg, false))

	list := players(t, cfg)
	require.Len(t, list, len(samplePlayers))
	assert.Equal(t, "Alex", list[0].Name)

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "")
	require.NoError(t, err)
	defer teardown()
	admin, err := auth.NewService(auth.New(db)).Login("root", "secret")
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
}

func TestSeed_ResetStartsFresh(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, seed(cfg, false))

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "")
	require.NoError(t, err)
	store := ladder.New(db)
	extra, err := store.CreatePlayer("Morgan")
	require.NoError(t, err)
	teardown()
	require.NotEmpty(t, extra.ID)
	require.Len(t, players(t, cfg), len(samplePlayers)+1)

	require.NoError(t, seed(cfg, true))
	assert.Len(t, players(t, cfg), len(samplePlayers))
}
