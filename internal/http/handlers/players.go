package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/processor"
)

func ListPlayersHandler(store ladder.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.ListActivePlayers()
		if err != nil {
			internalError(w, "Failed to get players from store", err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func CreatePlayerHandler(store ladder.Store, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		player, err := store.CreatePlayer(req.Name)
		if errors.Is(err, ladder.ErrInvalidName) {
			writeMessage(w, http.StatusBadRequest, "Name must be at least 2 characters")
			return
		}
		if err != nil {
			internalError(w, "Create player error", err)
			return
		}
		m.IncPlayersCreated()
		writeJSON(w, http.StatusCreated, player)
	}
}

func DeletePlayerHandler(store ladder.Store, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		err := store.DeletePlayer(id)
		if errors.Is(err, ladder.ErrPlayerNotFound) {
			writeMessage(w, http.StatusNotFound, "Player not found")
			return
		}
		if err != nil {
			internalError(w, "Delete player error", err)
			return
		}
		m.IncPlayersDeleted()
		writeMessage(w, http.StatusOK, "Player deleted")
	}
}

// PlayerStatsHandler returns one standing. The reference is a player id or
// a name.
func PlayerStatsHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := r.PathValue("ref")
		board, err := proc.Leaderboard(r.Context())
		if err != nil {
			internalError(w, "Failed to build leaderboard", err)
			return
		}
		standing, ok := board.Find(ref)
		if !ok {
			standing, ok = board.Search(ref)
		}
		if !ok {
			log.Debug("No standing for player reference", "ref", ref)
			writeMessage(w, http.StatusNotFound, "Player not found")
			return
		}
		writeJSON(w, http.StatusOK, standing)
	}
}
