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

type createMatchRequest struct {
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
	Score1    *int   `json:"score1"`
	Score2    *int   `json:"score2"`
}

func ListMatchesHandler(store ladder.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := store.ListMatches()
		if err != nil {
			internalError(w, "Failed to get matches from store", err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func CreateMatchHandler(store ladder.Store, proc *processor.Processor, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && (typeErr.Field == "score1" || typeErr.Field == "score2") {
				writeMessage(w, http.StatusBadRequest, "Scores must be numbers")
				return
			}
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		nm := ladder.NewMatch{Player1ID: req.Player1ID, Player2ID: req.Player2ID}
		if req.Score1 == nil || req.Score2 == nil {
			// Surface player errors first, like a full validation would.
			if err := (ladder.NewMatch{Player1ID: nm.Player1ID, Player2ID: nm.Player2ID, Score1: 1}).Validate(); err != nil {
				writeMessage(w, http.StatusBadRequest, validationMessage(err))
				return
			}
			writeMessage(w, http.StatusBadRequest, "Scores must be numbers")
			return
		}
		nm.Score1, nm.Score2 = *req.Score1, *req.Score2

		match, err := store.CreateMatch(nm)
		if ladder.IsValidationError(err) {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		if err != nil {
			internalError(w, "Create match error", err)
			return
		}
		m.IncMatchesRecorded()

		if err := proc.PublishMatchRecorded(r.Context(), *match, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce match", "error", err, "matchID", match.ID)
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func DeleteMatchHandler(store ladder.Store, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.DeleteMatch(r.PathValue("id"))
		if errors.Is(err, ladder.ErrMatchNotFound) {
			writeMessage(w, http.StatusNotFound, "Match not found")
			return
		}
		if err != nil {
			internalError(w, "Delete match error", err)
			return
		}
		m.IncMatchesDeleted()
		writeMessage(w, http.StatusOK, "Match deleted")
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, ladder.ErrMissingPlayer):
		return "Both players are required"
	case errors.Is(err, ladder.ErrSamePlayer):
		return "Players must be different"
	case errors.Is(err, ladder.ErrNegativeScore):
		return "Scores must be non-negative"
	case errors.Is(err, ladder.ErrDraw):
		return "Match cannot end in a draw"
	case errors.Is(err, ladder.ErrUnknownPlayer):
		return "Both players must exist and be active"
	case errors.Is(err, ladder.ErrInvalidName):
		return "Name must be at least 2 characters"
	}
	return err.Error()
}
