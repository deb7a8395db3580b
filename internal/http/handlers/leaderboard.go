package handlers

import (
	"net/http"

	"github.com/mauv0809/fc-ladder/internal/processor"
)

func LeaderboardHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := proc.Leaderboard(r.Context())
		if err != nil {
			internalError(w, "Failed to build leaderboard", err)
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

func DigestHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := proc.PostDigest(r.Context(), IsDryRunFromContext(r)); err != nil {
			internalError(w, "Failed to post digest", err)
			return
		}
		writeMessage(w, http.StatusOK, "Digest posted")
	}
}
