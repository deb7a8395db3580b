package handlers

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/processor"
	"github.com/mauv0809/fc-ladder/internal/pubsub"
)

// MatchRecordedHandler receives match-recorded events from a Pub/Sub push
// subscription. pubsubClient may be nil when Pub/Sub is not configured.
func MatchRecordedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match recorded message", "body", string(bodyBytes))

		env, rawData, err := pubsub.ParsePushEnvelope(bodyBytes)
		if err != nil {
			log.Error("Failed to parse push envelope", "error", err)
			http.Error(w, "Invalid push envelope", http.StatusBadRequest)
			return
		}

		var match ladder.Match
		if pubsubClient != nil {
			err = pubsubClient.ProcessMessage(rawData, &match)
		} else {
			err = pubsub.Decode(rawData, &match)
		}
		if err != nil || match.ID == "" {
			log.Error("Failed to decode match", "error", err, "messageID", env.Message.MessageID)
			http.Error(w, "Invalid match payload", http.StatusBadRequest)
			return
		}

		if err := proc.HandleMatchRecorded(r.Context(), match, IsDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to handle match", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
