package metrics

import "github.com/prometheus/client_golang/prometheus"

// Login results used as the result label of the logins counter.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	MatchesRecorded         prometheus.Counter
	MatchesDeleted          prometheus.Counter
	PlayersCreated          prometheus.Counter
	PlayersDeleted          prometheus.Counter
	Logins                  *prometheus.CounterVec
	LeaderboardBuildSeconds prometheus.Histogram
	SlackNotifSent          prometheus.Counter
	SlackNotifFailed        prometheus.Counter
	DigestRuns              prometheus.Counter
	StartupTimeSeconds      prometheus.Gauge
}
