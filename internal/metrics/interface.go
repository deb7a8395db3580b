package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncMatchesDeleted()
	IncPlayersCreated()
	IncPlayersDeleted()
	IncLogins(result string)
	ObserveLeaderboardBuild(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncDigestRuns()
	SetStartupTime(duration float64)
}
