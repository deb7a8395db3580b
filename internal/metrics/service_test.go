package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncMatchesRecorded()
	s.IncMatchesRecorded()
	s.IncPlayersCreated()
	s.IncLogins(LoginSuccess)
	s.IncLogins(LoginFailure)
	s.IncLogins(LoginFailure)
	s.ObserveLeaderboardBuild(0.002)
	s.IncDigestRuns()

	body := scrape(t, reg)
	assert.Contains(t, body, "ladder_matches_recorded_total 2")
	assert.Contains(t, body, "ladder_matches_deleted_total 0")
	assert.Contains(t, body, "ladder_players_created_total 1")
	assert.Contains(t, body, `ladder_logins_total{result="success"} 1`)
	assert.Contains(t, body, `ladder_logins_total{result="failure"} 2`)
	assert.Contains(t, body, "ladder_leaderboard_build_duration_seconds_count 1")
	assert.Contains(t, body, "ladder_digest_runs_total 1")
}

func TestService_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewService(prometheus.NewRegistry())
		NewService(prometheus.NewRegistry())
	})
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.IncLogins(LoginFailure)
	m.IncLogins(LoginFailure)
	m.ObserveLeaderboardBuild(0.1)

	assert.Equal(t, 2, m.Logins(LoginFailure))
	assert.Equal(t, 0, m.Logins(LoginSuccess))
	assert.Equal(t, 1, m.LeaderboardBuilds())
}
