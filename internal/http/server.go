package http

import (
	"net/http"

	"github.com/mauv0809/fc-ladder/internal/auth"
	"github.com/mauv0809/fc-ladder/internal/config"
	"github.com/mauv0809/fc-ladder/internal/http/handlers"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/notifier"
	"github.com/mauv0809/fc-ladder/internal/processor"
	"github.com/mauv0809/fc-ladder/internal/pubsub"
)

func NewServer(store ladder.Store, authSvc *auth.Service, sessions *auth.Manager, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Auth:           authSvc,
		Sessions:       sessions,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	server.handler = Chain(server.Router, requestIDMiddleware, corsMiddleware(cfg.AllowedOrigins))
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(handler, paramsMiddleware, s.requireAdmin)
	cookie := handlers.SessionCookie{Name: s.Cfg.Session.CookieName, Secure: s.Cfg.Session.Secure}

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /api/auth/login", Chain(handlers.LoginHandler(s.Auth, s.Sessions, s.Metrics, cookie), paramsMiddleware))
	s.Router.Handle("POST /api/auth/logout", Chain(handlers.LogoutHandler(s.Sessions, cookie), paramsMiddleware))
	s.Router.Handle("GET /api/auth/me", Chain(handlers.MeHandler(s.Sessions, cookie), paramsMiddleware))

	s.Router.Handle("GET /api/players", Chain(handlers.ListPlayersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/players", Chain(handlers.CreatePlayerHandler(s.Store, s.Metrics), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("DELETE /api/players/{id}", Chain(handlers.DeletePlayerHandler(s.Store, s.Metrics), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("GET /api/players/{ref}/stats", Chain(handlers.PlayerStatsHandler(s.Processor), paramsMiddleware))

	s.Router.Handle("GET /api/matches", Chain(handlers.ListMatchesHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/matches", Chain(handlers.CreateMatchHandler(s.Store, s.Processor, s.Metrics), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("DELETE /api/matches/{id}", Chain(handlers.DeleteMatchHandler(s.Store, s.Metrics), paramsMiddleware, s.requireAdmin))

	s.Router.Handle("GET /api/leaderboard", Chain(handlers.LeaderboardHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /api/digest", Chain(handlers.DigestHandler(s.Processor), paramsMiddleware, s.requireAdmin))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Processor, s.Notifier), paramsMiddleware, s.verifySlackSignature))
	s.Router.Handle("POST /slack/command/player-stats", Chain(handlers.PlayerStatsCommandHandler(s.Processor, s.Notifier), paramsMiddleware, s.verifySlackSignature))

	s.Router.Handle("POST /pubsub/match-recorded", Chain(handlers.MatchRecordedHandler(s.Processor, s.pubsub), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
