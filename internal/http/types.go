package http

import (
	"net/http"

	"github.com/mauv0809/fc-ladder/internal/auth"
	"github.com/mauv0809/fc-ladder/internal/config"
	"github.com/mauv0809/fc-ladder/internal/ladder"
	"github.com/mauv0809/fc-ladder/internal/metrics"
	"github.com/mauv0809/fc-ladder/internal/notifier"
	"github.com/mauv0809/fc-ladder/internal/processor"
	"github.com/mauv0809/fc-ladder/internal/pubsub"
)

type Server struct {
	Store          ladder.Store
	Auth           *auth.Service
	Sessions       *auth.Manager
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	handler        http.Handler
}
