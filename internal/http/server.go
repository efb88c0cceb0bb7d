package http

import (
	"net/http"

	"github.com/tvalik/scoreline/internal/config"
	"github.com/tvalik/scoreline/internal/ingest"
	"github.com/tvalik/scoreline/internal/library"
	"github.com/tvalik/scoreline/internal/metrics"
	"github.com/tvalik/scoreline/internal/notifier"
	"github.com/tvalik/scoreline/internal/pubsub"
	"github.com/tvalik/scoreline/internal/tournament"
)

func NewServer(store tournament.TournamentStore, lib library.TournamentLibrary, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, ingestor *ingest.Ingestor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Library:        lib,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Ingestor:       ingestor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments", Chain(s.ListTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments/details", Chain(s.TournamentDetailsHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments/course", Chain(s.CourseHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments/course.csv", Chain(s.CourseCSVHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments/standings.csv", Chain(s.StandingsCSVHandler(), paramsMiddleware))
	s.Router.Handle("/ingest", Chain(s.IngestHandler(), paramsMiddleware))
	s.Router.Handle("/notify-standings", Chain(s.NotifyStandingsHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
