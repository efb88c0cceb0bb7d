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

type Server struct {
	Store          tournament.TournamentStore
	Library        library.TournamentLibrary
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Ingestor       *ingest.Ingestor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
