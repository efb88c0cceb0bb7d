package ingest

import (
	"github.com/tvalik/scoreline/internal/metrics"
	"github.com/tvalik/scoreline/internal/pubsub"
)

// Ingestor handles the business logic of importing and processing tournaments.
type Ingestor struct {
	library  Library
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}
