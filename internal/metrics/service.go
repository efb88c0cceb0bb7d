package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		IngestRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_ingest_runs_total",
			Help: "The total number of times the export ingest has run.",
		}),
		TournamentsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_tournaments_parsed_total",
			Help: "The total number of tournament exports parsed successfully.",
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_parse_failures_total",
			Help: "The total number of exports rejected for a missing section marker.",
		}),
		StandingsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_standings_computed_total",
			Help: "The total number of standings tables computed.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scoreline_ingest_duration_seconds",
			Help:    "The duration of individual export ingests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreline_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreline_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.IngestRuns,
		s.TournamentsParsed,
		s.ParseFailures,
		s.StandingsComputed,
		s.IngestDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncIngestRuns() {
	s.IngestRuns.Inc()
}

func (s *Service) IncTournamentsParsed() {
	s.TournamentsParsed.Inc()
}

func (s *Service) IncParseFailures() {
	s.ParseFailures.Inc()
}

func (s *Service) IncStandingsComputed() {
	s.StandingsComputed.Inc()
}

func (s *Service) ObserveIngestDuration(duration float64) {
	s.IngestDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
