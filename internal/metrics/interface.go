package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncIngestRuns()
	IncTournamentsParsed()
	IncParseFailures()
	IncStandingsComputed()
	ObserveIngestDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore persists durable counters across restarts, next to the
// tournament cache.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
