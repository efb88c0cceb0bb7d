package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	IngestRunsCount        int
	TournamentsParsedCount int
	ParseFailuresCount     int
	StandingsComputedCount int
	IngestDurations        []float64
	SlackNotifSentCount    int
	SlackNotifFailedCount  int
	StartupTimes           []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncIngestRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IngestRunsCount++
}

func (m *Mock) IncTournamentsParsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TournamentsParsedCount++
}

func (m *Mock) IncParseFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParseFailuresCount++
}

func (m *Mock) IncStandingsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsComputedCount++
}

func (m *Mock) ObserveIngestDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IngestDurations = append(m.IngestDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
