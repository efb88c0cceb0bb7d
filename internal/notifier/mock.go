package notifier

import (
	"sync"

	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendImportNotificationFunc func(t *tournament.Tournament, final []standings.Row, dryRun bool) (string, error)
	SendStandingsFunc          func(displayName string, rows []standings.Row, dryRun bool) error

	// Call records
	SendImportNotificationCalls []struct {
		Tournament *tournament.Tournament
		Final      []standings.Row
	}
	SendStandingsCalls []struct {
		DisplayName string
		Rows        []standings.Row
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendImportNotificationCalls = nil
	m.SendStandingsCalls = nil
}

func (m *Mock) SendImportNotification(t *tournament.Tournament, final []standings.Row, dryRun bool) (string, error) {
	m.mu.Lock()
	m.SendImportNotificationCalls = append(m.SendImportNotificationCalls, struct {
		Tournament *tournament.Tournament
		Final      []standings.Row
	}{t, final})
	m.mu.Unlock()
	if m.SendImportNotificationFunc != nil {
		return m.SendImportNotificationFunc(t, final, dryRun)
	}
	return "", nil
}

func (m *Mock) SendStandings(displayName string, rows []standings.Row, dryRun bool) error {
	m.mu.Lock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, struct {
		DisplayName string
		Rows        []standings.Row
	}{displayName, rows})
	m.mu.Unlock()
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(displayName, rows, dryRun)
	}
	return nil
}
