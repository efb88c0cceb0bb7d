package tournament

import "sync"

// MockStore is a mock implementation of the TournamentStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertFunc                 func(t *Tournament) error
	UpdateProcessingStatusFunc func(file string, status ProcessingStatus) error
	GetForProcessingFunc       func() ([]*Tournament, error)
	GetFunc                    func(file string) (*Tournament, error)
	GetContentHashFunc         func(file string) (string, bool)
	ListFunc                   func() ([]*Tournament, error)

	// Call records
	UpsertCalls                 []*Tournament
	UpdateProcessingStatusCalls []struct {
		File   string
		Status ProcessingStatus
	}
	ClearCalls     int
	ClearFileCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Upsert(t *Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, t)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(t)
	}
	return nil
}

func (m *MockStore) UpdateProcessingStatus(file string, status ProcessingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateProcessingStatusCalls = append(m.UpdateProcessingStatusCalls, struct {
		File   string
		Status ProcessingStatus
	}{file, status})
	if m.UpdateProcessingStatusFunc != nil {
		return m.UpdateProcessingStatusFunc(file, status)
	}
	return nil
}

func (m *MockStore) GetForProcessing() ([]*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetForProcessingFunc != nil {
		return m.GetForProcessingFunc()
	}
	return nil, nil
}

func (m *MockStore) Get(file string) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(file)
	}
	return nil, nil
}

func (m *MockStore) GetContentHash(file string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetContentHashFunc != nil {
		return m.GetContentHashFunc(file)
	}
	return "", false
}

func (m *MockStore) List() ([]*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}

func (m *MockStore) ClearFile(file string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearFileCalls = append(m.ClearFileCalls, file)
}
