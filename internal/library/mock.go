package library

import "sync"

// Mock is a mock implementation of the TournamentLibrary interface for
// testing. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	ListFilesFunc   func() ([]string, error)
	DisplayNameFunc func(file string) string
	ReadFunc        func(file string) ([]string, string, error)

	ReadCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) ListFiles() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFilesFunc != nil {
		return m.ListFilesFunc()
	}
	return nil, nil
}

func (m *Mock) DisplayName(file string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DisplayNameFunc != nil {
		return m.DisplayNameFunc(file)
	}
	return file
}

func (m *Mock) Read(file string) ([]string, string, error) {
	m.mu.Lock()
	m.ReadCalls = append(m.ReadCalls, file)
	m.mu.Unlock()
	if m.ReadFunc != nil {
		return m.ReadFunc(file)
	}
	return nil, "", nil
}
