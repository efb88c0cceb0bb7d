package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

var _ PubSubClient = (*Mock)(nil)

// Mock is a mock implementation of the PubSubClient interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	ProjectID string

	SendMessageFunc func(topic string, data any) error

	SendMessageCalls []struct {
		Topic string
		Data  any
	}
}

// NewMock creates a new mock instance.
func NewMock(projectID string) *Mock {
	return &Mock{ProjectID: projectID}
}

func (m *Mock) SendMessage(topic string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = append(m.SendMessageCalls, struct {
		Topic string
		Data  any
	}{topic, data})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

func (m *Mock) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
