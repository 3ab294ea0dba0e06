package testkit

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/bedjos/storefront/pkg/mail"
)

// MockMailer is a testify mock implementing mail.Sender. Unless an
// expectation is set with On("Send", ...), Send succeeds.
type MockMailer struct {
	mock.Mock

	mu   sync.Mutex
	sent []*mail.Message
	done chan struct{}
}

// NewMockMailer returns a mailer whose Sent channel receives once per Send.
func NewMockMailer() *MockMailer {
	return &MockMailer{done: make(chan struct{}, 16)}
}

func (m *MockMailer) Send(msg *mail.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	hasExpectations := len(m.ExpectedCalls) > 0
	m.mu.Unlock()

	var err error
	if hasExpectations {
		err = m.Called(msg).Error(0)
	}

	select {
	case m.done <- struct{}{}:
	default:
	}
	return err
}

// Sent is signalled after every Send.
func (m *MockMailer) Sent() <-chan struct{} { return m.done }

// Messages returns the messages passed to Send so far.
func (m *MockMailer) Messages() []*mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*mail.Message(nil), m.sent...)
}
