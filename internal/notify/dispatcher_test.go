package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingSender captures delivered notifications; an optional gate blocks
// workers so queue-full behavior can be exercised deterministically.
type recordingSender struct {
	mu      sync.Mutex
	sent    []Notification
	started chan struct{}
	gate    chan struct{}
	errOn   string
}

func (s *recordingSender) Send(n Notification) error {
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.To == s.errOn {
		return errors.New("smtp unreachable")
	}
	s.sent = append(s.sent, n)
	return nil
}

func (s *recordingSender) delivered() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestDispatcher_DeliversAll(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 16, 2)

	for i := 0; i < 5; i++ {
		ok := d.Enqueue(Notification{To: "user@x.com", Subject: "s", Body: "b"})
		assert.True(t, ok)
	}
	d.Close()

	assert.Len(t, sender.delivered(), 5)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{}, 2)
	sender := &recordingSender{gate: gate, started: started}
	d := NewDispatcher(sender, 1, 1)

	// First occupies the worker, second fills the queue; the third has nowhere to go.
	assert.True(t, d.Enqueue(Notification{To: "1@x.com"}))
	<-started
	assert.True(t, d.Enqueue(Notification{To: "2@x.com"}))
	assert.False(t, d.Enqueue(Notification{To: "3@x.com"}))

	close(gate)
	d.Close()

	assert.Len(t, sender.delivered(), 2)
}

func TestDispatcher_SendFailureDoesNotStopWorkers(t *testing.T) {
	sender := &recordingSender{errOn: "bad@x.com"}
	d := NewDispatcher(sender, 16, 1)

	assert.True(t, d.Enqueue(Notification{To: "bad@x.com"}))
	assert.True(t, d.Enqueue(Notification{To: "good@x.com"}))
	d.Close()

	delivered := sender.delivered()
	assert.Len(t, delivered, 1)
	assert.Equal(t, "good@x.com", delivered[0].To)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, 1, 1)
	d.Close()
	assert.NotPanics(t, func() { d.Close() })
}
