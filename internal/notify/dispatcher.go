package notify

import (
	"log"
	"sync"
)

// Dispatcher fans notifications out to worker goroutines over a bounded
// queue. Delivery is at-most-once and best effort: a full queue drops the
// notification, a failed send is logged and not retried. Senders never block
// the caller's success path.
type Dispatcher struct {
	sender Sender
	jobs   chan Notification
	wg     sync.WaitGroup
	once   sync.Once
}

// NewDispatcher starts the worker pool. Close must be called on shutdown to
// drain in-flight notifications.
func NewDispatcher(sender Sender, queueSize, workers int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	d := &Dispatcher{
		sender: sender,
		jobs:   make(chan Notification, queueSize),
	}
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

var _ Queue = (*Dispatcher)(nil)

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.jobs {
		if err := d.sender.Send(n); err != nil {
			log.Printf("notification to %s failed: %v", n.To, err)
		}
	}
}

// Enqueue hands a notification to the workers without blocking. It reports
// false when the queue is full and the notification was dropped.
func (d *Dispatcher) Enqueue(n Notification) bool {
	select {
	case d.jobs <- n:
		return true
	default:
		return false
	}
}

// Close stops accepting work and waits for the workers to finish the queue.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
