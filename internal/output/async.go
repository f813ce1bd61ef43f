package output

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/chaz8081/keysession/internal/session"
)

// ErrClosed is returned by Async.Emit after Close.
var ErrClosed = errors.New("output: sink closed")

// Async queues records and delivers them to a wrapped sink on its own
// goroutine. When the queue is full the oldest record is dropped.
type Async struct {
	sink session.Sink
	size int

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []session.Record
	closed  bool
	dropped int

	done chan struct{}
}

// NewAsync starts delivering to sink with room for size queued records.
func NewAsync(sink session.Sink, size int) *Async {
	if size <= 0 {
		size = 64
	}
	a := &Async{
		sink: sink,
		size: size,
		done: make(chan struct{}),
	}
	a.cond = sync.NewCond(&a.mu)
	go a.run()
	return a
}

// Emit enqueues rec and returns without waiting for delivery.
func (a *Async) Emit(rec session.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	if len(a.queue) >= a.size {
		slog.Warn("[output] queue full, dropping oldest record", "id", a.queue[0].ID)
		a.queue = a.queue[1:]
		a.dropped++
	}
	a.queue = append(a.queue, rec)
	a.cond.Signal()
	return nil
}

// Dropped returns how many records were discarded because the queue was full.
func (a *Async) Dropped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dropped
}

// Close delivers what is still queued, then stops the worker.
// It is safe to call multiple times.
func (a *Async) Close() error {
	a.mu.Lock()
	a.closed = true
	a.cond.Broadcast()
	a.mu.Unlock()
	<-a.done
	return nil
}

func (a *Async) run() {
	defer close(a.done)
	for {
		a.mu.Lock()
		for len(a.queue) == 0 && !a.closed {
			a.cond.Wait()
		}
		if len(a.queue) == 0 {
			a.mu.Unlock()
			return
		}
		rec := a.queue[0]
		a.queue = a.queue[1:]
		a.mu.Unlock()

		if err := a.sink.Emit(rec); err != nil {
			slog.Error("[output] delivering record", "id", rec.ID, "error", err)
		}
	}
}
