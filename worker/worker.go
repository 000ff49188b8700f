package worker

import (
	"io"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Worker runs submitted jobs one after another on a single goroutine, in the order they were
// submitted. Jobs that panic are recovered and reported without stopping the worker.
type Worker struct {
	log   *logrus.Logger
	queue chan func()
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// New starts a new worker that can hold up to size pending jobs before Submit blocks.
func New(log *logrus.Logger, size int) *Worker {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if size < 0 {
		size = 0
	}

	w := &Worker{
		log:   log,
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit queues f to be run by the worker, blocking while the queue is full. It returns false
// if the worker was closed.
func (w *Worker) Submit(f func()) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	w.queue <- f
	return true
}

// TrySubmit queues f without blocking. It returns false if the queue is full or the worker was
// closed.
func (w *Worker) TrySubmit(f func()) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	select {
	case w.queue <- f:
		return true
	default:
		return false
	}
}

// Flush blocks until every job submitted before the call has finished.
func (w *Worker) Flush() {
	flushed := make(chan struct{})
	if !w.Submit(func() { close(flushed) }) {
		<-w.done
		return
	}
	<-flushed
}

// Close stops accepting jobs and waits for the pending ones to finish.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	for f := range w.queue {
		w.exec(f)
	}
}

func (w *Worker) exec(f func()) {
	defer func() {
		if v := recover(); v != nil {
			w.log.Errorf("worker job panicked: %v", v)
			sentry.CurrentHub().Clone().Recover(v)
		}
	}()
	f()
}
