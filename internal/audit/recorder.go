package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Recorder makes a Sink fire-and-forget: Record enqueues and returns
// immediately, a background worker delivers. When the queue is full the
// event is dropped with a warning — audit logging must never block or
// fail the operation it is attached to.
type Recorder struct {
	sink   Sink
	events chan string
	logger *zap.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewRecorder(sink Sink, bufferSize int, logger *zap.Logger) *Recorder {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	r := &Recorder{
		sink:   sink,
		events: make(chan string, bufferSize),
		logger: logger,
	}

	r.wg.Add(1)
	go r.run()

	return r
}

// Record enqueues one event. Never blocks.
func (r *Recorder) Record(event string) {
	select {
	case r.events <- event:
	default:
		r.logger.Warn("Audit queue full, dropping event", zap.String("event", event))
	}
}

func (r *Recorder) run() {
	defer r.wg.Done()

	for event := range r.events {
		if err := r.sink.Record(context.Background(), event); err != nil {
			r.logger.Warn("Failed to record audit event",
				zap.String("event", event),
				zap.Error(err),
			)
		}
	}
}

// Close drains pending events and closes the underlying sink.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		close(r.events)
	})
	r.wg.Wait()
	return r.sink.Close()
}
