package audit

import "context"

// Sink receives human-readable audit event strings: registrations, vitals
// ingestion, alert trigger/non-trigger outcomes. Sinks may fail; callers
// on the write path never depend on the outcome (see Recorder).
type Sink interface {
	Record(ctx context.Context, event string) error
	Close() error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(_ context.Context, _ string) error { return nil }
func (NopSink) Close() error                             { return nil }
