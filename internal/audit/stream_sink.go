package audit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// StreamSink publishes audit events to a Redis Stream via XADD so other
// services (dashboards, compliance consumers) can tail them with
// XREADGROUP. The client is owned by the caller.
type StreamSink struct {
	client *redis.Client
	stream string
}

func NewStreamSink(client *redis.Client, stream string) *StreamSink {
	return &StreamSink{client: client, stream: stream}
}

func (s *StreamSink) Record(ctx context.Context, event string) error {
	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"event":     event,
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

func (s *StreamSink) Close() error { return nil }
