package sink

import (
	"context"
	"note-lab/domain/event"
)

// ChannelSink hands events to an in-process consumer through a buffered
// channel. When the buffer is full the event is dropped rather than blocking
// the publisher; backpressure here must not stall note creation.
type ChannelSink struct {
	Events chan event.DomainEvent
}

func NewChannelSink(bufferSize int) *ChannelSink {
	return &ChannelSink{Events: make(chan event.DomainEvent, bufferSize)}
}

func (s *ChannelSink) Publish(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
