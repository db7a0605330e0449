//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=../mocks/mock_sink.go -package=mocks

// Package sink delivers domain events to interested parties.
// Delivery is fire-and-forget from the note workflow's point of view: a sink
// that fails or stalls must never fail the operation that produced the event.
package sink

import (
	"context"
	"note-lab/domain/event"
)

type INotificationSink interface {
	Publish(ctx context.Context, e event.DomainEvent) error
}
