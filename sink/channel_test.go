package sink

import (
	"context"
	"note-lab/domain/event"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestChannelSink_Publish(t *testing.T) {
	t.Run("should deliver events to the consumer channel", func(t *testing.T) {
		req := require.New(t)
		s := NewChannelSink(4)

		evt := event.NoteCreated{NoteID: uuid.New(), AuthorID: uuid.New(), Title: "Hello", At: time.Now().UTC()}
		req.NoError(s.Publish(context.Background(), evt))

		select {
		case got := <-s.Events:
			req.Equal(evt, got)
		default:
			t.Fatal("expected a buffered event")
		}
	})

	t.Run("should drop instead of blocking when the buffer is full", func(t *testing.T) {
		req := require.New(t)
		s := NewChannelSink(1)

		first := event.NoteCreated{NoteID: uuid.New()}
		second := event.NoteCreated{NoteID: uuid.New()}

		req.NoError(s.Publish(context.Background(), first))
		// Nobody is draining; this must return immediately without error.
		req.NoError(s.Publish(context.Background(), second))

		got := <-s.Events
		req.Equal(first, got)
		req.Empty(s.Events)
	})

	t.Run("should respect an already cancelled context on a full buffer", func(t *testing.T) {
		req := require.New(t)
		s := NewChannelSink(4)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Publish(ctx, event.NoteCreated{NoteID: uuid.New()})
		// Either outcome is fine for the publisher; it must not block.
		if err != nil {
			req.ErrorIs(err, context.Canceled)
		}
	})
}
