// Package event defines the domain events emitted by the note workflow.
// Events are facts: they describe something that already happened and are
// delivered to the notification sink on a best-effort basis.
package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event the sink can carry.
type DomainEvent interface {
	Name() string
}

// NoteCreated is published after a note has been durably committed and its
// owner pointer advanced.
type NoteCreated struct {
	NoteID   uuid.UUID `json:"note_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
	At       time.Time `json:"at"`
}

func (NoteCreated) Name() string {
	return "note:created"
}
