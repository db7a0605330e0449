package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a short authored text record. Immutable after creation; the only
// delete path is the compensating cleanup when the owner cannot be confirmed.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
	// AnalysisID references the persisted sentiment analysis, if any.
	AnalysisID *uuid.UUID
}
