// Package domain contains the core concepts of the note system.
// Users, notes, and sentiment analyses are plain immutable values;
// all mutation goes through the service layer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered identity. Subscriptions is the set of users this
// user follows; the relation is one-directional and stored only here.
type User struct {
	ID            uuid.UUID
	Username      string
	PasswordHash  string
	Subscriptions []uuid.UUID
	// LastNoteID points at the most recently created note of this user.
	// Nil until the first note is committed.
	LastNoteID *uuid.UUID
	CreatedAt  time.Time
}

// SubscriptionView is the lightweight projection returned when listing
// subscriptions. It never carries credential material.
type SubscriptionView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
