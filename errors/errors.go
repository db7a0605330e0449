package errors

import "fmt"

// Base classes of failure. Specific sentinels wrap one of these so callers
// can classify with errors.Is without knowing every concrete cause.
var (
	ErrValidation = fmt.Errorf("validation failed")
	ErrNotFound   = fmt.Errorf("not found")
	ErrConflict   = fmt.Errorf("conflict")
)

var (
	ErrInvalidID        = fmt.Errorf("%w: malformed identifier", ErrValidation)
	ErrEmptyTitle       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrEmptyBody        = fmt.Errorf("%w: body is required", ErrValidation)
	ErrSelfSubscription = fmt.Errorf("%w: cannot subscribe to self", ErrValidation)
	ErrInvalidUsername  = fmt.Errorf("%w: invalid username", ErrValidation)
	ErrInvalidPassword  = fmt.Errorf("%w: invalid password", ErrValidation)

	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrNoteNotFound     = fmt.Errorf("%w: note", ErrNotFound)
	ErrAnalysisNotFound = fmt.Errorf("%w: sentiment analysis", ErrNotFound)

	ErrUsernameTaken     = fmt.Errorf("%w: username taken", ErrConflict)
	ErrAlreadySubscribed = fmt.Errorf("%w: already subscribed to this user", ErrConflict)
)

// ErrClassifierNotConfigured deliberately wraps no taxonomy base: a missing or
// failing sentiment provider is an unclassified collaborator failure.
var ErrClassifierNotConfigured = fmt.Errorf("sentiment provider is not configured")
