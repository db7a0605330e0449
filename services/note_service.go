package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"note-lab/classifier"
	"note-lab/domain"
	"note-lab/domain/event"
	"note-lab/errors"
	"note-lab/repositories"
	"note-lab/sink"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateOutcome makes the note workflow's partial-failure handling
// observable: callers and tests can distinguish a note that never existed
// from one that was written and then retracted.
type CreateOutcome int

const (
	// OutcomeRejected means nothing was persisted as a note.
	OutcomeRejected CreateOutcome = iota
	// OutcomeCreated means the note is committed and the owner pointer advanced.
	OutcomeCreated
	// OutcomeReverted means the note was written, the owner could not be
	// confirmed, and the compensating delete ran.
	OutcomeReverted
)

func (o CreateOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeReverted:
		return "reverted"
	default:
		return "rejected"
	}
}

type INoteService interface {
	CreateNote(ctx context.Context, authorID, title, body string) (domain.Note, CreateOutcome, error)
	GetNoteByID(ctx context.Context, noteID string) (domain.Note, *domain.SentimentAnalysis, error)
}

type NoteService struct {
	notes         repositories.INoteRepository
	users         repositories.IUserRepository
	sentiments    repositories.ISentimentRepository
	classifier    classifier.ISentimentClassifier
	sink          sink.INotificationSink
	log           *slog.Logger
	notifyTimeout time.Duration
}

func NewNoteService(
	notes repositories.INoteRepository,
	users repositories.IUserRepository,
	sentiments repositories.ISentimentRepository,
	sentimentClassifier classifier.ISentimentClassifier,
	notificationSink sink.INotificationSink,
	log *slog.Logger,
	notifyTimeout time.Duration,
) INoteService {
	return &NoteService{
		notes:         notes,
		users:         users,
		sentiments:    sentiments,
		classifier:    sentimentClassifier,
		sink:          notificationSink,
		log:           log,
		notifyTimeout: notifyTimeout,
	}
}

// CreateNote runs the full creation workflow:
// validate, classify, persist note, advance the owner pointer, notify.
// Classification happens before the note is durably linked to an owner so a
// half-created note can be retracted with a single compensating delete.
func (s *NoteService) CreateNote(ctx context.Context, authorID, title, body string) (domain.Note, CreateOutcome, error) {
	// 1. Validation: no side effects past this block.
	ownerID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.Note{}, OutcomeRejected, fmt.Errorf("%w: author id %q", errors.ErrInvalidID, authorID)
	}
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" {
		return domain.Note{}, OutcomeRejected, errors.ErrEmptyTitle
	}
	if body == "" {
		return domain.Note{}, OutcomeRejected, errors.ErrEmptyBody
	}

	// 2. Classification. A provider failure propagates untouched, without
	// retries and before anything is persisted.
	analysis, err := s.classifier.Classify(ctx, body)
	if err != nil {
		return domain.Note{}, OutcomeRejected, fmt.Errorf("classifying note body: %w", err)
	}
	if err := s.sentiments.Store(analysis); err != nil {
		return domain.Note{}, OutcomeRejected, fmt.Errorf("storing sentiment analysis: %w", err)
	}

	// 3. Persist the note, referencing the stored analysis.
	note := domain.Note{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      title,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
		AnalysisID: &analysis.ID,
	}
	if err := s.notes.Save(note); err != nil {
		return domain.Note{}, OutcomeRejected, fmt.Errorf("storing note: %w", err)
	}

	// 4./5. Advance the owner pointer; on failure retract the note. The
	// delete is best-effort: if it fails too, the orphan is logged and the
	// original failure still wins.
	if err := s.users.SetLastCreatedNote(ownerID, note.ID); err != nil {
		if delErr := s.notes.DeleteByID(note.ID); delErr != nil {
			s.log.Error("Compensating delete failed, orphan note left behind",
				"note_id", note.ID, "error", delErr)
		}
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return domain.Note{}, OutcomeReverted, fmt.Errorf("author %s: %w", authorID, errors.ErrUserNotFound)
		}
		return domain.Note{}, OutcomeReverted, fmt.Errorf("updating owner pointer: %w", err)
	}

	// 6. Fire-and-forget notification with its own deadline; a sink failure
	// is logged and never fails the creation.
	evt := event.NoteCreated{NoteID: note.ID, AuthorID: ownerID, Title: note.Title, At: note.CreatedAt}
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.sink.Publish(notifyCtx, evt); err != nil {
			s.log.Error("Failed to publish note created event", "note_id", evt.NoteID, "error", err)
		}
	}()

	return note, OutcomeCreated, nil
}

// GetNoteByID resolves a note and attaches its sentiment analysis when one is
// linked. A missing linked analysis is not an error; the note simply comes
// back bare.
func (s *NoteService) GetNoteByID(ctx context.Context, noteID string) (domain.Note, *domain.SentimentAnalysis, error) {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return domain.Note{}, nil, fmt.Errorf("%w: note id %q", errors.ErrInvalidID, noteID)
	}

	note, err := s.notes.FindByID(id)
	if err != nil {
		return domain.Note{}, nil, err
	}
	if note.AnalysisID == nil {
		return note, nil, nil
	}

	analysis, err := s.sentiments.FindByID(*note.AnalysisID)
	if stderrors.Is(err, errors.ErrAnalysisNotFound) {
		s.log.Debug("Note references a missing sentiment analysis", "note_id", note.ID)
		return note, nil, nil
	}
	if err != nil {
		return domain.Note{}, nil, err
	}
	return note, &analysis, nil
}
