//go:generate go run go.uber.org/mock/mockgen -source=note.go -destination=../mocks/mock_note_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"note-lab/domain"
	"note-lab/errors"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type INoteRepository interface {
	Save(note domain.Note) error
	FindByID(id uuid.UUID) (domain.Note, error)
	FindByOwners(owners []uuid.UUID) ([]domain.Note, error)
	DeleteByID(id uuid.UUID) error
}

type NoteRepository struct {
	db *badger.DB
}

func NewNoteRepository(db *badger.DB) INoteRepository {
	return &NoteRepository{db: db}
}

const (
	noteIDPrefix    = "note:id:"
	noteOwnerPrefix = "note:own:"
)

func noteIDKey(id uuid.UUID) []byte {
	return []byte(noteIDPrefix + id.String())
}

// noteOwnerKey builds the per-owner index entry. The 19-digit zero padded
// timestamp makes a prefix scan return notes in creation order, and the note
// ID disambiguates two writes landing on the same nanosecond.
func noteOwnerKey(ownerID uuid.UUID, at time.Time, noteID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s", noteOwnerPrefix, ownerID, at.UnixNano(), noteID))
}

type noteRecord struct {
	ID         string  `json:"id"`
	OwnerID    string  `json:"owner_id"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	CreatedAt  int64   `json:"created_at"`
	AnalysisID *string `json:"analysis_id,omitempty"`
}

// Save writes the note record and its owner index entry in one transaction.
func (n NoteRepository) Save(note domain.Note) error {
	data, err := json.Marshal(fromNote(note))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return n.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(noteIDKey(note.ID), data); err != nil {
			return err
		}
		return txn.Set(noteOwnerKey(note.OwnerID, note.CreatedAt, note.ID), []byte{})
	})
}

func (n NoteRepository) FindByID(id uuid.UUID) (domain.Note, error) {
	var note domain.Note
	err := n.db.View(func(txn *badger.Txn) error {
		rec, err := readNoteRecord(txn, id)
		if err != nil {
			return err
		}
		note, err = toNote(rec)
		return err
	})
	return note, err
}

// FindByOwners returns every note owned by one of the given users, sorted by
// creation time (ties broken by ID) so the feed order is deterministic.
func (n NoteRepository) FindByOwners(owners []uuid.UUID) ([]domain.Note, error) {
	var notes []domain.Note
	err := n.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for _, owner := range owners {
			prefix := []byte(noteOwnerPrefix + owner.String() + ":")
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				key := string(it.Item().Key())
				noteID, err := uuid.Parse(key[len(key)-36:])
				if err != nil {
					return fmt.Errorf("corrupt owner index key %q: %w", key, err)
				}
				rec, err := readNoteRecord(txn, noteID)
				if err != nil {
					return err
				}
				note, err := toNote(rec)
				if err != nil {
					return err
				}
				notes = append(notes, note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID.String() < notes[j].ID.String()
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

// DeleteByID removes the note and its index entry. Deleting an absent note is
// a no-op, which keeps the compensating cleanup in the note workflow
// retry-safe.
func (n NoteRepository) DeleteByID(id uuid.UUID) error {
	return n.db.Update(func(txn *badger.Txn) error {
		rec, err := readNoteRecord(txn, id)
		if stderrors.Is(err, errors.ErrNoteNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		note, err := toNote(rec)
		if err != nil {
			return err
		}
		if err := txn.Delete(noteIDKey(id)); err != nil {
			return err
		}
		return txn.Delete(noteOwnerKey(note.OwnerID, note.CreatedAt, note.ID))
	})
}

func readNoteRecord(txn *badger.Txn, id uuid.UUID) (noteRecord, error) {
	var rec noteRecord
	item, err := txn.Get(noteIDKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return rec, errors.ErrNoteNotFound
	}
	if err != nil {
		return rec, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}

func fromNote(note domain.Note) noteRecord {
	rec := noteRecord{
		ID:        note.ID.String(),
		OwnerID:   note.OwnerID.String(),
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt.UnixNano(),
	}
	if note.AnalysisID != nil {
		rec.AnalysisID = lo.ToPtr(note.AnalysisID.String())
	}
	return rec
}

func toNote(rec noteRecord) (domain.Note, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("corrupt note record: %w", err)
	}
	ownerID, err := uuid.Parse(rec.OwnerID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("corrupt note record: %w", err)
	}
	note := domain.Note{
		ID:        id,
		OwnerID:   ownerID,
		Title:     rec.Title,
		Body:      rec.Body,
		CreatedAt: time.Unix(0, rec.CreatedAt).UTC(),
	}
	if rec.AnalysisID != nil {
		analysisID, err := uuid.Parse(*rec.AnalysisID)
		if err != nil {
			return domain.Note{}, fmt.Errorf("corrupt note record: %w", err)
		}
		note.AnalysisID = &analysisID
	}
	return note, nil
}
