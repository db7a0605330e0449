package repositories

import (
	"note-lab/domain"
	"note-lab/errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func someNote(owner uuid.UUID, title string, at time.Time) domain.Note {
	return domain.Note{
		ID:        uuid.New(),
		OwnerID:   owner,
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: at,
	}
}

func TestNoteRepository_Save(t *testing.T) {
	t.Run("should persist and read back a note with its analysis link", func(t *testing.T) {
		req := require.New(t)
		repo := NewNoteRepository(newTestDB(t))

		analysisID := uuid.New()
		note := someNote(uuid.New(), "Hello", time.Now().UTC())
		note.AnalysisID = &analysisID

		req.NoError(repo.Save(note))

		found, err := repo.FindByID(note.ID)
		req.NoError(err)
		req.Equal(note, found)
	})

	t.Run("should report not found for an unknown note", func(t *testing.T) {
		req := require.New(t)
		repo := NewNoteRepository(newTestDB(t))

		_, err := repo.FindByID(uuid.New())
		req.ErrorIs(err, errors.ErrNoteNotFound)
	})
}

func TestNoteRepository_FindByOwners(t *testing.T) {
	t.Run("should merge owners into one list in creation order", func(t *testing.T) {
		req := require.New(t)
		repo := NewNoteRepository(newTestDB(t))

		alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
		base := time.Now().UTC()

		first := someNote(bob, "First", base)
		second := someNote(alice, "Second", base.Add(time.Second))
		third := someNote(bob, "Third", base.Add(2*time.Second))
		unrelated := someNote(carol, "Unrelated", base.Add(time.Second))

		for _, note := range []domain.Note{third, unrelated, first, second} {
			req.NoError(repo.Save(note))
		}

		notes, err := repo.FindByOwners([]uuid.UUID{alice, bob})
		req.NoError(err)
		req.Equal([]domain.Note{first, second, third}, notes)
	})

	t.Run("should return nothing for owners without notes", func(t *testing.T) {
		req := require.New(t)
		repo := NewNoteRepository(newTestDB(t))

		notes, err := repo.FindByOwners([]uuid.UUID{uuid.New(), uuid.New()})
		req.NoError(err)
		req.Empty(notes)
	})
}

func TestNoteRepository_DeleteByID(t *testing.T) {
	t.Run("should remove the note and its owner index entry", func(t *testing.T) {
		req := require.New(t)
		repo := NewNoteRepository(newTestDB(t))

		note := someNote(uuid.New(), "Hello", time.Now().UTC())
		req.NoError(repo.Save(note))

		req.NoError(repo.DeleteByID(note.ID))

		_, err := repo.FindByID(note.ID)
		req.ErrorIs(err, errors.ErrNoteNotFound)

		notes, err := repo.FindByOwners([]uuid.UUID{note.OwnerID})
		req.NoError(err)
		req.Empty(notes)
	})

	t.Run("should treat deleting an absent note as a no-op", func(t *testing.T) {
		req := require.New(t)
		repo := NewNoteRepository(newTestDB(t))

		req.NoError(repo.DeleteByID(uuid.New()))

		note := someNote(uuid.New(), "Hello", time.Now().UTC())
		req.NoError(repo.Save(note))
		req.NoError(repo.DeleteByID(note.ID))
		req.NoError(repo.DeleteByID(note.ID))
	})
}
