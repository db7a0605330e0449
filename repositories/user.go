//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"note-lab/domain"
	"note-lab/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IUserRepository interface {
	Create(user domain.User) error
	FindByID(id uuid.UUID) (domain.User, error)
	FindByUsername(username string) (domain.User, error)
	SetLastCreatedNote(userID, noteID uuid.UUID) error
	AddSubscription(subscriberID, targetID uuid.UUID) ([]uuid.UUID, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

const (
	userIDPrefix   = "user:id:"
	userNamePrefix = "user:name:"
)

func userIDKey(id uuid.UUID) []byte {
	return []byte(userIDPrefix + id.String())
}

func userNameKey(username string) []byte {
	return []byte(userNamePrefix + username)
}

// userRecord is the on-disk shape of a user. Timestamps are stored as
// nanoseconds to survive the JSON round trip without precision loss.
type userRecord struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	PasswordHash  string   `json:"password_hash"`
	Subscriptions []string `json:"subscriptions"`
	LastNoteID    *string  `json:"last_note_id,omitempty"`
	CreatedAt     int64    `json:"created_at"`
}

// Create persists the user under two keys inside one transaction:
// "user:id:{uuid}" holds the record, "user:name:{username}" enforces
// username uniqueness and serves the reverse lookup.
func (u UserRepository) Create(user domain.User) error {
	data, err := marshalUser(user)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		nameKey := userNameKey(user.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return errors.ErrUsernameTaken
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(userIDKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(nameKey, []byte(user.ID.String()))
	})
}

func (u UserRepository) FindByID(id uuid.UUID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		found, err := readUser(txn, userIDKey(id))
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	return user, err
}

func (u UserRepository) FindByUsername(username string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userNameKey(username))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		var id uuid.UUID
		if err := item.Value(func(val []byte) error {
			parsed, err := uuid.Parse(string(val))
			id = parsed
			return err
		}); err != nil {
			return fmt.Errorf("corrupt username index for %q: %w", username, err)
		}
		found, err := readUser(txn, userIDKey(id))
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	return user, err
}

// SetLastCreatedNote advances the most-recent-note pointer, conditioned on
// the user existing. A missing user surfaces as ErrUserNotFound so the note
// workflow can run its compensating delete.
func (u UserRepository) SetLastCreatedNote(userID, noteID uuid.UUID) error {
	return u.db.Update(func(txn *badger.Txn) error {
		rec, err := readRecord(txn, userIDKey(userID))
		if err != nil {
			return err
		}
		rec.LastNoteID = lo.ToPtr(noteID.String())
		return writeRecord(txn, userIDKey(userID), rec)
	})
}

// AddSubscription appends targetID to the subscriber's set and returns the
// updated set. The read-check-append-write sequence runs inside a single
// badger transaction, which is the atomic add-to-set primitive the
// subscription graph relies on: concurrent writers on the same subscriber
// conflict at commit instead of losing updates.
func (u UserRepository) AddSubscription(subscriberID, targetID uuid.UUID) ([]uuid.UUID, error) {
	var updated []uuid.UUID
	err := u.db.Update(func(txn *badger.Txn) error {
		rec, err := readRecord(txn, userIDKey(subscriberID))
		if err != nil {
			return err
		}
		if lo.Contains(rec.Subscriptions, targetID.String()) {
			return errors.ErrAlreadySubscribed
		}
		rec.Subscriptions = append(rec.Subscriptions, targetID.String())
		if err := writeRecord(txn, userIDKey(subscriberID), rec); err != nil {
			return err
		}
		updated, err = parseIDs(rec.Subscriptions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func readRecord(txn *badger.Txn, key []byte) (userRecord, error) {
	var rec userRecord
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return rec, errors.ErrUserNotFound
	}
	if err != nil {
		return rec, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}

func writeRecord(txn *badger.Txn, key []byte, rec userRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(key, data)
}

func readUser(txn *badger.Txn, key []byte) (domain.User, error) {
	rec, err := readRecord(txn, key)
	if err != nil {
		return domain.User{}, err
	}
	return toUser(rec)
}

func marshalUser(user domain.User) ([]byte, error) {
	data, err := json.Marshal(fromUser(user))
	if err != nil {
		return nil, fmt.Errorf("marshal failed: %w", err)
	}
	return data, nil
}

func fromUser(user domain.User) userRecord {
	rec := userRecord{
		ID:           user.ID.String(),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Subscriptions: lo.Map(user.Subscriptions, func(id uuid.UUID, _ int) string {
			return id.String()
		}),
		CreatedAt: user.CreatedAt.UnixNano(),
	}
	if user.LastNoteID != nil {
		rec.LastNoteID = lo.ToPtr(user.LastNoteID.String())
	}
	return rec
}

func toUser(rec userRecord) (domain.User, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("corrupt user record: %w", err)
	}
	subs, err := parseIDs(rec.Subscriptions)
	if err != nil {
		return domain.User{}, fmt.Errorf("corrupt user record: %w", err)
	}
	user := domain.User{
		ID:            id,
		Username:      rec.Username,
		PasswordHash:  rec.PasswordHash,
		Subscriptions: subs,
		CreatedAt:     time.Unix(0, rec.CreatedAt).UTC(),
	}
	if rec.LastNoteID != nil {
		noteID, err := uuid.Parse(*rec.LastNoteID)
		if err != nil {
			return domain.User{}, fmt.Errorf("corrupt user record: %w", err)
		}
		user.LastNoteID = &noteID
	}
	return user, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
