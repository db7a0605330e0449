package services

import (
	"context"
	"fmt"
	"log/slog"
	"note-lab/domain"
	"note-lab/errors"
	"note-lab/repositories"

	"github.com/google/uuid"
)

type IFeedService interface {
	GetFeed(ctx context.Context, userID string) ([]domain.Note, error)
}

// FeedService assembles the readable note set of a user: their own notes
// plus the notes of everyone they subscribed to, in creation order.
type FeedService struct {
	users repositories.IUserRepository
	notes repositories.INoteRepository
	log   *slog.Logger
}

func NewFeedService(users repositories.IUserRepository, notes repositories.INoteRepository, log *slog.Logger) IFeedService {
	return &FeedService{users: users, notes: notes, log: log}
}

// GetFeed fails with ErrUserNotFound for an unknown user; an empty slice is
// only ever returned for an existing user with an empty readable set.
func (s *FeedService) GetFeed(ctx context.Context, userID string) ([]domain.Note, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id %q", errors.ErrInvalidID, userID)
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	owners := append([]uuid.UUID{user.ID}, user.Subscriptions...)
	notes, err := s.notes.FindByOwners(owners)
	if err != nil {
		return nil, fmt.Errorf("querying feed for user %s: %w", userID, err)
	}
	return notes, nil
}
