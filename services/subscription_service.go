package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"note-lab/domain"
	"note-lab/errors"
	"note-lab/repositories"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	Subscribe(ctx context.Context, subscriberID, targetID string) ([]uuid.UUID, error)
	GetSubscriptions(ctx context.Context, userID string) ([]domain.SubscriptionView, error)
}

// SubscriptionService mutates the directed follower relation between two
// users. The edge lives only on the subscriber's record.
type SubscriptionService struct {
	users repositories.IUserRepository
	log   *slog.Logger
}

func NewSubscriptionService(users repositories.IUserRepository, log *slog.Logger) ISubscriptionService {
	return &SubscriptionService{users: users, log: log}
}

// Subscribe validates fail-fast, first violation wins: identifier format,
// self-subscription, subscriber existence, target existence. The duplicate
// edge check happens last, inside the repository's atomic append, so a racing
// duplicate cannot slip through between check and write.
func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberID, targetID string) ([]uuid.UUID, error) {
	subscriber, err := uuid.Parse(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("%w: subscriber id %q", errors.ErrInvalidID, subscriberID)
	}
	target, err := uuid.Parse(targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: target id %q", errors.ErrInvalidID, targetID)
	}
	if subscriber == target {
		return nil, errors.ErrSelfSubscription
	}

	if _, err := s.users.FindByID(subscriber); err != nil {
		return nil, fmt.Errorf("subscriber %s: %w", subscriberID, err)
	}
	if _, err := s.users.FindByID(target); err != nil {
		return nil, fmt.Errorf("subscription target %s: %w", targetID, err)
	}

	updated, err := s.users.AddSubscription(subscriber, target)
	if err != nil {
		return nil, err
	}
	s.log.Info("Subscription created", "subscriber", subscriber, "target", target)
	return updated, nil
}

// GetSubscriptions resolves the subscription set to lightweight views
// carrying id and username only. Dangling references are skipped, not fatal.
func (s *SubscriptionService) GetSubscriptions(ctx context.Context, userID string) ([]domain.SubscriptionView, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id %q", errors.ErrInvalidID, userID)
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	views := make([]domain.SubscriptionView, 0, len(user.Subscriptions))
	for _, subID := range user.Subscriptions {
		sub, err := s.users.FindByID(subID)
		if stderrors.Is(err, errors.ErrUserNotFound) {
			s.log.Warn("Skipping dangling subscription reference", "user", id, "target", subID)
			continue
		}
		if err != nil {
			return nil, err
		}
		views = append(views, domain.SubscriptionView{ID: sub.ID, Username: sub.Username})
	}
	return views, nil
}
