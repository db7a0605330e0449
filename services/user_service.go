package services

import (
	"context"
	"fmt"
	"log/slog"
	"note-lab/auth"
	"note-lab/domain"
	"note-lab/errors"
	"note-lab/repositories"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type registerRequest struct {
	Username string `validate:"required,min=3,max=32"`
	Password string `validate:"required,min=8,max=72"`
}

type IUserService interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserService struct {
	users repositories.IUserRepository
	log   *slog.Logger
}

func NewUserService(users repositories.IUserRepository, log *slog.Logger) IUserService {
	return &UserService{users: users, log: log}
}

// Register creates a new identity with an empty subscription set. The
// password is hashed before it ever reaches the repository; a taken username
// surfaces as ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	req := registerRequest{Username: username, Password: password}
	if err := validate.Struct(req); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			if fieldErr.Field() == "Password" {
				return domain.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidPassword, fieldErr)
			}
		}
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidUsername, err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	user := domain.User{
		ID:            uuid.New(),
		Username:      username,
		PasswordHash:  hashed,
		Subscriptions: []uuid.UUID{},
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.users.Create(user); err != nil {
		return domain.User{}, err
	}

	s.log.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.users.FindByUsername(strings.TrimSpace(username))
}
