package service

import (
	"context"
	"fmt"

	"book-reader-server/internal/domain"
	apperrors "book-reader-server/pkg/errors"
)

// UserService implements the domain.UserService interface
type UserService struct {
	repo   domain.UserRepository
	logger domain.Logger
}

// NewUserService creates a new user service
func NewUserService(repo domain.UserRepository, logger domain.Logger) domain.UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Register ensures the users table exists and inserts the row. Returns the
// confirmation string the client displays.
func (s *UserService) Register(ctx context.Context, id, email string) (string, error) {
	if id == "" || email == "" {
		return "", apperrors.NewValidationError("id and email are required")
	}

	if err := s.repo.EnsureSchema(ctx); err != nil {
		return "", apperrors.NewDownstreamError(fmt.Sprintf("Failed to add user %s to db.", email), err)
	}

	if err := s.repo.Create(ctx, &domain.User{ID: id, Email: email}); err != nil {
		return "", apperrors.NewDownstreamError(fmt.Sprintf("Failed to add user %s to db.", email), err)
	}

	return fmt.Sprintf("Succesfully added %s to db.", email), nil
}

// Exists reports whether a user with the given id has been registered.
func (s *UserService) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, apperrors.NewValidationError("id is required")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, apperrors.NewDownstreamError("Failed to look up user in db.", err)
	}
	return exists, nil
}
