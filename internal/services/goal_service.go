package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vibewealth/internal/models"
	"vibewealth/internal/store"
	"vibewealth/internal/validator"
)

type GoalService struct {
	users UserRepository
	goals GoalRepository
}

func NewGoalService(users UserRepository, goals GoalRepository) *GoalService {
	return &GoalService{users: users, goals: goals}
}

type GoalInput struct {
	UserID      int64
	ID          int64
	Name        string
	Description *string
	Type        models.GoalType
	Length      models.GoalLength
}

func (s *GoalService) CreateGoal(ctx context.Context, in GoalInput) (models.Goal, error) {
	if _, err := requireUser(ctx, s.users, in.UserID); err != nil {
		return models.Goal{}, err
	}
	if err := validator.ValidateName(in.Name); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if in.ID < 0 {
		return models.Goal{}, fmt.Errorf("%w: goal id must be positive", ErrInvalidInput)
	}
	if in.Type != "" && !in.Type.Valid() {
		return models.Goal{}, fmt.Errorf("%w: unknown goal type %q", ErrInvalidInput, in.Type)
	}
	if in.Length != "" && !in.Length.Valid() {
		return models.Goal{}, fmt.Errorf("%w: unknown goal length %q", ErrInvalidInput, in.Length)
	}
	description := in.Description
	if description != nil && strings.TrimSpace(*description) == "" {
		description = nil
	}
	goal, err := s.goals.Create(ctx, models.Goal{
		ID:          in.ID,
		UserID:      in.UserID,
		Name:        strings.TrimSpace(in.Name),
		Description: description,
		Type:        in.Type,
		Length:      in.Length,
	})
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return models.Goal{}, ErrDuplicateGoal
	case errors.Is(err, store.ErrNotFound):
		return models.Goal{}, ErrUserNotFound
	}
	return goal, err
}

func (s *GoalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	if _, err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	return s.goals.ListByUser(ctx, userID)
}
