package store

import (
	"context"

	"vibewealth/internal/db"
	"vibewealth/internal/models"

	"github.com/jmoiron/sqlx"
)

type GoalStore struct {
	db       DB
	txRunner db.TxRunner
}

func NewGoalStore(database DB, txRunner db.TxRunner) *GoalStore {
	return &GoalStore{db: database, txRunner: txRunner}
}

func (s *GoalStore) Create(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if goal.ID <= 0 {
		err := s.db.GetContext(ctx, &goal, `
			INSERT INTO goals (user_id, name, description, goal_type, goal_length)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, name, description, goal_type, goal_length
		`, goal.UserID, goal.Name, goal.Description, goal.Type, goal.Length)
		if err != nil {
			return models.Goal{}, translate(err)
		}
		return goal, nil
	}
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.createWithID(ctx, tx, &goal)
	})
	if err != nil {
		return models.Goal{}, translate(err)
	}
	return goal, nil
}

func (s *GoalStore) createWithID(ctx context.Context, tx Tx, goal *models.Goal) error {
	if err := tx.GetContext(ctx, goal, `
		INSERT INTO goals (id, user_id, name, description, goal_type, goal_length)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, description, goal_type, goal_length
	`, goal.ID, goal.UserID, goal.Name, goal.Description, goal.Type, goal.Length); err != nil {
		return err
	}
	return syncSequence(ctx, tx, "goals")
}

func (s *GoalStore) ListByUser(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows := []models.Goal{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, name, description, goal_type, goal_length
		FROM goals
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
