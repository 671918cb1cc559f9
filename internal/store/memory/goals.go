package memory

import (
	"context"
	"sort"

	"vibewealth/internal/models"
	"vibewealth/internal/store"
)

type GoalStore struct {
	s *state
}

func (g *GoalStore) Create(_ context.Context, goal models.Goal) (models.Goal, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if _, ok := g.s.users[goal.UserID]; !ok {
		return models.Goal{}, store.ErrNotFound
	}
	if goal.ID > 0 {
		if _, exists := g.s.goals[goal.ID]; exists {
			return models.Goal{}, store.ErrDuplicate
		}
		g.s.claimID("goals", goal.ID)
	} else {
		goal.ID = g.s.nextID("goals")
	}
	g.s.goals[goal.ID] = goal
	return goal, nil
}

func (g *GoalStore) ListByUser(_ context.Context, userID int64) ([]models.Goal, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	out := []models.Goal{}
	for _, goal := range g.s.goals {
		if goal.UserID == userID {
			out = append(out, goal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
