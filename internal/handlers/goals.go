package handlers

import (
	"net/http"
	"strconv"

	"vibewealth/internal/models"
	"vibewealth/internal/services"
)

// CreateGoal takes every field from the query string: goal_name, goal_id,
// and the optional goal_desc, goal_type and goal_length.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	in := services.GoalInput{
		UserID: userID,
		Name:   query.Get("goal_name"),
		Type:   models.GoalType(query.Get("goal_type")),
		Length: models.GoalLength(query.Get("goal_length")),
	}
	if raw := query.Get("goal_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, "goal_id must be a positive integer")
			return
		}
		in.ID = id
	}
	if query.Has("goal_desc") {
		desc := query.Get("goal_desc")
		in.Description = &desc
	}
	goal, err := h.goals.CreateGoal(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, goal)
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	goals, err := h.goals.ListGoals(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}
