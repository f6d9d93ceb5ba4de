package handler

import (
	"net/http"

	"github.com/templui/goalsetter/internal/ctxkeys"
	"github.com/templui/goalsetter/internal/model"
	"github.com/templui/goalsetter/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalRequest struct {
	Text *string `json:"text"`
}

type goalResponse struct {
	Goal *model.Goal `json:"goal"`
}

type goalsResponse struct {
	Goals []*model.Goal `json:"goals"`
}

type goalIDResponse struct {
	ID string `json:"id"`
}

// List handles GET /api/goals
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) error {
	userID := ctxkeys.UserID(r.Context())

	goals, err := h.goalService.Goals(r.Context(), userID)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, goalsResponse{Goals: goals})
}

// Create handles POST /api/goals
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) error {
	userID := ctxkeys.UserID(r.Context())

	var req goalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		return err
	}

	var text string
	if req.Text != nil {
		text = *req.Text
	}

	goal, err := h.goalService.Create(r.Context(), userID, text)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, goalResponse{Goal: goal})
}

// Update handles PUT /api/goals/{id}. Only text is read from the body; any
// other field, owner included, is ignored.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) error {
	userID := ctxkeys.UserID(r.Context())
	goalID := r.PathValue("id")

	var req goalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		return err
	}

	goal, err := h.goalService.Update(r.Context(), userID, goalID, model.GoalUpdate{Text: req.Text})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, goalResponse{Goal: goal})
}

// Delete handles DELETE /api/goals/{id}
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	userID := ctxkeys.UserID(r.Context())
	goalID := r.PathValue("id")

	id, err := h.goalService.Delete(r.Context(), userID, goalID)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, goalIDResponse{ID: id})
}
