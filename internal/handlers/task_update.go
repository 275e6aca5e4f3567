package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
	"github.com/ssemenov2018/task-manager-api/internal/services"
)

// TaskUpdater defines the interface that the task service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, taskID, userID int64, upd models.TaskUpdate) (*models.TaskDB, error)
}

// OptionalString is a nullable string field that remembers whether it was
// present in the JSON body at all. An explicit null sets Set with a nil
// Value; an omitted field leaves Set false.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// UpdateTaskRequest represents the JSON body for a partial task update.
// Omitted fields are left unchanged; an explicit null description clears it.
// swagger:model UpdateTaskRequest
type UpdateTaskRequest struct {
	// New title, 1-255 characters
	// default: Buy groceries
	Title *string `json:"title"`

	// New description, null to clear
	// default: Milk, eggs, bread
	Description OptionalString `json:"description"`

	// New completion state
	// default: true
	IsCompleted *bool `json:"is_completed"`
}

// NewUpdateTaskHandler returns an HTTP handler for partial task updates.
// @Summary Update a task
// @Description Applies the supplied fields to the task; omitted fields stay unchanged
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param updateTaskRequest body handlers.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} handlers.TaskResponse "Updated task record"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Task owned by another user"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{id} [put]
// @Security BearerAuth
func NewUpdateTaskHandler(svc TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		taskID, err := taskIDFromRequest(r)
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Task not found")
			return
		}

		var req UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Title != nil && !titleLengthOK(*req.Title) {
			writeDetail(w, http.StatusBadRequest, "Title must be between 1 and 255 characters")
			return
		}

		task, err := svc.Update(r.Context(), taskID, userID, models.TaskUpdate{
			Title:          req.Title,
			Description:    req.Description.Value,
			DescriptionSet: req.Description.Set,
			IsCompleted:    req.IsCompleted,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				writeDetail(w, http.StatusNotFound, "Task not found")
			case errors.Is(err, services.ErrTaskAccessDenied):
				writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, taskToResponse(task))
	}
}
