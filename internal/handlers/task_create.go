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

// TaskCreator defines the interface that the task service must implement.
type TaskCreator interface {
	Create(ctx context.Context, userID int64, title string, description *string) (*models.TaskDB, error)
}

// CreateTaskRequest represents the JSON body for task creation
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// Title, 1-255 characters
	// required: true
	// default: Buy groceries
	Title string `json:"title"`

	// Optional free-text description
	// default: Milk, eggs, bread
	Description *string `json:"description"`
}

// NewCreateTaskHandler returns an HTTP handler for task creation.
// @Summary Create a task
// @Description Creates a task owned by the authenticated user. is_completed defaults to false.
// @Tags tasks
// @Accept json
// @Produce json
// @Param createTaskRequest body handlers.CreateTaskRequest true "Task creation request"
// @Success 201 {object} handlers.TaskResponse "Created task"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tasks [post]
// @Security BearerAuth
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !titleLengthOK(req.Title) {
			writeDetail(w, http.StatusBadRequest, "Title must be between 1 and 255 characters")
			return
		}

		task, err := svc.Create(r.Context(), userID, req.Title, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskAccessDenied):
				writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			case errors.Is(err, services.ErrStoreIntegrity):
				writeDetail(w, http.StatusBadRequest, "Integrity error")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, taskToResponse(task))
	}
}
