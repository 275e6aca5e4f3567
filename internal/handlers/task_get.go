package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
	"github.com/ssemenov2018/task-manager-api/internal/services"
)

// TaskGetter defines the interface that the task service must implement.
type TaskGetter interface {
	Get(ctx context.Context, taskID, userID int64) (*models.TaskDB, error)
}

// NewGetTaskHandler returns an HTTP handler for fetching a single task.
// @Summary Get a task
// @Description Returns the task if it belongs to the authenticated user
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} handlers.TaskResponse "Task record"
// @Failure 401 {object} handlers.ErrorResponse "Task owned by another user"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{id} [get]
// @Security BearerAuth
func NewGetTaskHandler(svc TaskGetter) http.HandlerFunc {
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

		task, err := svc.Get(r.Context(), taskID, userID)
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
