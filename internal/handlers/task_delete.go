package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/services"
)

// TaskDeleter defines the interface that the task service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, taskID, userID int64) error
}

// NewDeleteTaskHandler returns an HTTP handler for task deletion.
// @Summary Delete a task
// @Description Removes the task if it belongs to the authenticated user
// @Tags tasks
// @Param id path int true "Task id"
// @Success 204 "Task deleted"
// @Failure 401 {object} handlers.ErrorResponse "Task owned by another user"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Router /tasks/{id} [delete]
// @Security BearerAuth
func NewDeleteTaskHandler(svc TaskDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), taskID, userID); err != nil {
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

		w.WriteHeader(http.StatusNoContent)
	}
}
