package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
)

// TaskLister defines the interface that the task service must implement.
type TaskLister interface {
	List(ctx context.Context, userID int64, skip, limit int) ([]models.TaskDB, error)
}

// NewListTasksHandler returns an HTTP handler for listing the caller's tasks.
// @Summary List tasks
// @Description Returns the tasks owned by the authenticated user, ordered by id ascending
// @Tags tasks
// @Produce json
// @Param skip query int false "Number of tasks to skip" default(0) minimum(0)
// @Param limit query int false "Maximum number of tasks to return" default(100) minimum(1) maximum(100)
// @Success 200 {array} handlers.TaskResponse "Task records"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tasks [get]
// @Security BearerAuth
func NewListTasksHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		skip, limit, err := parsePagination(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		tasks, err := svc.List(r.Context(), userID, skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]TaskResponse, 0, len(tasks))
		for i := range tasks {
			resp = append(resp, taskToResponse(&tasks[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// parsePagination reads skip and limit query parameters, defaulting to
// 0 and 100. skip must be >= 0, limit within [1, 100].
func parsePagination(r *http.Request) (int, int, error) {
	skip, limit := 0, 100

	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, errInvalidPagination
		}
		skip = n
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return 0, 0, errInvalidPagination
		}
		limit = n
	}

	return skip, limit, nil
}
