package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
)

// CurrentUserGetter resolves a user id to a user record.
type CurrentUserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserResponse is the user record shape returned by /auth/me.
// swagger:model UserResponse
type UserResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// NewMeHandler returns an HTTP handler for the current-user endpoint.
// @Summary Get current user
// @Description Returns the record of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Current user record"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(users CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to get current user", "user_id", userID, "err", err)
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			writeDetail(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}
}
