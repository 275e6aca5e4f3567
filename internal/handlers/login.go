package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/services"
)

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, int64, error)
}

// NewLoginHandler returns an HTTP handler for user login. Credentials are
// accepted as query or form parameters. Unknown email and wrong password
// stay distinguishable by status (404 vs 401).
// @Summary User login
// @Description Authenticate by email and password and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email query string true "User email"
// @Param password query string true "User password"
// @Success 200 {object} handlers.TokenResponse "Bearer token returned"
// @Failure 400 {object} handlers.ErrorResponse "Missing credentials"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect password or inactive user"
// @Failure 404 {object} handlers.ErrorResponse "Unknown email"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request")
			return
		}

		email := r.Form.Get("email")
		password := r.Form.Get("password")
		if email == "" || password == "" {
			writeDetail(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		token, userID, err := svc.Login(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeDetail(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeDetail(w, http.StatusUnauthorized, "Incorrect password")
			case errors.Is(err, services.ErrUserInactive):
				writeDetail(w, http.StatusUnauthorized, "User is inactive")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			UserID:      userID,
		})
	}
}
