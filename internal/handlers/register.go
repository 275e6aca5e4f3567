package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/services"
)

// Registerer defines the interface that the auth service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password string) (string, int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with unique email and username and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.TokenResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Duplicate email or username / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if detail, ok := validateRegister(req); !ok {
			writeDetail(w, http.StatusBadRequest, detail)
			return
		}

		token, userID, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists),
				errors.Is(err, services.ErrUsernameAlreadyExists):
				writeDetail(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			UserID:      userID,
		})
	}
}

func validateRegister(req RegisterRequest) (string, bool) {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return "Invalid email address", false
	}
	if n := utf8.RuneCountInString(req.Username); n < 3 || n > 100 {
		return "Username must be between 3 and 100 characters", false
	}
	if utf8.RuneCountInString(req.Password) < 8 {
		return "Password must be at least 8 characters", false
	}
	return "", true
}
