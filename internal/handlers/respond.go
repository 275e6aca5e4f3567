package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ssemenov2018/task-manager-api/internal/models"
)

// ErrorResponse is the error payload returned by every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error detail
	// default: Internal server error
	Detail string `json:"detail"`
}

// TokenResponse is returned by register and login.
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed bearer token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type, always "bearer"
	// default: bearer
	TokenType string `json:"token_type"`

	// Id of the authenticated user
	// default: 1
	UserID int64 `json:"user_id"`
}

// TaskResponse is the task record shape returned by the task endpoints.
// swagger:model TaskResponse
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func taskToResponse(task *models.TaskDB) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
