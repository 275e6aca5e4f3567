package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
	"github.com/ssemenov2018/task-manager-api/internal/services"
	"github.com/stretchr/testify/assert"
)

// taskRequest builds an authenticated request with the {id} route parameter set.
func taskRequest(method, target, id string, userID int64, body *string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	if userID > 0 {
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	}
	return req
}

func TestGetTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)

	tests := []struct {
		name         string
		taskID       string
		userID       int64
		mockSetup    func(m *MockTaskGetter)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name:   "success",
			taskID: "10",
			userID: 1,
			mockSetup: func(m *MockTaskGetter) {
				m.EXPECT().Get(gomock.Any(), int64(10), int64(1)).
					Return(&models.TaskDB{
						ID:          10,
						UserID:      1,
						Title:       "Buy groceries",
						IsCompleted: true,
						CreatedAt:   now,
					}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(10), body["id"])
				assert.Equal(t, "Buy groceries", body["title"])
				assert.Equal(t, true, body["is_completed"])
			},
		},
		{
			name:   "not found",
			taskID: "99",
			userID: 1,
			mockSetup: func(m *MockTaskGetter) {
				m.EXPECT().Get(gomock.Any(), int64(99), int64(1)).
					Return(nil, services.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "owned by another user",
			taskID: "10",
			userID: 2,
			mockSetup: func(m *MockTaskGetter) {
				m.EXPECT().Get(gomock.Any(), int64(10), int64(2)).
					Return(nil, services.ErrTaskAccessDenied)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "non-numeric id",
			taskID:       "abc",
			userID:       1,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "no user id in context",
			taskID:       "10",
			userID:       0,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "internal error",
			taskID: "10",
			userID: 1,
			mockSetup: func(m *MockTaskGetter) {
				m.EXPECT().Get(gomock.Any(), int64(10), int64(1)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTaskGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetTaskHandler(mockSvc)

			req := taskRequest(http.MethodGet, "/tasks/"+tt.taskID, tt.taskID, tt.userID, nil)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.checkBody != nil {
				var body map[string]any
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}
