package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)

	tests := []struct {
		name         string
		withUserID   bool
		mockSetup    func(m *MockCurrentUserGetter)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name:       "success",
			withUserID: true,
			mockSetup: func(m *MockCurrentUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(&models.UserDB{
						ID:        1,
						Email:     "john@example.com",
						Username:  "john_doe",
						IsActive:  true,
						CreatedAt: now,
					}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(1), body["id"])
				assert.Equal(t, "john@example.com", body["email"])
				assert.Equal(t, "john_doe", body["username"])
				assert.Equal(t, true, body["is_active"])
				assert.Nil(t, body["updated_at"])
			},
		},
		{
			name:         "no user id in context",
			withUserID:   false,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "user vanished",
			withUserID: true,
			mockSetup: func(m *MockCurrentUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "store error",
			withUserID: true,
			mockSetup: func(m *MockCurrentUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := NewMockCurrentUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers)
			}

			handler := NewMeHandler(mockUsers)

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.withUserID {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 1))
			}

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
