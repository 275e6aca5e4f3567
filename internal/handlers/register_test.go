package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ssemenov2018/task-manager-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name: "success",
			body: RegisterRequest{Email: "john@example.com", Username: "john_doe", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
					Return("token-abc", int64(1), nil)
			},
			expectedCode: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "token-abc", body["access_token"])
				assert.Equal(t, "bearer", body["token_type"])
				assert.Equal(t, float64(1), body["user_id"])
			},
		},
		{
			name: "duplicate email",
			body: RegisterRequest{Email: "alice@example.com", Username: "alice", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "secret123").
					Return("", int64(0), services.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, services.ErrEmailAlreadyExists.Error(), body["detail"])
			},
		},
		{
			name: "duplicate username",
			body: RegisterRequest{Email: "bob@example.com", Username: "alice", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "alice", "secret123").
					Return("", int64(0), services.ErrUsernameAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, services.ErrUsernameAlreadyExists.Error(), body["detail"])
			},
		},
		{
			name: "multibyte username and password within bounds",
			body: RegisterRequest{Email: "vanya@example.com", Username: strings.Repeat("я", 100), Password: "пароль12"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "vanya@example.com", strings.Repeat("я", 100), "пароль12").
					Return("token-def", int64(2), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "password too short",
			body:         RegisterRequest{Email: "bob@example.com", Username: "bob", Password: "short"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid email",
			body:         RegisterRequest{Email: "not-an-email", Username: "bob", Password: "secret123"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "username too short",
			body:         RegisterRequest{Email: "bob@example.com", Username: "ab", Password: "secret123"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			body: RegisterRequest{Email: "eve@example.com", Username: "eve_user", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "eve@example.com", "eve_user", "secret123").
					Return("", int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(bodyBytes))
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
