package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ssemenov2018/task-manager-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name:     "success",
			email:    "john@example.com",
			password: "secret123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("token-abc", int64(1), nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "token-abc", body["access_token"])
				assert.Equal(t, "bearer", body["token_type"])
				assert.Equal(t, float64(1), body["user_id"])
			},
		},
		{
			name:     "unknown email is 404",
			email:    "nobody@example.com",
			password: "secret123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "nobody@example.com", "secret123").
					Return("", int64(0), services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "wrong password is 401",
			email:    "john@example.com",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", int64(0), services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "inactive user is 401",
			email:    "dave@example.com",
			password: "secret123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "dave@example.com", "secret123").
					Return("", int64(0), services.ErrUserInactive)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing credentials",
			email:        "",
			password:     "",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "internal server error",
			email:    "john@example.com",
			password: "secret123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("", int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			q := url.Values{}
			if tt.email != "" {
				q.Set("email", tt.email)
			}
			if tt.password != "" {
				q.Set("password", tt.password)
			}
			req := httptest.NewRequest(http.MethodPost, "/auth/login?"+q.Encode(), nil)

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

func TestLoginHandler_FormBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), "form@example.com", "secret123").
		Return("token-form", int64(2), nil)

	handler := NewLoginHandler(mockSvc)

	form := url.Values{}
	form.Set("email", "form@example.com")
	form.Set("password", "secret123")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
