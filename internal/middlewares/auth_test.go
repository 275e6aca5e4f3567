package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ssemenov2018/task-manager-api/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		mockSetup      func(tok *MockTokener, users *MockActiveUserChecker)
		expectedCode   int
		expectedDetail string
		expectNext     bool
	}{
		{
			name: "success",
			mockSetup: func(tok *MockTokener, users *MockActiveUserChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 42}, nil)
				users.EXPECT().CheckActive(gomock.Any(), int64(42)).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name: "missing token",
			mockSetup: func(tok *MockTokener, users *MockActiveUserChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "authorization header missing",
		},
		{
			name: "invalid token",
			mockSetup: func(tok *MockTokener, users *MockActiveUserChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").
					Return(nil, errors.New("token is malformed"))
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "Invalid or expired token",
		},
		{
			name: "missing user id claim",
			mockSetup: func(tok *MockTokener, users *MockActiveUserChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{}, nil)
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "Invalid token payload",
		},
		{
			name: "user inactive",
			mockSetup: func(tok *MockTokener, users *MockActiveUserChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 42}, nil)
				users.EXPECT().CheckActive(gomock.Any(), int64(42)).Return(false, nil)
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "User not found or inactive",
		},
		{
			name: "user lookup error",
			mockSetup: func(tok *MockTokener, users *MockActiveUserChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 42}, nil)
				users.EXPECT().CheckActive(gomock.Any(), int64(42)).
					Return(false, errors.New("db error"))
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "User not found or inactive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockActiveUserChecker(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userID, ok := GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, int64(42), userID)
				w.WriteHeader(http.StatusOK)
			})

			mw := AuthMiddleware(mockTokener, mockUsers)

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			rr := httptest.NewRecorder()
			mw(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)

			if tt.expectedDetail != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedDetail, body["detail"])
			}
		})
	}
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := SetUserIDToContext(context.Background(), 7)

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
