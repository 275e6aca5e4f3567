package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ssemenov2018/task-manager-api/internal/middlewares"
	"github.com/ssemenov2018/task-manager-api/internal/models"
	"github.com/ssemenov2018/task-manager-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)
	desc := "Milk, eggs, bread"

	tests := []struct {
		name         string
		body         string
		withUserID   bool
		mockSetup    func(m *MockTaskCreator)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name:       "success",
			body:       `{"title":"Buy groceries","description":"Milk, eggs, bread"}`,
			withUserID: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Buy groceries", gomock.Any()).
					DoAndReturn(func(_ any, userID int64, title string, description *string) (*models.TaskDB, error) {
						assert.NotNil(t, description)
						assert.Equal(t, desc, *description)
						return &models.TaskDB{
							ID:          10,
							UserID:      userID,
							Title:       title,
							Description: description,
							CreatedAt:   now,
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(10), body["id"])
				assert.Equal(t, "Buy groceries", body["title"])
				assert.Equal(t, desc, body["description"])
				assert.Equal(t, false, body["is_completed"])
			},
		},
		{
			name:       "success without description",
			body:       `{"title":"Buy groceries"}`,
			withUserID: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Buy groceries", nil).
					Return(&models.TaskDB{ID: 11, UserID: 1, Title: "Buy groceries", CreatedAt: now}, nil)
			},
			expectedCode: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Nil(t, body["description"])
			},
		},
		{
			name:       "multibyte title within bounds",
			body:       `{"title":"` + strings.Repeat("я", 200) + `"}`,
			withUserID: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), strings.Repeat("я", 200), nil).
					Return(&models.TaskDB{ID: 13, UserID: 1, Title: strings.Repeat("я", 200), CreatedAt: now}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "empty title",
			body:         `{"title":""}`,
			withUserID:   true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "title too long",
			body:         `{"title":"` + strings.Repeat("a", 256) + `"}`,
			withUserID:   true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{not json`,
			withUserID:   true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no user id in context",
			body:         `{"title":"Buy groceries"}`,
			withUserID:   false,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "user vanished",
			body:       `{"title":"Buy groceries"}`,
			withUserID: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Buy groceries", nil).
					Return(nil, services.ErrTaskAccessDenied)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "integrity violation",
			body:       `{"title":"Buy groceries"}`,
			withUserID: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Buy groceries", nil).
					Return(nil, services.ErrStoreIntegrity)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "internal error",
			body:       `{"title":"Buy groceries"}`,
			withUserID: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Buy groceries", nil).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTaskCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateTaskHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
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
