package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	"github.com/asanbekov/missionboard/internal/models"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SetPrivileges(ctx context.Context, updates map[string]string, category models.SettingCategory, updatedBy *string) error {
	args := m.Called(ctx, updates, category, updatedBy)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	adminUID := "admin-uid"
	admin := &models.Actor{
		Role:             models.RoleAdmin,
		ValidationStatus: models.ValidationValidated,
		UserUID:          adminUID,
	}

	tests := []struct {
		name           string
		requestBody    string
		actor          *models.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление",
			requestBody: `{"category":"WORKER","settings":{"worker_visibility_delay_hours":"24"}}`,
			actor:       admin,
			setupMock: func(m *MockService) {
				m.On("SetPrivileges", mock.Anything,
					map[string]string{"worker_visibility_delay_hours": "24"},
					models.CategoryWorker, &adminUID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"privileges updated"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    `{"category":`,
			actor:          admin,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "неизвестная категория",
			requestBody:    `{"category":"PIRATE","settings":{"x":"1"}}`,
			actor:          admin,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Category has unsupported value`,
		},
		{
			name:           "пустой набор настроек",
			requestBody:    `{"category":"GLOBAL","settings":{}}`,
			actor:          admin,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `Settings`,
		},
		{
			name:        "ошибка хранилища",
			requestBody: `{"category":"GLOBAL","settings":{"review_period_days":"14"}}`,
			actor:       admin,
			setupMock: func(m *MockService) {
				m.On("SetPrivileges", mock.Anything,
					map[string]string{"review_period_days": "14"},
					models.CategoryGlobal, &adminUID).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to update privileges"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/admin/privileges", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			if tt.actor != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.ActorKey, tt.actor))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
