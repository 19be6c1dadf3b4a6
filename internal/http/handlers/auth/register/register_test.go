package register

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

	"github.com/asanbekov/missionboard/internal/models"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, username, password string, role models.Role) (string, error) {
	args := m.Called(ctx, email, username, password, role)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная регистрация исполнителя",
			requestBody: `{"username":"worker1","password":"secret123","email":"worker@example.com","role":"WORKER"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "worker@example.com", "worker1", "secret123", models.RoleWorker).
					Return("new-uid", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_uid":"new-uid"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    `{"username":`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "регистрация администратором запрещена",
			requestBody:    `{"username":"worker1","password":"secret123","email":"worker@example.com","role":"ADMIN"}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Role has unsupported value`,
		},
		{
			name:           "некорректный email",
			requestBody:    `{"username":"worker1","password":"secret123","email":"not-an-email","role":"WORKER"}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `Email`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: `{"username":"worker1","password":"secret123","email":"worker@example.com","role":"WORKER"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "worker@example.com", "worker1", "secret123", models.RoleWorker).
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
