package list

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

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListMissions(ctx context.Context, actor *models.Actor, limit, offset int) ([]models.MissionView, error) {
	args := m.Called(ctx, actor, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]models.MissionView), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешный список с параметрами по умолчанию",
			query: "",
			setupMock: func(m *MockService) {
				views := []models.MissionView{
					{ID: "m-1", EstablishmentName: "Cafe du Nord"},
					{ID: "m-2", EstablishmentName: "Le Bistro"},
				}
				m.On("ListMissions", mock.Anything, (*models.Actor)(nil), 20, 0).Return(views, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name:  "явные limit и offset",
			query: "?limit=5&offset=10",
			setupMock: func(m *MockService) {
				m.On("ListMissions", mock.Anything, (*models.Actor)(nil), 5, 10).
					Return([]models.MissionView{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name:  "limit выше максимума откатывается к значению по умолчанию",
			query: "?limit=500",
			setupMock: func(m *MockService) {
				m.On("ListMissions", mock.Anything, (*models.Actor)(nil), 20, 0).
					Return([]models.MissionView{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name:  "отрицательный offset обнуляется",
			query: "?offset=-3",
			setupMock: func(m *MockService) {
				m.On("ListMissions", mock.Anything, (*models.Actor)(nil), 20, 0).
					Return([]models.MissionView{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name:  "ошибка сервиса",
			query: "",
			setupMock: func(m *MockService) {
				m.On("ListMissions", mock.Anything, (*models.Actor)(nil), 20, 0).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"internal service error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/missions"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
