package check

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	"github.com/asanbekov/missionboard/internal/models"
	"github.com/asanbekov/missionboard/internal/services/usagelimit"
)

// MockService реализует интерфейс check.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CheckDailyLimit(ctx context.Context, userUID string, lt models.LimitType) (*usagelimit.Result, error) {
	args := m.Called(ctx, userUID, lt)
	if res := args.Get(0); res != nil {
		return res.(*usagelimit.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCheckHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	worker := &models.Actor{
		Role:             models.RoleWorker,
		ValidationStatus: models.ValidationValidated,
		UserUID:          "worker-uid",
	}

	three := 3

	tests := []struct {
		name           string
		limitType      string
		actor          *models.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "квота с остатком",
			limitType: "applications",
			actor:     worker,
			setupMock: func(m *MockService) {
				result := &usagelimit.Result{
					Allowed:   true,
					Current:   1,
					Max:       &three,
					Remaining: 2,
				}
				m.On("CheckDailyLimit", mock.Anything, "worker-uid", models.LimitApplications).
					Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"remaining":2`,
		},
		{
			name:           "без авторизации",
			limitType:      "applications",
			actor:          nil,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"user identification missing"`,
		},
		{
			name:      "неизвестный тип квоты",
			limitType: "downloads",
			actor:     worker,
			setupMock: func(m *MockService) {
				m.On("CheckDailyLimit", mock.Anything, "worker-uid", models.LimitType("downloads")).
					Return(nil, usagelimit.ErrUnknownLimitType)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"unknown limit type"`,
		},
		{
			name:      "ошибка сервиса",
			limitType: "applications",
			actor:     worker,
			setupMock: func(m *MockService) {
				m.On("CheckDailyLimit", mock.Anything, "worker-uid", models.LimitApplications).
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

			req := httptest.NewRequest(http.MethodGet, "/limits/"+tt.limitType, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("type", tt.limitType)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.actor != nil {
				ctx = context.WithValue(ctx, middlewarectx.ActorKey, tt.actor)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
