package mission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/asanbekov/missionboard/internal/lib/settingvalue"
	"github.com/asanbekov/missionboard/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetMission(ctx context.Context, id string) (*models.Mission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mission), args.Error(1)
}

func (m *RepoMock) ListMissions(ctx context.Context, limit, offset int) ([]models.Mission, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mission), args.Error(1)
}

func (m *RepoMock) IncrementMissionViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RepoMock) GetWorkerProfile(ctx context.Context, userUID string) (*models.WorkerProfile, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerProfile), args.Error(1)
}

func (m *RepoMock) GetSubscriptionWithPlan(ctx context.Context, userUID string) (*models.Subscription, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

type PrivilegesMock struct{ mock.Mock }

func (m *PrivilegesMock) GetPrivileges(ctx context.Context, category *models.SettingCategory) map[string]settingvalue.Value {
	args := m.Called(ctx, category)
	return args.Get(0).(map[string]settingvalue.Value)
}

type MatcherMock struct{ mock.Mock }

func (m *MatcherMock) Recommend(ctx context.Context, profile *models.WorkerProfile, excluded []string, limit int) ([]models.ScoredMission, error) {
	args := m.Called(ctx, profile, excluded, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScoredMission), args.Error(1)
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService(repo *RepoMock, privs *PrivilegesMock, matcher *MatcherMock) *Service {
	svc := New(repo, privs, matcher, newNoopLogger())
	svc.now = func() time.Time { return testNow }
	return svc
}

func defaultPrivileges() map[string]settingvalue.Value {
	return map[string]settingvalue.Value{
		"worker_visibility_delay_hours":     settingvalue.Parse("48"),
		"worker_urgent_access_premium_only": settingvalue.Parse("true"),
		"worker_recommendations_limit":      settingvalue.Parse("3"),
	}
}

func validatedWorker() *models.Actor {
	return &models.Actor{
		Role:             models.RoleWorker,
		ValidationStatus: models.ValidationValidated,
		UserUID:          "worker-uid",
	}
}

func oldMission() *models.Mission {
	desc := "Нужен бариста на выходные"
	budget := 120.0
	return &models.Mission{
		ID:                "m-1",
		EstablishmentName: "Cafe du Nord",
		EstablishmentSlug: "cafe-du-nord",
		Status:            models.MissionStatusOpen,
		CreatedAt:         testNow.Add(-72 * time.Hour),
		CityID:            10,
		SpecialityID:      5,
		Description:       desc,
		Budget:            &budget,
		ApplicationsCount: 4,
	}
}

func TestGetMission_ValidatedSeesOldMissionInFull(t *testing.T) {
	repo := new(RepoMock)
	privs := new(PrivilegesMock)

	m := oldMission()
	repo.On("GetMission", mock.Anything, "m-1").Return(m, nil).Once()
	repo.On("GetSubscriptionWithPlan", mock.Anything, "worker-uid").Return(nil, nil).Once()
	repo.On("IncrementMissionViews", mock.Anything, "m-1").Return(nil).Once()
	privs.On("GetPrivileges", mock.Anything, mock.Anything).Return(defaultPrivileges()).Once()

	svc := newService(repo, privs, new(MatcherMock))

	view, err := svc.GetMission(context.Background(), validatedWorker(), "m-1")
	require.NoError(t, err)
	assert.False(t, view.Redacted)
	require.NotNil(t, view.Description)
	assert.Equal(t, m.Description, *view.Description)
	require.NotNil(t, view.ApplicationsCount)
	assert.Equal(t, 4, *view.ApplicationsCount)
	repo.AssertExpectations(t)
}

func TestGetMission_VisitorGetsRedactedCard(t *testing.T) {
	repo := new(RepoMock)
	privs := new(PrivilegesMock)

	repo.On("GetMission", mock.Anything, "m-1").Return(oldMission(), nil).Once()
	repo.On("IncrementMissionViews", mock.Anything, "m-1").Return(nil).Once()
	privs.On("GetPrivileges", mock.Anything, mock.Anything).Return(defaultPrivileges()).Once()

	svc := newService(repo, privs, new(MatcherMock))

	view, err := svc.GetMission(context.Background(), nil, "m-1")
	require.NoError(t, err)
	assert.True(t, view.Redacted)
	assert.Nil(t, view.Description)
	assert.Nil(t, view.Budget)
	assert.Empty(t, view.EstablishmentSlug)
	assert.Nil(t, view.ApplicationsCount)
	repo.AssertExpectations(t)
}

func TestGetMission_NotFound(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetMission", mock.Anything, "missing").Return(nil, nil).Once()

	svc := newService(repo, new(PrivilegesMock), new(MatcherMock))

	_, err := svc.GetMission(context.Background(), nil, "missing")
	assert.ErrorIs(t, err, ErrMissionNotFound)
}

func TestGetMission_ViewCounterFailureDoesNotFailRead(t *testing.T) {
	repo := new(RepoMock)
	privs := new(PrivilegesMock)

	repo.On("GetMission", mock.Anything, "m-1").Return(oldMission(), nil).Once()
	repo.On("GetSubscriptionWithPlan", mock.Anything, "worker-uid").Return(nil, nil).Once()
	repo.On("IncrementMissionViews", mock.Anything, "m-1").
		Return(errors.New("connection refused")).Once()
	privs.On("GetPrivileges", mock.Anything, mock.Anything).Return(defaultPrivileges()).Once()

	svc := newService(repo, privs, new(MatcherMock))

	view, err := svc.GetMission(context.Background(), validatedWorker(), "m-1")
	require.NoError(t, err)
	assert.False(t, view.Redacted)
}

func TestGetMission_SubscriptionErrorDegradesToFreeLevel(t *testing.T) {
	repo := new(RepoMock)
	privs := new(PrivilegesMock)

	recent := oldMission()
	recent.CreatedAt = testNow.Add(-2 * time.Hour)

	repo.On("GetMission", mock.Anything, "m-1").Return(recent, nil).Once()
	repo.On("GetSubscriptionWithPlan", mock.Anything, "worker-uid").
		Return(nil, errors.New("connection refused")).Once()
	repo.On("IncrementMissionViews", mock.Anything, "m-1").Return(nil).Once()
	privs.On("GetPrivileges", mock.Anything, mock.Anything).Return(defaultPrivileges()).Once()

	svc := newService(repo, privs, new(MatcherMock))

	// свежая миссия: без подтверждённой подписки карточка скрыта
	view, err := svc.GetMission(context.Background(), validatedWorker(), "m-1")
	require.NoError(t, err)
	assert.True(t, view.Redacted)
	assert.Equal(t, "RECENT_MISSION_PREMIUM_ONLY", view.RedactReason)
}

func TestListMissions_PolicyAppliedPerCard(t *testing.T) {
	repo := new(RepoMock)
	privs := new(PrivilegesMock)

	old := *oldMission()
	recent := *oldMission()
	recent.ID = "m-2"
	recent.CreatedAt = testNow.Add(-2 * time.Hour)

	repo.On("ListMissions", mock.Anything, 20, 0).
		Return([]models.Mission{old, recent}, nil).Once()
	repo.On("GetSubscriptionWithPlan", mock.Anything, "worker-uid").Return(nil, nil).Once()
	privs.On("GetPrivileges", mock.Anything, mock.Anything).Return(defaultPrivileges()).Once()

	svc := newService(repo, privs, new(MatcherMock))

	views, err := svc.ListMissions(context.Background(), validatedWorker(), 20, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.False(t, views[0].Redacted)
	assert.True(t, views[1].Redacted)
	repo.AssertExpectations(t)
}

func TestRecommendations(t *testing.T) {
	repo := new(RepoMock)
	privs := new(PrivilegesMock)
	matcher := new(MatcherMock)

	profile := &models.WorkerProfile{
		UserUID:       "worker-uid",
		CityID:        10,
		SpecialityIDs: []int{5},
	}
	scored := []models.ScoredMission{
		{Mission: *oldMission(), Score: 40},
	}

	repo.On("GetWorkerProfile", mock.Anything, "worker-uid").Return(profile, nil).Once()
	repo.On("GetSubscriptionWithPlan", mock.Anything, "worker-uid").Return(nil, nil).Once()
	privs.On("GetPrivileges", mock.Anything, mock.Anything).Return(defaultPrivileges()).Once()
	matcher.On("Recommend", mock.Anything, profile, []string(nil), 3).Return(scored, nil).Once()

	svc := newService(repo, privs, matcher)

	recs, err := svc.Recommendations(context.Background(), validatedWorker(), nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 40, recs[0].Score)
	assert.Equal(t, "m-1", recs[0].Mission.ID)
	assert.False(t, recs[0].Mission.Redacted)
	matcher.AssertExpectations(t)
}

func TestRecommendations_NoProfile(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetWorkerProfile", mock.Anything, "worker-uid").Return(nil, nil).Once()

	svc := newService(repo, new(PrivilegesMock), new(MatcherMock))

	_, err := svc.Recommendations(context.Background(), validatedWorker(), nil)
	assert.ErrorIs(t, err, ErrWorkerProfileNotFound)
}

func TestRecommendations_Anonymous(t *testing.T) {
	svc := newService(new(RepoMock), new(PrivilegesMock), new(MatcherMock))

	_, err := svc.Recommendations(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrWorkerProfileNotFound)
}
