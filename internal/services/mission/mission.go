// Package mission собирает чтение миссий воедино: уровень доступа зрителя,
// действующие привилегии и политику видимости. Все публичные выдачи миссий
// проходят через этот сервис.
package mission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asanbekov/missionboard/internal/lib/settingvalue"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/metrics"
	"github.com/asanbekov/missionboard/internal/models"
	"github.com/asanbekov/missionboard/internal/services/access"
	"github.com/asanbekov/missionboard/internal/services/visibility"
)

// ErrMissionNotFound возвращается, когда миссии с таким идентификатором нет.
var ErrMissionNotFound = fmt.Errorf("mission not found")

// ErrWorkerProfileNotFound возвращается, когда у пользователя нет профиля
// исполнителя и рекомендации построить не из чего.
var ErrWorkerProfileNotFound = fmt.Errorf("worker profile not found")

// Repository определяет методы хранилища для миссий и связанных сущностей.
type Repository interface {
	// GetMission возвращает миссию по идентификатору, nil без ошибки —
	// если её нет.
	GetMission(ctx context.Context, id string) (*models.Mission, error)
	// ListMissions возвращает открытые миссии по убыванию даты создания.
	ListMissions(ctx context.Context, limit, offset int) ([]models.Mission, error)
	// IncrementMissionViews увеличивает счётчик просмотров миссии.
	IncrementMissionViews(ctx context.Context, id string) error
	// GetWorkerProfile возвращает профиль исполнителя, nil без ошибки —
	// если профиль не заполнен.
	GetWorkerProfile(ctx context.Context, userUID string) (*models.WorkerProfile, error)
	// GetSubscriptionWithPlan возвращает подписку с планом, nil без
	// ошибки — если подписки нет.
	GetSubscriptionWithPlan(ctx context.Context, userUID string) (*models.Subscription, error)
}

// PrivilegeProvider отдаёт действующие привилегии с учётом значений
// по умолчанию.
type PrivilegeProvider interface {
	GetPrivileges(ctx context.Context, category *models.SettingCategory) map[string]settingvalue.Value
}

// Matcher строит список рекомендованных миссий для профиля исполнителя.
type Matcher interface {
	Recommend(ctx context.Context, profile *models.WorkerProfile, excluded []string, limit int) ([]models.ScoredMission, error)
}

// Service реализует выдачу миссий с применением политики видимости.
type Service struct {
	repo       Repository
	privileges PrivilegeProvider
	matcher    Matcher
	log        *slog.Logger
	now        func() time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, privileges PrivilegeProvider, matcher Matcher, log *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		privileges: privileges,
		matcher:    matcher,
		log:        log,
		now:        time.Now,
	}
}

// Recommendation — рекомендованная миссия с баллом релевантности.
type Recommendation struct {
	Mission models.MissionView `json:"mission"`
	Score   int                `json:"score"`
}

// viewerContext фиксирует всё нужное для решения о видимости: уровень
// доступа зрителя и действующую конфигурацию политики.
type viewerContext struct {
	level access.Level
	cfg   visibility.Config
	privs map[string]settingvalue.Value
	now   time.Time
}

func (s *Service) resolveViewer(ctx context.Context, actor *models.Actor) viewerContext {
	now := s.now()

	var sub *models.Subscription
	if actor != nil && actor.UserUID != "" {
		loaded, err := s.repo.GetSubscriptionWithPlan(ctx, actor.UserUID)
		if err != nil {
			// деградация к уровню без подписки, чтение не прерываем
			s.log.Warn("failed to load subscription for viewer",
				slog.String("user_uid", actor.UserUID), sl.Err(err))
		} else {
			sub = loaded
		}
	}

	category := models.CategoryWorker
	privs := s.privileges.GetPrivileges(ctx, &category)

	return viewerContext{
		level: access.ResolveWorker(actor, sub, now),
		cfg:   visibility.ConfigFromPrivileges(privs),
		privs: privs,
		now:   now,
	}
}

func (s *Service) project(m *models.Mission, vc viewerContext) models.MissionView {
	d := visibility.Evaluate(m, vc.level, vc.cfg, vc.now)
	if d.Redact {
		metrics.MissionRedactions.WithLabelValues(string(d.Reason)).Inc()
	}
	return visibility.Project(m, d, vc.level)
}

// GetMission возвращает карточку миссии, отредактированную под уровень
// доступа зрителя. Счётчик просмотров увеличивается по возможности и
// никогда не влияет на результат чтения.
func (s *Service) GetMission(ctx context.Context, actor *models.Actor, id string) (*models.MissionView, error) {
	const op = "mission.GetMission"

	m, err := s.repo.GetMission(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMissionNotFound)
	}

	vc := s.resolveViewer(ctx, actor)
	view := s.project(m, vc)

	if err := s.repo.IncrementMissionViews(ctx, id); err != nil {
		s.log.Warn("failed to increment mission views",
			slog.String("mission_id", id), sl.Err(err))
	}

	return &view, nil
}

// ListMissions возвращает страницу открытых миссий. Политика видимости
// применяется к каждой карточке независимо.
func (s *Service) ListMissions(ctx context.Context, actor *models.Actor, limit, offset int) ([]models.MissionView, error) {
	const op = "mission.ListMissions"

	missions, err := s.repo.ListMissions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vc := s.resolveViewer(ctx, actor)

	views := make([]models.MissionView, 0, len(missions))
	for i := range missions {
		views = append(views, s.project(&missions[i], vc))
	}
	return views, nil
}

// Recommendations строит подборку миссий под профиль исполнителя. Размер
// подборки берётся из привилегии worker_recommendations_limit, карточки
// проходят ту же политику видимости, что и обычная выдача.
func (s *Service) Recommendations(ctx context.Context, actor *models.Actor, excluded []string) ([]Recommendation, error) {
	const op = "mission.Recommendations"

	if actor == nil || actor.UserUID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrWorkerProfileNotFound)
	}

	profile, err := s.repo.GetWorkerProfile(ctx, actor.UserUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrWorkerProfileNotFound)
	}

	vc := s.resolveViewer(ctx, actor)

	limit := 0
	if v, ok := vc.privs["worker_recommendations_limit"]; ok {
		if n, numeric := v.AsInt(); numeric && n > 0 {
			limit = n
		}
	}

	scored, err := s.matcher.Recommend(ctx, profile, excluded, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	recs := make([]Recommendation, 0, len(scored))
	for i := range scored {
		recs = append(recs, Recommendation{
			Mission: s.project(&scored[i].Mission, vc),
			Score:   scored[i].Score,
		})
	}

	metrics.RecommendationsServed.Inc()
	return recs, nil
}
