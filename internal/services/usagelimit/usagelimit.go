// Package usagelimit содержит бизнес-логику дневных квот: проверку
// лимитов тарифного плана и инкремент счётчиков использования.
package usagelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/metrics"
	"github.com/asanbekov/missionboard/internal/models"
)

// ErrUnknownLimitType возвращается для типа действия вне закрытого списка квот.
var ErrUnknownLimitType = fmt.Errorf("unknown limit type")

// Repository определяет методы хранилища для подписок, планов и счётчиков.
type Repository interface {
	// GetSubscriptionWithPlan возвращает подписку пользователя вместе с планом,
	// nil без ошибки — если подписки нет.
	GetSubscriptionWithPlan(ctx context.Context, userUID string) (*models.Subscription, error)
	// GetUsageCounter возвращает счётчики за день, nil без ошибки — если
	// строка ещё не создана.
	GetUsageCounter(ctx context.Context, userUID string, day time.Time) (*models.UsageCounter, error)
	// IncrementUsageCounter атомарно увеличивает счётчик за день, создавая
	// строку при необходимости, и возвращает значение после инкремента.
	IncrementUsageCounter(ctx context.Context, userUID string, day time.Time, lt models.LimitType) (int, error)
}

// Service реализует проверку и расход дневных квот.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Result — итог проверки дневного лимита. При Unlimited поле Max равно nil
// и наружу никогда не отдаётся числовой сентинел.
type Result struct {
	Allowed   bool `json:"allowed"`
	Current   int  `json:"current"`
	Max       *int `json:"max"`
	Remaining int  `json:"remaining"`
	Unlimited bool `json:"unlimited"`
}

// resolvePlan возвращает план пользователя. Отсутствующая или неактивная
// подписка, как и любая ошибка чтения, деградирует к базовому плану:
// в сторону ограничений, никогда — к безлимиту.
func (s *Service) resolvePlan(ctx context.Context, userUID string, now time.Time) *models.PlanConfig {
	sub, err := s.repo.GetSubscriptionWithPlan(ctx, userUID)
	if err != nil {
		s.log.Warn("failed to resolve plan, falling back to basic",
			slog.String("user_uid", userUID), sl.Err(err))
		return models.BasicWorkerPlan()
	}
	if sub == nil || sub.Plan == nil || !sub.IsActive(now) {
		return models.BasicWorkerPlan()
	}
	return sub.Plan
}

// CheckDailyLimit проверяет квоту, не расходуя её. Проверка и последующий
// инкремент не изолированы транзакционно: два конкурентных запроса могут
// оба увидеть allowed и оба инкрементировать.
func (s *Service) CheckDailyLimit(ctx context.Context, userUID string, lt models.LimitType) (*Result, error) {
	const op = "usagelimit.CheckDailyLimit"
	if !models.KnownLimitType(lt) {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownLimitType, lt)
	}

	now := s.now()
	plan := s.resolvePlan(ctx, userUID, now)

	var current int
	counter, err := s.repo.GetUsageCounter(ctx, userUID, models.DayOf(now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if counter != nil {
		current = counter.CountFor(lt)
	}

	result := buildResult(plan.LimitFor(lt), current)
	if !result.Allowed {
		metrics.QuotaDenials.WithLabelValues(string(lt)).Inc()
	}
	return result, nil
}

// IncrementUsage расходует единицу квоты: атомарный upsert-инкремент
// счётчика за сегодня. Строка создаётся при первом действии за день.
func (s *Service) IncrementUsage(ctx context.Context, userUID string, lt models.LimitType) error {
	const op = "usagelimit.IncrementUsage"
	if !models.KnownLimitType(lt) {
		return fmt.Errorf("%s: %w: %s", op, ErrUnknownLimitType, lt)
	}
	if _, err := s.repo.IncrementUsageCounter(ctx, userUID, models.DayOf(s.now()), lt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ConsumeDailyLimit — усиленный вариант для вызывающих, которым нужна
// гарантия без перерасхода: инкремент выполняется атомарно, решение
// принимается по возвращённому значению после инкремента. Счётчик при
// отказе остаётся увеличенным, но allowed=false.
func (s *Service) ConsumeDailyLimit(ctx context.Context, userUID string, lt models.LimitType) (*Result, error) {
	const op = "usagelimit.ConsumeDailyLimit"
	if !models.KnownLimitType(lt) {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownLimitType, lt)
	}

	now := s.now()
	plan := s.resolvePlan(ctx, userUID, now)

	post, err := s.repo.IncrementUsageCounter(ctx, userUID, models.DayOf(now), lt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	limit := plan.LimitFor(lt)
	result := buildResult(limit, post)
	if limit != nil {
		result.Allowed = post <= *limit
	}
	if !result.Allowed {
		metrics.QuotaDenials.WithLabelValues(string(lt)).Inc()
	}
	return result, nil
}

func buildResult(limit *int, current int) *Result {
	if limit == nil {
		return &Result{
			Allowed:   true,
			Current:   current,
			Unlimited: true,
		}
	}
	remaining := *limit - current
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   remaining > 0,
		Current:   current,
		Max:       limit,
		Remaining: remaining,
	}
}
