package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asanbekov/missionboard/internal/models"
)

// GetSubscriptionWithPlan возвращает подписку пользователя вместе со
// строкой тарифного плана, nil без ошибки — если подписки нет.
func (s *Storage) GetSubscriptionWithPlan(ctx context.Context, userUID string) (*models.Subscription, error) {
	const op = "storage.GetSubscriptionWithPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT sub.user_uid, sub.plan_code, sub.status, sub.start_date,
			      sub.end_date, sub.trial_end_date,
			      p.code, p.target_role, p.price_monthly,
			      p.max_active_applications, p.max_active_missions, p.max_visible_missions,
			      p.can_view_urgent_missions, p.can_view_full_profiles,
			      p.can_post_urgent, p.can_search_workers, p.mission_view_delay_hours
			  FROM subscriptions sub
			  JOIN plans p ON p.code = sub.plan_code
			  WHERE sub.user_uid = $1`
	row := s.DB.QueryRowContext(ctx, query, userUID)

	var sub models.Subscription
	var plan models.PlanConfig
	var endDate, trialEndDate sql.NullTime
	var maxApplications, maxMissions, maxVisible sql.NullInt64
	var viewDelay sql.NullFloat64

	err := row.Scan(&sub.UserUID, &sub.PlanCode, &sub.Status, &sub.StartDate,
		&endDate, &trialEndDate,
		&plan.Code, &plan.TargetRole, &plan.PriceMonthly,
		&maxApplications, &maxMissions, &maxVisible,
		&plan.CanViewUrgentMissions, &plan.CanViewFullProfiles,
		&plan.CanPostUrgent, &plan.CanSearchWorkers, &viewDelay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if endDate.Valid {
		sub.EndDate = &endDate.Time
	}
	if trialEndDate.Valid {
		sub.TrialEndDate = &trialEndDate.Time
	}
	if maxApplications.Valid {
		v := int(maxApplications.Int64)
		plan.MaxActiveApplications = &v
	}
	if maxMissions.Valid {
		v := int(maxMissions.Int64)
		plan.MaxActiveMissions = &v
	}
	if maxVisible.Valid {
		v := int(maxVisible.Int64)
		plan.MaxVisibleMissions = &v
	}
	if viewDelay.Valid {
		plan.MissionViewDelayHours = &viewDelay.Float64
	}

	sub.Plan = &plan
	return &sub, nil
}

// GetPlan возвращает тарифный план по коду, nil без ошибки — если плана нет.
func (s *Storage) GetPlan(ctx context.Context, code string) (*models.PlanConfig, error) {
	const op = "storage.GetPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT code, target_role, price_monthly,
			      max_active_applications, max_active_missions, max_visible_missions,
			      can_view_urgent_missions, can_view_full_profiles,
			      can_post_urgent, can_search_workers, mission_view_delay_hours
			  FROM plans
			  WHERE code = $1`
	row := s.DB.QueryRowContext(ctx, query, code)

	var plan models.PlanConfig
	var maxApplications, maxMissions, maxVisible sql.NullInt64
	var viewDelay sql.NullFloat64

	err := row.Scan(&plan.Code, &plan.TargetRole, &plan.PriceMonthly,
		&maxApplications, &maxMissions, &maxVisible,
		&plan.CanViewUrgentMissions, &plan.CanViewFullProfiles,
		&plan.CanPostUrgent, &plan.CanSearchWorkers, &viewDelay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if maxApplications.Valid {
		v := int(maxApplications.Int64)
		plan.MaxActiveApplications = &v
	}
	if maxMissions.Valid {
		v := int(maxMissions.Int64)
		plan.MaxActiveMissions = &v
	}
	if maxVisible.Valid {
		v := int(maxVisible.Int64)
		plan.MaxVisibleMissions = &v
	}
	if viewDelay.Valid {
		plan.MissionViewDelayHours = &viewDelay.Float64
	}
	return &plan, nil
}
