package models

import "time"

// SubscriptionStatus — статус подписки пользователя.
type SubscriptionStatus string

const (
	// SubscriptionActive — подписка оплачена и действует.
	SubscriptionActive SubscriptionStatus = "ACTIVE"
	// SubscriptionExpired — срок подписки истёк.
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
	// SubscriptionCanceled — подписка отменена пользователем.
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
	// SubscriptionTrial — пробный период.
	SubscriptionTrial SubscriptionStatus = "TRIAL"
)

// Subscription — подписка пользователя на тарифный план.
// EndDate nil означает бессрочную подписку.
type Subscription struct {
	UserUID      string
	PlanCode     string
	Plan         *PlanConfig // Подгруженный план, может быть nil
	Status       SubscriptionStatus
	StartDate    time.Time
	EndDate      *time.Time
	TrialEndDate *time.Time
}

// EffectiveStatus возвращает статус с учётом ленивого истечения пробного
// периода: TRIAL после trial_end_date читается как EXPIRED, строка в
// хранилище при этом не меняется.
func (s *Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status == SubscriptionTrial && s.TrialEndDate != nil && now.After(*s.TrialEndDate) {
		return SubscriptionExpired
	}
	return s.Status
}

// IsActive сообщает, действует ли подписка: статус ACTIVE и дата окончания
// отсутствует либо в будущем.
func (s *Subscription) IsActive(now time.Time) bool {
	if s.EffectiveStatus(now) != SubscriptionActive {
		return false
	}
	return s.EndDate == nil || s.EndDate.After(now)
}
