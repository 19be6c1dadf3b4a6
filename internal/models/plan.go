package models

// PlanBasicCode — код бесплатного тарифа. Подписка с этим кодом
// не даёт премиального уровня доступа.
const PlanBasicCode = "BASIC"

// PlanConfig — тарифный план: набор числовых лимитов и флагов возможностей.
// Числовой лимит nil означает «без ограничений».
type PlanConfig struct {
	Code                  string   // Код плана (BASIC, PRO, ...)
	TargetRole            Role     // Роль, для которой предназначен план
	PriceMonthly          float64  // Цена за месяц
	MaxActiveApplications *int     // Лимит активных откликов в день
	MaxActiveMissions     *int     // Лимит публикуемых миссий в день
	MaxVisibleMissions    *int     // Лимит просмотров миссий в день
	CanViewUrgentMissions bool     // Доступ к срочным миссиям
	CanViewFullProfiles   bool     // Доступ к полным профилям исполнителей
	CanPostUrgent         bool     // Право публиковать срочные миссии
	CanSearchWorkers      bool     // Право искать исполнителей
	MissionViewDelayHours *float64 // Индивидуальная задержка видимости миссий
}

// BasicWorkerPlan возвращает консервативный план по умолчанию для исполнителя.
// Используется, когда строки плана в хранилище нет: деградация всегда
// в сторону ограничений, никогда — в сторону безлимита.
func BasicWorkerPlan() *PlanConfig {
	three := 3
	return &PlanConfig{
		Code:                  PlanBasicCode,
		TargetRole:            RoleWorker,
		MaxActiveApplications: &three,
		MaxActiveMissions:     &three,
	}
}

// LimitFor возвращает лимит плана для типа действия, nil — безлимит.
func (p *PlanConfig) LimitFor(lt LimitType) *int {
	switch lt {
	case LimitApplications:
		return p.MaxActiveApplications
	case LimitMissionsPublished:
		return p.MaxActiveMissions
	case LimitMissionsViewed:
		return p.MaxVisibleMissions
	default:
		return nil
	}
}
