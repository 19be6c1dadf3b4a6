// Package visibility реализует политику видимости миссий: решение о
// скрытии полей и построение проекции ответа. Решение — чистая функция
// от (миссия, уровень доступа, конфигурация, момент времени) и не зависит
// от того, какой обработчик его запросил: одиночное чтение и листинг
// проходят через один и тот же код.
package visibility

import (
	"time"

	"github.com/asanbekov/missionboard/internal/lib/settingvalue"
	"github.com/asanbekov/missionboard/internal/models"
	"github.com/asanbekov/missionboard/internal/services/access"
)

// Reason — причина скрытия полей миссии.
type Reason string

const (
	// ReasonNotValidated — аккаунт ещё не прошёл модерацию.
	ReasonNotValidated Reason = "NOT_VALIDATED"
	// ReasonRecentPremiumOnly — миссия моложе окна задержки, доступна
	// только премиум-подписчикам.
	ReasonRecentPremiumOnly Reason = "RECENT_MISSION_PREMIUM_ONLY"
	// ReasonUrgentPremiumOnly — срочные миссии закрыты для бесплатных
	// аккаунтов.
	ReasonUrgentPremiumOnly Reason = "URGENT_PREMIUM_ONLY"
)

// Config — снимок привилегий, влияющих на видимость. Извлекается из
// карты привилегий один раз на запрос, после чего политика работает
// без обращений к хранилищу.
type Config struct {
	DelayHours        float64 // Окно задержки видимости для бесплатных аккаунтов
	UrgentPremiumOnly bool    // Срочные миссии только для премиума
}

// ConfigFromPrivileges извлекает конфигурацию политики из карты привилегий.
// Отсутствующие или нечитаемые ключи заменяются консервативными значениями.
func ConfigFromPrivileges(privileges map[string]settingvalue.Value) Config {
	cfg := Config{
		DelayHours:        48,
		UrgentPremiumOnly: true,
	}
	if v, ok := privileges["worker_visibility_delay_hours"]; ok {
		if n, isNum := v.AsFloat(); isNum {
			cfg.DelayHours = n
		}
	}
	if v, ok := privileges["worker_urgent_access_premium_only"]; ok && v.Kind == settingvalue.KindBool {
		cfg.UrgentPremiumOnly = v.Bool
	}
	return cfg
}

// Decision — результат политики для одной миссии.
// Для посетителя причина не указывается: скрытие безусловное.
type Decision struct {
	Redact bool
	Reason Reason
}

// Evaluate решает, скрывать ли поля миссии для данного уровня доступа.
// Порядок причин строгий: посетитель, непроверенный аккаунт, окно
// задержки, срочность. Премиум и роли вне области видят всё.
func Evaluate(m *models.Mission, level access.Level, cfg Config, now time.Time) Decision {
	switch level {
	case access.LevelVisitor:
		return Decision{Redact: true}
	case access.LevelPending:
		return Decision{Redact: true, Reason: ReasonNotValidated}
	case access.LevelValidated:
		if m.AgeHours(now) < cfg.DelayHours {
			return Decision{Redact: true, Reason: ReasonRecentPremiumOnly}
		}
		if m.IsUrgent && cfg.UrgentPremiumOnly {
			return Decision{Redact: true, Reason: ReasonUrgentPremiumOnly}
		}
		return Decision{}
	case access.LevelPremium, access.LevelOther:
		return Decision{}
	default:
		// неизвестный уровень трактуется как посетитель
		return Decision{Redact: true}
	}
}

// Project строит проекцию миссии по решению политики. Скрытие — операция
// времени ответа: исходная миссия не изменяется. При redact обнуляются
// описание, бюджет и зарплатная вилка; посетитель дополнительно теряет
// slug заведения и счётчик откликов.
func Project(m *models.Mission, d Decision, level access.Level) models.MissionView {
	view := models.MissionView{
		ID:                m.ID,
		EstablishmentName: m.EstablishmentName,
		EstablishmentSlug: m.EstablishmentSlug,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
		IsUrgent:          m.IsUrgent,
		CityID:            m.CityID,
		SpecialityID:      m.SpecialityID,
		Skills:            m.Skills,
	}

	if !d.Redact {
		description := m.Description
		view.Description = &description
		view.Budget = m.Budget
		view.SalaryMin = m.SalaryMin
		view.SalaryMax = m.SalaryMax
	} else {
		view.Redacted = true
		view.RedactReason = string(d.Reason)
	}

	if level == access.LevelVisitor {
		view.EstablishmentSlug = ""
	} else {
		applications := m.ApplicationsCount
		view.ApplicationsCount = &applications
	}

	return view
}

// EvaluateAndProject — удобная связка Evaluate + Project для вызова из
// композиционного слоя.
func EvaluateAndProject(m *models.Mission, level access.Level, cfg Config, now time.Time) models.MissionView {
	return Project(m, Evaluate(m, level, cfg, now), level)
}
