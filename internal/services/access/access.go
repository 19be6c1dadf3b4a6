// Package access реализует вычисление уровня доступа актора: чистую
// функцию от личности запроса и состояния подписки. Уровень — закрытый
// enum, по которому политика видимости делает исчерпывающий выбор.
package access

import (
	"time"

	"github.com/asanbekov/missionboard/internal/models"
)

// Level — эффективный уровень доступа актора.
type Level string

const (
	// LevelVisitor — запрос без личности.
	LevelVisitor Level = "VISITOR"
	// LevelPending — личность есть, но аккаунт не прошёл модерацию.
	LevelPending Level = "PENDING"
	// LevelValidated — проверенный аккаунт без активной платной подписки.
	LevelValidated Level = "VALIDATED"
	// LevelPremium — проверенный аккаунт с активной небазовой подпиской.
	LevelPremium Level = "PREMIUM"
	// LevelOther — роль вне оцениваемой области (например, админ при
	// оценке доступа исполнителя).
	LevelOther Level = "OTHER"
)

// ResolveWorker вычисляет уровень доступа актора к разделу исполнителей.
func ResolveWorker(actor *models.Actor, sub *models.Subscription, now time.Time) Level {
	return resolve(models.RoleWorker, actor, sub, now)
}

// ResolveEstablishment вычисляет уровень доступа актора к разделу заведений:
// поиску исполнителей и просмотру их полных профилей. Выдача миссий идёт
// через ResolveWorker; этот резолвер обслуживает обратную сторону маркетплейса.
func ResolveEstablishment(actor *models.Actor, sub *models.Subscription, now time.Time) Level {
	return resolve(models.RoleEstablishment, actor, sub, now)
}

func resolve(scope models.Role, actor *models.Actor, sub *models.Subscription, now time.Time) Level {
	if actor == nil {
		return LevelVisitor
	}

	switch actor.Role {
	case models.RoleVisitor:
		return LevelVisitor
	case models.RoleWorker, models.RoleEstablishment:
		if actor.Role != scope {
			return LevelOther
		}
	case models.RoleAdmin, models.RoleSuperAdmin:
		return LevelOther
	default:
		return LevelOther
	}

	if actor.ValidationStatus != models.ValidationValidated {
		return LevelPending
	}

	if sub != nil && sub.IsActive(now) && sub.PlanCode != models.PlanBasicCode {
		return LevelPremium
	}

	return LevelValidated
}
