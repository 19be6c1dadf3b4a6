package models

import "time"

// LimitType — тип действия, расходующего дневную квоту.
type LimitType string

const (
	// LimitApplications — отклики на миссии.
	LimitApplications LimitType = "applications"
	// LimitMissionsPublished — публикации миссий.
	LimitMissionsPublished LimitType = "missions_published"
	// LimitMissionsViewed — просмотры миссий.
	LimitMissionsViewed LimitType = "missions_viewed"
)

// KnownLimitType сообщает, входит ли тип в закрытый список квот.
func KnownLimitType(lt LimitType) bool {
	switch lt {
	case LimitApplications, LimitMissionsPublished, LimitMissionsViewed:
		return true
	default:
		return false
	}
}

// UsageCounter — счётчики действий пользователя за один календарный день.
// Строка создаётся при первом действии за день и никогда не заводится заранее.
type UsageCounter struct {
	UserUID                string
	Day                    time.Time
	ApplicationsCount      int
	MissionsPublishedCount int
	MissionsViewedCount    int
}

// CountFor возвращает значение счётчика для типа действия.
func (c *UsageCounter) CountFor(lt LimitType) int {
	switch lt {
	case LimitApplications:
		return c.ApplicationsCount
	case LimitMissionsPublished:
		return c.MissionsPublishedCount
	case LimitMissionsViewed:
		return c.MissionsViewedCount
	default:
		return 0
	}
}

// DayOf нормализует момент времени к началу календарного дня в UTC.
// Счётчики привязаны ровно к одному дню, межсуточной агрегации нет.
func DayOf(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
