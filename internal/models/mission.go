package models

import "time"

// MissionStatusOpen — миссия открыта для откликов.
const MissionStatusOpen = "open"

// Mission — размещённая заведением миссия. Для движка доступа миссия
// доступна только на чтение: редактирование выполняет слой CRUD.
type Mission struct {
	ID                string
	EstablishmentID   string
	EstablishmentName string
	EstablishmentSlug string
	Status            string
	CreatedAt         time.Time
	IsUrgent          bool
	CityID            int
	SpecialityID      int
	Skills            []string
	Description       string
	Budget            *float64
	SalaryMin         *float64
	SalaryMax         *float64
	ViewsCount        int
	ApplicationsCount int
}

// AgeHours возвращает возраст миссии в часах с плавающей точкой.
func (m *Mission) AgeHours(now time.Time) float64 {
	return now.Sub(m.CreatedAt).Hours()
}

// MissionView — проекция миссии для ответа клиенту. Скрытие полей происходит
// только здесь: строка Mission в хранилище никогда не изменяется.
// Обнулённые указатели сериализуются как null.
type MissionView struct {
	ID                string    `json:"id"`
	EstablishmentName string    `json:"establishment_name"`
	EstablishmentSlug string    `json:"establishment_slug,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	IsUrgent          bool      `json:"is_urgent"`
	CityID            int       `json:"city_id"`
	SpecialityID      int       `json:"speciality_id"`
	Skills            []string  `json:"skills"`
	Description       *string   `json:"description"`
	Budget            *float64  `json:"budget"`
	SalaryMin         *float64  `json:"salary_min"`
	SalaryMax         *float64  `json:"salary_max"`
	ApplicationsCount *int      `json:"applications_count,omitempty"`
	Redacted          bool      `json:"redacted"`
	RedactReason      string    `json:"redact_reason,omitempty"`
}

// ScoredMission — миссия с подсчитанным очком рекомендаций.
// Очко возвращается клиенту для наблюдаемости ранжирования.
type ScoredMission struct {
	Mission Mission
	Score   int
}
