// Package metrics регистрирует счётчики Prometheus решений доступа
// и квот. Снимаются на эндпоинте /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// MissionRedactions — редактирования карточек миссий по причинам.
	MissionRedactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "missionboard",
			Subsystem: "visibility",
			Name:      "mission_redactions_total",
			Help:      "Total number of mission cards served in redacted form.",
		},
		[]string{"reason"},
	)

	// QuotaDenials — отказы по дневным квотам по типу действия.
	QuotaDenials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "missionboard",
			Subsystem: "usage",
			Name:      "quota_denials_total",
			Help:      "Total number of actions denied by daily plan limits.",
		},
		[]string{"limit_type"},
	)

	// RecommendationsServed — выданные списки рекомендаций.
	RecommendationsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "missionboard",
			Subsystem: "matching",
			Name:      "recommendations_served_total",
			Help:      "Total number of recommendation lists built for workers.",
		},
	)
)

func init() {
	prometheus.MustRegister(MissionRedactions, QuotaDenials, RecommendationsServed)
}
