// Package matching содержит подбор рекомендованных миссий для исполнителя:
// отбор кандидатов, балльную оценку релевантности и ранжирование.
package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/asanbekov/missionboard/internal/models"
)

const (
	// candidatePoolSize — максимум открытых миссий, загружаемых в пул
	// кандидатов перед оценкой.
	candidatePoolSize = 50
	// DefaultLimit — число рекомендаций, когда вызывающий не задал своё.
	DefaultLimit = 3

	cityWeight       = 10
	specialityWeight = 20
	skillWeight      = 5
	urgencyWeight    = 5
)

// MissionRepository определяет выборку кандидатов для рекомендаций.
type MissionRepository interface {
	// ListOpenCandidates возвращает открытые миссии, совпадающие с городом
	// или специальностями профиля, без миссий из excluded. Порядок — по
	// убыванию даты создания, не больше limit строк.
	ListOpenCandidates(ctx context.Context, cityID int, specialityIDs []int, excluded []string, limit int) ([]models.Mission, error)
}

// Service реализует подбор рекомендаций.
type Service struct {
	repo MissionRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo MissionRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Score возвращает балл релевантности миссии для профиля исполнителя.
// Совпадение города +10, специальности +20, каждого навыка +5, срочность +5.
func Score(m *models.Mission, profile *models.WorkerProfile) int {
	score := 0
	if profile.CityID != 0 && m.CityID == profile.CityID {
		score += cityWeight
	}
	if profile.HasSpeciality(m.SpecialityID) {
		score += specialityWeight
	}
	score += skillWeight * matchedSkills(m.Skills, profile.Skills)
	if m.IsUrgent {
		score += urgencyWeight
	}
	return score
}

func matchedSkills(missionSkills, workerSkills []string) int {
	if len(missionSkills) == 0 || len(workerSkills) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(workerSkills))
	for _, s := range workerSkills {
		set[s] = struct{}{}
	}
	matched := 0
	for _, s := range missionSkills {
		if _, ok := set[s]; ok {
			matched++
		}
	}
	return matched
}

// Recommend возвращает не больше limit миссий, отсортированных по убыванию
// балла. При равных баллах сохраняется порядок выборки кандидатов. Миссии
// с нулевым баллом остаются в выдаче: пул уже отфильтрован по профилю.
func (s *Service) Recommend(ctx context.Context, profile *models.WorkerProfile, excluded []string, limit int) ([]models.ScoredMission, error) {
	const op = "matching.Recommend"

	if profile == nil {
		return nil, fmt.Errorf("%s: worker profile is required", op)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates, err := s.repo.ListOpenCandidates(ctx, profile.CityID, profile.SpecialityIDs, excluded, candidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	scored := make([]models.ScoredMission, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, models.ScoredMission{
			Mission: candidates[i],
			Score:   Score(&candidates[i], profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	s.log.Debug("recommendations built",
		slog.String("user_uid", profile.UserUID),
		slog.Int("candidates", len(candidates)),
		slog.Int("returned", len(scored)))

	return scored, nil
}
