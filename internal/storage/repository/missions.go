package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/asanbekov/missionboard/internal/models"
)

const missionColumns = `m.id, m.establishment_id, e.name, e.slug, m.status,
			      m.created_at, m.is_urgent, m.city_id, m.speciality_id, m.skills,
			      m.description, m.budget, m.salary_min, m.salary_max,
			      m.views_count, m.applications_count`

// GetMission возвращает миссию по идентификатору, nil без ошибки — если её нет.
func (s *Storage) GetMission(ctx context.Context, id string) (*models.Mission, error) {
	const op = "storage.GetMission"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + missionColumns + `
			  FROM missions m
			  JOIN establishments e ON e.id = m.establishment_id
			  WHERE m.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	m, err := scanMission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// ListMissions возвращает страницу открытых миссий по убыванию даты создания.
func (s *Storage) ListMissions(ctx context.Context, limit, offset int) ([]models.Mission, error) {
	const op = "storage.ListMissions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + missionColumns + `
			  FROM missions m
			  JOIN establishments e ON e.id = m.establishment_id
			  WHERE m.status = $1
			  ORDER BY m.created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, models.MissionStatusOpen, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	missions, err := collectMissions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return missions, nil
}

// ListOpenCandidates возвращает открытые миссии, совпадающие с городом или
// специальностями профиля, без миссий из excluded, не больше limit строк.
func (s *Storage) ListOpenCandidates(ctx context.Context, cityID int, specialityIDs []int, excluded []string, limit int) ([]models.Mission, error) {
	const op = "storage.ListOpenCandidates"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	// nil-срез сериализуется в SQL NULL, а ANY(NULL) делает предикат NULL
	// для каждой строки; пустой массив даёт ожидаемое false
	if specialityIDs == nil {
		specialityIDs = []int{}
	}
	if excluded == nil {
		excluded = []string{}
	}

	query := `SELECT ` + missionColumns + `
			  FROM missions m
			  JOIN establishments e ON e.id = m.establishment_id
			  WHERE m.status = $1
			    AND (m.city_id = $2 OR m.speciality_id = ANY($3))
			    AND NOT (m.id = ANY($4))
			  ORDER BY m.created_at DESC
			  LIMIT $5`
	rows, err := s.DB.QueryContext(ctx, query, models.MissionStatusOpen,
		cityID, pq.Array(specialityIDs), pq.Array(excluded), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	missions, err := collectMissions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return missions, nil
}

// IncrementMissionViews увеличивает счётчик просмотров миссии.
func (s *Storage) IncrementMissionViews(ctx context.Context, id string) error {
	const op = "storage.IncrementMissionViews"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE missions SET views_count = views_count + 1 WHERE id = $1`
	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(row rowScanner) (*models.Mission, error) {
	var m models.Mission
	var description sql.NullString
	var budget, salaryMin, salaryMax sql.NullFloat64

	err := row.Scan(&m.ID, &m.EstablishmentID, &m.EstablishmentName, &m.EstablishmentSlug,
		&m.Status, &m.CreatedAt, &m.IsUrgent, &m.CityID, &m.SpecialityID,
		pq.Array(&m.Skills), &description, &budget, &salaryMin, &salaryMax,
		&m.ViewsCount, &m.ApplicationsCount)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		m.Description = description.String
	}
	if budget.Valid {
		m.Budget = &budget.Float64
	}
	if salaryMin.Valid {
		m.SalaryMin = &salaryMin.Float64
	}
	if salaryMax.Valid {
		m.SalaryMax = &salaryMax.Float64
	}
	return &m, nil
}

func collectMissions(rows *sql.Rows) ([]models.Mission, error) {
	var missions []models.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return missions, nil
}
