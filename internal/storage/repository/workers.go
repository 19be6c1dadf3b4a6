package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/asanbekov/missionboard/internal/models"
)

// GetWorkerProfile возвращает профиль исполнителя, nil без ошибки — если
// профиль не заполнен.
func (s *Storage) GetWorkerProfile(ctx context.Context, userUID string) (*models.WorkerProfile, error) {
	const op = "storage.GetWorkerProfile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_uid, city_id, speciality_ids, skills
			  FROM worker_profiles
			  WHERE user_uid = $1`
	row := s.DB.QueryRowContext(ctx, query, userUID)

	var profile models.WorkerProfile
	var specialityIDs []int64
	err := row.Scan(&profile.UserUID, &profile.CityID,
		pq.Array(&specialityIDs), pq.Array(&profile.Skills))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile.SpecialityIDs = make([]int, 0, len(specialityIDs))
	for _, id := range specialityIDs {
		profile.SpecialityIDs = append(profile.SpecialityIDs, int(id))
	}
	return &profile, nil
}

// UpsertWorkerProfile сохраняет профиль исполнителя, перезаписывая прежний.
func (s *Storage) UpsertWorkerProfile(ctx context.Context, profile models.WorkerProfile) error {
	const op = "storage.UpsertWorkerProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	specialityIDs := make([]int64, 0, len(profile.SpecialityIDs))
	for _, id := range profile.SpecialityIDs {
		specialityIDs = append(specialityIDs, int64(id))
	}

	query := `INSERT INTO worker_profiles (user_uid, city_id, speciality_ids, skills)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (user_uid) DO UPDATE
			  SET city_id = EXCLUDED.city_id,
			      speciality_ids = EXCLUDED.speciality_ids,
			      skills = EXCLUDED.skills`
	if _, err := s.DB.ExecContext(ctx, query, profile.UserUID, profile.CityID,
		pq.Array(specialityIDs), pq.Array(profile.Skills)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
