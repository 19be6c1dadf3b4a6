package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/asanbekov/missionboard/internal/models"
)

// limitColumns сопоставляет тип квоты с колонкой счётчика. Имя колонки
// подставляется в запрос только из этой карты.
var limitColumns = map[models.LimitType]string{
	models.LimitApplications:      "applications_count",
	models.LimitMissionsPublished: "missions_published_count",
	models.LimitMissionsViewed:    "missions_viewed_count",
}

// GetUsageCounter возвращает счётчики пользователя за день, nil без
// ошибки — если строка ещё не создана.
func (s *Storage) GetUsageCounter(ctx context.Context, userUID string, day time.Time) (*models.UsageCounter, error) {
	const op = "storage.GetUsageCounter"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_uid, day, applications_count, missions_published_count,
			      missions_viewed_count
			  FROM usage_counters
			  WHERE user_uid = $1 AND day = $2`
	row := s.DB.QueryRowContext(ctx, query, userUID, day)

	var counter models.UsageCounter
	err := row.Scan(&counter.UserUID, &counter.Day, &counter.ApplicationsCount,
		&counter.MissionsPublishedCount, &counter.MissionsViewedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &counter, nil
}

// IncrementUsageCounter атомарно увеличивает счётчик за день, создавая
// строку при необходимости, и возвращает значение после инкремента.
func (s *Storage) IncrementUsageCounter(ctx context.Context, userUID string, day time.Time, lt models.LimitType) (int, error) {
	const op = "storage.IncrementUsageCounter"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	column, ok := limitColumns[lt]
	if !ok {
		return 0, fmt.Errorf("%s: unknown limit type %q", op, lt)
	}

	query := fmt.Sprintf(`INSERT INTO usage_counters (user_uid, day, %[1]s)
			  VALUES ($1, $2, 1)
			  ON CONFLICT (user_uid, day) DO UPDATE
			  SET %[1]s = usage_counters.%[1]s + 1
			  RETURNING %[1]s`, column)

	var post int
	if err := s.DB.QueryRowContext(ctx, query, userUID, day).Scan(&post); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return post, nil
}
