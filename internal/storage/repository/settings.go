package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asanbekov/missionboard/internal/models"
)

// ListSettings возвращает строки настроек привилегий, при category == nil — все.
func (s *Storage) ListSettings(ctx context.Context, category *models.SettingCategory) ([]models.PrivilegeSetting, error) {
	const op = "storage.ListSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT key, value, category, updated_by, updated_at
			  FROM privilege_settings`
	args := []any{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, string(*category))
	}
	query += ` ORDER BY key`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var settings []models.PrivilegeSetting
	for rows.Next() {
		var setting models.PrivilegeSetting
		var updatedBy sql.NullString
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.Category,
			&updatedBy, &setting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if updatedBy.Valid {
			setting.UpdatedBy = &updatedBy.String
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return settings, nil
}

// UpsertSettings вставляет или обновляет строки настроек в одной транзакции.
// Либо применяются все строки, либо ни одной.
func (s *Storage) UpsertSettings(ctx context.Context, settings []models.PrivilegeSetting) error {
	const op = "storage.UpsertSettings"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO privilege_settings (key, value, category, updated_by, updated_at)
			  VALUES ($1, $2, $3, $4, now())
			  ON CONFLICT (key) DO UPDATE
			  SET value = EXCLUDED.value,
			      category = EXCLUDED.category,
			      updated_by = EXCLUDED.updated_by,
			      updated_at = now()`
	for _, setting := range settings {
		if _, err := tx.ExecContext(ctx, query,
			setting.Key, setting.Value, string(setting.Category), setting.UpdatedBy); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
