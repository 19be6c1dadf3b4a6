// Package privilege содержит бизнес-логику настраиваемых администратором
// привилегий: пороговых значений и флагов возможностей, которые читаются
// остальными сервисами как динамическая конфигурация.
package privilege

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/asanbekov/missionboard/internal/lib/settingvalue"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/models"
)

// cacheTTL — время жизни кешированной карты привилегий. Staleness
// проверяется лениво при чтении, фоновых обновлений нет.
const cacheTTL = 5 * time.Minute

// defaultSettings — зашитые значения по умолчанию. Строки из хранилища
// перекрывают их; при недоступном хранилище отдаются только они.
var defaultSettings = map[string]string{
	"worker_visibility_delay_hours":     "48",
	"worker_urgent_access_premium_only": "true",
	"worker_free_applications_limit":    "3",
	"worker_recommendations_limit":      "3",
	"estab_free_missions_limit":         "3",
	"estab_urgent_post_premium_only":    "true",
	"review_period_days":                "7",
}

// categoryPrefixes — префиксы ключей по категориям. Фильтр по категории
// сужает и набор значений по умолчанию; GLOBAL и вызов без фильтра
// возвращают всё.
var categoryPrefixes = map[models.SettingCategory]string{
	models.CategoryWorker:        "worker_",
	models.CategoryEstablishment: "estab_",
	models.CategoryAdmin:         "admin_",
}

// SettingsRepository определяет методы хранилища настроек привилегий.
type SettingsRepository interface {
	// ListSettings возвращает строки настроек, при category == nil — все.
	ListSettings(ctx context.Context, category *models.SettingCategory) ([]models.PrivilegeSetting, error)
	// UpsertSettings вставляет или обновляет строки в одной транзакции.
	UpsertSettings(ctx context.Context, settings []models.PrivilegeSetting) error
}

// Cache описывает методы для кеширования карт привилегий.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Store реализует чтение и запись привилегий поверх хранилища и кеша.
// Кеш принадлежит экземпляру Store, глобального состояния нет.
type Store struct {
	repo  SettingsRepository
	cache Cache
	log   *slog.Logger
}

// NewStore создает новый экземпляр Store.
func NewStore(repo SettingsRepository, cache Cache, log *slog.Logger) *Store {
	return &Store{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Defaults возвращает типизированную копию значений по умолчанию.
func Defaults() map[string]settingvalue.Value {
	return defaultsFor(nil)
}

func defaultsFor(category *models.SettingCategory) map[string]settingvalue.Value {
	result := make(map[string]settingvalue.Value, len(defaultSettings))
	var prefix string
	if category != nil {
		prefix = categoryPrefixes[*category]
	}
	for key, raw := range defaultSettings {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		result[key] = settingvalue.Parse(raw)
	}
	return result
}

func cacheKey(category *models.SettingCategory) string {
	if category == nil {
		return "privileges:ALL"
	}
	return fmt.Sprintf("privileges:%s", *category)
}

// allCacheKeys — полный список ключей кеша привилегий. Категории — закрытое
// множество, поэтому полная очистка кеша сводится к удалению этих ключей.
func allCacheKeys() []string {
	keys := make([]string, 0, len(models.SettingCategories)+1)
	keys = append(keys, cacheKey(nil))
	for _, c := range models.SettingCategories {
		category := c
		keys = append(keys, cacheKey(&category))
	}
	return keys
}

// GetPrivileges возвращает карту привилегий: значения по умолчанию,
// перекрытые строками хранилища для категории (или всеми строками без
// фильтра). Ошибки хранилища не всплывают: логируются, и вызывающий
// получает значения по умолчанию.
func (s *Store) GetPrivileges(ctx context.Context, category *models.SettingCategory) map[string]settingvalue.Value {
	const op = "privilege.GetPrivileges"
	key := cacheKey(category)

	var cached map[string]settingvalue.Value
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read privileges cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return cached
	}

	merged := defaultsFor(category)
	rows, err := s.repo.ListSettings(ctx, category)
	if err != nil {
		s.log.Error("failed to read privilege settings, serving defaults",
			slog.String("op", op), sl.Err(err))
		return merged
	}
	for _, row := range rows {
		merged[row.Key] = settingvalue.Parse(row.Value)
	}

	if err := s.cache.Set(key, merged, cacheTTL); err != nil {
		s.log.Warn("failed to cache privileges", slog.String("key", key), sl.Err(err))
	}
	return merged
}

// GetPrivilege возвращает значение одной привилегии и признак её наличия.
// Отсутствие ключа означает «возможность не настроена», не ошибку.
func (s *Store) GetPrivilege(ctx context.Context, key string) (settingvalue.Value, bool) {
	privileges := s.GetPrivileges(ctx, nil)
	value, ok := privileges[key]
	if ok {
		return value, true
	}
	if raw, ok := defaultSettings[key]; ok {
		return settingvalue.Parse(raw), true
	}
	return settingvalue.Value{}, false
}

// SetPrivilege вставляет или обновляет одну привилегию и полностью
// очищает кеш.
func (s *Store) SetPrivilege(ctx context.Context, key, value string, category models.SettingCategory, updatedBy *string) error {
	return s.SetPrivileges(ctx, map[string]string{key: value}, category, updatedBy)
}

// SetPrivileges вставляет или обновляет набор привилегий в одной
// транзакции. Кеш очищается целиком, а не только затронутая категория:
// ключ может читаться и через нефильтрованную карту.
func (s *Store) SetPrivileges(ctx context.Context, updates map[string]string, category models.SettingCategory, updatedBy *string) error {
	const op = "privilege.SetPrivileges"
	if len(updates) == 0 {
		return nil
	}

	settings := make([]models.PrivilegeSetting, 0, len(updates))
	for key, value := range updates {
		settings = append(settings, models.PrivilegeSetting{
			Key:       key,
			Value:     value,
			Category:  category,
			UpdatedBy: updatedBy,
		})
	}

	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated privilege settings", slog.Int("count", len(settings)),
		slog.String("category", string(category)))

	s.InvalidateCache()
	return nil
}

// InvalidateCache немедленно очищает кеш привилегий по всем категориям.
func (s *Store) InvalidateCache() {
	for _, key := range allCacheKeys() {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate privileges cache", slog.String("key", key), sl.Err(err))
		}
	}
}
