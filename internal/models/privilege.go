package models

import "time"

// SettingCategory — категория настройки привилегий.
type SettingCategory string

const (
	// CategoryGlobal — настройки, действующие для всех ролей.
	CategoryGlobal SettingCategory = "GLOBAL"
	// CategoryWorker — настройки исполнителей.
	CategoryWorker SettingCategory = "WORKER"
	// CategoryEstablishment — настройки заведений.
	CategoryEstablishment SettingCategory = "ESTABLISHMENT"
	// CategoryAdmin — служебные настройки администраторов.
	CategoryAdmin SettingCategory = "ADMIN"
)

// SettingCategories — закрытый список категорий. По нему перечисляются
// ключи кеша привилегий при полной очистке.
var SettingCategories = []SettingCategory{
	CategoryGlobal,
	CategoryWorker,
	CategoryEstablishment,
	CategoryAdmin,
}

// PrivilegeSetting — одна настраиваемая администратором привилегия.
// Значение хранится строкой и типизируется при каждом чтении,
// отдельной колонки типа нет.
type PrivilegeSetting struct {
	Key       string          // Уникальный ключ настройки
	Value     string          // Сырое строковое значение
	Category  SettingCategory // Категория настройки
	UpdatedBy *string         // UID администратора, сделавшего последнее изменение
	UpdatedAt time.Time       // Время последнего изменения
}
