// Package models содержит доменные структуры маркетплейса миссий:
// акторов, миссии, планы, подписки, настройки привилегий и счётчики
// использования. Структуры используются в бизнес-логике и при работе
// с хранилищем.
package models

// Role — роль актора в системе.
type Role string

const (
	// RoleWorker — исполнитель, откликается на миссии.
	RoleWorker Role = "WORKER"
	// RoleEstablishment — заведение, публикует миссии.
	RoleEstablishment Role = "ESTABLISHMENT"
	// RoleAdmin — администратор платформы.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin — суперадминистратор.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleVisitor — неаутентифицированный посетитель.
	RoleVisitor Role = "VISITOR"
)

// ValidationStatus — статус модерации учётной записи.
type ValidationStatus string

const (
	// ValidationPending — аккаунт ещё не проверен.
	ValidationPending ValidationStatus = "PENDING"
	// ValidationValidated — аккаунт проверен и подтверждён.
	ValidationValidated ValidationStatus = "VALIDATED"
	// ValidationRejected — аккаунт отклонён модерацией.
	ValidationRejected ValidationStatus = "REJECTED"
)

// Actor — личность, от имени которой выполняется запрос.
// UserUID пуст для посетителя.
type Actor struct {
	Role             Role
	ValidationStatus ValidationStatus
	UserUID          string
}
