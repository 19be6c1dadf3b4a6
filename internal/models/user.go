package models

import "time"

// User — зарегистрированный пользователь системы.
type User struct {
	UID              string
	Email            string
	Username         string
	PasswordHash     string
	Role             Role
	ValidationStatus ValidationStatus
	CreatedAt        time.Time
}

// AsActor строит актора запроса из учётной записи пользователя.
func (u *User) AsActor() *Actor {
	return &Actor{
		Role:             u.Role,
		ValidationStatus: u.ValidationStatus,
		UserUID:          u.UID,
	}
}
