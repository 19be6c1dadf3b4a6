// Package auth содержит логику бизнес-уровня для работы с пользователями
// и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/asanbekov/missionboard/internal/lib/jwt"
	"github.com/asanbekov/missionboard/internal/lib/password"
	"github.com/asanbekov/missionboard/internal/models"
)

// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
// Несуществующий пользователь и неверный пароль наружу не различаются.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени, nil без ошибки —
	// если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service отвечает за регистрацию и авторизацию.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает пользователя с хэшированием пароля. Роль задаётся при
// регистрации, статус модерации всегда PENDING: проверенным аккаунт
// делает только админ.
func (s *Service) Register(ctx context.Context, email, username, rawPassword string, role models.Role) (string, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:            email,
		Username:         username,
		PasswordHash:     hashed,
		Role:             role,
		ValidationStatus: models.ValidationPending,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (token string, user *models.User, err error) {
	const op = "auth.Login"

	user, err = s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err = s.jwtMaker.GenerateToken(user.UID, user.Username, string(user.Role), string(user.ValidationStatus))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и восстанавливает актора запроса.
func (s *Service) ValidateToken(_ context.Context, token string) (*models.Actor, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.Actor{
		Role:             models.Role(claims.Role),
		ValidationStatus: models.ValidationStatus(claims.ValidationStatus),
		UserUID:          claims.UserUID,
	}, nil
}
