// Package services содержит логику бизнес-уровня для регистрации,
// аутентификации пользователей и проверки токенов доступа.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/auth-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/auth-backend/internal/lib/password"
	"github.com/magabrotheeeer/auth-backend/internal/models"
	"github.com/magabrotheeeer/auth-backend/internal/storage"
)

// Ошибки бизнес-уровня, по которым обработчики выбирают статус ответа.
var (
	// ErrUserExists — email уже занят.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Намеренно одна ошибка на оба случая, чтобы по ответу нельзя было
	// перебирать зарегистрированные адреса.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен повреждён, просрочен, подписан чужим ключом
	// или ссылается на несуществующего пользователя.
	ErrInvalidToken = errors.New("invalid token")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email вместе с хэшем пароля.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUID возвращает пользователя по UID без хэша пароля.
	GetUserByUID(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку токенов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу
// выпускает для него токен доступа.
//
// Предварительная проверка email дает понятную ошибку в обычном случае,
// но гарантию уникальности обеспечивает ограничение в базе: гонка между
// проверкой и вставкой тоже завершается ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Register"

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, "", ErrUserExists
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid

	token, err := s.jwtMaker.GenerateToken(uid)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и выпускает свежий токен доступа
// с новым сроком жизни.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Authenticate проверяет токен и возвращает пользователя из хранилища.
//
// Токен с валидной подписью, но с Subject удаленной учётной записи,
// отклоняется как ErrInvalidToken: запрос не должен продолжаться
// с пустым пользователем.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.Authenticate"

	uid, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user, err := s.users.GetUserByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
