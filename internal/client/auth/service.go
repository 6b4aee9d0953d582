package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophcart/internal/client/storage"
	"github.com/iudanet/gophcart/internal/validation"
	pkgapi "github.com/iudanet/gophcart/pkg/api"
)

// ErrSessionExpired indicates the stored access token is past its expiry
var ErrSessionExpired = errors.New("session expired, login again")

// AuthAPI is the subset of the HTTP client used by the service
type AuthAPI interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string
}

type service struct {
	apiClient AuthAPI
	storage   storage.AuthStorage
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient AuthAPI, authStorage storage.AuthStorage) Service {
	return &service{
		apiClient: apiClient,
		storage:   authStorage,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию
func (s *service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return auth, nil
}

// Session возвращает сохраненную валидную сессию
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	if auth.Expired(s.now()) {
		// Протухшую сессию сразу удаляем, чтобы следующие команды
		// не спотыкались об нее повторно
		if delErr := s.storage.DeleteAuth(ctx); delErr != nil {
			return nil, fmt.Errorf("failed to drop expired session: %w", delErr)
		}
		return nil, ErrSessionExpired
	}

	return auth, nil
}

// Logout удаляет локальную сессию
// Сервер о logout-е не уведомляется: токен просто истечет сам
func (s *service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
