package auth

import (
	"context"

	"github.com/iudanet/gophcart/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the interface for account and session operations
//
// Сессия хранится локально в client storage: один активный пользователь
// на машину. Повторный логин замещает предыдущую сессию.
type Service interface {
	// Register регистрирует нового пользователя
	// Сессию не открывает - после регистрации нужен Login
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию в хранилище
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)

	// Session возвращает сохраненную валидную сессию
	// Возвращает storage.ErrAuthNotFound если сессии нет и
	// ErrSessionExpired если срок токена истек
	Session(ctx context.Context) (*storage.AuthData, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error
}
