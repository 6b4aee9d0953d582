package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/gophcart/internal/server/config"
	"github.com/iudanet/gophcart/internal/server/handlers"
	"github.com/iudanet/gophcart/internal/server/middleware"
	"github.com/iudanet/gophcart/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем хранилище; миграции применяются при старте
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           buildHandler(logger, cfg, store, jwtConfig),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("address", cfg.Address),
			slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

// buildHandler собирает роутер и цепочку middleware
func buildHandler(logger *slog.Logger, cfg *config.Config, store *sqlite.Storage, jwtConfig handlers.JWTConfig) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	cartHandler := handlers.NewCartHandler(logger, store)
	productsHandler := handlers.NewProductsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store.DB(), Version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	// Публичные endpoint-ы
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/products/{id}", productsHandler.Get)
	mux.HandleFunc("GET /api/v1/products", productsHandler.List)

	// Заведение товаров требует аутентификации
	mux.Handle("POST /api/v1/products", requireAuth(http.HandlerFunc(productsHandler.Create)))

	// Корзина доступна только аутентифицированным пользователям
	mux.Handle("GET /api/v1/cart", requireAuth(http.HandlerFunc(cartHandler.Get)))
	mux.Handle("POST /api/v1/cart/add", requireAuth(http.HandlerFunc(cartHandler.Add)))
	mux.Handle("PUT /api/v1/cart/update", requireAuth(http.HandlerFunc(cartHandler.Update)))
	mux.Handle("DELETE /api/v1/cart/remove", requireAuth(http.HandlerFunc(cartHandler.Remove)))
	mux.Handle("DELETE /api/v1/cart/clear", requireAuth(http.HandlerFunc(cartHandler.Clear)))

	// Логин и регистрацию лимитируем жестче остального API
	authLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/login", Rate: 10, Window: time.Minute},
		{Path: "/api/v1/auth/register", Rate: 10, Window: time.Minute},
	}

	var handler http.Handler = mux
	handler = middleware.RateLimitByPathMiddleware(authLimits, cfg.RateLimit, cfg.RateLimitWindow, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

// newLogger создает slog logger с уровнем из конфига
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("GophCart Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
