package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/iudanet/gophcart/internal/client/api"
	"github.com/iudanet/gophcart/internal/client/auth"
	"github.com/iudanet/gophcart/internal/client/cart"
	"github.com/iudanet/gophcart/internal/client/catalog"
	"github.com/iudanet/gophcart/internal/client/cli"
	"github.com/iudanet/gophcart/internal/client/engine"
	"github.com/iudanet/gophcart/internal/client/iocli"
	"github.com/iudanet/gophcart/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "gophcart-client.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*serverURL, *dbPath, *verbose, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serverURL, dbPath string, verbose bool, args []string) error {
	ctx := context.Background()

	logger := newLogger(verbose)

	// Локальное хранилище: гостевая корзина и сессия
	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close local database", slog.Any("error", err))
		}
	}()

	apiClient := clientapi.NewClient(serverURL)

	ledger, err := cart.New(ctx, store, logger)
	if err != nil {
		return fmt.Errorf("failed to load local cart: %w", err)
	}

	verifier := catalog.NewVerifier(apiClient, apiClient, logger)
	eng := engine.New(apiClient, verifier, ledger, logger)
	authService := auth.NewService(apiClient, store)

	c := cli.New(authService, eng, apiClient, iocli.NewStdio())

	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("command is required")
	}

	return c.Run(ctx, args[0], args[1:])
}

// newLogger создает logger клиента
// Без -verbose клиент пишет только ошибки, чтобы не засорять вывод команд
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printVersion() {
	fmt.Printf("GophCart Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
