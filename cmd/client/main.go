package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/scopekeeper/internal/client/api"
	"github.com/iudanet/scopekeeper/internal/client/auth"
	"github.com/iudanet/scopekeeper/internal/client/cli"
	"github.com/iudanet/scopekeeper/internal/client/data"
	"github.com/iudanet/scopekeeper/internal/client/iocli"
	"github.com/iudanet/scopekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/scopekeeper/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	watchInterval = 30 * time.Second
	staleAfter    = time.Hour
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOrDefault("SCOPEKEEPER_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOrDefault("SCOPEKEEPER_DB", "scopekeeper.db"), "Path to local database")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// CLI общается с пользователем через stdout, поэтому логи по
	// умолчанию глушим и включаем только по флагу
	logOutput := io.Discard
	if *verbose {
		logOutput = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// Контекст отменяется по Ctrl+C, чтобы watch завершался чисто
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы клиента
	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, boltStorage, boltStorage)
	dataService := data.NewService(boltStorage, boltStorage, boltStorage)
	coordinator := sync.NewCoordinator(boltStorage, boltStorage, apiClient, logger)
	scheduler := sync.NewScheduler(coordinator, boltStorage, watchInterval, staleAfter, logger)

	c := cli.New(iocli.NewStdio(), *serverURL, authService, dataService, boltStorage, coordinator, scheduler)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envOrDefault возвращает значение переменной окружения или дефолт
func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("ScopeKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
