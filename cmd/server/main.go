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

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/scopekeeper/internal/server/handlers"
	"github.com/iudanet/scopekeeper/internal/server/middleware"
	"github.com/iudanet/scopekeeper/internal/server/storage/sqlite"
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
	addr := flag.String("addr", envOrDefault("SCOPEKEEPER_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOrDefault("SCOPEKEEPER_DB", "scopekeeper-hub.db"), "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", os.Getenv("SCOPEKEEPER_JWT_SECRET"), "JWT signing secret")
	pairingCode := flag.String("pairing-code", os.Getenv("SCOPEKEEPER_PAIRING_CODE"), "Pairing code for new devices")
	tokenTTL := flag.Duration("token-ttl", 30*24*time.Hour, "Access token lifetime")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, *addr, *dbPath, *jwtSecret, *pairingCode, *tokenTTL); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, jwtSecret, pairingCode string, tokenTTL time.Duration) error {
	if jwtSecret == "" {
		return errors.New("jwt secret is required (flag -jwt-secret or SCOPEKEEPER_JWT_SECRET)")
	}
	if pairingCode == "" {
		return errors.New("pairing code is required (flag -pairing-code or SCOPEKEEPER_PAIRING_CODE)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем SQLite storage
	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	// Pairing code хранится только как bcrypt хеш
	pairingHash, err := bcrypt.GenerateFromPassword([]byte(pairingCode), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pairing code: %w", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(jwtSecret),
		AccessTokenTTL: tokenTTL,
	}

	pairHandler := handlers.NewPairHandler(logger, store, jwtConfig, pairingHash, store.ServerDeviceID())
	syncHandler := handlers.NewSyncHandler(logger, store, store, store.ServerDeviceID())
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMiddleware := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/pair", pairHandler.Pair)
	mux.Handle("GET /api/v1/sync/clock", authMiddleware(http.HandlerFunc(syncHandler.Clock)))
	mux.Handle("POST /api/v1/sync/pull", authMiddleware(http.HandlerFunc(syncHandler.Pull)))
	mux.Handle("POST /api/v1/sync/push", authMiddleware(http.HandlerFunc(syncHandler.Push)))

	// Pairing защищен жестким лимитом от перебора кода
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/pair", Rate: 5, Window: 5 * time.Minute},
	}

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			middleware.RateLimitByPathMiddleware(rateLimits, 300, time.Minute, logger)(mux)))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("hub server starting",
			"addr", addr,
			"device_id", store.ServerDeviceID(),
			"version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// envOrDefault возвращает значение переменной окружения или дефолт
func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("ScopeKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
