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

	"github.com/hopmate/hopmate/internal/server/auth"
	"github.com/hopmate/hopmate/internal/server/config"
	"github.com/hopmate/hopmate/internal/server/handlers"
	"github.com/hopmate/hopmate/internal/server/jwt"
	"github.com/hopmate/hopmate/internal/server/middleware"
	"github.com/hopmate/hopmate/internal/server/seed"
	"github.com/hopmate/hopmate/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("hopmate-server", flag.ExitOnError)
	showVersion := fs.Bool("version", false, "Show version information")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")

	cfg, err := loadConfig(fs, showVersion)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	logger := newLogger(*logLevel)
	logger.Info("starting hopmate server",
		"version", Version,
		"address", cfg.Address)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	seeder := seed.New(logger, store, store)
	if err := seeder.Run(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	jwtCfg := jwt.Config{
		Secret:          []byte(cfg.JWTSecret),
		Issuer:          cfg.JWTIssuer,
		Audience:        cfg.JWTAudience,
		AccessTokenTTL:  cfg.AccessTokenTTL(),
		RefreshTokenTTL: cfg.RefreshTokenTTL(),
	}

	issuer := auth.NewTokenIssuer(jwtCfg, store, store)
	service := auth.NewService(store, issuer)

	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:     handlers.NewAuthHandler(logger, service),
		User:     handlers.NewUserHandler(logger, store),
		Color:    handlers.NewColorHandler(logger, store),
		Vehicle:  handlers.NewVehicleHandler(logger, store, store),
		Health:   handlers.NewHealthHandler(logger),
		AuthMW:   middleware.Auth(logger, jwtCfg),
		Recovery: middleware.Recovery(logger),
		Logging:  middleware.Logging(logger),
	})

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", cfg.Address)
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

	logger.Info("server stopped")
	return nil
}

// loadConfig parses flags and the environment. Returns (nil, nil) when the
// version flag short-circuits startup.
func loadConfig(fs *flag.FlagSet, showVersion *bool) (*config.Config, error) {
	cfg, err := config.Load(fs, os.Args[1:])
	if *showVersion {
		printVersion()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

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
	fmt.Printf("Hopmate Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
