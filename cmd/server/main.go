package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/dailydiet/internal/api"
	"github.com/mmynk/dailydiet/internal/auth"
	"github.com/mmynk/dailydiet/internal/config"
	"github.com/mmynk/dailydiet/internal/service"
	"github.com/mmynk/dailydiet/internal/storage/postgres"
	"github.com/mmynk/dailydiet/internal/storage/sqlite"
	"github.com/mmynk/dailydiet/internal/storage/sqlstore"
	"github.com/mmynk/dailydiet/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logging.Setup()

	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "client", cfg.DatabaseClient, "env", cfg.Env)

	jwtManager := auth.NewJWTManager(cfg.AuthSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	router := api.NewRouter(api.Deps{
		Users:  service.NewUserService(authenticator, jwtManager, slog.Default()),
		Meals:  service.NewMealService(store),
		Tokens: jwtManager,
		Health: store,
		Logger: slog.Default(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (*sqlstore.Store, error) {
	if cfg.DatabaseClient == config.ClientPostgres {
		return postgres.New(ctx, cfg.DatabaseURL)
	}
	return sqlite.New(cfg.DatabaseURL)
}
