// Package app wires configuration, storage, services and the HTTP server
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres/account"
	activityrepo "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres/activity"
	clientrepo "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres/client"
	"github.com/heartmarshall/agencydesk-backend/internal/adapter/storage"
	"github.com/heartmarshall/agencydesk-backend/internal/auth"
	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	activitysvc "github.com/heartmarshall/agencydesk-backend/internal/service/activity"
	"github.com/heartmarshall/agencydesk-backend/internal/service/agency"
	authsvc "github.com/heartmarshall/agencydesk-backend/internal/service/auth"
	"github.com/heartmarshall/agencydesk-backend/internal/service/directory"
	"github.com/heartmarshall/agencydesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/agencydesk-backend/internal/transport/rest"
)

// Options tweak a server run.
type Options struct {
	// Migrate applies pending migrations before serving.
	Migrate bool
}

// Run loads configuration, connects to the database and export storage,
// and serves the API until ctx is cancelled. Shutdown is graceful within
// the configured timeout.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Type),
	)

	if opts.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect database: %w", err)
	}
	defer pool.Close()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("app: export storage: %w", err)
	}

	svc := NewServices(logger, pool, store, cfg)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHTTPHandler(logger, cfg, svc.Auth, limiter, rest.Handlers{
		Health:   rest.NewHealthHandler(pool, Version),
		Auth:     rest.NewAuthHandler(svc.Auth, svc.Agency, logger),
		Clients:  rest.NewClientHandler(svc.Directory, logger),
		Activity: rest.NewActivityHandler(svc.Activity, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return <-errCh
}

// Services are the application services shared by the server and the
// command line tools.
type Services struct {
	Auth      *authsvc.Service
	Agency    *agency.Service
	Directory *directory.Service
	Activity  *activitysvc.Service
}

// NewServices builds the services on top of one connection pool.
func NewServices(logger *slog.Logger, db *pgxpool.Pool, store storage.Storage, cfg *config.Config) *Services {
	txm := postgres.NewTxManager(db)
	accounts := accountrepo.New(db)
	clients := clientrepo.New(db)
	activities := activityrepo.New(db)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Services{
		Auth:      authsvc.NewService(logger, accounts, jwt, cfg.Auth),
		Agency:    agency.NewService(logger, accounts, cfg.Directory),
		Directory: directory.NewService(logger, clients, activities, txm, store, cfg.Directory),
		Activity:  activitysvc.NewService(logger, activities, cfg.Directory),
	}
}

// tokenValidator resolves bearer tokens for the auth middleware.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// NewHTTPHandler mounts the gin router behind the net/http middleware
// chain. Sign-in and sign-up get their own, stricter rate limit.
func NewHTTPHandler(logger *slog.Logger, cfg *config.Config, validator tokenValidator, limiter *middleware.RateLimiter, h rest.Handlers) http.Handler {
	router := rest.NewRouter(h)

	mux := http.NewServeMux()
	mux.Handle(rest.APIPrefix+"/auth/register", limiter.Limit(cfg.RateLimit.AuthPerMinute)(router))
	mux.Handle(rest.APIPrefix+"/auth/login", limiter.Limit(cfg.RateLimit.AuthPerMinute)(router))
	mux.Handle("/", router)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		middleware.Auth(validator),
	)(mux)
}
