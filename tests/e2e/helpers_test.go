//go:build e2e

package e2e_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/agencydesk-backend/internal/adapter/storage"
	"github.com/heartmarshall/agencydesk-backend/internal/app"
	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/agencydesk-backend/internal/transport/rest"
	"github.com/heartmarshall/agencydesk-backend/pkg/sdk"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			BcryptCost:     4,
		},
		Directory: config.DirectoryConfig{
			PageSize:          3,
			BulkConcurrency:   4,
			ImportBatchSize:   2,
			ActivityRetention: 24 * time.Hour,
			RecentLimit:       5,
			ProfileRetries:    1,
			ProfileRetryDelay: time.Millisecond,
		},
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerMinute: 10000,
			AuthPerMinute:     1000,
			CleanupInterval:   time.Minute,
		},
	}
}

// setupTestServer bootstraps the application stack backed by the shared
// PostgreSQL container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig(t)

	store, err := storage.New(context.Background(), cfg.Storage)
	require.NoError(t, err)

	svc := app.NewServices(logger, pool, store, cfg)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	handler := app.NewHTTPHandler(logger, cfg, svc.Auth, limiter, rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "e2e"),
		Auth:     rest.NewAuthHandler(svc.Auth, svc.Agency, logger),
		Clients:  rest.NewClientHandler(svc.Directory, logger),
		Activity: rest.NewActivityHandler(svc.Activity, logger),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool}
}

// signUp registers a fresh account and returns an SDK client holding its token.
func (ts *testServer) signUp(t *testing.T, kind domain.AccountKind) (*sdk.Client, domain.Account) {
	t.Helper()

	api := sdk.New(ts.URL)
	email := string(kind) + "-" + uuid.New().String()[:8] + "@example.com"
	res, err := api.Register(context.Background(), email, "s3cret-pass", "E2E "+string(kind), kind)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	return api, res.Account
}

// get issues an authenticated GET outside the SDK.
func (ts *testServer) get(t *testing.T, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
