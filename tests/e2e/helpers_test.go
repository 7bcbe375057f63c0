//go:build e2e

package e2e_test

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/artcontest/internal/adapter/payment/stub"
	"github.com/heartmarshall/artcontest/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/application"
	contestrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/contest"
	resultrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/result"
	reviewrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/review"
	"github.com/heartmarshall/artcontest/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/artcontest/internal/app"
	authpkg "github.com/heartmarshall/artcontest/internal/auth"
	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/config"
	"github.com/heartmarshall/artcontest/internal/service/application"
	authsvc "github.com/heartmarshall/artcontest/internal/service/auth"
	"github.com/heartmarshall/artcontest/internal/service/contest"
	"github.com/heartmarshall/artcontest/internal/service/payment"
	"github.com/heartmarshall/artcontest/internal/service/result"
	"github.com/heartmarshall/artcontest/internal/service/review"
	"github.com/heartmarshall/artcontest/internal/service/upload"
	"github.com/heartmarshall/artcontest/internal/transport/middleware"
	"github.com/heartmarshall/artcontest/internal/transport/rest"
	"github.com/heartmarshall/artcontest/pkg/api"
)

const (
	adminLogin    = "admin"
	adminPassword = "correct horse battery staple"
	returnURL     = "https://art.example.com/payment-success"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Storage *memStorage
	Gateway *stub.Gateway
	Payment *payment.Service
	logger  *slog.Logger
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// memStorage keeps uploaded objects in memory in place of the bucket.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *memStorage) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return "https://storage.example.com/bucket/" + key, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStorage) Ping(context.Context) error { return nil }

func (s *memStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		JWTSecret:         "test-secret-at-least-32-chars-long!!",
		JWTIssuer:         "artcontest-e2e",
		AccessTokenTTL:    15 * time.Minute,
		AdminLogin:        adminLogin,
		AdminPasswordHash: string(hash),
	}

	store := &memStorage{objects: make(map[string][]byte)}
	gateway := stub.NewGateway()

	txm := postgres.NewTxManager(pool)
	contests := contestrepo.New(pool)
	applications := applicationrepo.New(pool)
	results := resultrepo.New(pool)
	reviews := reviewrepo.New(pool)

	uploadSvc := upload.NewService(logger, store)
	contestSvc := contest.NewService(logger, contests)
	applicationSvc := application.NewService(logger, applications, contests, uploadSvc, txm)
	resultSvc := result.NewService(logger, results)
	reviewSvc := review.NewService(logger, reviews)
	paymentSvc := payment.NewService(logger, gateway, applicationSvc, applications, contests, payment.Config{
		ReturnURL: returnURL,
		Currency:  "RUB",
	})
	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, jwtManager, authCfg)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler, err := app.NewRouter(app.RouterConfig{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{
			SubmitPerMinute: 1000,
			LoginPerMinute:  1000,
			CleanupInterval: time.Minute,
		},
		MaxBodyBytes: 1 << 20,
		Tokens:       authService,
		Limiter:      limiter,
	}, app.Handlers{
		Health:      rest.NewHealthHandler(pool, "e2e").WithComponent("storage", store),
		Auth:        rest.NewAuthHandler(authService, logger),
		Contest:     rest.NewContestHandler(contestSvc, logger),
		Application: rest.NewApplicationHandler(applicationSvc, logger),
		Result:      rest.NewResultHandler(resultSvc, logger),
		Review:      rest.NewReviewHandler(reviewSvc, logger),
		Upload:      rest.NewUploadHandler(uploadSvc, logger),
		Payment:     rest.NewPaymentHandler(paymentSvc, logger),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Storage: store,
		Gateway: gateway,
		Payment: paymentSvc,
		logger:  logger,
	}
}

// anonymous returns an API client without a token.
func (ts *testServer) anonymous() *client.Client {
	return client.New(ts.URL, client.WithHTTPClient(ts.Client), client.WithLogger(ts.logger))
}

// admin returns an API client logged in as the configured admin.
func (ts *testServer) admin(t *testing.T) *client.Client {
	t.Helper()
	c := ts.anonymous()
	_, err := c.Login(context.Background(), adminLogin, adminPassword)
	require.NoError(t, err)
	return c
}

// createContest creates an open contest through the API.
func createContest(t *testing.T, c *client.Client, title string, price int) int64 {
	t.Helper()
	created, err := c.Contests().Create(context.Background(), api.ContestRequest{
		Title:       title,
		Description: "Drawings of the season",
		CategoryID:  "drawing",
		Deadline:    time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		Price:       &price,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	return created.ID
}

// submission builds a valid public application for contestID.
func submission(contestID int64, name string) api.ApplicationRequest {
	return api.ApplicationRequest{
		FullName:       name,
		Age:            10,
		WorkTitle:      "Autumn forest",
		Email:          "parent@example.com",
		ContestID:      &contestID,
		GalleryConsent: true,
		WorkFile:       "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		FileName:       "forest.png",
		FileType:       "image/png",
	}
}

// alwaysYes confirms every prompt; notes are discarded.
type alwaysYes struct{}

func (alwaysYes) Confirm(context.Context, string) (bool, error) { return true, nil }
func (alwaysYes) Success(string)                                {}
func (alwaysYes) Error(string)                                  {}
func (alwaysYes) Redirect(context.Context, string) error        { return nil }
