package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/artcontest/internal/adapter/payment/stub"
	"github.com/heartmarshall/artcontest/internal/adapter/payment/yookassa"
	"github.com/heartmarshall/artcontest/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/application"
	contestrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/contest"
	resultrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/result"
	reviewrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/review"
	"github.com/heartmarshall/artcontest/internal/adapter/storage/s3"
	"github.com/heartmarshall/artcontest/internal/auth"
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
	"github.com/heartmarshall/artcontest/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database and object storage, wires services and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "server")

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("payment_provider", cfg.Payment.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	store, err := s3.New(s3.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		Bucket:        cfg.Storage.Bucket,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		UseSSL:        cfg.Storage.UseSSL,
		PublicBaseURL: cfg.Storage.PublicURL(),
	}, logger)
	if err != nil {
		return err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return err
	}

	gateway, err := NewPaymentGateway(cfg.Payment, logger)
	if err != nil {
		return err
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	contests := contestrepo.New(pool)
	applications := applicationrepo.New(pool)
	results := resultrepo.New(pool)
	reviews := reviewrepo.New(pool)

	// Services.
	uploadSvc := upload.NewService(logger, store)
	contestSvc := contest.NewService(logger, contests)
	applicationSvc := application.NewService(logger, applications, contests, uploadSvc, txm)
	resultSvc := result.NewService(logger, results)
	reviewSvc := review.NewService(logger, reviews)
	paymentSvc := payment.NewService(logger, gateway, applicationSvc, applications, contests, payment.Config{
		ReturnURL: cfg.Payment.ReturnURL,
		Currency:  cfg.Payment.Currency,
	})
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, jwtManager, cfg.Auth)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler, err := NewRouter(RouterConfig{
		Logger:       logger,
		CORS:         cfg.CORS,
		RateLimit:    cfg.RateLimit,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Tokens:       authService,
		Limiter:      limiter,
	}, Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()).WithComponent("storage", store),
		Auth:        rest.NewAuthHandler(authService, logger),
		Contest:     rest.NewContestHandler(contestSvc, logger),
		Application: rest.NewApplicationHandler(applicationSvc, logger),
		Result:      rest.NewResultHandler(resultSvc, logger),
		Review:      rest.NewReviewHandler(reviewSvc, logger),
		Upload:      rest.NewUploadHandler(uploadSvc, logger),
		Payment:     rest.NewPaymentHandler(paymentSvc, logger),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// NewPaymentGateway builds the configured payment gateway.
func NewPaymentGateway(cfg config.PaymentConfig, logger *slog.Logger) (PaymentGateway, error) {
	switch cfg.Provider {
	case "yookassa":
		return yookassa.NewProvider(cfg.APIURL, cfg.ShopID, cfg.SecretKey, cfg.Timeout, logger), nil
	case "stub":
		logger.Warn("using stub payment gateway, payments are not charged")
		return stub.NewGateway(), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}

// serve runs the server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("stopping http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
