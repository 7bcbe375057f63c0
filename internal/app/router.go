package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/artcontest/internal/config"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/transport/middleware"
	"github.com/heartmarshall/artcontest/internal/transport/rest"
)

// PaymentGateway is implemented by every payment adapter.
type PaymentGateway interface {
	Name() string
	CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, string, error)
}

// RouterConfig holds the cross-cutting pieces of the HTTP stack.
type RouterConfig struct {
	Logger       *slog.Logger
	CORS         config.CORSConfig
	RateLimit    config.RateLimitConfig
	MaxBodyBytes int64
	Tokens       tokenValidator
	Limiter      *middleware.RateLimiter
}

// Handlers groups the REST handlers served by the router.
type Handlers struct {
	Health      *rest.HealthHandler
	Auth        *rest.AuthHandler
	Contest     *rest.ContestHandler
	Application *rest.ApplicationHandler
	Result      *rest.ResultHandler
	Review      *rest.ReviewHandler
	Upload      *rest.UploadHandler
	Payment     *rest.PaymentHandler
}

// NewRouter builds the HTTP handler: the global middleware chain around a
// method-aware mux. Admin routes are wrapped in AdminOnly; GET /reviews
// decides per request.
func NewRouter(cfg RouterConfig, h Handlers) (http.Handler, error) {
	gzip, err := middleware.Gzip()
	if err != nil {
		return nil, err
	}

	var (
		public = middleware.Chain()
		admin  = middleware.Chain(middleware.AdminOnly)
		submit = middleware.Chain(cfg.Limiter.Limit(cfg.RateLimit.SubmitPerMinute))
		login  = middleware.Chain(cfg.Limiter.Limit(cfg.RateLimit.LoginPerMinute))
		cached = middleware.Chain(gzip)
	)

	mux := http.NewServeMux()

	mux.Handle("GET /live", public.Then(h.Health.Live))
	mux.Handle("GET /ready", public.Then(h.Health.Ready))
	mux.Handle("GET /health", public.Then(h.Health.Health))

	mux.Handle("POST /auth/login", login.Then(h.Auth.Login))

	mux.Handle("GET /contests", rest.BrowserRedirect("contests", public.Then(h.Contest.List)))
	mux.Handle("POST /contests", admin.Then(h.Contest.Create))
	mux.Handle("PUT /contests", admin.Then(h.Contest.Update))
	mux.Handle("DELETE /contests", admin.Then(h.Contest.Delete))

	mux.Handle("GET /applications", admin.Then(h.Application.List))
	mux.Handle("POST /applications", submit.Then(h.Application.Submit))
	mux.Handle("PUT /applications", admin.Then(h.Application.Update))
	mux.Handle("DELETE /applications", admin.Then(h.Application.Delete))

	mux.Handle("GET /results", admin.Then(h.Result.List))
	mux.Handle("POST /results", admin.Then(h.Result.Create))
	mux.Handle("PUT /results", admin.Then(h.Result.Update))
	mux.Handle("DELETE /results", admin.Then(h.Result.Delete))

	mux.Handle("GET /reviews", rest.BrowserRedirect("reviews", public.Then(h.Review.List)))
	mux.Handle("POST /reviews", submit.Then(h.Review.Submit))
	mux.Handle("PUT /reviews", admin.Then(h.Review.SetStatus))
	mux.Handle("DELETE /reviews", admin.Then(h.Review.Delete))

	mux.Handle("POST /upload-file", admin.Then(h.Upload.Upload))

	mux.Handle("POST /payment", submit.Then(h.Payment.Create))
	mux.Handle("POST /payment-webhook", public.Then(h.Payment.Webhook))

	mux.Handle("GET /public-results", cached.Then(h.Result.Public))
	mux.Handle("GET /gallery-works", cached.Then(h.Result.Gallery))

	for path, section := range rest.LegacyPages {
		mux.Handle("GET "+path, rest.LegacyRedirect(section))
	}

	var root http.Handler = mux
	if cfg.MaxBodyBytes > 0 {
		root = http.MaxBytesHandler(mux, cfg.MaxBodyBytes)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(cfg.Tokens),
	)(root), nil
}
