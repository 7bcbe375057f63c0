package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/application"
)

type gateway interface {
	Name() string
	CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
}

type applicationSubmitter interface {
	Submit(ctx context.Context, input application.SubmitInput) (*domain.Application, error)
}

type applicationRepo interface {
	AttachPayment(ctx context.Context, id int64, paymentID string) error
	SetPaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) (*domain.Application, error)
	ListPendingPayments(ctx context.Context, since time.Time) ([]domain.Application, error)
	SoftDelete(ctx context.Context, id int64) error
}

type contestRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Contest, error)
}

// Config holds gateway-independent payment settings.
type Config struct {
	ReturnURL string
	Currency  string
}

// Service creates payment sessions and applies gateway notifications.
type Service struct {
	gateway      gateway
	submitter    applicationSubmitter
	applications applicationRepo
	contests     contestRepo
	cfg          Config
	log          *slog.Logger
}

// NewService creates a new payment service.
func NewService(
	log *slog.Logger,
	gw gateway,
	submitter applicationSubmitter,
	applications applicationRepo,
	contests contestRepo,
	cfg Config,
) *Service {
	return &Service{
		gateway:      gw,
		submitter:    submitter,
		applications: applications,
		contests:     contests,
		cfg:          cfg,
		log:          log.With("service", "payment", "gateway", gw.Name()),
	}
}
