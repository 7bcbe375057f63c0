package auth

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/artcontest/internal/auth"
	"github.com/heartmarshall/artcontest/internal/config"
)

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(subject, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// SubjectPrefix marks admin subjects inside access tokens.
const SubjectPrefix = "admin:"

// Service implements admin authentication.
type Service struct {
	log          *slog.Logger
	jwt          jwtManager
	login        string
	passwordHash []byte
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:          logger.With("service", "auth"),
		jwt:          jwt,
		login:        cfg.AdminLogin,
		passwordHash: []byte(cfg.AdminPasswordHash),
	}
}
