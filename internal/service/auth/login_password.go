package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// LoginWithPassword authenticates the administrator and issues an access token.
// Returns ErrUnauthorized if the login is unknown or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Login = strings.TrimSpace(input.Login)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	loginOK := subtle.ConstantTimeCompare([]byte(input.Login), []byte(s.login)) == 1
	// The hash is compared even for an unknown login to keep timing uniform.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
	if !loginOK || passErr != nil {
		s.log.WarnContext(ctx, "admin login rejected", slog.String("login", input.Login))
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.jwt.GenerateAccessToken(SubjectPrefix+input.Login, string(domain.UserRoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("login", input.Login))

	return &AuthResult{AccessToken: token, ExpiresAt: expires}, nil
}
