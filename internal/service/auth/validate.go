package auth

import (
	"context"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ValidateToken verifies an access token and returns its subject and role.
func (s *Service) ValidateToken(_ context.Context, token string) (string, string, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	return id.Subject, id.Role, nil
}
