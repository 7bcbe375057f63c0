package auth

import "time"

// AuthResult holds an issued access token.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
}
