package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every token validation failure. Malformed,
// forged, expired, and claim-incomplete tokens all collapse into this single
// error so that callers cannot tell which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims carried by session tokens.
// Subject holds the user's email; UserID holds the numeric account id.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed, time-bound token for the given user.
	Generate(userID int64, email string) (string, error)

	// Validate checks the signature, expiry and required claims of a token
	// string. Any failure returns ErrInvalidToken.
	Validate(tokenString string) (*Claims, error)
}
