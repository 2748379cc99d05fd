package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the access
// tokens handed out by the login endpoint. The actor carried in a token is
// the client ID; permissions are always resolved fresh from the store, so
// no role data rides in the token itself.
type TokenService interface {
	// GenerateAccessToken creates a signed token for the given client.
	GenerateAccessToken(clientID uuid.UUID) (string, error)

	// ValidateAccessToken checks a token string and returns the client ID
	// it was issued to.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}
