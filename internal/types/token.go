package types

import (
	"github.com/google/uuid"
)

// TokenClaims represents the claims carried by an access token after
// validation.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
