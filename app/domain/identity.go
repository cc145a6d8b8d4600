package domain

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"
)

// Identity is the projection of a sign-in-capable account in the external
// identity store. The credential is write-only and never read back.
type Identity struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	EmailVerified bool      `json:"email_verified"`
}

// NewIdentityInput carries everything needed to create an identity.
// TemporaryPassword is handed back to the caller exactly once for
// out-of-band delivery and is never stored by this service.
type NewIdentityInput struct {
	Email             string
	FullName          string
	TemporaryPassword string
}

// Validate checks the input before any remote call is made
func (in NewIdentityInput) Validate() error {
	if in.Email == "" {
		return fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}

	if in.FullName == "" {
		return fmt.Errorf("full name is required")
	}

	if in.TemporaryPassword == "" {
		return fmt.Errorf("temporary password is required")
	}

	return nil
}
