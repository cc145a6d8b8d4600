package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the usecases and the kratos
// driver, adding logging and keeping domain sentinels intact on the way up.
type IdentityGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(kratosClient port.KratosClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "identity_gateway"),
	}
}

// CreateIdentity creates a sign-in-capable identity in the identity store
func (g *IdentityGateway) CreateIdentity(ctx context.Context, input domain.NewIdentityInput) (*domain.Identity, error) {
	g.logger.Info("creating identity", "email", input.Email)

	if err := input.Validate(); err != nil {
		g.logger.Error("identity input validation failed",
			"email", input.Email,
			"error", err)
		return nil, fmt.Errorf("identity input validation failed: %w", err)
	}

	identity, err := g.kratosClient.CreateIdentity(ctx, input)
	if err != nil {
		g.logger.Error("failed to create identity",
			"email", input.Email,
			"error", err)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	g.logger.Info("identity created successfully",
		"identity_id", identity.ID,
		"email", identity.Email)

	return identity, nil
}

// DeleteIdentity removes an identity from the identity store
func (g *IdentityGateway) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	g.logger.Info("deleting identity", "identity_id", identityID)

	if err := g.kratosClient.DeleteIdentity(ctx, identityID); err != nil {
		g.logger.Error("failed to delete identity",
			"identity_id", identityID,
			"error", err)
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	g.logger.Info("identity deleted successfully", "identity_id", identityID)
	return nil
}

// GetIdentity retrieves an identity by ID
func (g *IdentityGateway) GetIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error) {
	identity, err := g.kratosClient.GetIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, err
		}
		g.logger.Error("failed to retrieve identity",
			"identity_id", identityID,
			"error", err)
		return nil, fmt.Errorf("failed to retrieve identity: %w", err)
	}

	return identity, nil
}

// FindIdentityByEmail looks up an identity by its credential email
func (g *IdentityGateway) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identity, err := g.kratosClient.FindIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, err
		}
		g.logger.Error("failed to look up identity by email",
			"email", email,
			"error", err)
		return nil, fmt.Errorf("failed to look up identity by email: %w", err)
	}

	return identity, nil
}

// ResolveSession resolves a session token to the caller's identity ID
func (g *IdentityGateway) ResolveSession(ctx context.Context, sessionToken string) (uuid.UUID, error) {
	if sessionToken == "" {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	identityID, err := g.kratosClient.ResolveSession(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return uuid.Nil, err
		}
		g.logger.Error("failed to resolve session", "error", err)
		return uuid.Nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return identityID, nil
}
