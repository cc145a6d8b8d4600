package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"github.com/google/uuid"

	"school-admin-service/app/domain"
)

// KratosClient defines the low-level identity store operations implemented
// by the kratos driver adapter.
type KratosClient interface {
	CreateIdentity(ctx context.Context, input domain.NewIdentityInput) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
	GetIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error)
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
	ResolveSession(ctx context.Context, sessionToken string) (uuid.UUID, error)
}

// IdentityGateway defines the identity store interface the orchestrator and
// the API boundary consume.
type IdentityGateway interface {
	CreateIdentity(ctx context.Context, input domain.NewIdentityInput) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
	GetIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error)
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
	ResolveSession(ctx context.Context, sessionToken string) (uuid.UUID, error)
}
