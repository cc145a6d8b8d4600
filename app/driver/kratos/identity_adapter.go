package kratos

import (
	"fmt"
	"log/slog"
	"net/http"

	"context"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
)

// IdentityAdapter adapts the kratos Client to implement port.KratosClient
type IdentityAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityAdapter creates a new adapter
func NewIdentityAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &IdentityAdapter{
		client: client,
		logger: logger.With("component", "kratos_identity_adapter"),
	}
}

// CreateIdentity creates a sign-in-capable identity with a password
// credential and a pre-verified email address.
func (a *IdentityAdapter) CreateIdentity(ctx context.Context, input domain.NewIdentityInput) (*domain.Identity, error) {
	a.logger.Info("creating identity in Kratos", "email", input.Email)

	body := kratosclient.CreateIdentityBody{
		SchemaId: a.client.SchemaID(),
		Traits: map[string]interface{}{
			"email": input.Email,
			"name":  input.FullName,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: kratosclient.PtrString(input.TemporaryPassword),
				},
			},
		},
		VerifiableAddresses: []kratosclient.VerifiableIdentityAddress{
			{
				Value:    input.Email,
				Verified: true,
				Via:      "email",
				Status:   "completed",
			},
		},
	}

	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"email", input.Email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "create_identity")
	}

	identity, err := identityToDomain(resp)
	if err != nil {
		return nil, err
	}

	a.logger.Info("identity created", "identity_id", identity.ID, "email", identity.Email)
	return identity, nil
}

// DeleteIdentity removes an identity from the store. Used as a compensating
// action when a later provisioning step fails.
func (a *IdentityAdapter) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	a.logger.Info("deleting identity in Kratos", "identity_id", identityID)

	httpResp, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, identityID.String()).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity deletion failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return transformKratosError(err, httpResp, "delete_identity")
	}

	a.logger.Info("identity deleted", "identity_id", identityID)
	return nil
}

// GetIdentity looks an identity up by id
func (a *IdentityAdapter) GetIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error) {
	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, identityID.String()).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity lookup failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "get_identity")
	}

	return identityToDomain(resp)
}

// FindIdentityByEmail looks up an identity by its credential identifier.
// Returns domain.ErrIdentityNotFound when no identity carries the email.
func (a *IdentityAdapter) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identities, httpResp, err := a.client.AdminAPI().IdentityAPI.
		ListIdentities(ctx).
		CredentialsIdentifier(email).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity search failed",
			"email", email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "find_identity_by_email")
	}

	if len(identities) == 0 {
		return nil, domain.ErrIdentityNotFound
	}

	return identityToDomain(&identities[0])
}

// ResolveSession resolves a session token to the caller's identity id
func (a *IdentityAdapter) ResolveSession(ctx context.Context, sessionToken string) (uuid.UUID, error) {
	session, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()

	if err != nil {
		a.logger.Warn("session resolution failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return uuid.Nil, domain.ErrUnauthenticated
	}

	if session.Active != nil && !*session.Active {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	if session.Identity == nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	identityID, err := uuid.Parse(session.Identity.Id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed identity id in session: %w", err)
	}

	return identityID, nil
}

// identityToDomain maps a Kratos identity to the domain projection
func identityToDomain(identity *kratosclient.Identity) (*domain.Identity, error) {
	id, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("malformed identity id %q: %w", identity.Id, err)
	}

	result := &domain.Identity{ID: id}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			result.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			result.FullName = name
		}
	}

	for _, addr := range identity.VerifiableAddresses {
		if addr.Value == result.Email && addr.Verified {
			result.EmailVerified = true
		}
	}

	return result, nil
}

// getHTTPStatus safely extracts the status code for logging
func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
