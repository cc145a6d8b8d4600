package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
)

// AuthzUseCase is the single role gate in front of provisioning. Every
// protected operation must pass through Authorize before the orchestrator
// runs; there is no row-level enforcement below this point.
type AuthzUseCase struct {
	profileRepo port.ProfileRepository
	logger      *slog.Logger
}

// NewAuthzUseCase creates a new AuthzUseCase instance
func NewAuthzUseCase(profileRepo port.ProfileRepository, logger *slog.Logger) *AuthzUseCase {
	return &AuthzUseCase{
		profileRepo: profileRepo,
		logger:      logger.With("component", "authz_usecase"),
	}
}

// Authorize reports whether the caller holds one of the allowed roles.
// A missing caller is unauthenticated, a caller without a profile or with a
// deactivated profile is refused, and an unlisted role returns (false, nil)
// so the boundary can answer 403 rather than 500.
func (uc *AuthzUseCase) Authorize(ctx context.Context, callerID uuid.UUID, allowed []domain.Role) (bool, error) {
	if callerID == uuid.Nil {
		return false, domain.ErrUnauthenticated
	}

	profile, err := uc.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			uc.logger.Warn("caller has no profile", "caller_id", callerID)
			return false, domain.ErrProfileNotFound
		}
		return false, err
	}

	if !profile.Active {
		uc.logger.Warn("caller profile is deactivated", "caller_id", callerID)
		return false, domain.ErrProfileInactive
	}

	for _, role := range allowed {
		if profile.Role == role {
			return true, nil
		}
	}

	uc.logger.Warn("caller role not permitted",
		"caller_id", callerID,
		"caller_role", profile.Role)
	return false, nil
}
