package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Create inserts a profile row keyed by the identity id
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, role, full_name, phone, address, active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		string(profile.Role),
		profile.FullName,
		nullable(profile.Phone),
		nullable(profile.Address),
		profile.Active,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create profile", "profile_id", profile.ID, "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	r.logger.Info("profile created", "profile_id", profile.ID, "role", profile.Role)
	return nil
}

// GetByID retrieves a profile by its identity id
func (r *ProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT
			id, role, full_name, phone, address, active, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	profile := &domain.Profile{}
	var role string
	var phone, address *string

	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&profile.ID,
		&role,
		&profile.FullName,
		&phone,
		&address,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "profile_id", profileID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Role = domain.Role(role)
	if phone != nil {
		profile.Phone = *phone
	}
	if address != nil {
		profile.Address = *address
	}

	return profile, nil
}

// Deactivate marks a profile inactive; the normal removal path
func (r *ProfileRepository) Deactivate(ctx context.Context, profileID uuid.UUID) error {
	query := `UPDATE profiles SET active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`

	result, err := r.db.Exec(ctx, query, profileID)
	if err != nil {
		r.logger.Error("failed to deactivate profile", "profile_id", profileID, "error", err)
		return fmt.Errorf("failed to deactivate profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile deactivated", "profile_id", profileID)
	return nil
}

// Delete physically removes a profile row. Only the compensation path uses
// this; once a teacher or student record references the profile the row must
// stay.
func (r *ProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, profileID)
	if err != nil {
		r.logger.Error("failed to delete profile", "profile_id", profileID, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile deleted", "profile_id", profileID)
	return nil
}

// nullable converts an empty string to a NULL parameter
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
