package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-admin-service/app/domain"
	"school-admin-service/app/utils/logger"
)

// Helper to create a test profile repository with a mocked database
func createTestProfileRepository(t *testing.T) (*ProfileRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProfileRepository(mockDB, testLogger).(*ProfileRepository)

	return repo, mockDB
}

func createTestProfile(t *testing.T, role domain.Role) *domain.Profile {
	t.Helper()

	profile, err := domain.NewProfile(uuid.New(), role, "Jane Mwangi", "+254700000001", "12 Hill Rd")
	require.NoError(t, err)

	return profile
}

func TestProfileRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.Profile
		setupDB  func(pgxmock.PgxPoolIface, *domain.Profile)
		wantErr  bool
		errorMsg string
	}{
		{
			name:    "successful profile creation",
			profile: createTestProfile(t, domain.RoleTeacher),
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectExec("INSERT INTO profiles").
					WithArgs(
						profile.ID,
						string(profile.Role),
						profile.FullName,
						pgxmock.AnyArg(), // phone
						pgxmock.AnyArg(), // address
						profile.Active,
						profile.CreatedAt,
						profile.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: false,
		},
		{
			name:    "database error during profile creation",
			profile: createTestProfile(t, domain.RoleParent),
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectExec("INSERT INTO profiles").
					WithArgs(
						profile.ID,
						string(profile.Role),
						profile.FullName,
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						profile.Active,
						profile.CreatedAt,
						profile.UpdatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to create profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.profile)

			err := repo.Create(context.Background(), tt.profile)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_GetByID(t *testing.T) {
	profileID := uuid.New()
	now := time.Now()
	phone := "+254700000001"

	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  error
		validate func(*testing.T, *domain.Profile)
	}{
		{
			name: "profile found",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{
					"id", "role", "full_name", "phone", "address", "active", "created_at", "updated_at",
				}).AddRow(profileID, "parent", "Halima Yusuf", &phone, (*string)(nil), true, now, now)

				mockDB.ExpectQuery("SELECT (.+) FROM profiles").
					WithArgs(profileID).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, profile *domain.Profile) {
				assert.Equal(t, profileID, profile.ID)
				assert.Equal(t, domain.RoleParent, profile.Role)
				assert.Equal(t, "Halima Yusuf", profile.FullName)
				assert.Equal(t, phone, profile.Phone)
				assert.Empty(t, profile.Address)
				assert.True(t, profile.Active)
			},
		},
		{
			name: "profile not found",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM profiles").
					WithArgs(profileID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			profile, err := repo.GetByID(context.Background(), profileID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
			} else {
				require.NoError(t, err)
				tt.validate(t, profile)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	profileID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM profiles").
			WithArgs(profileID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.Delete(context.Background(), profileID)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM profiles").
			WithArgs(profileID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), profileID)

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestProfileRepository_Deactivate(t *testing.T) {
	profileID := uuid.New()

	t.Run("successful deactivate", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE profiles SET active = false").
			WithArgs(profileID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Deactivate(context.Background(), profileID)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE profiles SET active = false").
			WithArgs(profileID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Deactivate(context.Background(), profileID)

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
