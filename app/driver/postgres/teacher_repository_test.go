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

func createTestTeacherRepository(t *testing.T) (*TeacherRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewTeacherRepository(mockDB, testLogger).(*TeacherRepository)

	return repo, mockDB
}

func TestTeacherRepository_Create(t *testing.T) {
	joiningDate := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	record, err := domain.NewTeacherRecord(uuid.New(), "EMP-0042", []string{"math", "physics"}, joiningDate)
	require.NoError(t, err)

	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  bool
		errorMsg string
	}{
		{
			name: "successful teacher record creation",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("INSERT INTO teachers").
					WithArgs(
						record.ID,
						record.ProfileID,
						record.EmployeeID,
						record.Subjects,
						record.JoiningDate,
						record.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: false,
		},
		{
			name: "database error during teacher record creation",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("INSERT INTO teachers").
					WithArgs(
						record.ID,
						record.ProfileID,
						record.EmployeeID,
						record.Subjects,
						record.JoiningDate,
						record.CreatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to create teacher record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestTeacherRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.Create(context.Background(), record)

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

func TestTeacherRepository_GetByID(t *testing.T) {
	teacherID := uuid.New()
	profileID := uuid.New()
	joiningDate := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("teacher record found", func(t *testing.T) {
		repo, mockDB := createTestTeacherRepository(t)
		defer mockDB.Close()

		rows := pgxmock.NewRows([]string{
			"id", "profile_id", "employee_id", "subjects", "joining_date", "created_at",
		}).AddRow(teacherID, profileID, "EMP-0042", []string{"math"}, joiningDate, now)

		mockDB.ExpectQuery("SELECT (.+) FROM teachers").
			WithArgs(teacherID).
			WillReturnRows(rows)

		record, err := repo.GetByID(context.Background(), teacherID)

		require.NoError(t, err)
		assert.Equal(t, teacherID, record.ID)
		assert.Equal(t, profileID, record.ProfileID)
		assert.Equal(t, "EMP-0042", record.EmployeeID)
		assert.Equal(t, []string{"math"}, record.Subjects)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("teacher record not found", func(t *testing.T) {
		repo, mockDB := createTestTeacherRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM teachers").
			WithArgs(teacherID).
			WillReturnError(pgx.ErrNoRows)

		record, err := repo.GetByID(context.Background(), teacherID)

		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
		assert.Nil(t, record)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
