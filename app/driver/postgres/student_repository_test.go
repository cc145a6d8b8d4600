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

func createTestStudentRepository(t *testing.T) (*StudentRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewStudentRepository(mockDB, testLogger).(*StudentRepository)

	return repo, mockDB
}

func createTestStudentRecord(t *testing.T, parentProfileID uuid.UUID) *domain.StudentRecord {
	t.Helper()

	record, err := domain.NewStudentRecord(
		"Amina Otieno",
		"ADM-2025-017",
		"grade-3-a",
		time.Date(2017, 3, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		parentProfileID,
	)
	require.NoError(t, err)

	record.Gender = "female"
	record.BloodGroup = "O+"
	record.Address = "12 Hill Rd"
	record.EmergencyContact = "+254700000002"

	return record
}

func TestStudentRepository_Create(t *testing.T) {
	record := createTestStudentRecord(t, uuid.New())

	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  bool
		errorMsg string
	}{
		{
			name: "successful student record creation",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("INSERT INTO students").
					WithArgs(
						record.ID,
						record.FullName,
						record.AdmissionNumber,
						record.ClassID,
						record.DateOfBirth,
						record.EnrollmentDate,
						record.ParentProfileID,
						pgxmock.AnyArg(), // gender
						pgxmock.AnyArg(), // blood_group
						pgxmock.AnyArg(), // address
						pgxmock.AnyArg(), // emergency_contact
						pgxmock.AnyArg(), // medical_notes
						record.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: false,
		},
		{
			name: "database error during student record creation",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("INSERT INTO students").
					WithArgs(
						record.ID,
						record.FullName,
						record.AdmissionNumber,
						record.ClassID,
						record.DateOfBirth,
						record.EnrollmentDate,
						record.ParentProfileID,
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						record.CreatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to create student record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestStudentRepository(t)
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

func studentRows(records ...*domain.StudentRecord) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "full_name", "admission_number", "class_id", "date_of_birth",
		"enrollment_date", "parent_profile_id", "gender", "blood_group",
		"address", "emergency_contact", "medical_notes", "created_at",
	})

	for _, r := range records {
		rows.AddRow(
			r.ID, r.FullName, r.AdmissionNumber, r.ClassID, r.DateOfBirth,
			r.EnrollmentDate, r.ParentProfileID, nullable(r.Gender), nullable(r.BloodGroup),
			nullable(r.Address), nullable(r.EmergencyContact), nullable(r.MedicalNotes), r.CreatedAt,
		)
	}

	return rows
}

func TestStudentRepository_GetByID(t *testing.T) {
	record := createTestStudentRecord(t, uuid.New())

	t.Run("student record found", func(t *testing.T) {
		repo, mockDB := createTestStudentRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM students").
			WithArgs(record.ID).
			WillReturnRows(studentRows(record))

		got, err := repo.GetByID(context.Background(), record.ID)

		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.AdmissionNumber, got.AdmissionNumber)
		assert.Equal(t, record.ParentProfileID, got.ParentProfileID)
		assert.Equal(t, record.Gender, got.Gender)
		assert.Empty(t, got.MedicalNotes)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("student record not found", func(t *testing.T) {
		repo, mockDB := createTestStudentRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM students").
			WithArgs(record.ID).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByID(context.Background(), record.ID)

		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestStudentRepository_ListByParent(t *testing.T) {
	parentProfileID := uuid.New()
	first := createTestStudentRecord(t, parentProfileID)
	second := createTestStudentRecord(t, parentProfileID)

	t.Run("returns all students for the parent", func(t *testing.T) {
		repo, mockDB := createTestStudentRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM students").
			WithArgs(parentProfileID).
			WillReturnRows(studentRows(first, second))

		students, err := repo.ListByParent(context.Background(), parentProfileID)

		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, first.ID, students[0].ID)
		assert.Equal(t, second.ID, students[1].ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("returns empty slice when the parent has no students", func(t *testing.T) {
		repo, mockDB := createTestStudentRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM students").
			WithArgs(parentProfileID).
			WillReturnRows(studentRows())

		students, err := repo.ListByParent(context.Background(), parentProfileID)

		require.NoError(t, err)
		assert.Empty(t, students)
		assert.NotNil(t, students)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
