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

// StudentRepository implements port.StudentRepository for PostgreSQL
type StudentRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewStudentRepository creates a new PostgreSQL student repository
func NewStudentRepository(db DatabaseIface, logger *slog.Logger) port.StudentRepository {
	return &StudentRepository{
		db:     db,
		logger: logger.With("component", "student_repository"),
	}
}

// Create inserts a student record
func (r *StudentRepository) Create(ctx context.Context, record *domain.StudentRecord) error {
	query := `
		INSERT INTO students (
			id, full_name, admission_number, class_id, date_of_birth,
			enrollment_date, parent_profile_id, gender, blood_group,
			address, emergency_contact, medical_notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.FullName,
		record.AdmissionNumber,
		record.ClassID,
		record.DateOfBirth,
		record.EnrollmentDate,
		record.ParentProfileID,
		nullable(record.Gender),
		nullable(record.BloodGroup),
		nullable(record.Address),
		nullable(record.EmergencyContact),
		nullable(record.MedicalNotes),
		record.CreatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create student record",
			"student_id", record.ID,
			"admission_number", record.AdmissionNumber,
			"error", err)
		return fmt.Errorf("failed to create student record: %w", err)
	}

	r.logger.Info("student record created",
		"student_id", record.ID,
		"admission_number", record.AdmissionNumber,
		"parent_profile_id", record.ParentProfileID)
	return nil
}

// GetByID retrieves a student record by id
func (r *StudentRepository) GetByID(ctx context.Context, studentID uuid.UUID) (*domain.StudentRecord, error) {
	query := selectStudentQuery + ` WHERE id = $1`

	row := r.db.QueryRow(ctx, query, studentID)
	record, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		r.logger.Error("failed to get student record", "student_id", studentID, "error", err)
		return nil, fmt.Errorf("failed to get student record: %w", err)
	}

	return record, nil
}

// ListByParent retrieves all student records linked to a parent profile
func (r *StudentRepository) ListByParent(ctx context.Context, parentProfileID uuid.UUID) ([]*domain.StudentRecord, error) {
	query := selectStudentQuery + ` WHERE parent_profile_id = $1 ORDER BY enrollment_date, full_name`

	rows, err := r.db.Query(ctx, query, parentProfileID)
	if err != nil {
		r.logger.Error("failed to list students by parent",
			"parent_profile_id", parentProfileID,
			"error", err)
		return nil, fmt.Errorf("failed to list students by parent: %w", err)
	}
	defer rows.Close()

	students := make([]*domain.StudentRecord, 0)
	for rows.Next() {
		record, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student record: %w", err)
		}
		students = append(students, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list students by parent: %w", err)
	}

	return students, nil
}

const selectStudentQuery = `
	SELECT
		id, full_name, admission_number, class_id, date_of_birth,
		enrollment_date, parent_profile_id, gender, blood_group,
		address, emergency_contact, medical_notes, created_at
	FROM students`

// scanStudent scans one student row, folding NULLs into empty strings
func scanStudent(row pgx.Row) (*domain.StudentRecord, error) {
	record := &domain.StudentRecord{}
	var gender, bloodGroup, address, emergencyContact, medicalNotes *string

	err := row.Scan(
		&record.ID,
		&record.FullName,
		&record.AdmissionNumber,
		&record.ClassID,
		&record.DateOfBirth,
		&record.EnrollmentDate,
		&record.ParentProfileID,
		&gender,
		&bloodGroup,
		&address,
		&emergencyContact,
		&medicalNotes,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if gender != nil {
		record.Gender = *gender
	}
	if bloodGroup != nil {
		record.BloodGroup = *bloodGroup
	}
	if address != nil {
		record.Address = *address
	}
	if emergencyContact != nil {
		record.EmergencyContact = *emergencyContact
	}
	if medicalNotes != nil {
		record.MedicalNotes = *medicalNotes
	}

	return record, nil
}
