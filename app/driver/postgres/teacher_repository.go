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

// TeacherRepository implements port.TeacherRepository for PostgreSQL
type TeacherRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTeacherRepository creates a new PostgreSQL teacher repository
func NewTeacherRepository(db DatabaseIface, logger *slog.Logger) port.TeacherRepository {
	return &TeacherRepository{
		db:     db,
		logger: logger.With("component", "teacher_repository"),
	}
}

// Create inserts a teacher record
func (r *TeacherRepository) Create(ctx context.Context, record *domain.TeacherRecord) error {
	query := `
		INSERT INTO teachers (
			id, profile_id, employee_id, subjects, joining_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.ProfileID,
		record.EmployeeID,
		record.Subjects,
		record.JoiningDate,
		record.CreatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create teacher record",
			"teacher_id", record.ID,
			"employee_id", record.EmployeeID,
			"error", err)
		return fmt.Errorf("failed to create teacher record: %w", err)
	}

	r.logger.Info("teacher record created",
		"teacher_id", record.ID,
		"profile_id", record.ProfileID,
		"employee_id", record.EmployeeID)
	return nil
}

// GetByID retrieves a teacher record by id
func (r *TeacherRepository) GetByID(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherRecord, error) {
	query := `
		SELECT
			id, profile_id, employee_id, subjects, joining_date, created_at
		FROM teachers
		WHERE id = $1`

	record := &domain.TeacherRecord{}

	err := r.db.QueryRow(ctx, query, teacherID).Scan(
		&record.ID,
		&record.ProfileID,
		&record.EmployeeID,
		&record.Subjects,
		&record.JoiningDate,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		r.logger.Error("failed to get teacher record", "teacher_id", teacherID, "error", err)
		return nil, fmt.Errorf("failed to get teacher record: %w", err)
	}

	return record, nil
}
