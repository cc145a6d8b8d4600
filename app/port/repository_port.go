package port

//go:generate mockgen -source=repository_port.go -destination=../mocks/mock_repository_port.go

import (
	"context"

	"github.com/google/uuid"

	"school-admin-service/app/domain"
)

// ProfileRepository defines data access for application profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
	Deactivate(ctx context.Context, profileID uuid.UUID) error
	// Delete physically removes a profile; used only as a compensating
	// action while its teacher/student record does not exist yet.
	Delete(ctx context.Context, profileID uuid.UUID) error
}

// TeacherRepository defines data access for teacher records
type TeacherRepository interface {
	Create(ctx context.Context, record *domain.TeacherRecord) error
	GetByID(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherRecord, error)
}

// StudentRepository defines data access for student records
type StudentRepository interface {
	Create(ctx context.Context, record *domain.StudentRecord) error
	GetByID(ctx context.Context, studentID uuid.UUID) (*domain.StudentRecord, error)
	ListByParent(ctx context.Context, parentProfileID uuid.UUID) ([]*domain.StudentRecord, error)
}
