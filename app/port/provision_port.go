package port

//go:generate mockgen -source=provision_port.go -destination=../mocks/mock_provision_port.go

import (
	"context"

	"github.com/google/uuid"

	"school-admin-service/app/domain"
)

// ProvisionUsecase defines the provisioning orchestrator: each operation is
// a saga of dependent remote calls with reverse-order compensation.
type ProvisionUsecase interface {
	ProvisionTeacher(ctx context.Context, input domain.ProvisionTeacherInput) (*domain.TeacherProvisionResult, error)
	ProvisionStudentWithParent(ctx context.Context, input domain.ProvisionStudentInput) (*domain.StudentProvisionResult, error)
	GetUserEmail(ctx context.Context, identityID uuid.UUID) (string, error)
	GetTeacher(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherRecord, error)
	GetStudent(ctx context.Context, studentID uuid.UUID) (*domain.StudentRecord, error)
	DeactivateProfile(ctx context.Context, profileID uuid.UUID) error
}

// AuthzUsecase is the single role gate in front of the orchestrator. It must
// run before any provisioning operation; the orchestrator itself performs no
// row-level enforcement.
type AuthzUsecase interface {
	Authorize(ctx context.Context, callerID uuid.UUID, allowed []domain.Role) (bool, error)
}
