package domain

import "errors"

// Provisioning and authorization errors
var (
	// Authentication / authorization errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileInactive = errors.New("profile inactive")

	// Identity store errors
	ErrIdentityNotFound = errors.New("identity not found")
	ErrDuplicateEmail   = errors.New("an identity with this email already exists")

	// Relational store errors
	ErrRecordNotFound = errors.New("record not found")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// SagaStep names the step of a provisioning saga that an error refers to
type SagaStep string

const (
	StepValidation     SagaStep = "validation"
	StepCreateIdentity SagaStep = "create_identity"
	StepCreateProfile  SagaStep = "create_profile"
	StepCreateTeacher  SagaStep = "create_teacher_record"
	StepCreateStudent  SagaStep = "create_student_record"
)

// Provisioning error kinds
const (
	KindValidation     = "VALIDATION"
	KindIdentityCreate = "IDENTITY_CREATION_FAILED"
	KindProfileCreate  = "PROFILE_CREATION_FAILED"
	KindTeacherCreate  = "TEACHER_RECORD_CREATION_FAILED"
	KindStudentCreate  = "STUDENT_RECORD_CREATION_FAILED"
	KindDuplicateEmail = "DUPLICATE_EMAIL"
	KindInternal       = "INTERNAL_ERROR"
)

// ProvisionError describes a provisioning failure: the step that actually
// failed and its cause. Compensation failures are logged, never wrapped
// here, so the caller always sees the root cause.
type ProvisionError struct {
	Kind    string
	Step    SagaStep
	Message string
	Cause   error
}

func (e *ProvisionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ProvisionError) Unwrap() error {
	return e.Cause
}

// NewProvisionError creates a provisioning error for a saga step
func NewProvisionError(kind string, step SagaStep, message string, cause error) *ProvisionError {
	return &ProvisionError{
		Kind:    kind,
		Step:    step,
		Message: message,
		Cause:   cause,
	}
}

// ProvisionErrorKind extracts the kind from an error, or KindInternal when
// the error is not a ProvisionError.
func ProvisionErrorKind(err error) string {
	var pe *ProvisionError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}
