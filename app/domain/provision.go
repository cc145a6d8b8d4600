package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// ProvisionTeacherInput carries everything needed to provision a teacher:
// a new identity, its profile and the teacher record, in one saga.
type ProvisionTeacherInput struct {
	Email             string
	FullName          string
	Phone             string
	Address           string
	EmployeeID        string
	Subjects          []string
	JoiningDate       time.Time
	TemporaryPassword string
}

// Validate checks required fields before any remote call is made
func (in ProvisionTeacherInput) Validate() error {
	if in.Email == "" {
		return fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}

	if in.FullName == "" {
		return fmt.Errorf("full name is required")
	}

	if in.EmployeeID == "" {
		return fmt.Errorf("employee ID is required")
	}

	if in.JoiningDate.IsZero() {
		return fmt.Errorf("joining date is required")
	}

	if in.TemporaryPassword == "" {
		return fmt.Errorf("temporary password is required")
	}

	return nil
}

// TeacherProvisionResult reports the identifiers created by a successful
// ProvisionTeacher call. The temporary password is echoed back exactly once
// for out-of-band delivery; the service does not keep it.
type TeacherProvisionResult struct {
	TeacherID         uuid.UUID `json:"teacher_id"`
	IdentityID        uuid.UUID `json:"user_id"`
	Email             string    `json:"email"`
	TemporaryPassword string    `json:"temporary_password"`
}

// ProvisionStudentInput carries the student fields plus the parent contact
// data used only when no parent profile exists yet for ParentEmail.
type ProvisionStudentInput struct {
	StudentFullName  string
	AdmissionNumber  string
	ClassID          string
	DateOfBirth      time.Time
	EnrollmentDate   time.Time
	Gender           string
	BloodGroup       string
	StudentAddress   string
	EmergencyContact string
	MedicalNotes     string

	ParentEmail       string
	ParentFullName    string
	ParentPhone       string
	ParentAddress     string
	TemporaryPassword string
}

// Validate checks required fields before any remote call is made
func (in ProvisionStudentInput) Validate() error {
	if in.StudentFullName == "" {
		return fmt.Errorf("student full name is required")
	}

	if in.AdmissionNumber == "" {
		return fmt.Errorf("admission number is required")
	}

	if in.ClassID == "" {
		return fmt.Errorf("class ID is required")
	}

	if in.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}

	if in.EnrollmentDate.IsZero() {
		return fmt.Errorf("enrollment date is required")
	}

	if in.ParentEmail == "" {
		return fmt.Errorf("parent email is required")
	}

	if _, err := mail.ParseAddress(in.ParentEmail); err != nil {
		return fmt.Errorf("invalid parent email format: %w", err)
	}

	if in.ParentFullName == "" {
		return fmt.Errorf("parent full name is required")
	}

	if in.TemporaryPassword == "" {
		return fmt.Errorf("temporary password is required")
	}

	return nil
}

// StudentProvisionResult reports the outcome of ProvisionStudentWithParent.
// TemporaryPassword is set only when a new parent identity was created by
// this call; when an existing parent was reused the caller must not show a
// password that was never set.
type StudentProvisionResult struct {
	StudentID         uuid.UUID `json:"student_id"`
	ParentProfileID   uuid.UUID `json:"parent_id"`
	ParentEmail       string    `json:"parent_email"`
	NewParentCreated  bool      `json:"new_parent_created"`
	TemporaryPassword string    `json:"temporary_password,omitempty"`
}
