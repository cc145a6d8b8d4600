package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StudentRecord represents an enrolled student. Students never get an
// identity of their own; the parent profile is the sign-in-capable account.
type StudentRecord struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	AdmissionNumber string    `json:"admission_number"`
	ClassID         string    `json:"class_id"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	EnrollmentDate  time.Time `json:"enrollment_date"`
	ParentProfileID uuid.UUID `json:"parent_profile_id"`

	// Optional demographic and medical fields
	Gender           string `json:"gender,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	MedicalNotes     string `json:"medical_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewStudentRecord creates a student record linked to a parent profile
func NewStudentRecord(fullName, admissionNumber, classID string, dateOfBirth, enrollmentDate time.Time, parentProfileID uuid.UUID) (*StudentRecord, error) {
	if fullName == "" {
		return nil, fmt.Errorf("student full name is required")
	}

	if admissionNumber == "" {
		return nil, fmt.Errorf("admission number is required")
	}

	if classID == "" {
		return nil, fmt.Errorf("class ID is required")
	}

	if dateOfBirth.IsZero() {
		return nil, fmt.Errorf("date of birth is required")
	}

	if enrollmentDate.IsZero() {
		return nil, fmt.Errorf("enrollment date is required")
	}

	if parentProfileID == uuid.Nil {
		return nil, fmt.Errorf("parent profile ID is required")
	}

	return &StudentRecord{
		ID:              uuid.New(),
		FullName:        fullName,
		AdmissionNumber: admissionNumber,
		ClassID:         classID,
		DateOfBirth:     dateOfBirth,
		EnrollmentDate:  enrollmentDate,
		ParentProfileID: parentProfileID,
		CreatedAt:       time.Now(),
	}, nil
}
