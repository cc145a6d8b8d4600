package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TeacherRecord is the teaching-staff record, one-to-one with a profile of
// role teacher. EmployeeID is externally meaningful and unique.
type TeacherRecord struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	EmployeeID  string    `json:"employee_id"`
	Subjects    []string  `json:"subjects"`
	JoiningDate time.Time `json:"joining_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTeacherRecord creates a teacher record for an existing teacher profile
func NewTeacherRecord(profileID uuid.UUID, employeeID string, subjects []string, joiningDate time.Time) (*TeacherRecord, error) {
	if profileID == uuid.Nil {
		return nil, fmt.Errorf("profile ID is required")
	}

	if employeeID == "" {
		return nil, fmt.Errorf("employee ID is required")
	}

	if joiningDate.IsZero() {
		return nil, fmt.Errorf("joining date is required")
	}

	if subjects == nil {
		subjects = []string{}
	}

	return &TeacherRecord{
		ID:          uuid.New(),
		ProfileID:   profileID,
		EmployeeID:  employeeID,
		Subjects:    subjects,
		JoiningDate: joiningDate,
		CreatedAt:   time.Now(),
	}, nil
}
