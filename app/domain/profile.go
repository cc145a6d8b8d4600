package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role represents the application-level role of a profile
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
	RoleParent     Role = "parent"
)

// ValidRoles lists every role a profile may carry
var ValidRoles = []Role{RoleSuperAdmin, RoleTeacher, RoleStudent, RoleParent}

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// Profile is the application's record of a person, one-to-one with an
// identity in the identity store by shared id. A profile must never exist
// without its identity; the provisioning saga upholds that invariant.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates a profile for an already-created identity
func NewProfile(identityID uuid.UUID, role Role, fullName, phone, address string) (*Profile, error) {
	if identityID == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	now := time.Now()

	return &Profile{
		ID:        identityID,
		Role:      role,
		FullName:  fullName,
		Phone:     phone,
		Address:   address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Deactivate marks the profile inactive; the normal "removal" path keeps the
// row (and the identity) around.
func (p *Profile) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// IsParent reports whether the profile carries the parent role
func (p *Profile) IsParent() bool {
	return p.Role == RoleParent
}
