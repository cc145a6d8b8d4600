package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
	"school-admin-service/app/utils/metrics"
)

// ProvisionUseCase orchestrates account provisioning across the identity
// store and the relational store. Each operation is a saga: dependent
// remote calls executed in order, with already-completed steps compensated
// in reverse order when a later step fails. Compensations are best effort;
// a compensation failure is logged and counted but never replaces the
// original failure reported to the caller.
type ProvisionUseCase struct {
	identityGateway port.IdentityGateway
	profileRepo     port.ProfileRepository
	teacherRepo     port.TeacherRepository
	studentRepo     port.StudentRepository
	logger          *slog.Logger
}

// NewProvisionUseCase creates a new ProvisionUseCase instance
func NewProvisionUseCase(
	identityGateway port.IdentityGateway,
	profileRepo port.ProfileRepository,
	teacherRepo port.TeacherRepository,
	studentRepo port.StudentRepository,
	logger *slog.Logger,
) *ProvisionUseCase {
	return &ProvisionUseCase{
		identityGateway: identityGateway,
		profileRepo:     profileRepo,
		teacherRepo:     teacherRepo,
		studentRepo:     studentRepo,
		logger:          logger.With("component", "provision_usecase"),
	}
}

// compensation is one undo action registered after a saga step succeeds
type compensation struct {
	step domain.SagaStep
	run  func(context.Context) error
}

// rollback runs registered compensations in reverse order. Failures are
// logged and counted, not retried and not returned.
func (uc *ProvisionUseCase) rollback(ctx context.Context, failedStep domain.SagaStep, comps []compensation) {
	for i := len(comps) - 1; i >= 0; i-- {
		c := comps[i]
		if err := c.run(ctx); err != nil {
			uc.logger.Error("compensation failed, manual cleanup required",
				"compensated_step", c.step,
				"failed_step", failedStep,
				"error", err)
			metrics.RecordCompensation(string(c.step), "failed")
			continue
		}

		uc.logger.Info("compensation applied",
			"compensated_step", c.step,
			"failed_step", failedStep)
		metrics.RecordCompensation(string(c.step), "ok")
	}
}

// ProvisionTeacher creates a teacher account: identity, profile and teacher
// record. On failure every completed step is undone in reverse order.
func (uc *ProvisionUseCase) ProvisionTeacher(ctx context.Context, input domain.ProvisionTeacherInput) (*domain.TeacherProvisionResult, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		metrics.RecordProvision("provision_teacher", "invalid", start)
		return nil, domain.NewProvisionError(domain.KindValidation, domain.StepValidation, "invalid teacher provisioning input", err)
	}

	uc.logger.Info("provisioning teacher", "email", input.Email, "employee_id", input.EmployeeID)

	var comps []compensation

	identity, err := uc.identityGateway.CreateIdentity(ctx, domain.NewIdentityInput{
		Email:             input.Email,
		FullName:          input.FullName,
		TemporaryPassword: input.TemporaryPassword,
	})
	if err != nil {
		metrics.RecordProvision("provision_teacher", "failed", start)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.NewProvisionError(domain.KindDuplicateEmail, domain.StepCreateIdentity, "an account with this email already exists", err)
		}
		return nil, domain.NewProvisionError(domain.KindIdentityCreate, domain.StepCreateIdentity, "failed to create identity", err)
	}

	comps = append(comps, compensation{
		step: domain.StepCreateIdentity,
		run: func(ctx context.Context) error {
			return uc.identityGateway.DeleteIdentity(ctx, identity.ID)
		},
	})

	profile, err := domain.NewProfile(identity.ID, domain.RoleTeacher, input.FullName, input.Phone, input.Address)
	if err == nil {
		err = uc.profileRepo.Create(ctx, profile)
	}
	if err != nil {
		uc.rollback(ctx, domain.StepCreateProfile, comps)
		metrics.RecordProvision("provision_teacher", "failed", start)
		return nil, domain.NewProvisionError(domain.KindProfileCreate, domain.StepCreateProfile, "failed to create teacher profile", err)
	}

	comps = append(comps, compensation{
		step: domain.StepCreateProfile,
		run: func(ctx context.Context) error {
			return uc.profileRepo.Delete(ctx, profile.ID)
		},
	})

	record, err := domain.NewTeacherRecord(profile.ID, input.EmployeeID, input.Subjects, input.JoiningDate)
	if err == nil {
		err = uc.teacherRepo.Create(ctx, record)
	}
	if err != nil {
		uc.rollback(ctx, domain.StepCreateTeacher, comps)
		metrics.RecordProvision("provision_teacher", "failed", start)
		return nil, domain.NewProvisionError(domain.KindTeacherCreate, domain.StepCreateTeacher, "failed to create teacher record", err)
	}

	uc.logger.Info("teacher provisioned",
		"teacher_id", record.ID,
		"identity_id", identity.ID,
		"employee_id", record.EmployeeID)
	metrics.RecordProvision("provision_teacher", "success", start)

	return &domain.TeacherProvisionResult{
		TeacherID:         record.ID,
		IdentityID:        identity.ID,
		Email:             identity.Email,
		TemporaryPassword: input.TemporaryPassword,
	}, nil
}

// ProvisionStudentWithParent creates a student record linked to a parent
// profile. When no identity exists for the parent email a parent identity
// and profile are created first; those two steps join the saga and are
// compensated if the student insert fails. An existing parent is reused
// as-is and never touched by compensation.
func (uc *ProvisionUseCase) ProvisionStudentWithParent(ctx context.Context, input domain.ProvisionStudentInput) (*domain.StudentProvisionResult, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		metrics.RecordProvision("provision_student", "invalid", start)
		return nil, domain.NewProvisionError(domain.KindValidation, domain.StepValidation, "invalid student provisioning input", err)
	}

	uc.logger.Info("provisioning student",
		"admission_number", input.AdmissionNumber,
		"parent_email", input.ParentEmail)

	var comps []compensation

	parentProfileID, newParent, err := uc.resolveParent(ctx, input, &comps)
	if err != nil {
		uc.rollback(ctx, domain.StepCreateProfile, comps)
		metrics.RecordProvision("provision_student", "failed", start)
		return nil, err
	}

	record, err := domain.NewStudentRecord(
		input.StudentFullName,
		input.AdmissionNumber,
		input.ClassID,
		input.DateOfBirth,
		input.EnrollmentDate,
		parentProfileID,
	)
	if err == nil {
		record.Gender = input.Gender
		record.BloodGroup = input.BloodGroup
		record.Address = input.StudentAddress
		record.EmergencyContact = input.EmergencyContact
		record.MedicalNotes = input.MedicalNotes

		err = uc.studentRepo.Create(ctx, record)
	}
	if err != nil {
		uc.rollback(ctx, domain.StepCreateStudent, comps)
		metrics.RecordProvision("provision_student", "failed", start)
		return nil, domain.NewProvisionError(domain.KindStudentCreate, domain.StepCreateStudent, "failed to create student record", err)
	}

	uc.logger.Info("student provisioned",
		"student_id", record.ID,
		"parent_profile_id", parentProfileID,
		"new_parent_created", newParent)
	metrics.RecordProvision("provision_student", "success", start)

	result := &domain.StudentProvisionResult{
		StudentID:        record.ID,
		ParentProfileID:  parentProfileID,
		ParentEmail:      input.ParentEmail,
		NewParentCreated: newParent,
	}
	if newParent {
		result.TemporaryPassword = input.TemporaryPassword
	}

	return result, nil
}

// resolveParent finds the parent profile for the given email, creating a new
// parent identity and profile when none exists. Created steps register their
// compensations on comps.
func (uc *ProvisionUseCase) resolveParent(ctx context.Context, input domain.ProvisionStudentInput, comps *[]compensation) (uuid.UUID, bool, error) {
	existing, err := uc.identityGateway.FindIdentityByEmail(ctx, input.ParentEmail)
	if err == nil {
		profile, err := uc.profileRepo.GetByID(ctx, existing.ID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return uuid.Nil, false, domain.NewProvisionError(domain.KindDuplicateEmail, domain.StepCreateIdentity,
					"this email already belongs to an account without a parent profile", domain.ErrDuplicateEmail)
			}
			return uuid.Nil, false, domain.NewProvisionError(domain.KindInternal, domain.StepCreateIdentity, "failed to load parent profile", err)
		}

		if !profile.IsParent() {
			return uuid.Nil, false, domain.NewProvisionError(domain.KindDuplicateEmail, domain.StepCreateIdentity,
				"this email already belongs to a non-parent account", domain.ErrDuplicateEmail)
		}

		if !profile.Active {
			return uuid.Nil, false, domain.NewProvisionError(domain.KindDuplicateEmail, domain.StepCreateIdentity,
				"the parent account for this email is deactivated", domain.ErrProfileInactive)
		}

		uc.logger.Info("reusing existing parent profile", "parent_profile_id", profile.ID)
		return profile.ID, false, nil
	}
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		return uuid.Nil, false, domain.NewProvisionError(domain.KindInternal, domain.StepCreateIdentity, "failed to look up parent email", err)
	}

	identity, err := uc.identityGateway.CreateIdentity(ctx, domain.NewIdentityInput{
		Email:             input.ParentEmail,
		FullName:          input.ParentFullName,
		TemporaryPassword: input.TemporaryPassword,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost a race with a concurrent provisioning of the same
			// parent email. The identity store is the arbiter.
			return uuid.Nil, false, domain.NewProvisionError(domain.KindDuplicateEmail, domain.StepCreateIdentity,
				"an account with this email already exists", err)
		}
		return uuid.Nil, false, domain.NewProvisionError(domain.KindIdentityCreate, domain.StepCreateIdentity, "failed to create parent identity", err)
	}

	*comps = append(*comps, compensation{
		step: domain.StepCreateIdentity,
		run: func(ctx context.Context) error {
			return uc.identityGateway.DeleteIdentity(ctx, identity.ID)
		},
	})

	profile, err := domain.NewProfile(identity.ID, domain.RoleParent, input.ParentFullName, input.ParentPhone, input.ParentAddress)
	if err == nil {
		err = uc.profileRepo.Create(ctx, profile)
	}
	if err != nil {
		return uuid.Nil, false, domain.NewProvisionError(domain.KindProfileCreate, domain.StepCreateProfile, "failed to create parent profile", err)
	}

	*comps = append(*comps, compensation{
		step: domain.StepCreateProfile,
		run: func(ctx context.Context) error {
			return uc.profileRepo.Delete(ctx, profile.ID)
		},
	})

	return profile.ID, true, nil
}

// GetUserEmail returns the email of an identity
func (uc *ProvisionUseCase) GetUserEmail(ctx context.Context, identityID uuid.UUID) (string, error) {
	identity, err := uc.identityGateway.GetIdentity(ctx, identityID)
	if err != nil {
		return "", err
	}

	return identity.Email, nil
}

// GetTeacher returns a teacher record by id
func (uc *ProvisionUseCase) GetTeacher(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherRecord, error) {
	return uc.teacherRepo.GetByID(ctx, teacherID)
}

// GetStudent returns a student record by id
func (uc *ProvisionUseCase) GetStudent(ctx context.Context, studentID uuid.UUID) (*domain.StudentRecord, error) {
	return uc.studentRepo.GetByID(ctx, studentID)
}

// DeactivateProfile marks a profile inactive so its sessions stop passing
// the authorization gate. The identity itself is kept for auditability.
func (uc *ProvisionUseCase) DeactivateProfile(ctx context.Context, profileID uuid.UUID) error {
	if err := uc.profileRepo.Deactivate(ctx, profileID); err != nil {
		return err
	}

	uc.logger.Info("profile deactivated", "profile_id", profileID)
	return nil
}
