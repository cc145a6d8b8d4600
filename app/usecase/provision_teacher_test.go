package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"school-admin-service/app/domain"
	mock_port "school-admin-service/app/mocks"
	"school-admin-service/app/utils/logger"
)

type provisionMocks struct {
	identityGateway *mock_port.MockIdentityGateway
	profileRepo     *mock_port.MockProfileRepository
	teacherRepo     *mock_port.MockTeacherRepository
	studentRepo     *mock_port.MockStudentRepository
}

func createTestProvisionUseCase(t *testing.T) (*ProvisionUseCase, provisionMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := provisionMocks{
		identityGateway: mock_port.NewMockIdentityGateway(ctrl),
		profileRepo:     mock_port.NewMockProfileRepository(ctrl),
		teacherRepo:     mock_port.NewMockTeacherRepository(ctrl),
		studentRepo:     mock_port.NewMockStudentRepository(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewProvisionUseCase(
		mocks.identityGateway,
		mocks.profileRepo,
		mocks.teacherRepo,
		mocks.studentRepo,
		testLogger,
	)

	return uc, mocks
}

func validTeacherProvisionInput() domain.ProvisionTeacherInput {
	return domain.ProvisionTeacherInput{
		Email:             "teacher@school.example",
		FullName:          "Grace Njeri",
		Phone:             "+254700000001",
		EmployeeID:        "EMP-0042",
		Subjects:          []string{"math", "physics"},
		JoiningDate:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		TemporaryPassword: "initial-Passw0rd",
	}
}

func testIdentity(email, fullName string) *domain.Identity {
	return &domain.Identity{
		ID:            uuid.New(),
		Email:         email,
		FullName:      fullName,
		EmailVerified: true,
	}
}

func TestProvisionTeacher_Success(t *testing.T) {
	uc, mocks := createTestProvisionUseCase(t)

	input := validTeacherProvisionInput()
	identity := testIdentity(input.Email, input.FullName)

	mocks.identityGateway.EXPECT().
		CreateIdentity(gomock.Any(), domain.NewIdentityInput{
			Email:             input.Email,
			FullName:          input.FullName,
			TemporaryPassword: input.TemporaryPassword,
		}).
		Return(identity, nil)

	mocks.profileRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *domain.Profile) error {
			assert.Equal(t, identity.ID, profile.ID)
			assert.Equal(t, domain.RoleTeacher, profile.Role)
			assert.True(t, profile.Active)
			return nil
		})

	mocks.teacherRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.TeacherRecord) error {
			assert.Equal(t, identity.ID, record.ProfileID)
			assert.Equal(t, input.EmployeeID, record.EmployeeID)
			return nil
		})

	result, err := uc.ProvisionTeacher(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, identity.ID, result.IdentityID)
	assert.Equal(t, input.Email, result.Email)
	assert.Equal(t, input.TemporaryPassword, result.TemporaryPassword)
	assert.NotEqual(t, uuid.Nil, result.TeacherID)
}

func TestProvisionTeacher_ValidationFailure(t *testing.T) {
	uc, _ := createTestProvisionUseCase(t)

	input := validTeacherProvisionInput()
	input.Email = "not-an-email"

	// No remote calls may happen before validation passes
	result, err := uc.ProvisionTeacher(context.Background(), input)

	assert.Nil(t, result)
	assert.Equal(t, domain.KindValidation, domain.ProvisionErrorKind(err))
}

func TestProvisionTeacher_IdentityCreationFailure(t *testing.T) {
	tests := []struct {
		name         string
		gatewayErr   error
		expectedKind string
	}{
		{
			name:         "duplicate email",
			gatewayErr:   domain.ErrDuplicateEmail,
			expectedKind: domain.KindDuplicateEmail,
		},
		{
			name:         "identity store outage",
			gatewayErr:   errors.New("connection refused"),
			expectedKind: domain.KindIdentityCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := createTestProvisionUseCase(t)
			input := validTeacherProvisionInput()

			mocks.identityGateway.EXPECT().
				CreateIdentity(gomock.Any(), gomock.Any()).
				Return(nil, tt.gatewayErr)

			// Nothing was created, so nothing is compensated
			result, err := uc.ProvisionTeacher(context.Background(), input)

			assert.Nil(t, result)
			assert.Equal(t, tt.expectedKind, domain.ProvisionErrorKind(err))
			assert.ErrorIs(t, err, tt.gatewayErr)
		})
	}
}

func TestProvisionTeacher_ProfileFailureCompensatesIdentity(t *testing.T) {
	uc, mocks := createTestProvisionUseCase(t)

	input := validTeacherProvisionInput()
	identity := testIdentity(input.Email, input.FullName)
	dbErr := errors.New("insert failed")

	mocks.identityGateway.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(identity, nil)

	mocks.profileRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(dbErr)

	mocks.identityGateway.EXPECT().
		DeleteIdentity(gomock.Any(), identity.ID).
		Return(nil)

	result, err := uc.ProvisionTeacher(context.Background(), input)

	assert.Nil(t, result)
	assert.Equal(t, domain.KindProfileCreate, domain.ProvisionErrorKind(err))
	assert.ErrorIs(t, err, dbErr)
}

func TestProvisionTeacher_RecordFailureCompensatesInReverseOrder(t *testing.T) {
	uc, mocks := createTestProvisionUseCase(t)

	input := validTeacherProvisionInput()
	identity := testIdentity(input.Email, input.FullName)
	dbErr := errors.New("unique violation on employee_id")

	mocks.identityGateway.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(identity, nil)

	mocks.profileRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	mocks.teacherRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(dbErr)

	// Profile first, identity second
	gomock.InOrder(
		mocks.profileRepo.EXPECT().
			Delete(gomock.Any(), identity.ID).
			Return(nil),
		mocks.identityGateway.EXPECT().
			DeleteIdentity(gomock.Any(), identity.ID).
			Return(nil),
	)

	result, err := uc.ProvisionTeacher(context.Background(), input)

	assert.Nil(t, result)
	assert.Equal(t, domain.KindTeacherCreate, domain.ProvisionErrorKind(err))
	assert.ErrorIs(t, err, dbErr)
}

func TestProvisionTeacher_CompensationFailureKeepsOriginalError(t *testing.T) {
	uc, mocks := createTestProvisionUseCase(t)

	input := validTeacherProvisionInput()
	identity := testIdentity(input.Email, input.FullName)
	dbErr := errors.New("insert failed")

	mocks.identityGateway.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(identity, nil)

	mocks.profileRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(dbErr)

	// The undo itself fails; the caller must still see the insert failure
	mocks.identityGateway.EXPECT().
		DeleteIdentity(gomock.Any(), identity.ID).
		Return(errors.New("kratos unreachable"))

	result, err := uc.ProvisionTeacher(context.Background(), input)

	assert.Nil(t, result)
	assert.Equal(t, domain.KindProfileCreate, domain.ProvisionErrorKind(err))
	assert.ErrorIs(t, err, dbErr)
	assert.NotContains(t, err.Error(), "kratos unreachable")
}

func TestGetUserEmail(t *testing.T) {
	identityID := uuid.New()

	t.Run("returns the identity email", func(t *testing.T) {
		uc, mocks := createTestProvisionUseCase(t)

		mocks.identityGateway.EXPECT().
			GetIdentity(gomock.Any(), identityID).
			Return(&domain.Identity{ID: identityID, Email: "user@school.example"}, nil)

		email, err := uc.GetUserEmail(context.Background(), identityID)

		require.NoError(t, err)
		assert.Equal(t, "user@school.example", email)
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc, mocks := createTestProvisionUseCase(t)

		mocks.identityGateway.EXPECT().
			GetIdentity(gomock.Any(), identityID).
			Return(nil, domain.ErrIdentityNotFound)

		email, err := uc.GetUserEmail(context.Background(), identityID)

		assert.Empty(t, email)
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}

func TestDeactivateProfile(t *testing.T) {
	profileID := uuid.New()

	t.Run("deactivates", func(t *testing.T) {
		uc, mocks := createTestProvisionUseCase(t)

		mocks.profileRepo.EXPECT().
			Deactivate(gomock.Any(), profileID).
			Return(nil)

		assert.NoError(t, uc.DeactivateProfile(context.Background(), profileID))
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc, mocks := createTestProvisionUseCase(t)

		mocks.profileRepo.EXPECT().
			Deactivate(gomock.Any(), profileID).
			Return(domain.ErrProfileNotFound)

		assert.ErrorIs(t, uc.DeactivateProfile(context.Background(), profileID), domain.ErrProfileNotFound)
	})
}
