package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"school-admin-service/app/domain"
	mock_port "school-admin-service/app/mocks"
	"school-admin-service/app/utils/logger"
)

func createTestAuthzUseCase(t *testing.T) (*AuthzUseCase, *mock_port.MockProfileRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mock_port.NewMockProfileRepository(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewAuthzUseCase(mockRepo, testLogger), mockRepo
}

func TestAuthzUseCase_Authorize(t *testing.T) {
	callerID := uuid.New()
	allowed := []domain.Role{domain.RoleSuperAdmin, domain.RoleTeacher}

	tests := []struct {
		name       string
		callerID   uuid.UUID
		setupMocks func(*mock_port.MockProfileRepository)
		want       bool
		wantErr    error
	}{
		{
			name:       "nil caller is unauthenticated",
			callerID:   uuid.Nil,
			setupMocks: func(*mock_port.MockProfileRepository) {},
			want:       false,
			wantErr:    domain.ErrUnauthenticated,
		},
		{
			name:     "caller without a profile is refused",
			callerID: callerID,
			setupMocks: func(mockRepo *mock_port.MockProfileRepository) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), callerID).
					Return(nil, domain.ErrProfileNotFound)
			},
			want:    false,
			wantErr: domain.ErrProfileNotFound,
		},
		{
			name:     "deactivated caller is refused",
			callerID: callerID,
			setupMocks: func(mockRepo *mock_port.MockProfileRepository) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), callerID).
					Return(&domain.Profile{ID: callerID, Role: domain.RoleSuperAdmin, Active: false}, nil)
			},
			want:    false,
			wantErr: domain.ErrProfileInactive,
		},
		{
			name:     "allowed role passes",
			callerID: callerID,
			setupMocks: func(mockRepo *mock_port.MockProfileRepository) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), callerID).
					Return(&domain.Profile{ID: callerID, Role: domain.RoleTeacher, Active: true}, nil)
			},
			want: true,
		},
		{
			name:     "unlisted role is denied without an error",
			callerID: callerID,
			setupMocks: func(mockRepo *mock_port.MockProfileRepository) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), callerID).
					Return(&domain.Profile{ID: callerID, Role: domain.RoleParent, Active: true}, nil)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := createTestAuthzUseCase(t)
			tt.setupMocks(mockRepo)

			got, err := uc.Authorize(context.Background(), tt.callerID, allowed)

			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
