package gateway

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"school-admin-service/app/domain"
	mock_port "school-admin-service/app/mocks"
)

func TestIdentityGateway_CreateIdentity(t *testing.T) {
	identityID := uuid.New()

	validInput := domain.NewIdentityInput{
		Email:             "teacher@school.example",
		FullName:          "Grace Njeri",
		TemporaryPassword: "initial-Passw0rd",
	}

	tests := []struct {
		name       string
		input      domain.NewIdentityInput
		setupMocks func(*mock_port.MockKratosClient)
		wantErr    error
		expectErr  bool
	}{
		{
			name:  "successful creation",
			input: validInput,
			setupMocks: func(mockClient *mock_port.MockKratosClient) {
				mockClient.EXPECT().
					CreateIdentity(gomock.Any(), validInput).
					Return(&domain.Identity{
						ID:       identityID,
						Email:    validInput.Email,
						FullName: validInput.FullName,
					}, nil)
			},
		},
		{
			name:       "invalid input never reaches the client",
			input:      domain.NewIdentityInput{FullName: "No Email"},
			setupMocks: func(*mock_port.MockKratosClient) {},
			expectErr:  true,
		},
		{
			name:  "duplicate email passes through unwrapped",
			input: validInput,
			setupMocks: func(mockClient *mock_port.MockKratosClient) {
				mockClient.EXPECT().
					CreateIdentity(gomock.Any(), validInput).
					Return(nil, domain.ErrDuplicateEmail)
			},
			wantErr:   domain.ErrDuplicateEmail,
			expectErr: true,
		},
		{
			name:  "store outage is wrapped",
			input: validInput,
			setupMocks: func(mockClient *mock_port.MockKratosClient) {
				mockClient.EXPECT().
					CreateIdentity(gomock.Any(), validInput).
					Return(nil, assert.AnError)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock_port.NewMockKratosClient(ctrl)
			tt.setupMocks(mockClient)

			gateway := NewIdentityGateway(mockClient, testLogger())

			identity, err := gateway.CreateIdentity(context.Background(), tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, identity)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, identityID, identity.ID)
			}
		})
	}
}

func TestIdentityGateway_FindIdentityByEmail(t *testing.T) {
	identityID := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock_port.NewMockKratosClient(ctrl)
		mockClient.EXPECT().
			FindIdentityByEmail(gomock.Any(), "parent@school.example").
			Return(&domain.Identity{ID: identityID, Email: "parent@school.example"}, nil)

		gateway := NewIdentityGateway(mockClient, testLogger())

		identity, err := gateway.FindIdentityByEmail(context.Background(), "parent@school.example")
		assert.NoError(t, err)
		assert.Equal(t, identityID, identity.ID)
	})

	t.Run("not found passes through unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock_port.NewMockKratosClient(ctrl)
		mockClient.EXPECT().
			FindIdentityByEmail(gomock.Any(), "nobody@school.example").
			Return(nil, domain.ErrIdentityNotFound)

		gateway := NewIdentityGateway(mockClient, testLogger())

		_, err := gateway.FindIdentityByEmail(context.Background(), "nobody@school.example")
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}

func TestIdentityGateway_ResolveSession(t *testing.T) {
	callerID := uuid.New()

	tests := []struct {
		name       string
		token      string
		setupMocks func(*mock_port.MockKratosClient)
		wantID     uuid.UUID
		wantErr    error
	}{
		{
			name:  "valid token",
			token: "session-token",
			setupMocks: func(mockClient *mock_port.MockKratosClient) {
				mockClient.EXPECT().
					ResolveSession(gomock.Any(), "session-token").
					Return(callerID, nil)
			},
			wantID: callerID,
		},
		{
			name:       "empty token short-circuits",
			token:      "",
			setupMocks: func(*mock_port.MockKratosClient) {},
			wantErr:    domain.ErrUnauthenticated,
		},
		{
			name:  "rejected token",
			token: "expired-token",
			setupMocks: func(mockClient *mock_port.MockKratosClient) {
				mockClient.EXPECT().
					ResolveSession(gomock.Any(), "expired-token").
					Return(uuid.Nil, domain.ErrUnauthenticated)
			},
			wantErr: domain.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock_port.NewMockKratosClient(ctrl)
			tt.setupMocks(mockClient)

			gateway := NewIdentityGateway(mockClient, testLogger())

			id, err := gateway.ResolveSession(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestIdentityGateway_DeleteIdentity(t *testing.T) {
	identityID := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock_port.NewMockKratosClient(ctrl)
		mockClient.EXPECT().
			DeleteIdentity(gomock.Any(), identityID).
			Return(nil)

		gateway := NewIdentityGateway(mockClient, testLogger())
		assert.NoError(t, gateway.DeleteIdentity(context.Background(), identityID))
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock_port.NewMockKratosClient(ctrl)
		mockClient.EXPECT().
			DeleteIdentity(gomock.Any(), identityID).
			Return(assert.AnError)

		gateway := NewIdentityGateway(mockClient, testLogger())
		assert.Error(t, gateway.DeleteIdentity(context.Background(), identityID))
	})
}

// Helper function to create a test logger
func testLogger() *slog.Logger {
	return slog.Default()
}
