package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestAuthService_Authenticate(t *testing.T) {
	st := newMemStore()
	st.ds.Users = []model.User{
		{ID: "S101", Name: "Rahul Sharma", Password: "student123", Role: model.RoleStudent},
		{ID: "M201", Name: "Dr. Anjali Verma", Password: "mod123", Role: model.RoleModerator},
	}
	svc := NewAuthService(st)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        string
		password      string
		role          model.Role
		expectedError error
	}{
		{
			name:     "successful login",
			userID:   "S101",
			password: "student123",
			role:     model.RoleStudent,
		},
		{
			name:          "wrong password",
			userID:        "S101",
			password:      "nope",
			role:          model.RoleStudent,
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:          "role mismatch",
			userID:        "S101",
			password:      "student123",
			role:          model.RoleModerator,
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:          "unknown user",
			userID:        "S999",
			password:      "student123",
			role:          model.RoleStudent,
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:          "case sensitive password",
			userID:        "M201",
			password:      "MOD123",
			role:          model.RoleModerator,
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.userID, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.userID, user.ID)
			assert.Equal(t, tt.role, user.Role)
		})
	}
}
