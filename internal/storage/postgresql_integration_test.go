package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/auth-backend/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	type args struct {
		ctx  context.Context
		user models.User
	}

	tests := []struct {
		name    string
		args    args
		wantErr error
		setup   func(t *testing.T, f *TestDataFactory)
		verify  func(t *testing.T, v *TestVerification, uid string)
	}{
		{
			name: "successful create user",
			args: args{
				ctx: context.Background(),
				user: models.User{
					Name:         "testuser",
					Email:        "test@example.com",
					PasswordHash: "hashedpassword",
				},
			},
			setup: func(_ *testing.T, _ *TestDataFactory) {},
			verify: func(t *testing.T, v *TestVerification, uid string) {
				v.VerifyUserExists(t, uid)
				v.VerifyUserCountByEmail(t, "test@example.com", 1)
			},
		},
		{
			name: "duplicate email",
			args: args{
				ctx: context.Background(),
				user: models.User{
					Name:         "otheruser",
					Email:        "taken@example.com",
					PasswordHash: "anotherhash",
				},
			},
			wantErr: ErrUserExists,
			setup: func(t *testing.T, f *TestDataFactory) {
				data := GetTestUserData()
				f.CreateUser(t, data.UID, data.Name, "taken@example.com", data.PasswordHash)
			},
			verify: func(t *testing.T, v *TestVerification, _ string) {
				v.VerifyUserCountByEmail(t, "taken@example.com", 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			verification := NewTestVerification(storage)
			tt.setup(t, factory)

			gotUID, err := storage.CreateUser(tt.args.ctx, tt.args.user)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, gotUID)
			}
			tt.verify(t, verification, gotUID)
		})
	}
}

func TestStorage_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
		setup   func(t *testing.T, f *TestDataFactory) TestUserData
	}{
		{
			name:  "successful read existing user",
			email: "test@example.com",
			setup: func(t *testing.T, f *TestDataFactory) TestUserData {
				data := GetTestUserData()
				f.CreateUser(t, data.UID, data.Name, data.Email, data.PasswordHash)
				return data
			},
		},
		{
			name:    "read non-existing user",
			email:   "missing@example.com",
			wantErr: ErrUserNotFound,
			setup: func(_ *testing.T, _ *TestDataFactory) TestUserData {
				return TestUserData{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			data := tt.setup(t, factory)

			got, err := storage.GetUserByEmail(context.Background(), tt.email)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, data.UID, got.UID)
			assert.Equal(t, data.Name, got.Name)
			assert.Equal(t, data.Email, got.Email)
			assert.Equal(t, data.PasswordHash, got.PasswordHash)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestStorage_GetUserByUID(t *testing.T) {
	tests := []struct {
		name    string
		uid     string
		wantErr error
		setup   func(t *testing.T, f *TestDataFactory) TestUserData
	}{
		{
			name: "successful read existing user",
			setup: func(t *testing.T, f *TestDataFactory) TestUserData {
				data := GetTestUserData()
				f.CreateUser(t, data.UID, data.Name, data.Email, data.PasswordHash)
				return data
			},
		},
		{
			name:    "read non-existing user",
			uid:     "11111111-2222-3333-4444-555555555555",
			wantErr: ErrUserNotFound,
			setup: func(_ *testing.T, _ *TestDataFactory) TestUserData {
				return TestUserData{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			data := tt.setup(t, factory)

			uid := tt.uid
			if uid == "" {
				uid = data.UID
			}

			got, err := storage.GetUserByUID(context.Background(), uid)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, data.UID, got.UID)
			assert.Equal(t, data.Name, got.Name)
			assert.Equal(t, data.Email, got.Email)
			// Хэш пароля по UID не выбирается.
			assert.Empty(t, got.PasswordHash)
		})
	}
}
