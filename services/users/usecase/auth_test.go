package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	jwtpkg "github.com/piresc/cabbooking/internal/pkg/jwt"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Customer(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		assert.Equal(t, models.RoleCustomer, u.Role)
		assert.Nil(t, u.DriverInfo)
		return nil
	})

	user, err := uc.Register(ctx, registerRequest(models.RoleCustomer))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, fixedNow, user.CreatedAt)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func TestRegister_DriverStartsUnverified(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)

	user, err := uc.Register(ctx, registerRequest(models.RoleDriver))
	require.NoError(t, err)
	require.NotNil(t, user.DriverInfo)
	assert.Equal(t, user.ID, user.DriverInfo.UserID)
	assert.False(t, user.DriverInfo.Verified)
	assert.True(t, user.DriverInfo.IsAvailable)
	assert.Nil(t, user.DriverInfo.Cab)
}

func TestRegister_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{"admin role", func(r *models.RegisterRequest) { r.Role = models.RoleAdmin }, models.ErrValidation},
		{"missing role", func(r *models.RegisterRequest) { r.Role = "" }, models.ErrValidation},
		{"short username", func(r *models.RegisterRequest) { r.Username = "al" }, models.ErrValidation},
		{"username with space", func(r *models.RegisterRequest) { r.Username = "al ice" }, models.ErrValidation},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }, models.ErrValidation},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUC(t)
			req := registerRequest(models.RoleCustomer)
			tt.mutate(&req)

			_, err := uc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateIsConflict(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").Return(true, nil)

	_, err := uc.Register(context.Background(), registerRequest(models.RoleCustomer))
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegister_StorageError(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	dbErr := errors.New("connection refused")

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := uc.Register(context.Background(), registerRequest(models.RoleCustomer))
	assert.ErrorIs(t, err, dbErr)
}

func TestCreateAdmin_ForcesAdminRole(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := uc.CreateAdmin(context.Background(), registerRequest(models.RoleCustomer))
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Nil(t, user.DriverInfo)
}

func storedUser(t *testing.T, password string, role models.Role) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         role,
	}
}

func TestLogin(t *testing.T) {
	user := storedUser(t, "s3cret-pass", models.RoleDriver)

	tests := []struct {
		name     string
		password string
		repoUser *models.User
		repoErr  error
		wantErr  error
	}{
		{name: "valid credentials", password: "s3cret-pass", repoUser: user},
		{name: "wrong password", password: "nope", repoUser: user, wantErr: models.ErrUnauthorized},
		{name: "unknown user", password: "s3cret-pass", repoErr: models.ErrNotFound, wantErr: models.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newTestUC(t)
			repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(tt.repoUser, tt.repoErr)

			resp, err := uc.Login(context.Background(), models.LoginRequest{Username: " alice ", Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, resp.UserID)
			assert.Equal(t, models.RoleDriver, resp.Role)

			principal, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
			require.NoError(t, err)
			assert.Equal(t, user.ID, principal.UserID)
			assert.Equal(t, models.RoleDriver, principal.Role)
		})
	}
}

func TestLogin_StorageErrorIsNotUnauthorized(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(nil, errors.New("timeout"))

	_, err := uc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrUnauthorized)
}

func TestGetProfile(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	user := storedUser(t, "s3cret-pass", models.RoleCustomer)
	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	got, err := uc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}
