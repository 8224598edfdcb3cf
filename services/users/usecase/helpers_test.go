package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/users/mocks"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "cabbooking-test"
	return cfg
}

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo, *mocks.MockUserGW) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(testConfig(), repo, gw)
	uc.now = func() time.Time { return fixedNow }
	uc.bcryptCost = bcrypt.MinCost
	return uc, repo, gw
}

func registerRequest(role models.Role) models.RegisterRequest {
	return models.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "s3cret-pass",
		FullName: "Alice Doe",
		Role:     role,
	}
}
