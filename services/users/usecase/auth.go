package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/cabbooking/internal/pkg/jwt"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/pkg/observability"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a customer or driver account. Drivers start unverified
// and without a cab.
func (uc *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Role != models.RoleCustomer && req.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: role must be customer or driver", models.ErrValidation)
	}
	return uc.createAccount(ctx, req)
}

// CreateAdmin creates an admin account. Only reachable from internal routes.
func (uc *UserUC) CreateAdmin(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.Role = models.RoleAdmin
	return uc.createAccount(ctx, req)
}

func (uc *UserUC) createAccount(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: username or email already registered", models.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := uc.now()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Role == models.RoleDriver {
		user.DriverInfo = &models.Driver{
			UserID:      user.ID,
			Username:    user.Username,
			IsAvailable: true,
		}
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	observability.AccountsRegisteredTotal.WithLabelValues(string(user.Role)).Inc()
	logger.InfoCtx(ctx, "Account registered",
		logger.String("user_id", user.ID.String()),
		logger.String("username", user.Username),
		logger.String("role", string(user.Role)))

	return user, nil
}

// Login checks the credentials and issues a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if isNotFound(err) {
			observability.LoginsTotal.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%w: invalid username or password", models.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		observability.LoginsTotal.WithLabelValues("rejected").Inc()
		logger.WarnCtx(ctx, "Login rejected", logger.String("username", user.Username))
		return nil, fmt.Errorf("%w: invalid username or password", models.ErrUnauthorized)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	observability.LoginsTotal.WithLabelValues("ok").Inc()
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}, nil
}

// GetProfile returns the caller's account, with driver state for drivers
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}
