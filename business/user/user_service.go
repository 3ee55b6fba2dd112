package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"africahub/domain"
	"africahub/pkg/logger"
	"africahub/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const sessionTTL = 24 * time.Hour

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// TokenStore keeps live session tokens so logout can invalidate them before
// the JWT itself expires.
type TokenStore interface {
	StoreToken(ctx context.Context, userID, token, ipAddress, userAgent string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo   UserRepository
	tokenStore TokenStore
	validate   *validator.Validate
}

func NewUserService(userRepo UserRepository, tokenStore TokenStore, validate *validator.Validate) *userService {
	return &userService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		validate:   validate,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID != "" {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		ID:       uuid.NewString(),
		FullName: user.FullName,
		Email:    user.Email,
		Password: passwordHash,
		Role:     RoleCustomer,
		Country:  user.Country,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create user", err)
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	newUser.Password = ""

	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.User{}, fmt.Errorf("context error: %w", err)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to find user by email", err)
		return "", domain.User{}, errors.New("invalid email or password")
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Error("Invalid password attempt", "email", email)
		return "", domain.User{}, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		logger.Error("Failed to generate JWT", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenStore != nil {
		if err := s.tokenStore.StoreToken(ctx, user.ID, token, ipAddress, userAgent, sessionTTL); err != nil {
			logger.Error("Failed to store session token", err)
			return "", domain.User{}, errors.New("failed to create session")
		}
	}

	user.Password = ""

	return token, user, nil
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenStore == nil {
		return "", errors.New("token store not configured")
	}

	return s.tokenStore.ValidateToken(ctx, token)
}

func (s *userService) Logout(ctx context.Context, userID string, token string) error {
	if s.tokenStore == nil {
		return nil
	}

	if err := s.tokenStore.DeleteToken(ctx, userID, token); err != nil {
		logger.Error("Failed to delete session token", err)
		return errors.New("failed to logout")
	}

	return nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	if id == "" {
		return domain.User{}, errors.New("invalid user id")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find user by id", err)
		return domain.User{}, err
	}

	user.Password = ""

	return user, nil
}
