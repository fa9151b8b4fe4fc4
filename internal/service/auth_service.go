package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitcoach/internal/auth"
	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup, login and profile operations.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	// Logout invalidates a refresh token so it can no longer be redeemed.
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, name string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// validPassword enforces 8-16 characters containing upper, lower and digit.
func validPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// SignUp creates a new USER with a bcrypt password hash.
func (s *authService) SignUp(ctx context.Context, name, email, password string) (*model.User, error) {
	if !validPassword(password) {
		return nil, errors.ErrPasswordRule
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and issues an access and refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	if !validPassword(password) {
		return "", "", nil, errors.ErrPasswordRule
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Refresh validates a refresh token against the store and issues a new
// access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return "", errors.ErrInvalidRefreshToken
	}

	storedUserID, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil || storedUserID != claims.UserID {
		return "", errors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout removes the refresh token from the store. Already-expired or
// already-removed tokens are not distinguished; the entry is gone either way.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return errors.ErrInvalidRefreshToken
	}
	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateName renames the user, rejecting a no-op rename.
func (s *authService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Name == name {
		return nil, errors.ErrNameUnchanged
	}

	affected, err := s.userRepo.UpdateName(ctx, userID, user.Name, name)
	if err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}
	if affected == 0 {
		return nil, errors.ErrNameUnchanged
	}

	user.Name = name
	return user, nil
}
