package service

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// userService implement user.Service interface
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService tạo service instance
// Inject repository và JWT manager qua constructor (Dependency Injection)
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login verifies username/password and issues both token classes.
// Unknown username and wrong password return the identical error.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	// bcrypt.CompareHashAndPassword is constant-time comparison (security)
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// Subject phải là string để thoả ràng buộc của signing library
	subject := strconv.FormatInt(u.ID, 10)

	accessToken, err := s.jwtManager.GenerateAccessToken(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &user.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh requires a refresh-class token; an access token presented here
// is rejected. The returned access token is bound to the same identity.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", user.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// CreateAdmin provisions an admin account with a bcrypt password hash.
func (s *userService) CreateAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return user.ErrUserAlreadyExists
	}

	// bcrypt cost = 12: balance giữa security và performance
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.Create(ctx, &user.User{
		Username:     username,
		PasswordHash: string(passwordHash),
	})
}
