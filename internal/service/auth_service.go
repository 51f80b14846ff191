package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"devconnector-be/internal/entities"
	"devconnector-be/internal/jwt"
	"devconnector-be/internal/models"
	"devconnector-be/internal/repository"
)

// AuthService defines the interface for authentication business logic.
type AuthService interface {
	Register(req *models.RegisterRequest) (string, error)
	Login(req *models.LoginRequest) (string, error)
	CurrentUser(userID string) (*entities.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account and returns a signed token for it. The
// password is stored only as a bcrypt hash; the avatar URL is derived from
// the email.
func (s *authService) Register(req *models.RegisterRequest) (string, error) {
	_, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword), gravatarURL(req.Email))
	if errors.Is(err, repository.ErrDuplicate) {
		// A concurrent registration won the unique email between the check
		// above and the insert.
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Login verifies credentials and returns a signed token. An unknown email
// and a wrong password produce the same error so responses cannot be used
// to probe which accounts exist.
func (s *authService) Login(req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// CurrentUser returns the authenticated user's record.
func (s *authService) CurrentUser(userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
