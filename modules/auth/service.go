package auth

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/task-tracker/domain/user"
)

var (
	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials is returned when login credentials are invalid.
	// The message never distinguishes an unknown username from a wrong
	// password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration, login and token validation.
type AuthService struct {
	repo   *UserRepository
	hasher *PasswordHasher
	jwt    *JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *UserRepository, hasher *PasswordHasher, jwt *JWTManager) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user account. The plaintext password is hashed
// and never stored or echoed back.
func (s *AuthService) Register(_ context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	exists, err := s.repo.UsernameExists(username)
	if err != nil {
		return fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return ErrUsernameTaken
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login authenticates a user and returns a signed access token.
func (s *AuthService) Login(_ context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Authenticate verifies a token and returns the identity it carries.
// It never touches the task store.
func (s *AuthService) Authenticate(_ context.Context, token string) (*domain.Identity, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &domain.Identity{
		Username: claims.Subject,
	}, nil
}

// ResolveUser maps an identity's username back to the stored user
// record. A valid token for a since-removed user resolves to
// ErrUserNotFound.
func (s *AuthService) ResolveUser(_ context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(username)
}
