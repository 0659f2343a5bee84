package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/example/task-tracker/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthPort defines the interface other modules use to reach the
// authentication service.
type AuthPort interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.Identity, error)
	ResolveUser(ctx context.Context, username string) (*domain.User, error)
}

// AuthAdapter implements AuthPort using the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{
		container: container,
	}
}

// Register creates a new user account.
func (a *AuthAdapter) Register(ctx context.Context, username, password string) error {
	req := RegisterRequest{Username: username, Password: password}
	var resp RegisterResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"register",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return nil
}

// Login authenticates a user and returns an access token.
func (a *AuthAdapter) Login(ctx context.Context, username, password string) (string, error) {
	req := LoginRequest{Username: username, Password: password}
	var resp LoginResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	return resp.AccessToken, nil
}

// ValidateToken validates an access token and returns the identity.
func (a *AuthAdapter) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"validate-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("validate-token request failed: %w", err)
	}

	if !resp.Valid {
		return nil, fmt.Errorf("token validation failed: %s", resp.Error)
	}

	return &domain.Identity{
		Username: resp.Username,
	}, nil
}

// ResolveUser maps a username to the stored user record. Error values
// do not survive the service container, so the not-found case is
// re-established from the error text.
func (a *AuthAdapter) ResolveUser(ctx context.Context, username string) (*domain.User, error) {
	req := ResolveUserRequest{Username: username}
	var resp ResolveUserResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"resolve-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		if strings.Contains(err.Error(), ErrUserNotFound.Error()) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve-user request failed: %w", err)
	}

	return &domain.User{
		ID:       resp.ID,
		Username: resp.Username,
	}, nil
}

// Compile-time interface check.
var _ AuthPort = (*AuthAdapter)(nil)
