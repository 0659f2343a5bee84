package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestService wires a service against an in-memory store with a
// cheap bcrypt cost so the round-trip tests stay fast.
func newTestService(t *testing.T) *AuthService {
	t.Helper()

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	hasher := &PasswordHasher{cost: bcrypt.MinCost}
	jwtManager := NewJWTManager(JWTConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: 15 * time.Minute,
		Issuer:        "test-issuer",
	})
	return NewAuthService(repo, hasher, jwtManager)
}

func TestAuthService_RegisterLoginAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	token, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Register(ctx, "", "pw"), ErrMissingCredentials)
	assert.ErrorIs(t, svc.Register(ctx, "alice", ""), ErrMissingCredentials)
	assert.ErrorIs(t, svc.Register(ctx, "", ""), ErrMissingCredentials)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	// Duplicate registration fails regardless of the password used.
	assert.ErrorIs(t, svc.Register(ctx, "alice", "pw1"), ErrUsernameTaken)
	assert.ErrorIs(t, svc.Register(ctx, "alice", "completely-different"), ErrUsernameTaken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
		},
		{
			name:     "unknown username",
			username: "mallory",
			password: "pw1",
		},
		{
			name:     "empty credentials",
			username: "",
			password: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			// One generic error for every failure mode, so a caller
			// cannot tell a bad password from a missing account.
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Authenticate_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Authenticate(ctx, token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

func TestAuthService_ResolveUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	user, err := svc.ResolveUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)

	_, err = svc.ResolveUser(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_PasswordNeverStoredInPlaintext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	hasher := &PasswordHasher{cost: bcrypt.MinCost}
	jwtManager := NewJWTManager(JWTConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: time.Minute,
		Issuer:        "test-issuer",
	})
	svc := NewAuthService(repo, hasher, jwtManager)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "plaintext-pw"))

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-pw", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "plaintext-pw")
}
