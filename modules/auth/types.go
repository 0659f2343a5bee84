package auth

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse represents a user registration response.
// No sensitive data is echoed back.
type RegisterResponse struct {
	Username string `json:"username"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a user login response with the access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ValidateTokenRequest represents a token validation request.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse represents a token validation response.
type ValidateTokenResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ResolveUserRequest represents an identity resolution request.
type ResolveUserRequest struct {
	Username string `json:"username"`
}

// ResolveUserResponse represents an identity resolution response.
type ResolveUserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
