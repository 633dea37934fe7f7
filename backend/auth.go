package backend

import "context"

// AuthResult is returned by every endpoint that establishes a session.
type AuthResult struct {
	Token     string    `json:"token"`
	Principal Principal `json:"user"`
}

type SignupRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OAuthExchangeRequest trades a verified OIDC identity for a platform token.
type OAuthExchangeRequest struct {
	Provider    string `json:"provider"`
	IDToken     string `json:"id_token"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Signup registers a new account. The backend sends the verification OTP.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, "POST", "/auth/signup", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, "POST", "/auth/login", req, &out)
	return out, err
}

// OAuthExchange completes social sign-in: the portal has already verified the
// provider's ID token, the backend issues (or provisions) the platform
// account and bearer token.
func (c *Client) OAuthExchange(ctx context.Context, req OAuthExchangeRequest) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, "POST", "/auth/oauth", req, &out)
	return out, err
}

// VerifyOTP confirms the one-time code sent on signup.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, "POST", "/auth/verify-otp", map[string]string{"email": email, "otp": code}, &out)
	return out, err
}

// ForgotPassword asks the backend to send a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, "POST", "/auth/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword sets a new password using the emailed reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.do(ctx, "POST", "/auth/reset-password", map[string]string{"token": token, "password": password}, nil)
}

// UpdatePassword changes the password for the authenticated principal.
func (c *Client) UpdatePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, "PATCH", "/auth/password", map[string]string{"current_password": current, "new_password": next}, nil)
}

// Logout invalidates the bearer token server-side. Best effort: the session
// is cleared locally regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "POST", "/auth/logout", nil, nil)
}
