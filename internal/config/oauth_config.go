package config

type OAuthConfig interface {
	GetOAuthIssuer() string
	GetOAuthClientID() string
	GetOAuthClientSecret() string
	GetOAuthRedirectPath() string
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

// GetOAuthIssuer returns the OIDC issuer used for social sign-in.
func (OAuth) GetOAuthIssuer() string {
	return GetEnv("OAUTH_ISSUER", "https://accounts.google.com")
}

func (OAuth) GetOAuthClientID() string {
	return GetEnv("OAUTH_CLIENT_ID", "")
}

func (OAuth) GetOAuthClientSecret() string {
	return GetEnv("OAUTH_CLIENT_SECRET", "")
}

func (OAuth) GetOAuthRedirectPath() string {
	return GetEnv("OAUTH_REDIRECT_PATH", "/callback")
}
