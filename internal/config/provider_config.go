package config

import "time"

// ProviderConfig supplies the static identity-provider settings consumed by
// the authorization-code flow. Values are fixed for a given deployment.
type ProviderConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetScopes() string
	GetAuthorizeURL() string
	GetTokenURL() string
	GetIssuer() string
	GetExchangeTimeout() time.Duration
}

type Provider struct{}

var _ ProviderConfig = Provider{}

func (Provider) GetClientID() string {
	return GetEnv("CLIENT_ID", "")
}

func (Provider) GetClientSecret() string {
	return GetEnv("CLIENT_SECRET", "")
}

func (Provider) GetRedirectURI() string {
	return GetEnv("REDIRECT_URI", "http://localhost:8080/auth/callback")
}

// GetScopes returns the space-separated scope string requested at login.
func (Provider) GetScopes() string {
	return GetEnv("SCOPES", "streaming user-read-email user-read-private")
}

func (Provider) GetAuthorizeURL() string {
	return GetEnv("AUTHORIZE_URL", "https://accounts.spotify.com/authorize")
}

func (Provider) GetTokenURL() string {
	return GetEnv("TOKEN_URL", "https://accounts.spotify.com/api/token")
}

// GetIssuer returns an optional OIDC issuer URL. When set, the authorize and
// token endpoints are discovered from the issuer instead of being configured
// explicitly.
func (Provider) GetIssuer() string {
	return GetEnv("OAUTH_ISSUER", "")
}

// GetExchangeTimeout bounds the outbound call to the provider's token
// endpoint so a hung upstream cannot starve request-handling capacity.
func (Provider) GetExchangeTimeout() time.Duration {
	return 10 * time.Second
}
