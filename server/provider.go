package server

import (
	"context"
	"net/url"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-login-gateway/internal/config"
	apperrors "github.com/jrsteele09/go-login-gateway/internal/errors"
	"golang.org/x/oauth2"
)

// buildOAuthConfig assembles the oauth2 configuration from the static
// provider settings. When an issuer is configured, the authorize and token
// endpoints are discovered via OIDC instead of being read from explicit URLs.
// Client credentials always go in an Authorization: Basic header on the token
// request, as the provider requires.
func buildOAuthConfig(ctx context.Context, cfg config.ProviderConfig) (*oauth2.Config, error) {
	if cfg.GetClientID() == "" || cfg.GetClientSecret() == "" {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidConfig, "client credentials not set")
	}

	endpoint := oauth2.Endpoint{
		AuthURL:  cfg.GetAuthorizeURL(),
		TokenURL: cfg.GetTokenURL(),
	}
	if issuer := cfg.GetIssuer(); issuer != "" {
		provider, err := oidc.NewProvider(ctx, issuer)
		if err != nil {
			return nil, apperrors.Wrapf(err, "provider discovery for issuer %q", issuer)
		}
		endpoint = provider.Endpoint()
	}
	endpoint.AuthStyle = oauth2.AuthStyleInHeader

	for _, endpointURL := range []string{endpoint.AuthURL, endpoint.TokenURL, cfg.GetRedirectURI()} {
		if err := validateURL(endpointURL); err != nil {
			return nil, err
		}
	}

	return &oauth2.Config{
		ClientID:     cfg.GetClientID(),
		ClientSecret: cfg.GetClientSecret(),
		Endpoint:     endpoint,
		RedirectURL:  cfg.GetRedirectURI(),
		Scopes:       strings.Fields(cfg.GetScopes()),
	}, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "malformed URL %q", rawURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "URL %q missing scheme or host", rawURL)
	}
	return nil
}
