package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/jrsteele09/go-login-gateway/internal/errors"
	"github.com/jrsteele09/go-login-gateway/internal/randid"
	"github.com/jrsteele09/go-login-gateway/server/sessionstore"
	"github.com/rs/zerolog/log"
)

// loginOutcome carries the result of a completed token exchange back to the
// HTTP boundary.
type loginOutcome struct {
	SessionID string
	MaxAge    int // seconds, advisory cookie lifetime from the provider's expires_in
}

// OAuthCallbackHandler completes the authorization-code flow: it validates
// and consumes the echoed state token, exchanges the code at the provider's
// token endpoint, mints a collision-free session identifier, and hands the
// browser its session cookie.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.FormValue supports both GET (query params) and POST (form_post response mode)
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")

		// The provider reports authorization errors via the error parameter
		if errorParam != "" {
			log.Ctx(r.Context()).Warn().Str("error", errorParam).Str("error_description", r.FormValue("error_description")).Msg("provider reported an authorization error")
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}

		if code == "" || state == "" {
			http.Error(w, apperrors.ErrMissingCallback.Error(), http.StatusBadRequest)
			return
		}

		outcome, err := s.completeLogin(r.Context(), code, state)
		if err != nil {
			if !errors.Is(err, apperrors.ErrStateNotFound) {
				log.Ctx(r.Context()).Err(err).Msg("callback failed")
			}
			status, message := callbackFailure(err)
			http.Error(w, message, status)
			return
		}

		s.SetSessionCookie(w, r, outcome.SessionID, outcome.MaxAge)
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

// completeLogin consumes the state token, performs the outbound exchange and
// stores the resulting token record. The exchange runs outside any lock, so a
// slow upstream call cannot stall unrelated logins. Failures are never
// retried: the authorization code is single-use at the provider, and the
// consumed state token is not restored.
func (s *Server) completeLogin(ctx context.Context, code, state string) (loginOutcome, error) {
	if !s.states.Consume(state) {
		log.Ctx(ctx).Warn().
			Str("state", state).
			Strs("outstanding_states", s.states.Snapshot()).
			Msg("state token not found in registry")
		return loginOutcome{}, apperrors.ErrStateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.GetExchangeTimeout())
	defer cancel()

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return loginOutcome{}, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}

	// Exchange maps the wire expires_in into Expiry only; recover the
	// remaining lifetime in seconds from the absolute deadline.
	var expiresIn int64
	if !token.Expiry.IsZero() {
		expiresIn = int64(time.Until(token.Expiry).Round(time.Second).Seconds())
	}

	record := sessionstore.TokenRecord{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresIn:    expiresIn,
	}

	sessionID := s.sessions.InsertUnique(func() string {
		return randid.Alphanumeric(s.config.GetSessionIDLength())
	}, record)

	log.Ctx(ctx).Info().Str("token_type", record.TokenType).Int64("expires_in", record.ExpiresIn).Msg("login completed")

	return loginOutcome{SessionID: sessionID, MaxAge: int(record.ExpiresIn)}, nil
}

// callbackFailure maps the error taxonomy onto an HTTP status and a generic
// client-facing message. Full detail stays in the server-side logs.
func callbackFailure(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrStateNotFound):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, "Login failed"
	default:
		return http.StatusInternalServerError, "Login failed"
	}
}
