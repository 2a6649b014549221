package server

import (
	"net/http"

	"github.com/jrsteele09/go-login-gateway/internal/randid"
	"github.com/rs/zerolog/log"
)

// StartLoginHandler begins the authorization-code flow. It mints a fresh
// anti-forgery state token, registers it as outstanding, and redirects the
// browser to the provider's authorization endpoint with response_type=code,
// the configured client id, scope and redirect URI, and the new state.
func (s *Server) StartLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := randid.Alphanumeric(s.config.GetStateTokenLength())
		s.states.Register(state)

		authURL := s.oauth.AuthCodeURL(state)
		log.Ctx(r.Context()).Debug().Str("auth_url", authURL).Msg("redirecting to provider authorization endpoint")

		http.Redirect(w, r, authURL, http.StatusSeeOther)
	}
}

// IndexHandler serves the application home route that the post-login redirect
// lands on.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != RouteIndex {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", contentTypeText)
		_, _ = w.Write([]byte(s.config.GetAppName() + "\n"))
	}
}
