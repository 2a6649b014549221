package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// TestSessionHandler reports whether the request carries a live session
// cookie. A missing header, missing cookie, or unknown session id all read as
// "false" - never an error.
func (s *Server) TestSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeText)
		if s.isLoggedIn(r.Header.Get("Cookie")) {
			_, _ = w.Write([]byte("true"))
			return
		}
		_, _ = w.Write([]byte("false"))
	}
}

// TokenHandler returns the stored access credential for the caller's session.
// Intended for trusted internal consumers on the same deployment; the refresh
// token is never included.
func (s *Server) TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := extractSessionID(r.Header.Get("Cookie"))
		if !ok {
			http.Error(w, "No session", http.StatusNotFound)
			return
		}

		record, ok := s.sessions.Get(sessionID)
		if !ok {
			http.Error(w, "No session", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": record.AccessToken,
			"token_type":   record.TokenType,
			"expires_in":   record.ExpiresIn,
		})
	}
}

// LogoutHandler drops the caller's session server-side and expires the
// session cookie.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionID, ok := extractSessionID(r.Header.Get("Cookie")); ok {
			s.sessions.Delete(sessionID)
			log.Ctx(r.Context()).Debug().Msg("session deleted")
		}
		s.ClearSessionCookie(w, r)
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}
