package server

import (
	"net/http"
	"strings"
)

const (
	// sessionCookieName is the name of the cookie carrying the session identifier
	sessionCookieName = "session_id"
)

// extractSessionID pulls the session identifier out of a raw Cookie header.
// The header is untrusted input: malformed pairs are skipped, and the first
// session_id pair wins when the header carries duplicates. Absence is not an
// error.
func extractSessionID(rawCookieHeader string) (string, bool) {
	for _, pair := range strings.Split(rawCookieHeader, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			continue
		}
		if key == sessionCookieName {
			return value, true
		}
	}
	return "", false
}

// isLoggedIn reports whether the raw Cookie header denotes a live session.
func (s *Server) isLoggedIn(rawCookieHeader string) bool {
	sessionID, ok := extractSessionID(rawCookieHeader)
	if !ok {
		return false
	}
	return s.sessions.Contains(sessionID)
}

func (s *Server) SetSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
