package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jrsteele09/go-login-gateway/internal/config"
	"github.com/jrsteele09/go-login-gateway/server/sessionstore"
	"github.com/jrsteele09/go-login-gateway/server/statestore"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "production")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	oauth    *oauth2.Config
	states   statestore.Repo
	sessions sessionstore.Repo

	janitorStop chan struct{}
	janitorDone chan struct{}
	closeOnce   sync.Once
}

// New wires the injected state registry and session store into a Server and
// resolves the provider endpoints from the static configuration.
func New(cfg config.Config, states statestore.Repo, sessions sessionstore.Repo) (*Server, error) {
	oauthConfig, err := buildOAuthConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to configure provider: %w", err)
	}

	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		oauth:    oauthConfig,
		states:   states,
		sessions: sessions,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()
	s.startStateJanitor(cfg.GetStateSweepInterval())

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Close stops the background state-token janitor. Safe to call more than once.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		if s.janitorStop == nil {
			return
		}
		close(s.janitorStop)
		<-s.janitorDone
	})
}

// startStateJanitor periodically sweeps abandoned state tokens so a browser
// that never returns for callback cannot grow the registry without bound.
func (s *Server) startStateJanitor(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.janitorStop = make(chan struct{})
	s.janitorDone = make(chan struct{})

	go func() {
		defer close(s.janitorDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := s.states.Sweep(); removed > 0 {
					zlog.Debug().Int("removed", removed).Msg("swept abandoned state tokens")
				}
			case <-s.janitorStop:
				return
			}
		}
	}()
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
