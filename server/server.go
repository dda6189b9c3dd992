// Package server exposes a Scanner as an HTTP service: POST text in, get a
// JSON token stream back, gated by bearer-token auth. Clients mint an API
// key once via POST /keys, exchange it for a short-lived JWT via
// POST /login, and present that as a Bearer token on POST /scan.
package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/dekarrin/ictioscan/scanner"
	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"
)

// Config holds the parameters needed to stand up a Server.
type Config struct {
	// Scanner is the scanner every /scan request is run against.
	Scanner *scanner.Scanner

	// JWTSecret signs the bearer tokens issued by POST /login.
	JWTSecret []byte

	// AuditDBFile is the sqlite file scan-request audit records are
	// written to. If empty, a Server still runs but records no audit log
	// (useful for tests).
	AuditDBFile string

	// UnauthDelay is how long a request pauses before an HTTP-401/403
	// response is written, to deprioritize misauthenticated traffic.
	UnauthDelay time.Duration
}

// Server wraps a Scanner in an HTTP API.
type Server struct {
	cfg    Config
	router chi.Router
	keys   *apiKeyStore
	audit  *auditLog
}

// New builds a Server from cfg. If cfg.AuditDBFile is non-empty, it opens
// (creating if necessary) a sqlite database there for the audit log.
func New(cfg Config) (*Server, error) {
	if cfg.Scanner == nil {
		return nil, fmt.Errorf("server: Config.Scanner is required")
	}
	if cfg.UnauthDelay == 0 {
		cfg.UnauthDelay = time.Second
	}

	s := &Server{
		cfg:  cfg,
		keys: newAPIKeyStore(),
	}

	if cfg.AuditDBFile != "" {
		db, err := sql.Open("sqlite", cfg.AuditDBFile)
		if err != nil {
			return nil, fmt.Errorf("server: opening audit db: %w", err)
		}
		al, err := newAuditLog(db)
		if err != nil {
			return nil, fmt.Errorf("server: initializing audit log: %w", err)
		}
		s.audit = al
	}

	r := chi.NewRouter()
	r.Post("/keys", s.endpoint(s.handleCreateKey))
	r.Post("/login", s.endpoint(s.handleLogin))
	r.Post("/scan", s.endpoint(s.requireAuth(s.handleScan)))
	s.router = r

	return s, nil
}

// ServeHTTP implements http.Handler by delegating to the internal chi
// router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// endpointFunc is the shape every handler in this package is written
// against: read the request, produce a result, let endpoint() worry about
// panics, the unauth-delay, and writing the response.
type endpointFunc func(req *http.Request) endpointResult

// endpoint adapts an endpointFunc to http.HandlerFunc, recovering from
// panics into an HTTP-500 and pausing cfg.UnauthDelay before writing an
// unauthorized/forbidden/server-error response.
func (s *Server) endpoint(ep endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w, req)

		result := ep(req)

		if result.status == http.StatusUnauthorized || result.status == http.StatusForbidden || result.status == http.StatusInternalServerError {
			time.Sleep(s.cfg.UnauthDelay)
		}

		result.writeTo(w)
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) {
	if r := recover(); r != nil {
		http.Error(w, "an internal server error occurred", http.StatusInternalServerError)
	}
}
