package server

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// apiKeyStore is an in-memory registry of API key IDs to the bcrypt hash of
// their secret, gating who may exchange credentials for a JWT via
// POST /login. There is no user or session model; a key is just a
// credential pair.
type apiKeyStore struct {
	mu   sync.Mutex
	keys map[string][]byte
}

func newAPIKeyStore() *apiKeyStore {
	return &apiKeyStore{keys: make(map[string][]byte)}
}

// Create mints a new API key: a random ID and a random secret, the latter
// stored only as its bcrypt hash. The plaintext secret is returned once
// and never recoverable again.
func (s *apiKeyStore) Create() (id, secret string, err error) {
	id = uuid.New().String()

	var raw [32]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", "", fmt.Errorf("generating API key secret: %w", err)
	}
	secret = base64.RawURLEncoding.EncodeToString(raw[:])

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hashing API key secret: %w", err)
	}

	s.mu.Lock()
	s.keys[id] = hash
	s.mu.Unlock()

	return id, secret, nil
}

// Verify reports whether secret matches the stored hash for id.
func (s *apiKeyStore) Verify(id, secret string) bool {
	s.mu.Lock()
	hash, ok := s.keys[id]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}

const jwtIssuer = "ictioscan"

// issueJWT signs a short-lived bearer token for the API key identified by
// keyID.
func (s *Server) issueJWT(keyID string) (string, error) {
	claims := jwt.MapClaims{
		"iss": jwtIssuer,
		"sub": keyID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(s.cfg.JWTSecret)
}

// authenticate validates the bearer token on req and returns the API key
// ID it was issued to.
func (s *Server) authenticate(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("no Authorization header present")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", fmt.Errorf("Authorization header not in Bearer format")
	}

	parsed, err := jwt.Parse(strings.TrimSpace(parts[1]), func(t *jwt.Token) (interface{}, error) {
		return s.cfg.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(jwtIssuer), jwt.WithLeeway(time.Minute))
	if err != nil {
		return "", err
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("token has no subject: %w", err)
	}
	return sub, nil
}

// requireAuth wraps next so it only runs once req carries a valid bearer
// token, otherwise short-circuiting with HTTP-401.
func (s *Server) requireAuth(next endpointFunc) endpointFunc {
	return func(req *http.Request) endpointResult {
		if _, err := s.authenticate(req); err != nil {
			return unauthorized("missing or invalid bearer token")
		}
		return next(req)
	}
}
