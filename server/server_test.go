package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dekarrin/ictioscan/scanner"
	"github.com/dekarrin/ictioscan/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScanner(t *testing.T) *scanner.Scanner {
	t.Helper()
	return scanner.New(
		token.NewLiteralType("fun", "fun keyword", "fun"),
		token.NewIdentifierType("identifier", "identifier"),
		token.NewWhitespaceType("ws", "whitespace"),
	)
}

func testServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{
		Scanner:     testScanner(t),
		JWTSecret:   []byte("test-secret-do-not-use-in-prod"),
		AuditDBFile: filepath.Join(t.TempDir(), "audit.db"),
		UnauthDelay: time.Millisecond,
	})
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestServer_ScanRequiresAuth(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/scan", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CreateKeyLoginAndScan(t *testing.T) {
	srv := testServer(t)

	keyRec := doJSON(t, srv, http.MethodPost, "/keys", nil, "")
	require.Equal(t, http.StatusCreated, keyRec.Code)
	var key createKeyResponse
	require.NoError(t, json.Unmarshal(keyRec.Body.Bytes(), &key))
	assert.NotEmpty(t, key.ID)
	assert.NotEmpty(t, key.Secret)

	loginRec := doJSON(t, srv, http.MethodPost, "/login", loginRequest{ID: key.ID, Secret: key.Secret}, "")
	require.Equal(t, http.StatusOK, loginRec.Code)
	var login loginResponse
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewBufferString("fun stuff"))
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 4)
	assert.Equal(t, "fun", resp.Tokens[0].Lexeme)
	assert.Equal(t, "stuff", resp.Tokens[2].Lexeme)
}

func TestServer_LoginRejectsBadSecret(t *testing.T) {
	srv := testServer(t)

	keyRec := doJSON(t, srv, http.MethodPost, "/keys", nil, "")
	var key createKeyResponse
	require.NoError(t, json.Unmarshal(keyRec.Body.Bytes(), &key))

	rec := doJSON(t, srv, http.MethodPost, "/login", loginRequest{ID: key.ID, Secret: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
