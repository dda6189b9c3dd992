package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dekarrin/ictioscan/stream"
	"github.com/dekarrin/ictioscan/token"
)

type createKeyResponse struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

func (s *Server) handleCreateKey(req *http.Request) endpointResult {
	id, secret, err := s.keys.Create()
	if err != nil {
		return internalError("could not create API key")
	}
	return created(createKeyResponse{ID: id, Secret: secret})
}

type loginRequest struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(req *http.Request) endpointResult {
	var body loginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("request body must be JSON with id and secret fields")
	}

	if !s.keys.Verify(body.ID, body.Secret) {
		return unauthorized("incorrect API key ID/secret combination")
	}

	tok, err := s.issueJWT(body.ID)
	if err != nil {
		return internalError("could not issue token")
	}
	return ok(loginResponse{Token: tok})
}

type tokenResponse struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Value  any    `json:"value"`
	Index  int    `json:"index"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type scanResponse struct {
	Tokens []tokenResponse `json:"tokens"`
}

// handleScan reads the request body as source text and runs it through the
// server's Scanner, returning the full token stream as JSON.
func (s *Server) handleScan(req *http.Request) endpointResult {
	src, err := io.ReadAll(req.Body)
	if err != nil {
		return badRequest("could not read request body")
	}

	ts := s.cfg.Scanner.Scan(stream.NewTextStream(string(src)))

	var resp scanResponse
	for ts.HasNext() {
		tok := ts.Next()
		resp.Tokens = append(resp.Tokens, toTokenResponse(tok))
	}

	if s.audit != nil {
		keyID, _ := s.authenticate(req)
		if err := s.audit.Record(keyID, len(src), len(resp.Tokens)); err != nil {
			return internalError("could not write audit record")
		}
	}

	return ok(resp)
}

func toTokenResponse(tok token.Token) tokenResponse {
	return tokenResponse{
		Type:   tok.Type().Human(),
		Lexeme: tok.Lexeme(),
		Value:  tok.Value(),
		Index:  tok.Index(),
		Line:   tok.Line(),
		Column: tok.LinePos(),
	}
}
