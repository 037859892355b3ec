//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/shreyajaiswal17/athletehub/internal/middleware"
	"github.com/shreyajaiswal17/athletehub/internal/misc"
)

func (s *IntegrationTestSuite) doLogin(ctx context.Context) string {
	t := s.T()

	resp := s.doRequest(ctx, "", http.MethodPost, "/a/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp misc.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

// doRequest sends body (if any) as JSON, with the session token when one is given.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, token, method, path string, body any) *http.Response {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends the request, checks the status and decodes the response into out.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, token, method, path string, body any, expectedStatus int, out any) {
	t := s.T()

	resp := s.doRequest(ctx, token, method, path, body)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, string(respBytes))

	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}
