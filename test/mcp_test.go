//go:build integration

package test

import (
	"context"
	"net/http"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyajaiswal17/athletehub/internal/middleware"
)

type mcpSecretTransport struct {
	secret string
	next   http.RoundTripper
}

func (t *mcpSecretTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(middleware.MCPSecretHeader, t.secret)
	return t.next.RoundTrip(req)
}

func (s *IntegrationTestSuite) TestMCP_RequiresSecret() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// a login session does not open the MCP endpoint
	token := s.doLogin(ctx)
	resp := s.doRequest(ctx, token, http.MethodPost, "/mcp", map[string]string{})
	assert.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestMCP_ListAndCallTools() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: serverEndpoint + "/mcp",
		HTTPClient: &http.Client{
			Transport: &mcpSecretTransport{secret: testMCPSecret, next: http.DefaultTransport},
		},
	}, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"get_athlete",
		"get_athlete_metrics",
		"get_athletehub_context",
		"get_team_overview",
		"get_training_records",
		"list_athletes",
	}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "get_athletehub_context"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "athlete_data")

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_athlete",
		Arguments: map[string]any{"athlete_id": 999999},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
