package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/private-content-feed/cmd/mcp/client"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestParseNewContent(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    client.NewContent
		wantErr string
	}{
		{
			name: "valid",
			args: map[string]any{"title": "t", "category": "AI", "description": "d", "interest_score": float64(42)},
			want: client.NewContent{Title: "t", Category: "AI", Description: "d", InterestScore: 42},
		},
		{
			name:    "missing_title",
			args:    map[string]any{"category": "AI", "description": "d", "interest_score": float64(42)},
			wantErr: "title is required",
		},
		{
			name:    "blank_description",
			args:    map[string]any{"title": "t", "category": "AI", "description": "  ", "interest_score": float64(1)},
			wantErr: "description is required",
		},
		{
			name:    "missing_score",
			args:    map[string]any{"title": "t", "category": "AI", "description": "d"},
			wantErr: "interest_score is required",
		},
		{
			name:    "fractional_score",
			args:    map[string]any{"title": "t", "category": "AI", "description": "d", "interest_score": 4.5},
			wantErr: "whole number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNewContent(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeDecryptResult(t *testing.T) {
	value := 42
	assert.Equal(t, "Hid the score of c1",
		describeDecryptResult("c1", &client.DecryptResult{Hidden: true}))
	assert.Equal(t, "Score of c1 is 42 (on_chain_verified)",
		describeDecryptResult("c1", &client.DecryptResult{
			Value:      &value,
			Visibility: client.Visibility{State: "on_chain_verified", Value: 42},
		}))
	assert.Equal(t, "Score of c1 is 42 (already verified on-chain)",
		describeDecryptResult("c1", &client.DecryptResult{
			Visibility: client.Visibility{State: "on_chain_verified", Value: 42},
		}))
	assert.Contains(t, describeDecryptResult("c1", &client.DecryptResult{}), "verified concurrently")
}

func TestServer_HandleDecryptScore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/content/{id}/decrypt", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "c1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Lookup failed: content not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"value":63,"outcome":"decrypted","visibility":{"state":"on_chain_verified","value":63}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	s := NewServer(client.NewClient(srv.URL))

	res, err := s.handleDecryptScore(context.Background(), callRequest(map[string]any{"content_id": "c1"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Score of c1 is 63 (on_chain_verified)", resultText(t, res))

	res, err = s.handleDecryptScore(context.Background(), callRequest(map[string]any{"content_id": "missing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "content not found")

	res, err = s.handleDecryptScore(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "content_id is required", resultText(t, res))
}

func TestContentIDFromURI(t *testing.T) {
	id, err := contentIDFromURI("content://content-1-abcd")
	require.NoError(t, err)
	assert.Equal(t, "content-1-abcd", id)

	_, err = contentIDFromURI("article://x")
	require.Error(t, err)
	_, err = contentIDFromURI("content://")
	require.Error(t, err)
}
