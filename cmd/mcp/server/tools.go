package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jbeshir/private-content-feed/cmd/mcp/client"
)

const defaultListLimit = 20

func (s *Server) handleSessionStatus(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	session, err := s.client.Session(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get session: %v", err)), nil
	}
	return formatJSONResult(session)
}

func (s *Server) handleConnectWallet(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	account, ok := stringArg(request, "account")
	if !ok {
		return mcp.NewToolResultError("account is required"), nil
	}

	session, err := s.client.Connect(ctx, account)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to connect wallet: %v", err)), nil
	}
	return formatJSONResult(session)
}

func (s *Server) handleDisconnectWallet(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	if _, err := s.client.Disconnect(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to disconnect wallet: %v", err)), nil
	}
	return mcp.NewToolResultText("Wallet disconnected"), nil
}

func (s *Server) handleListContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	category, _ := stringArg(request, "category")

	limit := defaultListLimit
	if l, ok := request.GetArguments()["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}

	items, err := s.client.ListContent(ctx, category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list content: %v", err)), nil
	}

	return formatContentListResult(items[:min(limit, len(items))])
}

func (s *Server) handleGetContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	contentID, ok := stringArg(request, "content_id")
	if !ok {
		return mcp.NewToolResultError("content_id is required"), nil
	}

	item, err := s.client.GetContent(ctx, contentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get content: %v", err)), nil
	}
	return formatJSONResult(item)
}

func (s *Server) handleCreateContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	content, err := parseNewContent(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.client.CreateContent(ctx, content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create content: %v", err)), nil
	}

	msg := fmt.Sprintf("Created content %s in transaction %s", res.ID, res.TxHash)
	return mcp.NewToolResultText(msg), nil
}

func parseNewContent(args map[string]any) (client.NewContent, error) {
	var content client.NewContent
	fields := []struct {
		name string
		dst  *string
	}{
		{"title", &content.Title},
		{"category", &content.Category},
		{"description", &content.Description},
	}
	for _, f := range fields {
		v, ok := args[f.name].(string)
		if !ok || strings.TrimSpace(v) == "" {
			return content, fmt.Errorf("%s is required", f.name)
		}
		*f.dst = v
	}

	score, ok := args["interest_score"].(float64)
	if !ok {
		return content, errors.New("interest_score is required")
	}
	if score != math.Trunc(score) {
		return content, errors.New("interest_score must be a whole number")
	}
	content.InterestScore = int(score)

	return content, nil
}

func (s *Server) handleDecryptScore(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	contentID, ok := stringArg(request, "content_id")
	if !ok {
		return mcp.NewToolResultError("content_id is required"), nil
	}
	toggle, _ := request.GetArguments()["toggle"].(bool)

	res, err := s.client.DecryptScore(ctx, contentID, toggle)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decrypt score: %v", err)), nil
	}

	return mcp.NewToolResultText(describeDecryptResult(contentID, res)), nil
}

func describeDecryptResult(contentID string, res *client.DecryptResult) string {
	switch {
	case res.Hidden:
		return fmt.Sprintf("Hid the score of %s", contentID)
	case res.Value != nil:
		return fmt.Sprintf("Score of %s is %d (%s)", contentID, *res.Value, res.Visibility.State)
	case res.Visibility.State == "on_chain_verified":
		return fmt.Sprintf("Score of %s is %d (already verified on-chain)", contentID, res.Visibility.Value)
	default:
		return fmt.Sprintf("Score of %s was verified concurrently, refresh to see it", contentID)
	}
}

func (s *Server) handleHideScore(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	contentID, ok := stringArg(request, "content_id")
	if !ok {
		return mcp.NewToolResultError("content_id is required"), nil
	}

	if err := s.client.HideScore(ctx, contentID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to hide score: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Hid the score of %s", contentID)), nil
}

func (s *Server) handleRefreshContent(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	if err := s.client.Refresh(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to refresh content: %v", err)), nil
	}
	return mcp.NewToolResultText("Content refreshed"), nil
}

func (s *Server) handleCheckAvailability(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	if err := s.client.CheckAvailability(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("system unavailable: %v", err)), nil
	}
	return mcp.NewToolResultText("System is available and ready!"), nil
}

func (s *Server) handleCatalogStats(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	summary, err := s.client.Stats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}
	return formatJSONResult(summary)
}

func stringArg(request mcp.CallToolRequest, name string) (string, bool) {
	v, ok := request.GetArguments()[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func formatContentListResult(items []client.ScoredContent) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No content found."), nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format content: %v", err)), nil
	}

	msg := fmt.Sprintf("Found %d item(s):\n\n%s", len(items), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
