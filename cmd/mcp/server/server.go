// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jbeshir/private-content-feed/cmd/mcp/client"
)

// Server is the MCP server for the Private Content Feed.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"private-content-feed",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("session_status",
		mcp.WithDescription("Show whether a wallet is connected and the FHE subsystem is ready, "+
			"plus the latest action status."),
	), s.handleSessionStatus)

	s.mcpServer.AddTool(mcp.NewTool("connect_wallet",
		mcp.WithDescription("Connect a wallet account. Initializes the FHE subsystem and loads content."),
		mcp.WithString("account",
			mcp.Required(),
			mcp.Description("The wallet account address, e.g. '0xabc...'"),
		),
	), s.handleConnectWallet)

	s.mcpServer.AddTool(mcp.NewTool("disconnect_wallet",
		mcp.WithDescription("Disconnect the wallet. Locally decrypted scores are discarded."),
	), s.handleDisconnectWallet)

	s.mcpServer.AddTool(mcp.NewTool("list_content",
		mcp.WithDescription(
			"List content in recommendation order, best match first. "+
				"Each item carries its score visibility and recommendation stats."),
		mcp.WithString("category",
			mcp.Description("Only include this category: AI, Tech, Crypto, Web3, Security or Privacy"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (default: 20)"),
		),
	), s.handleListContent)

	s.mcpServer.AddTool(mcp.NewTool("get_content",
		mcp.WithDescription("Get a single content item with its score visibility and recommendation stats."),
		mcp.WithString("content_id",
			mcp.Required(),
			mcp.Description("The id of the content item"),
		),
	), s.handleGetContent)

	s.mcpServer.AddTool(mcp.NewTool("create_content",
		mcp.WithDescription(
			"Submit a new content item. The interest score is encrypted before it leaves the service "+
				"and stays confidential until decrypted. Requires a connected wallet."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the item"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("One of AI, Tech, Crypto, Web3, Security or Privacy"),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Description of the item"),
		),
		mcp.WithNumber("interest_score",
			mcp.Required(),
			mcp.Description("Confidential interest score between 0 and 100"),
		),
	), s.handleCreateContent)

	s.mcpServer.AddTool(mcp.NewTool("decrypt_score",
		mcp.WithDescription(
			"Decrypt an item's interest score and record the verified value on-chain. "+
				"Requires a connected wallet."),
		mcp.WithString("content_id",
			mcp.Required(),
			mcp.Description("The id of the content item"),
		),
		mcp.WithBoolean("toggle",
			mcp.Description("If the score is already shown locally, hide it instead of decrypting"),
		),
	), s.handleDecryptScore)

	s.mcpServer.AddTool(mcp.NewTool("hide_score",
		mcp.WithDescription("Hide a locally decrypted score. Verified scores stay visible."),
		mcp.WithString("content_id",
			mcp.Required(),
			mcp.Description("The id of the content item"),
		),
	), s.handleHideScore)

	s.mcpServer.AddTool(mcp.NewTool("refresh_content",
		mcp.WithDescription("Reload content from the registry."),
	), s.handleRefreshContent)

	s.mcpServer.AddTool(mcp.NewTool("check_availability",
		mcp.WithDescription("Ask the registry whether the system is available."),
	), s.handleCheckAvailability)

	s.mcpServer.AddTool(mcp.NewTool("catalog_stats",
		mcp.WithDescription("Summarize the loaded catalog: totals, verified items, recent items and average views."),
	), s.handleCatalogStats)
}
