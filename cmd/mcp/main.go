// Package main provides the entry point for the Private Content Feed MCP server.
//
// This MCP server lets AI agents browse content, submit new items and decrypt
// confidential interest scores through a running Private Content Feed service.
//
// Configuration:
//
//	PCF_API_URL - Base URL of the API (default: http://localhost:8080)
//
// Usage:
//
//	claude mcp add private-content-feed --transport stdio \
//	  --env PCF_API_URL=http://localhost:8080 \
//	  -- /path/to/pcf-mcp
package main

import (
	"log"
	"os"

	"github.com/jbeshir/private-content-feed/cmd/mcp/client"
	"github.com/jbeshir/private-content-feed/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("PCF_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	srv := server.NewServer(client.NewClient(apiURL))

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
