package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "orbdyn/internal/adapters/mcp"
	"orbdyn/internal/app"
	"orbdyn/internal/config"
	"orbdyn/internal/logger"
)

func main() {
	dataFlag := flag.String("data", "", "data directory (overrides ORBDYN_DATA)")
	storeFlag := flag.String("store", "", "storage backend (overrides ORBDYN_STORE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("orbdyn-mcp: %v", err)
	}
	if *dataFlag != "" {
		cfg.DataDir = *dataFlag
	}
	if *storeFlag != "" {
		cfg.Store = *storeFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("orbdyn-mcp: %v", err)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("orbdyn-mcp: %v", err)
	}
	defer a.Close()

	mcpServer := server.NewMCPServer(
		"orbdyn-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, a)
	mcpadapter.RegisterWriteTools(mcpServer, a)

	a.Logger.Info("serving MCP over stdio", logger.String("store", cfg.Store))
	if err := server.ServeStdio(mcpServer); err != nil {
		a.Logger.Error("mcp server stopped", logger.Error(err))
		log.Fatalf("orbdyn-mcp: %v", err)
	}
}
