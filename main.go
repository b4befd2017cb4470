// ETS Score MCP Server - A Model Context Protocol server for the ETS Score
// hotel APIs. Provides tools for searching hotels, reading hotel content,
// and producing reservation links.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/kaanyildiz/etscore-mcp-server/internal/etscore"
	"github.com/kaanyildiz/etscore-mcp-server/tools"
	"github.com/kaanyildiz/etscore-mcp-server/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// recoverPanic wraps a function with panic recovery and returns an error instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "etscore-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := etscore.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Create the vendor API client
	client := etscore.NewClient(config, etscore.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `ETS Score MCP Server provides tools for searching and inspecting hotels.

Available tools:
- hotel_search_by_location: Search hotels in a city for given dates and occupancy
- hotel_details: Get a hotel summary (name, address, coordinates, phone, stars)
- hotel_images: List a hotel's image URLs
- hotel_description: Get a hotel's description text in all available languages
- hotel_facility_check: List a hotel's facilities and amenities
- hotel_reservation: Get a checkout link to reserve a hotel

Configure via environment variables:
- ETSCORE_BASE_URL: Vendor API base URL (required)
- ETSCORE_AUTH_TOKEN: Bearer token for the vendor API
- ETSCORE_ACCEPT_LANGUAGE: Accept-Language header (default tr-TR)
- ETSCORE_CURRENCY: X-Currency header (default TRY)
- ETSCORE_CONTENT_LANGUAGE: Language for hotel content (default es)`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Optionally expose Prometheus metrics over HTTP
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	// Run server on stdio transport
	logger.Info("Starting ETS Score MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics runs a small HTTP server exposing /metrics, wrapped in the
// security middleware.
func serveMetrics(addr string, logger *slog.Logger) {
	defer recoverPanic(logger, "metrics server")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	handler := NewSecurityMiddleware(mux, logger, SecurityConfig{
		RateLimit:   60,
		MaxBodySize: 4096,
	})
	defer handler.Close()

	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("Metrics server stopped", "error", err)
	}
}
