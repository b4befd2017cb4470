package tools

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/kaanyildiz/etscore-mcp-server/internal/errors"
	"github.com/kaanyildiz/etscore-mcp-server/internal/etscore"
	"github.com/kaanyildiz/etscore-mcp-server/metrics"
	"github.com/kaanyildiz/etscore-mcp-server/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *etscore.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *etscore.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "SearchByLocation":
		register(h, server, tool, spec, h.client.SearchByLocationMCP)
	case "HotelDetails":
		register(h, server, tool, spec, h.client.HotelDetailsMCP)
	case "HotelImages":
		register(h, server, tool, spec, h.client.HotelImagesMCP)
	case "HotelDescription":
		register(h, server, tool, spec, h.client.HotelDescriptionMCP)
	case "HotelFacilityCheck":
		register(h, server, tool, spec, h.client.HotelFacilityCheckMCP)
	case "HotelReservation":
		register(h, server, tool, spec, h.client.HotelReservationMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging. Every client method yields final user-facing text even when it
// also reports a classified error; the error feeds metrics and the span,
// but the text is always returned to the calling agent as content rather
// than a protocol fault.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (string, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, any, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(attribute.Bool("mcp.tool.readonly", spec.ReadOnly))

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		text, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			metrics.RecordToolFailure(spec.Name, errors.Code(err))
		} else {
			span.SetStatus(codes.Ok, "")
			metrics.RecordRequest(spec.Name, duration, true)
		}
		h.logExecution(spec, args, text, err)

		result := &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}
		return result, nil, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args any, text string, err error) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	switch a := args.(type) {
	case etscore.SearchByLocationArgs:
		attrs = append(attrs, "city", a.City, "check_in", a.CheckIn, "check_out", a.CheckOut, "rooms", len(a.Rooms))
	case etscore.HotelCodeArgs:
		attrs = append(attrs, "hotel_code", a.HotelCode)
	case etscore.ReservationArgs:
		attrs = append(attrs, "hotel_code", a.HotelCode)
	}

	attrs = append(attrs, "response_bytes", len(text))

	if err != nil {
		attrs = append(attrs, "error_code", errors.Code(err), "error", err)
		h.logger.Warn("Tool completed with error", attrs...)
		return
	}
	h.logger.Info("Tool executed", attrs...)
}
