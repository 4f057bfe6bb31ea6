package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drivebridge/drivebridge/internal/instrumentation"
	"github.com/drivebridge/drivebridge/internal/logging"
	"github.com/drivebridge/drivebridge/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with a span, a debug log line
// and invocation metrics. Metrics are skipped when no recorder is attached to
// the server context; the span degrades to a no-op when tracing is disabled.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return instrumented(toolName, "", sc, handler)
}

// InstrumentedToolHandlerWithOperation is like InstrumentedToolHandler but
// also tags the span with the Drive operation type and records Drive API
// operation metrics (drive_api_operations_total,
// drive_api_operation_duration_seconds) next to the MCP tool metrics.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithOperation("my_tool", "list", sc, handler))
func InstrumentedToolHandlerWithOperation(
	toolName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return instrumented(toolName, operation, sc, handler)
}

func instrumented(
	toolName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		builder := instrumentation.NewSpanAttributeBuilder().WithService(instrumentation.ServiceDrive)
		if operation != "" {
			builder = builder.WithOperation(operation)
		}
		ctx, span := instrumentation.StartToolSpan(ctx, toolName, builder.Build()...)
		defer span.End()

		start := time.Now()
		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := logging.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = logging.StatusError
			instrumentation.SetSpanError(span, err)
		} else {
			instrumentation.SetSpanSuccess(span)
		}

		attrs := []any{
			logging.Tool(toolName),
			logging.Status(status),
			logging.Duration(duration),
			logging.Err(err),
		}
		if operation != "" {
			attrs = append(attrs, logging.Operation(operation))
		}
		slog.Debug("tool call", attrs...)

		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
			if operation != "" {
				metrics.RecordDriveOperation(ctx, operation, status, duration)
			}
		}

		return result, err
	}
}
