package drive_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/drivebridge/drivebridge/internal/server"
)

// RegisterDriveTools registers all Google Drive-related tools with the MCP server
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register authentication tools
	if err := registerAuthTools(s, sc); err != nil {
		return fmt.Errorf("failed to register auth tools: %w", err)
	}

	// Register file operation tools
	if err := registerFileTools(s, sc); err != nil {
		return fmt.Errorf("failed to register file tools: %w", err)
	}

	return nil
}

// stringArg extracts a string argument from request arguments, returning
// the empty string when absent or not a string.
func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
