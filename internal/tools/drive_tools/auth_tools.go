package drive_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/drivebridge/drivebridge/internal/instrumentation"
	"github.com/drivebridge/drivebridge/internal/logging"
	"github.com/drivebridge/drivebridge/internal/server"
	"github.com/drivebridge/drivebridge/internal/tools/common"
)

// registerAuthTools registers OAuth flow tools
func registerAuthTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	authURLTool := mcp.NewTool("drive_auth_url",
		mcp.WithDescription("Build the Google OAuth consent URL the user visits to authorize Drive access"),
		mcp.WithString("clientId",
			mcp.Required(),
			mcp.Description("OAuth client ID of the application"),
		),
		mcp.WithString("redirectUri",
			mcp.Required(),
			mcp.Description("Redirect URI registered for the OAuth client"),
		),
	)
	s.AddTool(authURLTool, common.InstrumentedToolHandler("drive_auth_url", sc, authURLHandler(sc)))

	exchangeCodeTool := mcp.NewTool("drive_exchange_code",
		mcp.WithDescription("Exchange an OAuth authorization code for access and refresh tokens"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Authorization code returned by Google after user consent"),
		),
		mcp.WithString("clientId",
			mcp.Required(),
			mcp.Description("OAuth client ID of the application"),
		),
		mcp.WithString("clientSecret",
			mcp.Required(),
			mcp.Description("OAuth client secret of the application"),
		),
		mcp.WithString("redirectUri",
			mcp.Required(),
			mcp.Description("Redirect URI used in the authorization request"),
		),
	)
	s.AddTool(exchangeCodeTool, common.InstrumentedToolHandlerWithOperation("drive_exchange_code", "exchange", sc, exchangeCodeHandler(sc)))

	disconnectTool := mcp.NewTool("drive_disconnect",
		mcp.WithDescription("Disconnect from Google Drive, discarding the session"),
	)
	s.AddTool(disconnectTool, common.InstrumentedToolHandler("drive_disconnect", sc, disconnectHandler(sc)))

	return nil
}

func authURLHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		clientID := stringArg(args, "clientId")
		if clientID == "" {
			return mcp.NewToolResultError("clientId is required"), nil
		}
		redirectURI := stringArg(args, "redirectUri")
		if redirectURI == "" {
			return mcp.NewToolResultError("redirectUri is required"), nil
		}

		url, err := sc.DriveClient().AuthURL(clientID, redirectURI)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build auth URL: %v", err)), nil
		}

		return mcp.NewToolResultText(url), nil
	}
}

func exchangeCodeHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		code := stringArg(args, "code")
		if code == "" {
			return mcp.NewToolResultError("code is required"), nil
		}
		clientID := stringArg(args, "clientId")
		if clientID == "" {
			return mcp.NewToolResultError("clientId is required"), nil
		}
		clientSecret := stringArg(args, "clientSecret")
		if clientSecret == "" {
			return mcp.NewToolResultError("clientSecret is required"), nil
		}
		redirectURI := stringArg(args, "redirectUri")
		if redirectURI == "" {
			return mcp.NewToolResultError("redirectUri is required"), nil
		}

		creds, err := sc.DriveClient().ExchangeCode(ctx, code, clientID, clientSecret, redirectURI)
		if err != nil {
			if m := sc.Metrics(); m != nil {
				m.RecordOAuthExchange(ctx, instrumentation.OAuthResultFailure)
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to exchange code: %v", err)), nil
		}
		if m := sc.Metrics(); m != nil {
			m.RecordOAuthExchange(ctx, instrumentation.OAuthResultSuccess)
		}
		slog.Debug("authorization code exchanged",
			logging.Service("oauth"),
			slog.String("access_token", logging.SanitizeToken(creds.AccessToken)))

		result, _ := json.MarshalIndent(creds, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}

func disconnectHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := sc.DriveClient().Disconnect(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to disconnect: %v", err)), nil
		}
		return mcp.NewToolResultText("Disconnected from Google Drive"), nil
	}
}
