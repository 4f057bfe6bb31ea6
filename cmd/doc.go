// Package cmd implements the command-line interface for drivebridge.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide Google Drive tools for AI assistants
//   - auth: Walk through the OAuth2 authorization code flow (url, exchange)
//   - ls: List files in Google Drive
//   - get: Download a file
//   - put: Upload a file
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
