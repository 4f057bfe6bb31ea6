// Package drive_tools provides MCP (Model Context Protocol) tools for Google Drive operations.
//
// This package exposes Drive functionality to MCP clients through a set of
// tools that handle the OAuth flow and file transfer.
//
// Available tools:
//   - drive_auth_url: Build the Google OAuth consent URL
//   - drive_exchange_code: Exchange an authorization code for tokens
//   - drive_list_files: List non-trashed files, optionally within a folder
//   - drive_download_file: Download a file to a local directory, exporting native Workspace documents
//   - drive_upload_file: Upload a local file as a multipart request
//   - drive_disconnect: Discard the session
//
// Tools that touch the Drive API take an accessToken parameter; the server
// never stores credentials. The caller owns the tokens and passes them with
// each call.
//
// Example tool usage:
//
//	drive_list_files({
//	  accessToken: "ya29...",
//	  folderId: "folder_id"
//	})
//
//	drive_upload_file({
//	  accessToken: "ya29...",
//	  filePath: "/tmp/report.pdf",
//	  folderId: "folder_id"
//	})
package drive_tools
