package drive_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/drivebridge/drivebridge/internal/drive"
	"github.com/drivebridge/drivebridge/internal/logging"
	"github.com/drivebridge/drivebridge/internal/server"
	"github.com/drivebridge/drivebridge/internal/tools/common"
)

// registerFileTools registers file transfer tools
func registerFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listFilesTool := mcp.NewTool("drive_list_files",
		mcp.WithDescription("List non-trashed files in Google Drive, optionally within a folder"),
		mcp.WithString("accessToken",
			mcp.Required(),
			mcp.Description("OAuth access token for the Drive account"),
		),
		mcp.WithString("folderId",
			mcp.Description("Folder ID to list; omit for a listing across the whole drive"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token for retrieving the next page of results"),
		),
	)
	s.AddTool(listFilesTool, common.InstrumentedToolHandlerWithOperation("drive_list_files", "list", sc, listFilesHandler(sc)))

	downloadFileTool := mcp.NewTool("drive_download_file",
		mcp.WithDescription("Download a file from Google Drive to a local directory; Google Docs, Sheets and Slides are exported to PDF or XLSX"),
		mcp.WithString("accessToken",
			mcp.Required(),
			mcp.Description("OAuth access token for the Drive account"),
		),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("ID of the file to download"),
		),
		mcp.WithString("fileName",
			mcp.Required(),
			mcp.Description("Name for the local copy of the file"),
		),
		mcp.WithString("destDir",
			mcp.Required(),
			mcp.Description("Local directory to write the file into"),
		),
	)
	s.AddTool(downloadFileTool, common.InstrumentedToolHandlerWithOperation("drive_download_file", "download", sc, downloadFileHandler(sc)))

	uploadFileTool := mcp.NewTool("drive_upload_file",
		mcp.WithDescription("Upload a local file to Google Drive"),
		mcp.WithString("accessToken",
			mcp.Required(),
			mcp.Description("OAuth access token for the Drive account"),
		),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Path of the local file to upload"),
		),
		mcp.WithString("fileName",
			mcp.Description("Drive name for the file; defaults to the local file name"),
		),
		mcp.WithString("folderId",
			mcp.Description("Destination folder ID; omit to upload to the drive root"),
		),
	)
	s.AddTool(uploadFileTool, common.InstrumentedToolHandlerWithOperation("drive_upload_file", "upload", sc, uploadFileHandler(sc)))

	return nil
}

func listFilesHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		accessToken := stringArg(args, "accessToken")
		if accessToken == "" {
			return mcp.NewToolResultError("accessToken is required"), nil
		}

		opts := drive.ListOptions{
			FolderID:  stringArg(args, "folderId"),
			PageToken: stringArg(args, "pageToken"),
		}

		list, err := sc.DriveClient().ListFiles(ctx, accessToken, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list files: %v", err)), nil
		}

		result, _ := json.MarshalIndent(list, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}

func downloadFileHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		accessToken := stringArg(args, "accessToken")
		if accessToken == "" {
			return mcp.NewToolResultError("accessToken is required"), nil
		}
		fileID := stringArg(args, "fileId")
		if fileID == "" {
			return mcp.NewToolResultError("fileId is required"), nil
		}
		fileName := stringArg(args, "fileName")
		if fileName == "" {
			return mcp.NewToolResultError("fileName is required"), nil
		}
		destDir := stringArg(args, "destDir")
		if destDir == "" {
			return mcp.NewToolResultError("destDir is required"), nil
		}

		dest, err := sc.DriveClient().DownloadFile(ctx, accessToken, fileID, fileName, destDir)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to download file: %v", err)), nil
		}

		recordTransfer(ctx, sc, "download", dest)
		return mcp.NewToolResultText(fmt.Sprintf("File downloaded to %s", dest)), nil
	}
}

func uploadFileHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		accessToken := stringArg(args, "accessToken")
		if accessToken == "" {
			return mcp.NewToolResultError("accessToken is required"), nil
		}
		filePath := stringArg(args, "filePath")
		if filePath == "" {
			return mcp.NewToolResultError("filePath is required"), nil
		}

		opts := drive.UploadOptions{
			Name:     stringArg(args, "fileName"),
			FolderID: stringArg(args, "folderId"),
		}

		f, err := sc.DriveClient().UploadFile(ctx, accessToken, filePath, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to upload file: %v", err)), nil
		}

		recordTransfer(ctx, sc, "upload", filePath)
		result, _ := json.MarshalIndent(f, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("File uploaded successfully:\n%s", string(result))), nil
	}
}

// recordTransfer records the transferred byte count for a completed upload or
// download, sized from the local copy of the file.
func recordTransfer(ctx context.Context, sc *server.ServerContext, direction, path string) {
	fi, err := os.Stat(path)
	if err != nil {
		return
	}

	slog.Debug("file transferred",
		logging.Operation(direction),
		logging.File(path),
		slog.Int64("bytes", fi.Size()))

	if m := sc.Metrics(); m != nil {
		m.RecordTransferBytes(ctx, direction, fi.Size())
	}
}
