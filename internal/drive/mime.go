package drive

import (
	"path/filepath"
	"strings"
)

// FolderMimeType identifies a Drive folder.
const FolderMimeType = "application/vnd.google-apps.folder"

// nativePrefix marks Google Workspace types that have no binary content and
// must be exported instead of downloaded directly.
const nativePrefix = "application/vnd.google-apps"

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// exportTarget maps a native Workspace mime type to the export format and the
// file extension appended to the local copy. ok is false for types that carry
// binary content and download directly.
func exportTarget(mimeType string) (exportMime, ext string, ok bool) {
	switch mimeType {
	case "application/vnd.google-apps.document":
		return mimePDF, ".pdf", true
	case "application/vnd.google-apps.spreadsheet":
		return mimeXLSX, ".xlsx", true
	case "application/vnd.google-apps.presentation":
		return mimePDF, ".pdf", true
	}
	if strings.HasPrefix(mimeType, nativePrefix) {
		return mimePDF, ".pdf", true
	}
	return "", "", false
}

var uploadMimeTypes = map[string]string{
	".pdf":  mimePDF,
	".doc":  mimeDOCX,
	".docx": mimeDOCX,
	".txt":  "text/plain",
	".json": "application/json",
	".md":   "text/markdown",
}

// detectMimeType picks an upload content type from the file extension,
// falling back to a generic binary type.
func detectMimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := uploadMimeTypes[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}
