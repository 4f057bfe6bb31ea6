package drive_tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/drivebridge/drivebridge/internal/drive"
	"github.com/drivebridge/drivebridge/internal/server"
)

func newTestContext(t *testing.T, handler http.Handler) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })

	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		sc.SetDriveClient(drive.NewClientWithEndpoints(srv.Client(), srv.URL, srv.URL+"/upload"))
	}

	return sc
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected non-empty result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestRegisterDriveTools(t *testing.T) {
	sc := newTestContext(t, nil)
	s := mcpserver.NewMCPServer("test", "0.0.1")

	if err := RegisterDriveTools(s, sc); err != nil {
		t.Fatalf("RegisterDriveTools() error = %v", err)
	}
}

func TestAuthURLHandler(t *testing.T) {
	sc := newTestContext(t, nil)
	handler := authURLHandler(sc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"clientId":    "my-client",
		"redirectUri": "http://localhost:1420/callback",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	url := resultText(t, result)
	if !strings.Contains(url, "client_id=my-client") {
		t.Errorf("auth URL missing client_id: %s", url)
	}
	if !strings.Contains(url, "response_type=code") {
		t.Errorf("auth URL missing response_type: %s", url)
	}
}

func TestAuthURLHandler_MissingArgs(t *testing.T) {
	sc := newTestContext(t, nil)
	handler := authURLHandler(sc)

	tests := []map[string]interface{}{
		{},
		{"clientId": "my-client"},
		{"redirectUri": "http://localhost/cb"},
	}
	for _, args := range tests {
		result, err := handler(context.Background(), callRequest(args))
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if !result.IsError {
			t.Errorf("expected error result for args %v", args)
		}
	}
}

func TestExchangeCodeHandler_MissingArgs(t *testing.T) {
	sc := newTestContext(t, nil)
	handler := exchangeCodeHandler(sc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"clientId":     "id",
		"clientSecret": "secret",
		"redirectUri":  "http://localhost/cb",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing code")
	}
	if !strings.Contains(resultText(t, result), "code is required") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestListFilesHandler(t *testing.T) {
	var gotQuery string
	var gotAuth string
	sc := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"files":[{"id":"f1","name":"doc.txt","mimeType":"text/plain"}],"nextPageToken":"next"}`)
	}))

	handler := listFilesHandler(sc)
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"accessToken": "tok",
		"folderId":    "folder1",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotQuery != "trashed=false and 'folder1' in parents" {
		t.Errorf("q = %q", gotQuery)
	}

	text := resultText(t, result)
	if !strings.Contains(text, `"id": "f1"`) {
		t.Errorf("result missing file: %s", text)
	}
	if !strings.Contains(text, `"nextPageToken": "next"`) {
		t.Errorf("result missing page token: %s", text)
	}
}

func TestListFilesHandler_MissingToken(t *testing.T) {
	sc := newTestContext(t, nil)
	handler := listFilesHandler(sc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing accessToken")
	}
}

func TestDownloadFileHandler(t *testing.T) {
	sc := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fields") == "mimeType" {
			fmt.Fprint(w, `{"mimeType":"text/plain"}`)
			return
		}
		fmt.Fprint(w, "file content")
	}))

	dir := t.TempDir()
	handler := downloadFileHandler(sc)
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"accessToken": "tok",
		"fileId":      "f1",
		"fileName":    "notes.txt",
		"destDir":     dir,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	dest := filepath.Join(dir, "notes.txt")
	if !strings.Contains(resultText(t, result), dest) {
		t.Errorf("result should name the destination path: %s", resultText(t, result))
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "file content" {
		t.Errorf("content = %q", data)
	}
}

func TestDownloadFileHandler_MissingArgs(t *testing.T) {
	sc := newTestContext(t, nil)
	handler := downloadFileHandler(sc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"accessToken": "tok",
		"fileId":      "f1",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing fileName")
	}
}

func TestUploadFileHandler(t *testing.T) {
	var gotBody string
	sc := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		fmt.Fprint(w, `{"id":"new1","name":"report.md","mimeType":"text/markdown"}`)
	}))

	path := filepath.Join(t.TempDir(), "report.md")
	if err := os.WriteFile(path, []byte("# Report"), 0o644); err != nil {
		t.Fatal(err)
	}

	handler := uploadFileHandler(sc)
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"accessToken": "tok",
		"filePath":    path,
		"folderId":    "folder1",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if !strings.Contains(gotBody, `"name":"report.md"`) {
		t.Errorf("upload body missing name: %s", gotBody)
	}
	if !strings.Contains(gotBody, `"parents":["folder1"]`) {
		t.Errorf("upload body missing parents: %s", gotBody)
	}

	text := resultText(t, result)
	if !strings.Contains(text, `"id": "new1"`) {
		t.Errorf("result missing created file: %s", text)
	}
}

func TestUploadFileHandler_MissingFile(t *testing.T) {
	sc := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	handler := uploadFileHandler(sc)
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"accessToken": "tok",
		"filePath":    filepath.Join(t.TempDir(), "missing.txt"),
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing local file")
	}
}

func TestDisconnectHandler(t *testing.T) {
	sc := newTestContext(t, nil)
	handler := disconnectHandler(sc)

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "Disconnected") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{
		"present": "value",
		"number":  42,
	}

	if got := stringArg(args, "present"); got != "value" {
		t.Errorf("stringArg(present) = %q", got)
	}
	if got := stringArg(args, "number"); got != "" {
		t.Errorf("stringArg(number) = %q, want empty", got)
	}
	if got := stringArg(args, "absent"); got != "" {
		t.Errorf("stringArg(absent) = %q, want empty", got)
	}
	if got := stringArg(nil, "any"); got != "" {
		t.Errorf("stringArg(nil) = %q, want empty", got)
	}
}
