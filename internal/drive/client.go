package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/drivebridge/drivebridge/internal/google"
)

const (
	apiBase    = "https://www.googleapis.com/drive/v3"
	uploadBase = "https://www.googleapis.com/upload/drive/v3"

	listPageSize = 100
	fileFields   = "id,name,mimeType,modifiedTime,size,parents"
)

// Client performs Google Drive operations over raw HTTP. Every call takes the
// access token it needs; the client itself holds no credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
	uploadURL  string
}

// NewClient creates a Drive client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    apiBase,
		uploadURL:  uploadBase,
	}
}

// NewClientWithEndpoints creates a Drive client against custom API endpoints.
// Useful for tests and API proxies.
func NewClientWithEndpoints(httpClient *http.Client, baseURL, uploadURL string) *Client {
	c := NewClient(httpClient)
	if baseURL != "" {
		c.baseURL = baseURL
	}
	if uploadURL != "" {
		c.uploadURL = uploadURL
	}
	return c
}

// AuthURL builds the consent URL the user visits to authorize access.
func (c *Client) AuthURL(clientID, redirectURI string) (string, error) {
	if clientID == "" {
		return "", opErr(KindConfig, "authURL", "client ID is required", nil)
	}
	if redirectURI == "" {
		return "", opErr(KindConfig, "authURL", "redirect URI is required", nil)
	}
	return google.AuthURL(clientID, redirectURI), nil
}

// ExchangeCode trades an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*google.Credentials, error) {
	if code == "" {
		return nil, opErr(KindConfig, "exchange", "authorization code is required", nil)
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	creds, err := google.ExchangeCode(ctx, code, clientID, clientSecret, redirectURI)
	if err != nil {
		return nil, classifyExchangeErr(err)
	}
	return creds, nil
}

func classifyExchangeErr(err error) *Error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		msg := strings.TrimSpace(string(rerr.Body))
		if msg == "" {
			msg = rerr.Response.Status
		}
		return opErr(KindHTTPStatus, "exchange", msg, err)
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return opErr(KindNetwork, "exchange", uerr.Err.Error(), err)
	}
	return opErr(KindParse, "exchange", err.Error(), err)
}

// Disconnect discards the caller's session. Tokens live with the caller, so
// there is no server-side state to clear.
// TODO: optionally POST the refresh token to https://oauth2.googleapis.com/revoke
// so disconnecting also invalidates the grant upstream.
func (c *Client) Disconnect(ctx context.Context) error {
	return nil
}

func buildListQuery(opts ListOptions) url.Values {
	q := "trashed=false"
	if opts.FolderID != "" {
		q += fmt.Sprintf(" and '%s' in parents", opts.FolderID)
	}
	v := url.Values{}
	v.Set("q", q)
	v.Set("fields", fmt.Sprintf("files(%s),nextPageToken", fileFields))
	v.Set("pageSize", fmt.Sprintf("%d", listPageSize))
	if opts.PageToken != "" {
		v.Set("pageToken", opts.PageToken)
	}
	return v
}

// ListFiles returns one page of non-trashed files, optionally restricted to
// the children of a folder.
func (c *Client) ListFiles(ctx context.Context, accessToken string, opts ListOptions) (*FileList, error) {
	u := c.baseURL + "/files?" + buildListQuery(opts).Encode()
	body, err := c.do(ctx, "list", http.MethodGet, u, accessToken, "", nil)
	if err != nil {
		return nil, err
	}
	var list FileList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, opErr(KindParse, "list", "decoding file list", err)
	}
	if list.Files == nil {
		list.Files = []File{}
	}
	return &list, nil
}

// DownloadFile fetches a file's content into destDir and returns the path of
// the written file. Native Workspace documents are exported (Docs and Slides
// to PDF, Sheets to XLSX) and the matching extension is appended to fileName
// unless already present; anything else downloads verbatim.
func (c *Client) DownloadFile(ctx context.Context, accessToken, fileID, fileName, destDir string) (string, error) {
	metaURL := fmt.Sprintf("%s/files/%s?fields=mimeType", c.baseURL, fileID)
	metaBody, err := c.do(ctx, "download", http.MethodGet, metaURL, accessToken, "", nil)
	if err != nil {
		return "", err
	}
	var meta struct {
		MimeType string `json:"mimeType"`
	}
	if err := json.Unmarshal(metaBody, &meta); err != nil {
		return "", opErr(KindParse, "download", "decoding file metadata", err)
	}

	var contentURL string
	name := fileName
	if exportMime, ext, ok := exportTarget(meta.MimeType); ok {
		contentURL = fmt.Sprintf("%s/files/%s/export?mimeType=%s", c.baseURL, fileID, google.PercentEncode(exportMime))
		name = strings.TrimSuffix(name, ext) + ext
	} else {
		contentURL = fmt.Sprintf("%s/files/%s?alt=media", c.baseURL, fileID)
	}

	content, err := c.do(ctx, "download", http.MethodGet, contentURL, accessToken, "", nil)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, name)
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return "", opErr(KindFilesystem, "download", fmt.Sprintf("writing %s", dest), err)
	}
	return dest, nil
}

// UploadFile sends a local file to Drive as a multipart upload and returns
// the created file's metadata. The Drive name defaults to the local base name
// and, failing that, "untitled".
func (c *Client) UploadFile(ctx context.Context, accessToken, path string, opts UploadOptions) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, opErr(KindFilesystem, "upload", fmt.Sprintf("reading %s", path), err)
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(path)
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "untitled"
	}

	meta := uploadMetadata{Name: name}
	if opts.FolderID != "" {
		meta.Parents = []string{opts.FolderID}
	}

	body, contentType, err := relatedBody(meta, detectMimeType(path), content)
	if err != nil {
		return nil, opErr(KindParse, "upload", "encoding upload metadata", err)
	}

	u := fmt.Sprintf("%s/files?uploadType=multipart&fields=%s", c.uploadURL, google.PercentEncode(fileFields))
	respBody, err := c.do(ctx, "upload", http.MethodPost, u, accessToken, contentType, body)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(respBody, &f); err != nil {
		return nil, opErr(KindParse, "upload", "decoding upload response", err)
	}
	return &f, nil
}

// do issues one authenticated request and returns the response body, mapping
// transport and status failures onto the package error kinds.
func (c *Client) do(ctx context.Context, op, method, u, accessToken, contentType string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, opErr(KindConfig, op, "building request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, opErr(KindNetwork, op, err.Error(), err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			msg := strings.TrimSpace(gerr.Body)
			if msg == "" {
				msg = gerr.Message
			}
			return nil, opErr(KindHTTPStatus, op, msg, err)
		}
		return nil, opErr(KindHTTPStatus, op, err.Error(), err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, opErr(KindNetwork, op, "reading response body", err)
	}
	return data, nil
}
