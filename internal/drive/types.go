package drive

// File is a metadata snapshot of a remote file or folder at fetch time.
// Values are never mutated locally; they are produced by deserializing API
// responses.
type File struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// ModifiedTime is the RFC 3339 modification timestamp as reported by the API
	ModifiedTime string `json:"modifiedTime,omitempty"`

	// Size is the size in bytes; the API reports it as a decimal string and
	// omits it for folders and native documents
	Size string `json:"size,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`
}

// FileList is one page of a paginated listing. A non-empty NextPageToken must
// be passed to the next ListFiles call to continue; its absence signals the
// end of the listing.
type FileList struct {
	Files         []File `json:"files"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListOptions contains options for listing files
type ListOptions struct {
	// FolderID restricts results to children of that folder
	FolderID string

	// PageToken continues a prior listing
	PageToken string
}

// UploadOptions contains options for uploading a file
type UploadOptions struct {
	// FolderID is the destination parent folder
	FolderID string

	// Name overrides the local file's base name
	Name string
}

// uploadMetadata is the JSON metadata part of a multipart upload.
type uploadMetadata struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents,omitempty"`
}
