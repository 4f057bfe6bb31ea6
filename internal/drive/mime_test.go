package drive

import "testing"

func TestExportTarget(t *testing.T) {
	tests := []struct {
		mimeType   string
		wantExport string
		wantExt    string
		wantOK     bool
	}{
		{"application/vnd.google-apps.document", mimePDF, ".pdf", true},
		{"application/vnd.google-apps.spreadsheet", mimeXLSX, ".xlsx", true},
		{"application/vnd.google-apps.presentation", mimePDF, ".pdf", true},
		{"application/vnd.google-apps.drawing", mimePDF, ".pdf", true},
		{"application/vnd.google-apps.form", mimePDF, ".pdf", true},
		{"image/png", "", "", false},
		{"application/pdf", "", "", false},
		{"text/plain", "", "", false},
	}

	for _, tt := range tests {
		exportMime, ext, ok := exportTarget(tt.mimeType)
		if exportMime != tt.wantExport || ext != tt.wantExt || ok != tt.wantOK {
			t.Errorf("exportTarget(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.mimeType, exportMime, ext, ok, tt.wantExport, tt.wantExt, tt.wantOK)
		}
	}
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"report.pdf", "application/pdf"},
		{"letter.doc", mimeDOCX},
		{"letter.docx", mimeDOCX},
		{"notes.txt", "text/plain"},
		{"config.json", "application/json"},
		{"README.md", "text/markdown"},
		{"archive.zip", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
		{"UPPER.PDF", "application/pdf"},
		{"/tmp/dir/nested.TXT", "text/plain"},
	}

	for _, tt := range tests {
		if got := detectMimeType(tt.path); got != tt.want {
			t.Errorf("detectMimeType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
