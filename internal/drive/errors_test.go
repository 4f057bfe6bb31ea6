package drive

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindHTTPStatus, "http_status"},
		{KindParse, "parse"},
		{KindFilesystem, "filesystem"},
		{KindConfig, "config"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	e := opErr(KindHTTPStatus, "list", "403 rate limit", nil)
	if got := e.Error(); got != "drive: list: 403 rate limit" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("eof")
	e = opErr(KindNetwork, "download", "", cause)
	if got := e.Error(); got != "drive: download: eof" {
		t.Errorf("Error() = %q", got)
	}

	e = opErr(KindParse, "upload", "", nil)
	if got := e.Error(); got != "drive: upload failed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	e := opErr(KindNetwork, "list", "", cause)
	if !errors.Is(e, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestKindOf(t *testing.T) {
	e := opErr(KindFilesystem, "upload", "no such file", nil)
	wrapped := fmt.Errorf("handling request: %w", e)

	kind, ok := KindOf(wrapped)
	if !ok || kind != KindFilesystem {
		t.Errorf("KindOf(wrapped) = (%v, %v)", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should report false for non-drive errors")
	}
}
