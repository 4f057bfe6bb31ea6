package drive

import (
	"strings"
	"testing"
)

func TestRelatedBody(t *testing.T) {
	body, contentType, err := relatedBody(
		uploadMetadata{Name: "a.txt", Parents: []string{"f1"}},
		"text/plain",
		[]byte("hello"),
	)
	if err != nil {
		t.Fatalf("relatedBody() error = %v", err)
	}

	if want := "multipart/related; boundary=" + relatedBoundary; contentType != want {
		t.Errorf("contentType = %q, want %q", contentType, want)
	}

	want := "--" + relatedBoundary + "\r\n" +
		"Content-Type: application/json; charset=UTF-8\r\n\r\n" +
		`{"name":"a.txt","parents":["f1"]}` + "\r\n" +
		"--" + relatedBoundary + "\r\n" +
		"Content-Type: text/plain\r\n\r\n" +
		"hello\r\n" +
		"--" + relatedBoundary + "--\r\n"
	if string(body) != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestRelatedBodyNoParents(t *testing.T) {
	body, _, err := relatedBody(uploadMetadata{Name: "b.bin"}, "application/octet-stream", []byte{0x00, 0x01})
	if err != nil {
		t.Fatalf("relatedBody() error = %v", err)
	}
	if strings.Contains(string(body), "parents") {
		t.Errorf("metadata should omit parents when unset: %s", body)
	}
	if !strings.Contains(string(body), `{"name":"b.bin"}`) {
		t.Errorf("metadata missing name: %s", body)
	}
}
