package drive

import (
	"bytes"
	"encoding/json"
)

// relatedBoundary is the fixed multipart boundary used for uploads. The value
// never collides with JSON metadata or any content Drive accepts, so a random
// boundary buys nothing and a fixed one keeps request bodies reproducible.
const relatedBoundary = "----WebKitFormBoundary7MA4YWxkTrZu0gW"

// relatedBody assembles the multipart/related request body for a metadata +
// media upload and returns it with the matching Content-Type header value.
func relatedBody(meta uploadMetadata, contentType string, content []byte) ([]byte, string, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.WriteString("--" + relatedBoundary + "\r\n")
	buf.WriteString("Content-Type: application/json; charset=UTF-8\r\n\r\n")
	buf.Write(metaJSON)
	buf.WriteString("\r\n")
	buf.WriteString("--" + relatedBoundary + "\r\n")
	buf.WriteString("Content-Type: " + contentType + "\r\n\r\n")
	buf.Write(content)
	buf.WriteString("\r\n")
	buf.WriteString("--" + relatedBoundary + "--\r\n")

	return buf.Bytes(), "multipart/related; boundary=" + relatedBoundary, nil
}
