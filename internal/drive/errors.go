package drive

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindNetwork is a transport failure sending the request or reading the
	// response.
	KindNetwork Kind = iota

	// KindHTTPStatus is a non-2xx response from the remote API; the message
	// carries the response body text.
	KindHTTPStatus

	// KindParse is a response body that does not match the expected shape.
	KindParse

	// KindFilesystem is a local file read or write failure.
	KindFilesystem

	// KindConfig is a missing or invalid required input.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindParse:
		return "parse"
	case KindFilesystem:
		return "filesystem"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every Client operation.
type Error struct {
	Kind    Kind
	Op      string // failed operation: "exchange", "list", "download", "upload"
	Message string
	Err     error // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("drive: %s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("drive: %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("drive: %s failed", e.Op)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err if it is (or wraps) a drive *Error.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

func opErr(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}
