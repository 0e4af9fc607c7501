package nvisy

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error by where it originated.
type Kind int

const (
	// KindTransport covers network failures and non-2xx HTTP responses.
	KindTransport Kind = iota + 1
	// KindSerialization covers JSON encoding and decoding failures.
	KindSerialization
	// KindConfig covers invalid client configuration.
	KindConfig
	// KindURLParse covers malformed base URLs and request paths.
	KindURLParse
	// KindIO covers local file reads and writes.
	KindIO
	// KindAPI covers well-formed responses that are semantically empty.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindSerialization:
		return "serialization"
	case KindConfig:
		return "configuration"
	case KindURLParse:
		return "url parse"
	case KindIO:
		return "i/o"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is returned by every Client operation.
type Error struct {
	Kind Kind
	// Op names the failed operation, e.g. "GET /workspaces".
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("nvisy: %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("nvisy: %s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusError is the cause of a KindTransport error for a non-2xx response.
type StatusError struct {
	StatusCode int
	// Status is the full status line text, e.g. "404 Not Found".
	Status string
	Method string
	URL    string
	// Message is the server's error message when the body carried one,
	// otherwise the status text.
	Message string
	Body    []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

// ErrEmptyUpload is the cause of the KindAPI error returned when an upload
// response contains no file records.
var ErrEmptyUpload = errors.New("upload returned no files")

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from an HTTP response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// IsNotFound reports whether err was caused by a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err was caused by a 401 or 403 response.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
