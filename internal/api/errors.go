package api

import "fmt"

// Kind classifies a failed API call.
type Kind int

const (
	// KindTransport means no response was received.
	KindTransport Kind = iota
	// KindServer means the server responded with a structured error payload.
	KindServer
	// KindUnexpected covers everything else, e.g. a malformed response.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	default:
		return "unexpected"
	}
}

// Error is the normalized failure for every API call.
type Error struct {
	Kind    Kind
	Status  int // HTTP status, zero unless Kind is KindServer
	Message string
	Fields  map[string][]string // per-field server validation messages, if any
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}
