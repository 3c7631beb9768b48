package entity

import "time"

// Status is the protocol-neutral classification of an Envelope.
// The outward-facing layer translates it to its own status signalling.
type Status int

const (
	StatusOK Status = iota
	StatusBadRequest
	StatusNotFound
	StatusUpstream
	StatusTimeout
	StatusInternal
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadRequest:
		return "bad_request"
	case StatusNotFound:
		return "not_found"
	case StatusUpstream:
		return "upstream_error"
	case StatusTimeout:
		return "timeout"
	default:
		return "internal"
	}
}

// ErrorDetail is the error half of an Envelope.
type ErrorDetail struct {
	Kind           string `json:"kind"`
	Message        string `json:"message"`
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
}

// Envelope is the only shape returned by the gateway to its callers.
// It is built fresh on every invocation and never persisted.
type Envelope struct {
	Success   bool         `json:"success"`
	Data      any          `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Cached    bool         `json:"cached"`
	Timestamp time.Time    `json:"timestamp"`
	Status    Status       `json:"-"`
}
