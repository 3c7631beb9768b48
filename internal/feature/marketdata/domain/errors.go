// Package domain defines domain-level errors for the marketdata feature.
package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies why a gateway invocation failed.
// The outward-facing layer (HTTP, CLI) decides how each kind is presented.
type Kind string

const (
	// KindNotFound indicates the upstream explicitly reported that the queried entity does not exist.
	KindNotFound Kind = "not_found"
	// KindUpstream indicates a transport failure, a non-success status or an unparsable payload.
	KindUpstream Kind = "upstream_error"
	// KindTimeout indicates that no response arrived within the upstream time bound.
	KindTimeout Kind = "timeout"
	// KindConfiguration indicates a capability that cannot be resolved from configuration.
	// This is the only kind that is treated as fatal at startup.
	KindConfiguration Kind = "configuration_error"
	// KindInvalidParams indicates caller-supplied parameters were rejected before any upstream call.
	KindInvalidParams Kind = "invalid_params"
	// KindInternal indicates a failure inside the gateway itself.
	KindInternal Kind = "internal_error"
)

// ProviderError is the typed failure returned by provider adapters and the gateway.
type ProviderError struct {
	Kind           Kind
	Message        string
	UpstreamStatus int // 0 when no HTTP response was received
	Err            error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NotFound builds a KindNotFound error. The upstream status is reported as 404.
func NotFound(format string, args ...any) *ProviderError {
	return &ProviderError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...), UpstreamStatus: http.StatusNotFound}
}

// Upstream builds a KindUpstream error carrying the upstream HTTP status (0 if unknown).
func Upstream(status int, format string, args ...any) *ProviderError {
	return &ProviderError{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), UpstreamStatus: status}
}

// InvalidParams builds a KindInvalidParams error.
func InvalidParams(err error) *ProviderError {
	return &ProviderError{Kind: KindInvalidParams, Message: err.Error(), Err: err}
}

// Configuration builds a KindConfiguration error.
func Configuration(format string, args ...any) *ProviderError {
	return &ProviderError{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// FromTransport classifies an error returned by http.Client.Do.
// Deadline and net timeouts become KindTimeout, everything else KindUpstream.
func FromTransport(provider string, err error) *ProviderError {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &ProviderError{Kind: KindTimeout, Message: provider + " did not respond in time", Err: err}
	}
	return &ProviderError{Kind: KindUpstream, Message: provider + " request failed", Err: err}
}

// FromStatus classifies a non-success HTTP status returned by a provider.
func FromStatus(provider string, status int) *ProviderError {
	if status == http.StatusNotFound {
		return &ProviderError{Kind: KindNotFound, Message: provider + " reported resource not found", UpstreamStatus: status}
	}
	return Upstream(status, "%s http %d", provider, status)
}

// AsProviderError converts any error into a *ProviderError.
// Errors that are not already typed are reported as KindInternal.
func AsProviderError(err error) *ProviderError {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProviderError{Kind: KindInternal, Message: err.Error(), Err: err}
}

// KindOf returns the Kind of err, or KindInternal for untyped errors.
// A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return AsProviderError(err).Kind
}
