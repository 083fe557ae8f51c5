// Package errors defines web typed application errors.
package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindTimeout      Kind = "timeout"
	// KindLogoutFailed marks a failed logout action. It is the only failure
	// the dashboard shell recognises; it is logged and never shown.
	KindLogoutFailed Kind = "logout_failed"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Cause   error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	message := e.Message
	if message == "" {
		message = string(e.Kind)
	}
	if e.Cause != nil {
		return message + ": " + e.Cause.Error()
	}
	return message
}

// Unwrap exposes the underlying cause.
func (e Error) Unwrap() error {
	return e.Cause
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap builds a typed Error around a cause.
func Wrap(kind Kind, message string, cause error) error {
	return Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the typed kind for err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
