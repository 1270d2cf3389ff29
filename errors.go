// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Sentinel errors for use with errors.Is
var (
	// ErrInvalidParameter matches every InvalidParameterError
	ErrInvalidParameter = errors.New("nios: invalid parameter")

	// ErrRequest matches every RequestError
	ErrRequest = errors.New("nios: request failed")
)

// InvalidParameterError reports caller misuse: missing credentials, an empty
// object name, or a value outside of its allowed set.
type InvalidParameterError struct {
	// Parameter is the name of the offending parameter
	Parameter string

	// Message describes what is wrong with it
	Message string
}

// Error implements the error interface
func (e *InvalidParameterError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("nios: invalid parameter: %s", e.Message)
	}
	return fmt.Sprintf("nios: invalid parameter %s: %s", e.Parameter, e.Message)
}

// Is reports whether target is ErrInvalidParameter
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalidParam(param, format string, args ...any) error {
	return &InvalidParameterError{Parameter: param, Message: fmt.Sprintf(format, args...)}
}

// RequestError represents a failed WAPI request with operation context.
//
// It covers transport failures (StatusCode is 0), unexpected HTTP status
// codes, and responses whose shape does not match what the operation needs
// (e.g. GetOne returning several objects).
type RequestError struct {
	// Operation name that failed (e.g. "Get", "GridBackup: uploadinit")
	Operation string

	// HTTP status code, 0 when the request never completed
	StatusCode int

	// Body is the raw response body of a failed request
	Body string

	// Errors parsed from the WAPI error body
	Errors []WapiError

	// Human-readable error message
	Message string

	// InternalMsg contains detailed error information for internal logging
	InternalMsg string

	// Number of retry attempts made
	Retries int

	// IsTransient indicates if the error is transient and was retried
	IsTransient bool

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Retries > 0 {
		return fmt.Sprintf("nios: %s failed: %s (retries: %d)", e.Operation, e.Message, e.Retries)
	}
	return fmt.Sprintf("nios: %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRequest
func (e *RequestError) Is(target error) bool {
	return target == ErrRequest
}

// DetailedError returns the full error message including internal details
//
// This should only be used in secure logging contexts where sensitive information
// disclosure is acceptable (e.g., server-side logs, debug output).
//
// Example:
//
//	var reqErr *nios.RequestError
//	if errors.As(err, &reqErr) {
//	    log.Debug(reqErr.DetailedError()) // internal logging
//	    return reqErr.Error()             // client-facing error
//	}
func (e *RequestError) DetailedError() string {
	if e.InternalMsg == "" {
		return e.Error()
	}
	if e.Retries > 0 {
		return fmt.Sprintf("nios: %s failed: %s (internal: %s, retries: %d)",
			e.Operation, e.Message, e.InternalMsg, e.Retries)
	}
	return fmt.Sprintf("nios: %s failed: %s (internal: %s)",
		e.Operation, e.Message, e.InternalMsg)
}

// WapiError is the error document WAPI returns in a non-2xx response body
//
//	{ "Error": "AdmConProtoError: ...", "code": "Client.Ibap.Proto", "text": "..." }
type WapiError struct {
	// Error is the short error class and message
	Error string

	// Code is the WAPI error code (e.g. Client.Ibap.Data.Conflict)
	Code string

	// Text is the descriptive error text
	Text string
}

// parseWapiErrors extracts WAPI error documents from a response body.
// Bodies that are not JSON error documents yield a single entry carrying the
// raw text.
func parseWapiErrors(body string) []WapiError {
	if body == "" {
		return nil
	}
	if !gjson.Valid(body) {
		return []WapiError{{Text: body}}
	}
	res := gjson.Parse(body)
	if !res.Get("Error").Exists() && !res.Get("text").Exists() {
		return []WapiError{{Text: body}}
	}
	return []WapiError{{
		Error: res.Get("Error").String(),
		Code:  res.Get("code").String(),
		Text:  res.Get("text").String(),
	}}
}

// TransientStatusCodes defines the HTTP status codes that trigger automatic retry
//
// These are typically caused by temporary conditions on the Grid Manager:
//   - 429 Too Many Requests (rate limiting)
//   - 502 Bad Gateway (httpd up, backend restarting)
//   - 503 Service Unavailable (product restart, failover in progress)
//   - 504 Gateway Timeout (slow backend)
//
// NOTE: 500 is intentionally excluded. WAPI reports most data errors as 400,
// but a 500 is usually a permanent server-side failure for that request.
// Retries are only ever applied to GET, never to calls with side effects.
var TransientStatusCodes = []int{
	http.StatusTooManyRequests,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// isTransientStatus checks if an HTTP status code is listed in TransientStatusCodes
func isTransientStatus(code int) bool {
	for _, c := range TransientStatusCodes {
		if c == code {
			return true
		}
	}
	return false
}
