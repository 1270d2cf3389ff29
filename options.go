// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client configuration options using the functional options pattern

// WapiVersion sets the WAPI version used to build the base URL (default: 2.5)
//
// Accepts both "2.11" and "v2.11".
func WapiVersion(version string) func(*Client) {
	return func(c *Client) {
		c.wapiVer = strings.TrimPrefix(version, "v")
	}
}

// Username sets the username for basic authentication
func Username(username string) func(*Client) {
	return func(c *Client) {
		c.username = username
	}
}

// Password sets the password for basic authentication
func Password(password string) func(*Client) {
	return func(c *Client) {
		c.password = password
	}
}

// Certificate sets the client certificate file path for certificate authentication
//
// The file is PEM encoded. If CertificateKey is not set, the private key is
// expected in the same file. The certificate is loaded when the client is created.
func Certificate(certPath string) func(*Client) {
	return func(c *Client) {
		c.certificate = certPath
	}
}

// CertificateKey sets the private key file path matching Certificate
func CertificateKey(keyPath string) func(*Client) {
	return func(c *Client) {
		c.certificateKey = keyPath
	}
}

// CACert sets a CA bundle used to verify the Grid Manager certificate
//
// Only meaningful together with SSLVerify(true).
func CACert(caPath string) func(*Client) {
	return func(c *Client) {
		c.caCert = caPath
	}
}

// SSLVerify enables or disables TLS certificate verification (default: false)
//
// Grid Managers ship with a self-signed certificate, so verification is off by
// default.
//
// WARNING: Disabling certificate verification makes the connection vulnerable
// to Man-in-the-Middle attacks.
func SSLVerify(verify bool) func(*Client) {
	return func(c *Client) {
		c.SSLVerify = verify
	}
}

// Timeout sets the per-request timeout (default: 60s)
//
// Transfers of backup files and support bundles can be large; the timeout
// applies to each HTTP request, including the download itself.
func Timeout(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.RequestTimeout = duration
	}
}

// MaxRetries sets the maximum number of retry attempts for transient errors (default: 3)
//
// Only GET requests are retried.
func MaxRetries(retries int) func(*Client) {
	return func(c *Client) {
		c.MaxRetries = retries
	}
}

// BackoffMinDelay sets the minimum backoff delay (default: 1s)
func BackoffMinDelay(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.BackoffMinDelay = duration
	}
}

// BackoffMaxDelay sets the maximum backoff delay (default: 60s)
func BackoffMaxDelay(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.BackoffMaxDelay = duration
	}
}

// BackoffDelayFactor sets the backoff multiplication factor (default: 2.0)
func BackoffDelayFactor(factor float64) func(*Client) {
	return func(c *Client) {
		c.BackoffDelayFactor = factor
	}
}

// PollInterval sets how often long-running tasks such as CSV imports are polled (default: 5s)
func PollInterval(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.PollInterval = duration
	}
}

// WithHTTPClient sets the underlying http.Client
//
// The client's transport is reused; TLS settings from SSLVerify, CACert and
// Certificate are still applied on top of it.
func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger configures a custom logger for the client
//
// By default, the client uses NoOpLogger which discards all log messages.
//
// All JSON content logged at Debug level is automatically redacted to remove
// sensitive data (passwords, secrets, keys, tokens).
//
// Example:
//
//	logger := nios.NewDefaultLogger(nios.LogLevelInfo)
//	client, _ := nios.NewClient("gm.example.com",
//	    nios.Username("admin"),
//	    nios.Password("secret"),
//	    nios.WithLogger(logger))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPrettyPrintLogs enables/disables JSON pretty printing in debug logs (default: true)
func WithPrettyPrintLogs(enabled bool) func(*Client) {
	return func(c *Client) {
		c.prettyPrintLogs = enabled
	}
}

// Request modifiers for individual operations

// RequestTimeout returns a request modifier that sets a custom timeout for the operation.
//
// The timeout priority model is:
//  1. Request-specific timeout (this modifier) - highest priority
//  2. Context deadline (if already set) - medium priority
//  3. Client.RequestTimeout - fallback default
func RequestTimeout(duration time.Duration) func(*Req) {
	return func(req *Req) {
		req.Timeout = duration
	}
}

// Param returns a request modifier that adds a single query parameter
//
// Example:
//
//	res, err := client.Get(ctx, "network",
//	    nios.Param("network", "10.0.0.0/24"),
//	    nios.Param("network_view", "default"))
func Param(key, value string) func(*Req) {
	return func(req *Req) {
		if req.Params == nil {
			req.Params = map[string]string{}
		}
		req.Params[key] = value
	}
}

// Params returns a request modifier that adds several query parameters
func Params(params map[string]string) func(*Req) {
	return func(req *Req) {
		for k, v := range params {
			Param(k, v)(req)
		}
	}
}

// ReturnFields sets _return_fields, replacing the default field set
func ReturnFields(fields ...string) func(*Req) {
	return Param("_return_fields", strings.Join(fields, ","))
}

// ReturnFieldsPlus sets _return_fields+, adding to the default field set
func ReturnFieldsPlus(fields ...string) func(*Req) {
	return Param("_return_fields+", strings.Join(fields, ","))
}

// MaxResults sets _max_results
//
// A negative value makes WAPI truncate instead of failing when more
// objects match.
func MaxResults(n int) func(*Req) {
	return Param("_max_results", strconv.Itoa(n))
}

// Function sets _function to call a WAPI object function
//
// Example:
//
//	res, err := client.Post(ctx, "fileop", body, nios.Function("uploadinit"))
func Function(name string) func(*Req) {
	return Param("_function", name)
}
