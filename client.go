// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blang/semver/v4"
	"resty.dev/v3"
)

// Default client configuration values
const (
	DefaultWapiVersion        = "2.5"
	DefaultRequestTimeout     = 60 * time.Second
	DefaultMaxRetries         = 3
	DefaultBackoffMinDelay    = 1 * time.Second
	DefaultBackoffMaxDelay    = 60 * time.Second
	DefaultBackoffDelayFactor = 2
	DefaultPollInterval       = 5 * time.Second
	DefaultSSLVerify          = false
	DefaultPrettyPrintLogs    = true
)

// Security limits for JSON processing and logging
const (
	MaxJSONSizeForLogging = 1 * 1024 * 1024 // 1MB limit to prevent ReDoS attacks
	MaxSensitiveFields    = 1000            // Max redaction operations to prevent DoS
)

// Logging message constants
const (
	JSONTooLargeMessage     = "[JSON TOO LARGE FOR LOGGING]"
	JSONTooManySensitiveMsg = "[JSON CONTAINS TOO MANY SENSITIVE FIELDS]"
)

// gridObject is the anchor resource fetched to authenticate a session
const gridObject = "grid"

// defaultRedactionPatterns contains regex patterns for redacting sensitive data in logs
var defaultRedactionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"password"\s*:\s*"[^"]*"`),
	regexp.MustCompile(`"secret"\s*:\s*"[^"]*"`),
	regexp.MustCompile(`"key"\s*:\s*"[^"]*"`),
	regexp.MustCompile(`"community"\s*:\s*"[^"]*"`),
	regexp.MustCompile(`"token"\s*:\s*"[^"]*"`),
	regexp.MustCompile(`"auth"\s*:\s*"[^"]*"`),
}

// Client represents a WAPI session with an Infoblox NIOS Grid Manager
type Client struct {
	// resty transport (cookie jar keeps the ibapauth session cookie)
	http *resty.Client

	// optional caller supplied http.Client
	httpClient *http.Client

	// connected tracks if Connect has succeeded
	connected bool

	// RWMutex to synchronize access to mutable state
	mu sync.RWMutex

	// GridMgr is the IP address or hostname of the Grid Manager
	GridMgr string
	wapiVer string

	// Credentials
	username       string // unexported for security
	password       string // unexported for security
	certificate    string // unexported for security
	certificateKey string // unexported for security
	caCert         string

	// SSLVerify enables verification of the Grid Manager certificate
	SSLVerify bool

	// Timeout configuration
	RequestTimeout time.Duration
	PollInterval   time.Duration

	// Retry configuration
	MaxRetries         int
	BackoffMinDelay    time.Duration
	BackoffMaxDelay    time.Duration
	BackoffDelayFactor float64

	// gridRef is the reference of the grid object captured on Connect
	gridRef string

	// Logging configuration
	logger            Logger
	prettyPrintLogs   bool
	redactionPatterns []*regexp.Regexp
}

// NewClient creates a new WAPI client for the specified Grid Manager
//
// The client is configured but does NOT authenticate; call Connect before
// issuing requests.
//
// Example:
//
//	client, err := nios.NewClient(
//	    "gm.example.com",
//	    nios.WapiVersion("2.11"),
//	    nios.Username("admin"),
//	    nios.Password("infoblox"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(client.URL()) // https://gm.example.com/wapi/v2.11
//
// Returns a configured Client or an error if configuration validation fails.
func NewClient(gridMgr string, opts ...func(*Client)) (*Client, error) {
	client := &Client{
		GridMgr:            strings.TrimSpace(gridMgr),
		wapiVer:            DefaultWapiVersion,
		SSLVerify:          DefaultSSLVerify,
		RequestTimeout:     DefaultRequestTimeout,
		PollInterval:       DefaultPollInterval,
		MaxRetries:         DefaultMaxRetries,
		BackoffMinDelay:    DefaultBackoffMinDelay,
		BackoffMaxDelay:    DefaultBackoffMaxDelay,
		BackoffDelayFactor: DefaultBackoffDelayFactor,
		logger:             &NoOpLogger{},
		prettyPrintLogs:    DefaultPrettyPrintLogs,
		redactionPatterns:  defaultRedactionPatterns,
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.validateConfig(); err != nil {
		return nil, err
	}

	if err := client.createTransport(); err != nil {
		return nil, err
	}

	client.logger.Info(context.Background(), "WAPI client created",
		"grid_mgr", client.GridMgr,
		"wapi_version", client.wapiVer,
		"ssl_verify", client.SSLVerify)

	return client, nil
}

// URL returns the WAPI base URL, e.g. https://gm.example.com/wapi/v2.11
//
// Returns an empty string if the Grid Manager or the WAPI version is unset.
func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL()
}

// baseURL builds the WAPI base URL
//
// PRECONDITION: Caller must hold c.mu (read or write).
func (c *Client) baseURL() string {
	if c.GridMgr == "" || c.wapiVer == "" {
		return ""
	}
	return fmt.Sprintf("https://%s/wapi/v%s", c.GridMgr, c.wapiVer)
}

// objectURL joins the base URL and a WAPI object name or reference
func (c *Client) objectURL(object string) string {
	return c.URL() + "/" + strings.TrimPrefix(object, "/")
}

// WapiVersion returns the WAPI version in use
func (c *Client) WapiVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wapiVer
}

// SetWapiVersion changes the WAPI version used for subsequent requests
func (c *Client) SetWapiVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wapiVer = strings.TrimPrefix(version, "v")
}

// GridRef returns the grid object reference captured by Connect
func (c *Client) GridRef() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gridRef
}

// Connected reports whether Connect has succeeded
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// HasCredentials returns true if credentials are configured
//
// This method only indicates if credentials exist without exposing
// the actual values.
func (c *Client) HasCredentials() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return (c.username != "" && c.password != "") || c.certificate != ""
}

// Connect authenticates against the Grid Manager
//
// Basic authentication is used when both a username and a password are set,
// otherwise certificate authentication when a client certificate is set.
// Authentication is a single GET of the grid object; its reference is kept
// and returned by GridRef.
//
// Returns an InvalidParameterError when the base URL cannot be built or
// no credentials are configured, and a RequestError on any transport or
// HTTP failure.
func (c *Client) Connect(ctx context.Context) error {
	url := c.URL()
	if url == "" {
		c.logger.Error(ctx, "invalid url - unable to connect",
			"grid_mgr", c.GridMgr,
			"wapi_version", c.WapiVersion())
		return invalidParam("grid_mgr", "invalid url %q - unable to connect", url)
	}

	c.mu.Lock()
	method := ""
	switch {
	case c.username != "" && c.password != "":
		c.http.SetBasicAuth(c.username, c.password)
		method = "basic"
	case c.certificate != "":
		method = "certificate"
	}
	c.mu.Unlock()

	if method == "" {
		return invalidParam("credentials", "username and password or a client certificate is required")
	}

	c.logger.Debug(ctx, "authenticating",
		"url", url,
		"auth", method)

	res, err := c.execute(ctx, "Connect", http.MethodGet, c.objectURL(gridObject), "", newReq(nil), http.StatusOK)
	if err != nil {
		c.logger.Error(ctx, "WAPI authentication failed",
			"grid_mgr", c.GridMgr,
			"error", err.Error())
		return err
	}

	ref := res.Get("0._ref").String()
	if ref == "" {
		return &RequestError{
			Operation:  "Connect",
			StatusCode: res.StatusCode,
			Message:    "no grid object was returned",
			Err:        ErrRequest,
		}
	}

	c.mu.Lock()
	c.gridRef = ref
	c.connected = true
	c.mu.Unlock()

	c.logger.Info(ctx, "connected to Infoblox grid manager",
		"grid_mgr", c.GridMgr,
		"auth", method)

	return nil
}

// ObjectFields returns the readable fields of a WAPI object as a comma
// separated list, suitable for _return_fields.
//
// Example:
//
//	fields, err := client.ObjectFields(ctx, "record:host")
//	res, err := client.Get(ctx, "record:host", nios.Param("_return_fields", fields))
func (c *Client) ObjectFields(ctx context.Context, object string) (string, error) {
	if err := validateObject(object); err != nil {
		return "", err
	}

	c.logger.Debug(ctx, "fetching object schema",
		"object", object)

	res, err := c.execute(ctx, "ObjectFields", http.MethodGet, c.objectURL(object)+"?_schema", "", newReq(nil), http.StatusOK)
	if err != nil {
		return "", err
	}

	var fields []string
	for _, f := range res.Get("fields").Array() {
		if strings.Contains(f.Get("supports").String(), "r") {
			fields = append(fields, f.Get("name").String())
		}
	}
	return strings.Join(fields, ","), nil
}

// MaxWapiVersion queries the Grid Manager for its supported WAPI versions and
// switches the session to the highest one.
//
// Returns the selected version.
func (c *Client) MaxWapiVersion(ctx context.Context) (string, error) {
	if c.GridMgr == "" {
		return "", invalidParam("grid_mgr", "grid manager is not set")
	}
	url := fmt.Sprintf("https://%s/wapi/v1.0/?_schema", c.GridMgr)

	c.logger.Debug(ctx, "fetching supported WAPI versions",
		"url", url)

	res, err := c.execute(ctx, "MaxWapiVersion", http.MethodGet, url, "", newReq(nil), http.StatusOK)
	if err != nil {
		return "", err
	}

	type version struct {
		raw    string
		parsed semver.Version
	}
	var versions []version
	for _, v := range res.Get("supported_versions").Array() {
		parsed, err := semver.ParseTolerant(v.String())
		if err != nil {
			c.logger.Warn(ctx, "ignoring unparsable WAPI version",
				"version", v.String(),
				"error", err.Error())
			continue
		}
		versions = append(versions, version{raw: v.String(), parsed: parsed})
	}
	if len(versions) == 0 {
		return "", &RequestError{
			Operation:  "MaxWapiVersion",
			StatusCode: res.StatusCode,
			Message:    "no supported versions were returned",
			Err:        ErrRequest,
		}
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].parsed.LT(versions[j].parsed)
	})
	latest := versions[len(versions)-1].raw

	c.logger.Debug(ctx, "supported WAPI versions",
		"count", len(versions),
		"max", latest)

	c.SetWapiVersion(latest)
	return latest, nil
}

// Close releases idle connections held by the transport.
//
// The session cookie is kept; the client can still be used afterwards.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.http == nil {
		return nil
	}
	c.http.Client().CloseIdleConnections()
	c.connected = false

	c.logger.Debug(context.Background(), "WAPI client closed",
		"grid_mgr", c.GridMgr)
	return nil
}

// Backoff calculates the backoff delay for retry attempt using exponential backoff with jitter
//
// The formula is: delay = min(minDelay * (factor ^ attempt) + jitter, maxDelay)
// where jitter is a cryptographically secure random value in [0, delay * 0.1].
//
// If crypto/rand fails, falls back to timestamp-based jitter.
func (c *Client) Backoff(attempt int) time.Duration {
	delay := float64(c.BackoffMinDelay) * math.Pow(c.BackoffDelayFactor, float64(attempt))

	if math.IsInf(delay, 1) || delay > float64(c.BackoffMaxDelay) {
		delay = float64(c.BackoffMaxDelay)
	}

	baseDelay := delay

	jitterMax := int64(delay * 0.1)
	var jitterVal int64
	if jitterMax > 0 {
		var jitterBytes [8]byte
		if _, err := rand.Read(jitterBytes[:]); err == nil {
			//nolint:gosec // G115: masked to prevent overflow
			jitterVal = int64(binary.BigEndian.Uint64(jitterBytes[:]) & 0x7FFFFFFFFFFFFFFF)
			jitterVal = jitterVal % jitterMax
			delay += float64(jitterVal)
		} else {
			timestamp := time.Now().UnixNano()
			jitterVal = (timestamp%jitterMax + jitterMax) % jitterMax
			delay += float64(jitterVal)

			c.logger.Warn(context.Background(), "crypto/rand failed, using timestamp-based jitter",
				"error", err.Error(),
				"attempt", attempt,
				"jitter_ms", time.Duration(jitterVal).Milliseconds())
		}
	}

	finalDelay := time.Duration(delay)

	c.logger.Debug(context.Background(), "Backoff calculated",
		"attempt", attempt,
		"base_delay_ms", time.Duration(baseDelay).Milliseconds(),
		"jitter_ms", time.Duration(jitterVal).Milliseconds(),
		"final_delay_ms", finalDelay.Milliseconds())

	return finalDelay
}

// prepareJSONForLogging redacts sensitive data and formats JSON for logging
//
// This method performs security checks and data sanitization:
//  1. Validates JSON size to prevent ReDoS attacks (max 1MB)
//  2. Checks sensitive field count to prevent DoS (max 1000 fields)
//  3. Redacts sensitive data (passwords, secrets, keys, community strings, tokens)
//  4. Pretty-prints JSON if prettyPrintLogs is enabled
func (c *Client) prepareJSONForLogging(jsonStr string) string {
	if len(jsonStr) > MaxJSONSizeForLogging {
		return JSONTooLargeMessage
	}

	sensitiveCount := strings.Count(jsonStr, `"password"`) +
		strings.Count(jsonStr, `"secret"`) +
		strings.Count(jsonStr, `"key"`) +
		strings.Count(jsonStr, `"community"`) +
		strings.Count(jsonStr, `"token"`) +
		strings.Count(jsonStr, `"auth"`)

	if sensitiveCount > MaxSensitiveFields {
		c.logger.Warn(context.Background(), "Too many sensitive fields detected",
			"count", sensitiveCount,
			"max", MaxSensitiveFields)
		return JSONTooManySensitiveMsg
	}

	redacted := c.redactSensitiveData(jsonStr)

	if c.prettyPrintLogs {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(redacted), "", "  "); err == nil {
			return buf.String()
		}
	}

	return redacted
}

// redactSensitiveData replaces sensitive data in JSON with [REDACTED]
//
// Handles flexible whitespace around colons (RFC 8259 compliant).
func (c *Client) redactSensitiveData(json string) string {
	replacements := []string{
		`"password":"[REDACTED]"`,
		`"secret":"[REDACTED]"`,
		`"key":"[REDACTED]"`,
		`"community":"[REDACTED]"`,
		`"token":"[REDACTED]"`,
		`"auth":"[REDACTED]"`,
	}

	result := json
	for i, pattern := range c.redactionPatterns {
		result = pattern.ReplaceAllString(result, replacements[i])
	}

	return result
}

// validateConfig validates client configuration
//
// Validates:
//   - Grid Manager is not empty
//   - Positive timeouts
//   - Positive retry params (MaxRetries >= 0, BackoffMinDelay > 0, BackoffMaxDelay > BackoffMinDelay)
//   - BackoffDelayFactor >= 1.0
//   - Certificate file paths exist (if provided)
//
// Returns an InvalidParameterError if validation fails.
func (c *Client) validateConfig() error {
	if c.GridMgr == "" {
		return invalidParam("grid_mgr", "grid manager cannot be empty")
	}
	if strings.ContainsAny(c.GridMgr, "/?#@ ") {
		return invalidParam("grid_mgr", "must be a hostname or IP address, got %q", c.GridMgr)
	}

	if c.RequestTimeout <= 0 {
		return invalidParam("timeout", "request timeout must be positive, got: %v", c.RequestTimeout)
	}
	if c.PollInterval <= 0 {
		return invalidParam("poll_interval", "poll interval must be positive, got: %v", c.PollInterval)
	}

	if c.MaxRetries < 0 {
		return invalidParam("max_retries", "max retries must be non-negative, got: %d", c.MaxRetries)
	}
	if c.BackoffMinDelay <= 0 {
		return invalidParam("backoff_min_delay", "backoff min delay must be positive, got: %v", c.BackoffMinDelay)
	}
	if c.BackoffMaxDelay <= c.BackoffMinDelay {
		return invalidParam("backoff_max_delay", "backoff max delay (%v) must be greater than min delay (%v)",
			c.BackoffMaxDelay, c.BackoffMinDelay)
	}
	if c.BackoffDelayFactor < 1.0 {
		return invalidParam("backoff_delay_factor", "backoff delay factor must be >= 1.0, got: %f", c.BackoffDelayFactor)
	}

	if !c.SSLVerify {
		c.logger.Warn(context.Background(), "SSL verification disabled - Grid Manager certificate is not checked",
			"grid_mgr", c.GridMgr,
			"security_risk", "Man-in-the-Middle attacks possible")
	}

	for name, path := range map[string]string{
		"certificate":     c.certificate,
		"certificate_key": c.certificateKey,
		"ca_cert":         c.caCert,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			c.logger.Debug(context.Background(), "TLS file validation failed",
				"path", path,
				"error", err.Error())
			// filename only, the full path is not disclosed
			return invalidParam(name, "file not found: %s", filepath.Base(path))
		}
	}

	return nil
}

// createTransport builds the resty client from the client configuration
//
// PRECONDITION: Configuration must be validated via validateConfig().
func (c *Client) createTransport() error {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: !c.SSLVerify, //nolint:gosec // self-signed Grid Manager certificates are the norm
		MinVersion:         tls.VersionTLS12,
	}

	if c.caCert != "" {
		pem, err := os.ReadFile(c.caCert)
		if err != nil {
			return invalidParam("ca_cert", "cannot read %s", filepath.Base(c.caCert))
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return invalidParam("ca_cert", "no certificates found in %s", filepath.Base(c.caCert))
		}
		tlsConfig.RootCAs = pool
	}

	if c.certificate != "" {
		keyFile := c.certificateKey
		if keyFile == "" {
			keyFile = c.certificate
		}
		cert, err := tls.LoadX509KeyPair(c.certificate, keyFile)
		if err != nil {
			c.logger.Debug(context.Background(), "client certificate load failed",
				"path", c.certificate,
				"error", err.Error())
			return invalidParam("certificate", "cannot load client certificate %s", filepath.Base(c.certificate))
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	var rc *resty.Client
	if c.httpClient != nil {
		rc = resty.NewWithClient(c.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetTLSClientConfig(tlsConfig).
		SetTimeout(c.RequestTimeout).
		SetLogger(restyLogger{logger: c.logger}).
		SetHeader("Accept", "application/json")

	c.http = rc
	return nil
}
