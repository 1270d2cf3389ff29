// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"bytes"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// TestCredentialOptions tests the credential functional options
func TestCredentialOptions(t *testing.T) {
	client := &Client{}
	for _, opt := range []func(*Client){
		Username("admin"),
		Password("secret123"),
		Certificate("/path/to/cert.pem"),
		CertificateKey("/path/to/key.pem"),
		CACert("/path/to/ca.pem"),
	} {
		opt(client)
	}

	if client.username != "admin" {
		t.Errorf("Username() set username to %q, want %q", client.username, "admin")
	}
	if client.password != "secret123" {
		t.Errorf("Password() set password to %q, want %q", client.password, "secret123")
	}
	if client.certificate != "/path/to/cert.pem" {
		t.Errorf("Certificate() set certificate to %q", client.certificate)
	}
	if client.certificateKey != "/path/to/key.pem" {
		t.Errorf("CertificateKey() set certificateKey to %q", client.certificateKey)
	}
	if client.caCert != "/path/to/ca.pem" {
		t.Errorf("CACert() set caCert to %q", client.caCert)
	}
}

// TestWapiVersionOption tests the WapiVersion functional option
func TestWapiVersionOption(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"plain", "2.11", "2.11"},
		{"v prefix", "v2.12.3", "2.12.3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{}
			WapiVersion(tt.version)(client)
			if client.wapiVer != tt.want {
				t.Errorf("WapiVersion(%q) set wapiVer to %q, want %q", tt.version, client.wapiVer, tt.want)
			}
		})
	}
}

// TestTimingOptions tests timeout, retry and polling options
func TestTimingOptions(t *testing.T) {
	client := &Client{}
	for _, opt := range []func(*Client){
		Timeout(120 * time.Second),
		MaxRetries(5),
		BackoffMinDelay(2 * time.Second),
		BackoffMaxDelay(30 * time.Second),
		BackoffDelayFactor(1.5),
		PollInterval(10 * time.Second),
	} {
		opt(client)
	}

	if client.RequestTimeout != 120*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", client.RequestTimeout, 120*time.Second)
	}
	if client.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want %d", client.MaxRetries, 5)
	}
	if client.BackoffMinDelay != 2*time.Second {
		t.Errorf("BackoffMinDelay = %v, want %v", client.BackoffMinDelay, 2*time.Second)
	}
	if client.BackoffMaxDelay != 30*time.Second {
		t.Errorf("BackoffMaxDelay = %v, want %v", client.BackoffMaxDelay, 30*time.Second)
	}
	if client.BackoffDelayFactor != 1.5 {
		t.Errorf("BackoffDelayFactor = %v, want %v", client.BackoffDelayFactor, 1.5)
	}
	if client.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want %v", client.PollInterval, 10*time.Second)
	}
}

// TestSSLVerifyOption tests the SSLVerify functional option
func TestSSLVerifyOption(t *testing.T) {
	for _, verify := range []bool{true, false} {
		client := &Client{}
		SSLVerify(verify)(client)
		if client.SSLVerify != verify {
			t.Errorf("SSLVerify(%v) set SSLVerify to %v", verify, client.SSLVerify)
		}
	}
}

// TestWithHTTPClientOption tests that a nil http.Client is ignored
func TestWithHTTPClientOption(t *testing.T) {
	hc := &http.Client{}
	client := &Client{}

	WithHTTPClient(hc)(client)
	if client.httpClient != hc {
		t.Error("WithHTTPClient() did not set the http client")
	}

	WithHTTPClient(nil)(client)
	if client.httpClient != hc {
		t.Error("WithHTTPClient(nil) should keep the previous http client")
	}
}

// TestWithLoggerOption tests the WithLogger functional option
func TestWithLoggerOption(t *testing.T) {
	customLogger := &DefaultLogger{level: LogLevelDebug}
	client := &Client{}
	WithLogger(customLogger)(client)

	if client.logger != customLogger {
		t.Error("WithLogger() did not set custom logger")
	}

	WithLogger(nil)(client)
	if client.logger != customLogger {
		t.Error("WithLogger(nil) should keep the previous logger")
	}
}

// TestWithPrettyPrintLogsOption tests the WithPrettyPrintLogs functional option
func TestWithPrettyPrintLogsOption(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		client := &Client{}
		WithPrettyPrintLogs(enabled)(client)
		if client.prettyPrintLogs != enabled {
			t.Errorf("WithPrettyPrintLogs(%v) set prettyPrintLogs to %v", enabled, client.prettyPrintLogs)
		}
	}
}

// TestSecurityWarnings tests security-related warnings
func TestSecurityWarnings(t *testing.T) {
	tests := []struct {
		name              string
		options           []func(*Client)
		expectWarnings    []string
		notExpectWarnings []string
	}{
		{
			name:    "SSL verification disabled",
			options: []func(*Client){SSLVerify(false)},
			expectWarnings: []string{
				"SSL verification disabled",
				"Man-in-the-Middle attacks possible",
			},
		},
		{
			name:              "SSL verification enabled",
			options:           []func(*Client){SSLVerify(true)},
			notExpectWarnings: []string{"SSL verification disabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.SetOutput(&buf)
			t.Cleanup(func() { log.SetOutput(os.Stderr) })

			logger := NewDefaultLogger(LogLevelWarn)
			opts := append(tt.options, WithLogger(logger))

			if _, err := NewClient("gm.example.com", opts...); err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}

			output := buf.String()
			for _, warning := range tt.expectWarnings {
				if !strings.Contains(output, warning) {
					t.Errorf("expected warning containing %q but got:\n%s", warning, output)
				}
			}
			for _, warning := range tt.notExpectWarnings {
				if strings.Contains(output, warning) {
					t.Errorf("unexpected warning containing %q in output:\n%s", warning, output)
				}
			}
		})
	}
}
