// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"
)

// captureLog redirects the standard logger into a buffer for one test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

// TestDefaultLogger_LogLevels verifies level filtering of DefaultLogger
func TestDefaultLogger_LogLevels(t *testing.T) {
	emit := map[string]func(*DefaultLogger){
		"debug": func(l *DefaultLogger) { l.Debug(context.Background(), "fetching grid") },
		"info":  func(l *DefaultLogger) { l.Info(context.Background(), "fetching grid") },
		"warn":  func(l *DefaultLogger) { l.Warn(context.Background(), "fetching grid") },
		"error": func(l *DefaultLogger) { l.Error(context.Background(), "fetching grid") },
	}

	tests := []struct {
		level LogLevel
		call  string
		want  string
	}{
		{LogLevelDebug, "debug", "[DEBUG] fetching grid\n"},
		{LogLevelInfo, "debug", ""},
		{LogLevelInfo, "info", "[INFO] fetching grid\n"},
		{LogLevelWarn, "info", ""},
		{LogLevelWarn, "warn", "[WARN] fetching grid\n"},
		{LogLevelError, "warn", ""},
		{LogLevelError, "error", "[ERROR] fetching grid\n"},
		{LogLevelNone, "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.call, func(t *testing.T) {
			buf := captureLog(t)
			emit[tt.call](NewDefaultLogger(tt.level))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDefaultLogger_KeyValuePairs tests formatting of structured fields
func TestDefaultLogger_KeyValuePairs(t *testing.T) {
	tests := []struct {
		name string
		kv   []any
		want string
	}{
		{
			name: "pairs",
			kv:   []any{"object", "network", "status", 200},
			want: "[INFO] request object=network status=200\n",
		},
		{
			name: "missing value",
			kv:   []any{"object", "network", "ref"},
			want: "[INFO] request object=network ref=<MISSING>\n",
		},
		{
			name: "injected newline in value",
			kv:   []any{"comment", "lab\n[ERROR] forged"},
			want: "[INFO] request comment=lab [ERROR] forged\n",
		},
		{
			name: "unicode",
			kv:   []any{"サイト", "東京"},
			want: "[INFO] request サイト=東京\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			NewDefaultLogger(LogLevelInfo).Info(context.Background(), "request", tt.kv...)
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSanitizeLogValue tests neutralization of control and invisible characters
func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain", "10.0.0.0/24", "10.0.0.0/24"},
		{"number", 443, "443"},
		{"newline", "gm1\nINFO ok", "gm1 INFO ok"},
		{"carriage return and tab", "a\rb\tc", "a b c"},
		{"form feed", "a\fb", "a b"},
		{"ansi escape", "\x1b[31mred", ".[31mred"},
		{"bell and backspace", "a\x07b\x08c", "a.b.c"},
		{"null byte", "a\x00b", "a.b"},
		{"delete", "a\x7fb", "a.b"},
		{"zero width characters", "ad\u200bm\u200ci\u200dn\ufeff", "admin"},
		{"right-to-left override", "file\u202etxt.exe", "file txt.exe"},
		{"multibyte", "Zürich 東京", "Zürich 東京"},
		{"invalid start byte", "test\xffdata", "test.data"},
		{"invalid continuation", "test\xc3\x28data", "test.(data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSanitizeLogValue_Truncation tests the value length cap
func TestSanitizeLogValue_Truncation(t *testing.T) {
	exact := strings.Repeat("a", MaxLogValueLength)
	if got := sanitizeLogValue(exact); got != exact {
		t.Errorf("value of exactly MaxLogValueLength should not be truncated, got length %d", len(got))
	}

	got := sanitizeLogValue(strings.Repeat("a", MaxLogValueLength*4))
	if want := exact + "...[TRUNCATED]"; got != want {
		t.Errorf("truncated value has length %d, want %d", len(got), len(want))
	}
}

// TestNoOpLogger verifies that NoOpLogger writes nothing
func TestNoOpLogger(t *testing.T) {
	buf := captureLog(t)

	var logger Logger = &NoOpLogger{}
	logger.Debug(context.Background(), "debug", "k", "v")
	logger.Info(context.Background(), "info")
	logger.Warn(context.Background(), "warn")
	logger.Error(context.Background(), "error")

	if buf.Len() != 0 {
		t.Errorf("NoOpLogger produced output: %q", buf.String())
	}
}

// TestLogLevel_String tests LogLevel names
func TestLogLevel_String(t *testing.T) {
	tests := map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
		LogLevelNone:  "NONE",
		LogLevel(42):  "UNKNOWN(42)",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

// TestPrepareJSONForLogging tests redaction and formatting of WAPI payloads
func TestPrepareJSONForLogging(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
		input  string
		want   string
	}{
		{
			name:  "admin user password",
			input: `{"name":"netops","password":"mysecret","admin_groups":["admin-group"]}`,
			want:  `{"name":"netops","password":"[REDACTED]","admin_groups":["admin-group"]}`,
		},
		{
			name:  "fileop token with spacing",
			input: `{"token" : "eJydkMFOwzAMhl9l", "url":"https://gm/http_direct_file_io/req_id-DOWNLOAD-0101/database.bak"}`,
			want:  `{"token":"[REDACTED]", "url":"https://gm/http_direct_file_io/req_id-DOWNLOAD-0101/database.bak"}`,
		},
		{
			name:  "tsig key and snmp community",
			input: `{"key":"c2VjcmV0","community":"public","auth":"x","secret":"y"}`,
			want:  `{"key":"[REDACTED]","community":"[REDACTED]","auth":"[REDACTED]","secret":"[REDACTED]"}`,
		},
		{
			name:  "field names that only contain a keyword",
			input: `{"auth_token":"abc","tsig_key_name":"k1"}`,
			want:  `{"auth_token":"abc","tsig_key_name":"k1"}`,
		},
		{
			name:   "pretty printed",
			pretty: true,
			input:  `{"network":"10.0.0.0/24","password":"x"}`,
			want:   "{\n  \"network\": \"10.0.0.0/24\",\n  \"password\": \"[REDACTED]\"\n}",
		},
		{
			name:   "pretty printed list",
			pretty: true,
			input:  `[{"_ref":"network/ZG5z:10.0.0.0/24/default"}]`,
			want:   "[\n  {\n    \"_ref\": \"network/ZG5z:10.0.0.0/24/default\"\n  }\n]",
		},
		{
			name:   "invalid json falls back to raw",
			pretty: true,
			input:  `{"password":"x", broken`,
			want:   `{"password":"[REDACTED]", broken`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{
				prettyPrintLogs:   tt.pretty,
				redactionPatterns: defaultRedactionPatterns,
				logger:            &NoOpLogger{},
			}
			if got := client.prepareJSONForLogging(tt.input); got != tt.want {
				t.Errorf("prepareJSONForLogging() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

// TestPrepareJSONForLogging_Limits tests the size and sensitive field caps
func TestPrepareJSONForLogging_Limits(t *testing.T) {
	client := &Client{
		redactionPatterns: defaultRedactionPatterns,
		logger:            &NoOpLogger{},
	}

	large := `[` + strings.Repeat(`{"network":"10.0.0.0/24"},`, MaxJSONSizeForLogging/25) + `{}]`
	if got := client.prepareJSONForLogging(large); got != JSONTooLargeMessage {
		t.Errorf("oversized payload = %.40q, want %q", got, JSONTooLargeMessage)
	}

	many := `[` + strings.Repeat(`{"password":"x"},`, MaxSensitiveFields) + `{"password":"x"}]`
	if got := client.prepareJSONForLogging(many); got != JSONTooManySensitiveMsg {
		t.Errorf("payload with too many secrets = %.40q, want %q", got, JSONTooManySensitiveMsg)
	}
}

// TestRestyLogger tests that transport messages reach the client logger
func TestRestyLogger(t *testing.T) {
	mock := &mockLogger{}
	rl := restyLogger{logger: mock}

	rl.Errorf("dial %s: %s\n", "gm.example.com:443", "connection refused")
	rl.Warnf("retry %d", 1)
	rl.Debugf("request")

	if len(mock.errorCalls) != 1 || mock.errorCalls[0]["msg"] != "resty: dial gm.example.com:443: connection refused" {
		t.Errorf("errorCalls = %v", mock.errorCalls)
	}
	if len(mock.warnCalls) != 1 || mock.warnCalls[0]["msg"] != "resty: retry 1" {
		t.Errorf("warnCalls = %v", mock.warnCalls)
	}
	if len(mock.debugCalls) != 1 {
		t.Errorf("debugCalls = %v", mock.debugCalls)
	}
}
