// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// TestGet tests query parameters and response handling of Get
func TestGet(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wapi/v2.5/network": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("network_view") != "default" {
				t.Errorf("network_view = %q, want default", q.Get("network_view"))
			}
			if q.Get("_return_fields") != "network,comment" {
				t.Errorf("_return_fields = %q, want network,comment", q.Get("_return_fields"))
			}
			if q.Get("_max_results") != "-10" {
				t.Errorf("_max_results = %q, want -10", q.Get("_max_results"))
			}
			fmt.Fprint(w, `[
				{"_ref": "network/ZG5z:10.0.0.0/24/default", "network": "10.0.0.0/24", "comment": "lab"},
				{"_ref": "network/ZG5z:10.0.1.0/24/default", "network": "10.0.1.0/24"}
			]`)
		},
	})
	client := newTestClient(t, srv)

	res, err := client.Get(context.Background(), "network",
		Param("network_view", "default"),
		ReturnFields("network", "comment"),
		MaxResults(-10))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !res.OK || res.StatusCode != http.StatusOK {
		t.Errorf("Get() OK = %v, StatusCode = %d", res.OK, res.StatusCode)
	}
	if got := len(res.Array()); got != 2 {
		t.Fatalf("len(Array()) = %d, want 2", got)
	}
	if got := res.Get("0.comment").String(); got != "lab" {
		t.Errorf("Get(0.comment) = %q, want lab", got)
	}
}

// TestGetOne tests the cardinality checks of GetOne
func TestGetOne(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wapi/v2.5/member": func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("host_name") {
			case "one.example.com":
				fmt.Fprint(w, `[{"_ref": "member/b25l:one.example.com"}]`)
			case "none.example.com":
				fmt.Fprint(w, `[]`)
			default:
				fmt.Fprint(w, `[{"_ref": "member/a"}, {"_ref": "member/b"}]`)
			}
		},
	})
	client := newTestClient(t, srv)

	tests := []struct {
		name    string
		host    string
		want    string
		wantErr string
	}{
		{"exactly one", "one.example.com", "member/b25l:one.example.com", ""},
		{"none", "none.example.com", "", "no object found"},
		{"several", "*.example.com", "", "2 objects found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.GetOne(context.Background(), "member", Param("host_name", tt.host))
			if tt.wantErr != "" {
				if !errors.Is(err, ErrRequest) {
					t.Fatalf("GetOne() error = %v, want ErrRequest", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("GetOne() error = %q, want to contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetOne() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetOne() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestWriteOperations tests the accepted status codes of Post, Put and Delete
func TestWriteOperations(t *testing.T) {
	const ref = "network/ZG5z:10.0.0.0/24/default"

	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wapi/v2.5/network": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", r.Header.Get("Content-Type"))
			}
			if !strings.Contains(string(body), `"network":"10.0.0.0/24"`) {
				t.Errorf("body = %s, want network field", body)
			}
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, "%q", ref)
		},
		"/wapi/v2.5/" + ref: func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPut:
				fmt.Fprintf(w, "%q", ref)
			case http.MethodDelete:
				fmt.Fprintf(w, "%q", ref)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		},
	})
	client := newTestClient(t, srv)
	ctx := context.Background()

	res, err := client.Post(ctx, "network", Body{}.Set("network", "10.0.0.0/24"))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if res.StatusCode != http.StatusCreated || res.Ref() != ref {
		t.Errorf("Post() = %d %q, want 201 %q", res.StatusCode, res.Ref(), ref)
	}

	res, err = client.Put(ctx, ref, map[string]string{"comment": "updated"})
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if res.Ref() != ref {
		t.Errorf("Put().Ref() = %q, want %q", res.Ref(), ref)
	}

	if _, err := client.Delete(ctx, ref); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

// TestRequestErrorParsing tests that WAPI error documents end up in RequestError
func TestRequestErrorParsing(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wapi/v2.5/network": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"Error": "AdmConDataError: None (IBDataConflictError: IB.Data.Conflict:The network 10.0.0.0/24 already exists.)",
				"code": "Client.Ibap.Data.Conflict",
				"text": "The network 10.0.0.0/24 already exists."}`)
		},
	})
	client := newTestClient(t, srv)

	_, err := client.Post(context.Background(), "network", `{"network": "10.0.0.0/24"}`)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Post() error = %v, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", reqErr.StatusCode)
	}
	if len(reqErr.Errors) != 1 || reqErr.Errors[0].Code != "Client.Ibap.Data.Conflict" {
		t.Errorf("Errors = %+v, want Client.Ibap.Data.Conflict", reqErr.Errors)
	}
	if !strings.Contains(reqErr.Error(), "already exists") {
		t.Errorf("Error() = %q, want WAPI text", reqErr.Error())
	}
	if reqErr.IsTransient {
		t.Error("400 should not be transient")
	}
}

// TestRetryLogic tests that only GET is retried on transient statuses
func TestRetryLogic(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		status       int
		wantAttempts int32
	}{
		{"GET retried on 503", http.MethodGet, http.StatusServiceUnavailable, 3},
		{"GET retried on 429", http.MethodGet, http.StatusTooManyRequests, 3},
		{"GET not retried on 400", http.MethodGet, http.StatusBadRequest, 1},
		{"GET not retried on 500", http.MethodGet, http.StatusInternalServerError, 1},
		{"POST never retried", http.MethodPost, http.StatusServiceUnavailable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			srv := newTestServer(t, map[string]http.HandlerFunc{
				"/wapi/v2.5/network": func(w http.ResponseWriter, _ *http.Request) {
					attempts.Add(1)
					w.WriteHeader(tt.status)
				},
			})
			mock := &mockLogger{}
			client := newTestClient(t, srv, WithLogger(mock))

			var err error
			if tt.method == http.MethodGet {
				_, err = client.Get(context.Background(), "network")
			} else {
				_, err = client.Post(context.Background(), "network", nil)
			}

			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("error = %v, want *RequestError", err)
			}
			if got := attempts.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
			if reqErr.Retries != int(tt.wantAttempts)-1 {
				t.Errorf("Retries = %d, want %d", reqErr.Retries, tt.wantAttempts-1)
			}
			if got := len(mock.warnings()); tt.wantAttempts > 1 && got < int(tt.wantAttempts)-1 {
				t.Errorf("retry warnings = %d, want at least %d", got, tt.wantAttempts-1)
			}
		})
	}
}

// TestRetryRecovers tests that a transient failure followed by success succeeds
func TestRetryRecovers(t *testing.T) {
	var attempts atomic.Int32
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"/wapi/v2.5/networkview": func(w http.ResponseWriter, _ *http.Request) {
			if attempts.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			fmt.Fprint(w, `[{"_ref": "networkview/ZG5z:default/true", "name": "default"}]`)
		},
	})
	client := newTestClient(t, srv)

	ref, err := client.GetOne(context.Background(), "networkview")
	if err != nil {
		t.Fatalf("GetOne() error = %v", err)
	}
	if ref != "networkview/ZG5z:default/true" {
		t.Errorf("GetOne() = %q", ref)
	}
	if attempts.Load() != 2 {
		t.Errorf("attempts = %d, want 2", attempts.Load())
	}
}

// TestInputValidation_ObjectSecurity tests object name validation
func TestInputValidation_ObjectSecurity(t *testing.T) {
	tests := []struct {
		name    string
		object  string
		wantErr bool
	}{
		{"object type", "network", false},
		{"object with colon", "record:host", false},
		{"reference", "network/ZG5zLm5ldHdvcmskMTAuMC4wLjAvMjQvMA:10.0.0.0/24/default", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "network\x00", true},
		{"traversal", "network/../grid", true},
		{"leading traversal", "../grid", true},
		{"too long", strings.Repeat("a", MaxObjectLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateObject(tt.object)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateObject(%q) error = %v, wantErr %v", truncateObject(tt.object), err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error should match ErrInvalidParameter, got %v", err)
			}
		})
	}
}

// TestEncodeBody tests payload encoding
func TestEncodeBody(t *testing.T) {
	body := Body{}.Set("name", "default")

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"Body", body, `{"name":"default"}`},
		{"*Body", &body, `{"name":"default"}`},
		{"string", `{"a":1}`, `{"a":1}`},
		{"bytes", []byte(`{"a":1}`), `{"a":1}`},
		{"map", map[string]int{"a": 1}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeBody(tt.in)
			if err != nil {
				t.Fatalf("encodeBody() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("encodeBody() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := encodeBody(make(chan int)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("encodeBody(chan) error = %v, want ErrInvalidParameter", err)
	}
}

// TestCheckContextCancellation tests the non-blocking cancellation check
func TestCheckContextCancellation(t *testing.T) {
	if err := checkContextCancellation(context.Background()); err != nil {
		t.Errorf("background context error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := checkContextCancellation(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled context error = %v, want context.Canceled", err)
	}
}

// TestGetCanceledContext tests that a canceled context stops a request up front
func TestGetCanceledContext(t *testing.T) {
	srv := newTestServer(t, nil)
	client := newTestClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "network")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}

// TestCreateAttemptContext tests the timeout priority model
func TestCreateAttemptContext(t *testing.T) {
	client := &Client{RequestTimeout: 60 * time.Second, logger: &NoOpLogger{}}

	tests := []struct {
		name    string
		parent  time.Duration
		req     time.Duration
		wantMax time.Duration
	}{
		{"request timeout wins", 0, 5 * time.Second, 5 * time.Second},
		{"shorter context deadline kept", 10 * time.Second, 0, 10 * time.Second},
		{"client default", 0, 0, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := context.Background()
			if tt.parent > 0 {
				var cancel context.CancelFunc
				parent, cancel = context.WithTimeout(parent, tt.parent)
				defer cancel()
			}

			ctx, cancel := client.createAttemptContext(parent, &Req{Timeout: tt.req})
			defer cancel()

			deadline, ok := ctx.Deadline()
			if !ok {
				t.Fatal("attempt context has no deadline")
			}
			if remaining := time.Until(deadline); remaining > tt.wantMax || remaining < tt.wantMax-time.Second {
				t.Errorf("remaining = %v, want about %v", remaining, tt.wantMax)
			}
		})
	}
}

// TestCalculateTotalTimeout tests the retry budget
func TestCalculateTotalTimeout(t *testing.T) {
	client := &Client{
		RequestTimeout:     10 * time.Second,
		MaxRetries:         2,
		BackoffMinDelay:    1 * time.Second,
		BackoffMaxDelay:    60 * time.Second,
		BackoffDelayFactor: 2.0,
		logger:             &NoOpLogger{},
	}

	// 3 attempts of 10s plus backoffs of ~1s and ~2s
	got := client.calculateTotalTimeout()
	if got < 33*time.Second || got > 33*time.Second+300*time.Millisecond {
		t.Errorf("calculateTotalTimeout() = %v, want about 33s", got)
	}
}
