// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Input validation constants
const (
	// MaxObjectLength is the maximum length for an object name or reference (1024 characters)
	MaxObjectLength = 1024
)

// validateObject validates a WAPI object type or object reference
//
// Checks:
//   - Object is not empty
//   - Object length does not exceed MaxObjectLength
//   - Object does not contain malicious patterns (null bytes, path traversal)
//
// Returns an InvalidParameterError if the object is invalid.
func validateObject(object string) error {
	if strings.TrimSpace(object) == "" {
		return invalidParam("object", "object cannot be empty")
	}

	if len(object) > MaxObjectLength {
		return invalidParam("object", "exceeds maximum length of %d characters: %s", MaxObjectLength, truncateObject(object))
	}

	if err := checkObjectSecurity(object); err != nil {
		return invalidParam("object", "%s", err.Error())
	}

	return nil
}

// checkObjectSecurity checks an object reference for malicious patterns
//
// Checks for:
//   - Null bytes (path injection)
//   - Path traversal patterns (/../)
//
// References legitimately contain '/' and ':' (network/ZG5z...:10.0.0.0/24/default),
// so only the traversal sequence itself is rejected.
func checkObjectSecurity(object string) error {
	if i := strings.IndexByte(object, 0); i >= 0 {
		return fmt.Errorf("contains null byte at position %d", i)
	}

	if strings.HasPrefix(object, "../") {
		return fmt.Errorf("contains suspicious traversal pattern '../' at position 0")
	}
	if i := strings.Index(object, "/../"); i >= 0 {
		return fmt.Errorf("contains suspicious traversal pattern '/../' at position %d", i)
	}

	return nil
}

// truncateObject truncates an object reference for error messages
func truncateObject(object string) string {
	if len(object) <= 100 {
		return object
	}
	return object[:100] + "..."
}

// encodeBody renders a request payload to a JSON string
//
// Accepted payloads are Body, string, []byte, or any value encoding/json can
// marshal. nil yields an empty body.
func encodeBody(body any) (string, error) {
	switch b := body.(type) {
	case nil:
		return "", nil
	case Body:
		return b.String()
	case *Body:
		if b == nil {
			return "", nil
		}
		return b.String()
	case string:
		return b, nil
	case []byte:
		return string(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return "", invalidParam("body", "cannot encode payload: %s", err.Error())
		}
		return string(data), nil
	}
}

// Get reads objects of a type, or a single object by reference
//
// Any status other than 200 is a RequestError. Transient statuses (see
// TransientStatusCodes) and transport errors are retried with exponential
// backoff.
//
// Example:
//
//	res, err := client.Get(ctx, "network",
//	    nios.Param("network_view", "default"),
//	    nios.ReturnFields("network", "comment"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, n := range res.Array() {
//	    fmt.Println(n.Get("network").String())
//	}
func (c *Client) Get(ctx context.Context, object string, mods ...func(*Req)) (Res, error) {
	if err := validateObject(object); err != nil {
		return Res{}, err
	}
	return c.execute(ctx, "Get", http.MethodGet, c.objectURL(object), "", newReq(mods), http.StatusOK)
}

// GetOne reads an object that is expected to be unique and returns its reference
//
// Zero matches or more than one match are reported as a RequestError.
//
// Example:
//
//	ref, err := client.GetOne(ctx, "member", nios.Param("host_name", "gm.example.com"))
func (c *Client) GetOne(ctx context.Context, object string, mods ...func(*Req)) (string, error) {
	res, err := c.Get(ctx, object, mods...)
	if err != nil {
		return "", err
	}

	objects := res.Array()
	switch len(objects) {
	case 0:
		c.logger.Error(ctx, "object not found",
			"object", object)
		return "", &RequestError{
			Operation:  "GetOne",
			StatusCode: res.StatusCode,
			Body:       res.Raw,
			Message:    fmt.Sprintf("no object found for %s", object),
			Err:        ErrRequest,
		}
	case 1:
		return objects[0].Get("_ref").String(), nil
	default:
		c.logger.Error(ctx, "more than one object found",
			"object", object,
			"count", len(objects))
		return "", &RequestError{
			Operation:  "GetOne",
			StatusCode: res.StatusCode,
			Body:       res.Raw,
			Message:    fmt.Sprintf("%d objects found for %s, expected exactly one", len(objects), object),
			Err:        ErrRequest,
		}
	}
}

// Post creates an object, or calls an object function via the Function modifier
//
// 201 (object created) and 200 (function result) succeed. Post is never retried.
//
// Example:
//
//	body := nios.Body{}.
//	    Set("network", "10.0.0.0/24").
//	    Set("comment", "lab")
//	res, err := client.Post(ctx, "network", body)
//	fmt.Println(res.Ref())
func (c *Client) Post(ctx context.Context, object string, body any, mods ...func(*Req)) (Res, error) {
	if err := validateObject(object); err != nil {
		return Res{}, err
	}
	payload, err := encodeBody(body)
	if err != nil {
		return Res{}, err
	}
	return c.execute(ctx, "Post", http.MethodPost, c.objectURL(object), payload, newReq(mods),
		http.StatusOK, http.StatusCreated)
}

// Put updates the object behind a reference
//
// Only 200 succeeds. Put is never retried.
func (c *Client) Put(ctx context.Context, ref string, body any, mods ...func(*Req)) (Res, error) {
	if err := validateObject(ref); err != nil {
		return Res{}, err
	}
	payload, err := encodeBody(body)
	if err != nil {
		return Res{}, err
	}
	return c.execute(ctx, "Put", http.MethodPut, c.objectURL(ref), payload, newReq(mods), http.StatusOK)
}

// Delete removes the object behind a reference
//
// Only 200 succeeds. Delete is never retried.
func (c *Client) Delete(ctx context.Context, ref string, mods ...func(*Req)) (Res, error) {
	if err := validateObject(ref); err != nil {
		return Res{}, err
	}
	return c.execute(ctx, "Delete", http.MethodDelete, c.objectURL(ref), "", newReq(mods), http.StatusOK)
}

// execute sends a request and checks the response status
//
// GET requests are retried on transient statuses and transport errors within
// a total timeout budget; all other methods get exactly one attempt.
//
// Context timeout follows priority:
//  1. Request-specific timeout (via RequestTimeout modifier)
//  2. Context deadline (if already set)
//  3. Client.RequestTimeout (fallback default)
func (c *Client) execute(ctx context.Context, op, method, url, body string, req *Req, expected ...int) (Res, error) {
	if err := checkContextCancellation(ctx); err != nil {
		return Res{}, &RequestError{Operation: op, Message: "context canceled", InternalMsg: err.Error(), Err: err}
	}
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return Res{}, invalidParam("url", "invalid url %q, grid manager or wapi version is empty", url)
	}

	maxRetries := 0
	if method == http.MethodGet {
		maxRetries = c.MaxRetries

		totalTimeout := c.calculateTotalTimeout()
		c.logger.Debug(ctx, "applying total timeout budget",
			"total_timeout", totalTimeout.String(),
			"request_timeout", c.RequestTimeout.String(),
			"max_retries", c.MaxRetries)

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, totalTimeout)
		defer cancel()
	}

	c.logger.Debug(ctx, "WAPI request",
		"operation", op,
		"method", method,
		"url", url,
		"params", req.Params)
	if body != "" {
		c.logger.Debug(ctx, "WAPI request body",
			"operation", op,
			"body", c.prepareJSONForLogging(body))
	}

	var lastErr *RequestError
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := checkContextCancellation(ctx); err != nil {
			c.logger.Debug(ctx, "operation canceled",
				"operation", op,
				"attempt", attempt,
				"error", err.Error())
			return Res{}, &RequestError{
				Operation:   op,
				Message:     "context canceled",
				InternalMsg: err.Error(),
				Retries:     attempt,
				Err:         err,
			}
		}

		res, reqErr := c.attempt(ctx, op, method, url, body, req, expected)
		if reqErr == nil {
			c.logger.Debug(ctx, "WAPI response",
				"operation", op,
				"status", res.StatusCode,
				"body", c.prepareJSONForLogging(res.Raw))
			return res, nil
		}

		lastErr = reqErr
		lastErr.Retries = attempt

		if !reqErr.IsTransient || attempt >= maxRetries {
			break
		}

		backoff := c.Backoff(attempt)
		c.logger.Warn(ctx, "transient error, retrying",
			"operation", op,
			"attempt", attempt+1,
			"max_retries", maxRetries,
			"backoff", backoff,
			"error", reqErr.Error())

		select {
		case <-time.After(backoff):
			continue
		case <-ctx.Done():
			c.logger.Debug(ctx, "operation canceled during backoff",
				"operation", op,
				"attempt", attempt+1)
			return Res{}, &RequestError{
				Operation:   op,
				Message:     "context canceled during backoff",
				InternalMsg: ctx.Err().Error(),
				Retries:     attempt + 1,
				Err:         ctx.Err(),
			}
		}
	}

	c.logger.Error(ctx, "WAPI request failed",
		"operation", op,
		"method", method,
		"status", lastErr.StatusCode,
		"error", lastErr.Error())
	return Res{}, lastErr
}

// attempt performs a single HTTP round trip
func (c *Client) attempt(ctx context.Context, op, method, url, body string, req *Req, expected []int) (Res, *RequestError) {
	attemptCtx, cancel := c.createAttemptContext(ctx, req)
	defer cancel()

	r := c.http.R().
		SetContext(attemptCtx).
		SetQueryParams(req.Params)
	if body != "" {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := r.Execute(method, url)
	if err != nil {
		// an expired parent context is final, anything else on the wire may clear up
		transient := ctx.Err() == nil
		return Res{}, &RequestError{
			Operation:   op,
			Message:     "transport error",
			InternalMsg: err.Error(),
			IsTransient: transient,
			Err:         err,
		}
	}

	res := Res{
		StatusCode: resp.StatusCode(),
		Raw:        resp.String(),
	}
	for _, code := range expected {
		if res.StatusCode == code {
			res.OK = true
			return res, nil
		}
	}

	res.Errors = parseWapiErrors(res.Raw)
	msg := fmt.Sprintf("HTTP %d", res.StatusCode)
	if len(res.Errors) > 0 {
		if text := res.Errors[0].Text; text != "" {
			msg += ": " + text
		} else if e := res.Errors[0].Error; e != "" {
			msg += ": " + e
		}
	}
	return res, &RequestError{
		Operation:   op,
		StatusCode:  res.StatusCode,
		Body:        res.Raw,
		Errors:      res.Errors,
		Message:     msg,
		IsTransient: isTransientStatus(res.StatusCode),
		Err:         ErrRequest,
	}
}

// calculateTotalTimeout calculates the total timeout budget for a retried request
//
// Total timeout = RequestTimeout × (MaxRetries + 1) + sum of backoff delays.
// Each attempt can use up to RequestTimeout, so the budget covers every attempt
// plus the waits in between.
func (c *Client) calculateTotalTimeout() time.Duration {
	totalBackoff := time.Duration(0)
	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		totalBackoff += c.Backoff(attempt)
	}
	return c.RequestTimeout*time.Duration(c.MaxRetries+1) + totalBackoff
}

// checkContextCancellation checks if context is canceled or deadline exceeded
//
// This is a non-blocking check that immediately returns if the context is canceled
// or deadline has exceeded.
func checkContextCancellation(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// createAttemptContext creates a new context for a single attempt with timeout
//
// Timeout priority model:
//  1. Request-specific timeout (req.Timeout > 0) - highest priority
//  2. Existing context deadline (ctx.Deadline() set) - medium priority
//  3. Client default timeout (c.RequestTimeout) - fallback
//
// CRITICAL: Caller MUST call the returned cancel function after the attempt completes.
func (c *Client) createAttemptContext(ctx context.Context, req *Req) (context.Context, context.CancelFunc) {
	if req.Timeout > 0 {
		if req.Timeout < time.Second {
			c.logger.Warn(ctx, "request timeout is very short (may not complete)",
				"timeout", req.Timeout.String())
		} else if req.Timeout > 30*time.Minute {
			c.logger.Warn(ctx, "request timeout is very long (may delay error detection)",
				"timeout", req.Timeout.String())
		}
		return context.WithTimeout(ctx, req.Timeout)
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < c.RequestTimeout {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}
