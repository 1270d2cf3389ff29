// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import "github.com/tidwall/gjson"

// Res represents a WAPI response
type Res struct {
	// StatusCode is the HTTP status code
	StatusCode int

	// Raw is the response body
	Raw string

	// OK indicates if the operation succeeded
	OK bool

	// Errors contains any error information parsed from the body
	Errors []WapiError
}

// Get retrieves a value from the response body using a gjson path.
//
// Example paths:
//   - "0._ref" - reference of the first object of a GET result
//   - "#.network" - all network fields of a GET result
//   - "token" - token returned by a fileop function
//
// Example:
//
//	res, err := client.Get(ctx, "network", nios.Param("network_view", "default"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, n := range res.Get("#.network").Array() {
//	    fmt.Println(n.String())
//	}
func (r Res) Get(path string) gjson.Result {
	if r.Raw == "" {
		return gjson.Result{}
	}
	return gjson.Get(r.Raw, path)
}

// JSON returns the response body as a parsed gjson.Result
func (r Res) JSON() gjson.Result {
	return gjson.Parse(r.Raw)
}

// Array returns the elements of a list response
//
// A single object response is returned as a one-element slice.
func (r Res) Array() []gjson.Result {
	if r.Raw == "" {
		return nil
	}
	return gjson.Parse(r.Raw).Array()
}

// Ref returns the object reference carried by the response.
//
// POST and PUT return the reference as a bare JSON string; GET on a single
// reference and functions return an object with a _ref field.
func (r Res) Ref() string {
	res := gjson.Parse(r.Raw)
	if res.Type == gjson.String {
		return res.String()
	}
	return res.Get("_ref").String()
}
