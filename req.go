// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import "time"

// Req represents a WAPI request modifier
//
// This struct is used to apply request-specific options via functional modifiers.
// The object or reference and payload are passed directly to methods.
//
// Example:
//
//	res, err := client.Get(ctx, "network",
//	    nios.ReturnFields("network", "comment"),
//	    nios.RequestTimeout(30*time.Second))
type Req struct {
	// Params are the query parameters added to the URL
	Params map[string]string

	// Timeout is the request-specific timeout
	// Overrides client default timeout if set
	Timeout time.Duration
}

// newReq builds a Req with all modifiers applied
func newReq(mods []func(*Req)) *Req {
	req := &Req{Params: map[string]string{}}
	for _, mod := range mods {
		mod(req)
	}
	return req
}
