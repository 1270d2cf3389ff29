// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/sjson"
)

// Body builds a WAPI JSON payload with sjson paths.
//
// Each call returns a new Body. The first failing call is remembered and
// turns every later call into a no-op, so a chain is checked once at the end
// through String, Bytes or Err. Verbs that accept a Body do that check
// themselves.
//
// Example:
//
//	body := nios.Body{}.
//	    Set("network", "10.10.0.0/24").
//	    Set("network_view", "default").
//	    Set("comment", "branch office").
//	    ExtAttr("Site", "Sydney")
//
//	res, err := client.Post(ctx, "network", body)
type Body struct {
	str string
	err error
}

// pathEscaper escapes characters that sjson treats as path syntax
var pathEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

// Set stores value at path, using dot notation for nested fields
// ("options.0.name"). The value is encoded the way encoding/json would.
func (b Body) Set(path string, value any) Body {
	if b.err != nil {
		return b
	}
	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result}
}

// SetRaw stores an already encoded JSON value at path
//
// Useful for splicing a fragment returned by a previous Get into a new
// payload without decoding it.
func (b Body) SetRaw(path, raw string) Body {
	if b.err != nil {
		return b
	}
	result, err := sjson.SetRaw(b.str, path, raw)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("SetRaw(%q): %w", path, err)}
	}
	return Body{str: result}
}

// ExtAttr sets the value of an extensible attribute
//
// The attribute name is used literally, so names containing dots, wildcards
// or only digits are safe: ExtAttr("Cost.Center", "42") yields
// {"extattrs":{"Cost.Center":{"value":"42"}}}.
func (b Body) ExtAttr(name string, value any) Body {
	if b.err != nil {
		return b
	}
	if name == "" {
		return Body{str: b.str, err: errors.New("ExtAttr: empty attribute name")}
	}
	// the colon keeps all-numeric names from becoming array indexes
	return b.Set("extattrs.:"+pathEscaper.Replace(name)+".value", value)
}

// Delete removes the value at path
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}
	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result}
}

// String returns the payload and the first build error
func (b Body) String() (string, error) {
	return b.str, b.err
}

// Err returns the first build error, if any
func (b Body) Err() error {
	return b.err
}

// Bytes returns the payload as a byte slice
//
// Nothing is returned but the error when building failed.
func (b Body) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.str), nil
}
