// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package csvmodel defines the NIOS CSV import record types and a codec
// for reading and writing them.
//
// Each record type maps to one NIOS CSV object. The header cell of a
// row is "header-" followed by the type tag, for example header-network.
// Field names and constraints are declared with struct tags:
//
//	Address netip.Addr `csv:"address,required,ipv4"`
//	CIDR    *int64     `csv:"cidr,min=0,max=128,default=64"`
//
// Supported options are required, positive, min=N, max=N, default=V,
// enum=NAME, ipv4, ipv6 and word.
//
// Types that accept dynamic columns embed Extensions and implement
// Extensible. Only columns starting with one of the prefixes the type
// declares (OPTION-, EA-, EAInherited-, ADMGRP-) are accepted.
package csvmodel

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// HeaderPrefix starts the first cell of every header row
const HeaderPrefix = "header-"

// Record is a single NIOS CSV import object
type Record interface {
	// Tag returns the NIOS CSV object name, e.g. "network"
	Tag() string
}

// Extensible is a Record that accepts prefixed dynamic columns
type Extensible interface {
	Record
	AddProperty(code, value string) error
	Properties() []Property
}

// Property is a dynamic column and its value
type Property struct {
	Code  string
	Value string
}

// Extensions holds the dynamic columns of a record in insertion order
type Extensions struct {
	props []Property
}

// Properties returns a copy of the dynamic columns
func (e *Extensions) Properties() []Property {
	return slices.Clone(e.props)
}

// Property returns the value of a dynamic column
func (e *Extensions) Property(code string) (string, bool) {
	for _, p := range e.props {
		if p.Code == code {
			return p.Value, true
		}
	}
	return "", false
}

func (e *Extensions) add(tag string, allowed []string, code, value string) error {
	code = normalizeCode(code)
	if !hasAllowedPrefix(code, allowed) {
		return fmt.Errorf("%w %q for %s (allowed prefixes: %s)",
			ErrUnknownColumn, code, tag, strings.Join(allowed, ", "))
	}
	for i, p := range e.props {
		if p.Code == code {
			e.props[i].Value = value
			return nil
		}
	}
	e.props = append(e.props, Property{Code: code, Value: value})
	return nil
}

// normalizeCode folds repeated dashes after the inherited attribute prefix
func normalizeCode(code string) string {
	if rest, ok := strings.CutPrefix(code, PrefixEAInherited); ok {
		return PrefixEAInherited + strings.TrimLeft(rest, "-")
	}
	return code
}

func hasAllowedPrefix(code string, allowed []string) bool {
	for _, prefix := range allowed {
		if strings.HasPrefix(code, prefix) && len(code) > len(prefix) {
			return true
		}
	}
	return false
}

// registry maps a header tag to a constructor
var registry = map[string]func() Record{}

func register(fn func() Record) {
	tag := fn().Tag()
	if _, ok := registry[tag]; ok {
		panic("csvmodel: duplicate record tag " + tag)
	}
	registry[tag] = fn
}

// New returns a zero record for a tag or header cell
//
// Both "network" and "header-network" are accepted.
func New(tag string) (Record, error) {
	tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), HeaderPrefix))
	fn, ok := registry[tag]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRecord, tag)
	}
	return fn(), nil
}

// Tags returns all registered record tags in sorted order
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
