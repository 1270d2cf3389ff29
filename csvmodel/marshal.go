// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// requiredMarker flags required columns in header rows
const requiredMarker = "*"

// structOf returns the addressable struct behind a record pointer
func structOf(rec Record) (reflect.Value, error) {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("csvmodel: record must be a non-nil struct pointer, got %T", rec)
	}
	return v.Elem(), nil
}

// ApplyDefaults fills unset fields that declare a default value
func ApplyDefaults(rec Record) error {
	v, err := structOf(rec)
	if err != nil {
		return err
	}
	for _, spec := range specsOf(v.Type()) {
		f := v.Field(spec.index)
		if spec.def == "" || !isZero(f) {
			continue
		}
		if err := setCell(f, spec.def); err != nil {
			return fmt.Errorf("csvmodel: default of %s.%s: %w", rec.Tag(), spec.name, err)
		}
	}
	return nil
}

// Validate checks every field of a record against its csv tag
//
// All failures are returned joined together.
func Validate(rec Record) error {
	v, err := structOf(rec)
	if err != nil {
		return err
	}

	var errs []error
	for _, spec := range specsOf(v.Type()) {
		f := v.Field(spec.index)
		if isZero(f) {
			if spec.required {
				errs = append(errs, &FieldError{Record: rec.Tag(), Field: spec.name, Message: "is required"})
			}
			continue
		}
		if msg := spec.check(f); msg != "" {
			errs = append(errs, &FieldError{Record: rec.Tag(), Field: spec.name, Message: msg})
		}
	}
	return errors.Join(errs...)
}

// MarshalRow converts a record into a header row and a data row
//
// Unset fields are omitted, defaults are emitted and dynamic columns
// follow the declared fields. The record is validated first.
func MarshalRow(rec Record) (header, row []string, err error) {
	v, err := structOf(rec)
	if err != nil {
		return nil, nil, err
	}
	if err := Validate(rec); err != nil {
		return nil, nil, err
	}

	header = []string{HeaderPrefix + rec.Tag()}
	row = []string{rec.Tag()}
	for _, spec := range specsOf(v.Type()) {
		f := v.Field(spec.index)
		var cell string
		switch {
		case !isZero(f):
			cell = cellOf(f)
		case spec.def != "":
			cell = spec.def
		default:
			continue
		}
		name := spec.name
		if spec.required {
			name += requiredMarker
		}
		header = append(header, name)
		row = append(row, cell)
	}

	if ext, ok := rec.(Extensible); ok {
		for _, p := range ext.Properties() {
			header = append(header, p.Code)
			row = append(row, p.Value)
		}
	}
	return header, row, nil
}

// UnmarshalRow builds a record from a header row and a data row
//
// The record type is taken from the first header cell and the first cell of
// row must name the same type. Empty cells are
// left unset, defaults are applied and the result is validated.
func UnmarshalRow(header, row []string) (Record, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("csvmodel: empty header")
	}
	if len(row) > len(header) {
		return nil, fmt.Errorf("csvmodel: row has %d cells, header has %d", len(row), len(header))
	}

	rec, err := New(header[0])
	if err != nil {
		return nil, err
	}
	if len(row) == 0 || strings.ToLower(strings.TrimSpace(row[0])) != rec.Tag() {
		first := ""
		if len(row) > 0 {
			first = row[0]
		}
		return nil, fmt.Errorf("%w: %q under %s%s", ErrRecordMismatch, first, HeaderPrefix, rec.Tag())
	}
	v, _ := structOf(rec)

	byName := make(map[string]fieldSpec)
	for _, spec := range specsOf(v.Type()) {
		byName[spec.name] = spec
	}

	for i := 1; i < len(row); i++ {
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}
		name := strings.TrimSuffix(strings.TrimSpace(header[i]), requiredMarker)

		if spec, ok := byName[name]; ok {
			if err := setCell(v.Field(spec.index), cell); err != nil {
				return nil, &FieldError{Record: rec.Tag(), Field: name, Message: err.Error()}
			}
			continue
		}

		ext, ok := rec.(Extensible)
		if !ok {
			return nil, fmt.Errorf("%w %q for %s", ErrUnknownColumn, name, rec.Tag())
		}
		if err := ext.AddProperty(name, cell); err != nil {
			return nil, err
		}
	}

	if err := ApplyDefaults(rec); err != nil {
		return nil, err
	}
	if err := Validate(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
