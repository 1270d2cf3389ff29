// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is matched by every *FieldError
	ErrInvalidField = errors.New("invalid field")

	// ErrUnknownColumn is returned for a column the record type does not accept
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownRecord is returned for an unregistered header tag
	ErrUnknownRecord = errors.New("unknown record type")

	// ErrRecordMismatch is returned for a data row whose type differs from the active header
	ErrRecordMismatch = errors.New("row type does not match header")

	// ErrMissingHeader is returned by the Decoder for a data row before any header row
	ErrMissingHeader = errors.New("data row before header row")
)

// FieldError describes a field that failed validation
type FieldError struct {
	Record  string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("csvmodel: %s.%s: %s", e.Record, e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// RowError attaches the input line to a decoding error
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("csvmodel: line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
