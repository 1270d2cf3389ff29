// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

import (
	"encoding/csv"
	"io"
	"slices"
)

// Encoder writes records as NIOS CSV
//
// A header row is written before the first record and again whenever
// the record type or its column set changes.
type Encoder struct {
	w      *csv.Writer
	header []string
}

// NewEncoder returns an encoder writing to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// Encode validates and writes one record
func (e *Encoder) Encode(rec Record) error {
	header, row, err := MarshalRow(rec)
	if err != nil {
		return err
	}

	if !slices.Equal(header, e.header) {
		if err := e.w.Write(header); err != nil {
			return err
		}
		e.header = header
	}
	return e.w.Write(row)
}

// Flush writes any buffered data to the underlying writer
func (e *Encoder) Flush() error {
	e.w.Flush()
	return e.w.Error()
}
