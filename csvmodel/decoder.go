// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Decoder reads records from NIOS CSV
//
// Files may hold several object types. Every row whose first cell starts
// with "header-" replaces the active header for the rows that follow.
type Decoder struct {
	r      *csv.Reader
	header []string
}

// NewDecoder returns a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Decoder{r: cr}
}

// Decode returns the next record, or io.EOF when the input is exhausted
//
// Errors other than io.EOF are wrapped in a *RowError carrying the line.
func (d *Decoder) Decode() (Record, error) {
	for {
		row, err := d.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		line, _ := d.r.FieldPos(0)

		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		first := strings.ToLower(strings.TrimSpace(row[0]))
		if strings.HasPrefix(first, HeaderPrefix) {
			if _, err := New(first); err != nil {
				return nil, &RowError{Line: line, Err: err}
			}
			d.header = row
			continue
		}

		if d.header == nil {
			return nil, &RowError{Line: line, Err: ErrMissingHeader}
		}

		rec, err := UnmarshalRow(d.header, row)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		return rec, nil
	}
}

// DecodeAll reads every record until the end of input
func (d *Decoder) DecodeAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
