// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

import (
	"fmt"
	"net/netip"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TimeLayout is the format of timestamp columns
const TimeLayout = time.RFC3339

var (
	wordPattern = regexp.MustCompile(`^\w+$`)

	addrType  = reflect.TypeOf(netip.Addr{})
	timeType  = reflect.TypeOf(time.Time{})
	specCache sync.Map // reflect.Type -> []fieldSpec
)

// fieldSpec is the parsed csv tag of one struct field
type fieldSpec struct {
	index    int
	name     string
	required bool
	positive bool
	word     bool
	family   string
	enum     string
	min      *int64
	max      *int64
	def      string
}

// specsOf returns the field specs of a record struct type
func specsOf(t reflect.Type) []fieldSpec {
	if cached, ok := specCache.Load(t); ok {
		return cached.([]fieldSpec)
	}

	var specs []fieldSpec
	for i := range t.NumField() {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("csv")
		if !ok || tag == "-" || !f.IsExported() {
			continue
		}
		specs = append(specs, parseTag(i, tag))
	}

	specCache.Store(t, specs)
	return specs
}

func parseTag(index int, tag string) fieldSpec {
	parts := strings.Split(tag, ",")
	spec := fieldSpec{index: index, name: parts[0]}
	for _, opt := range parts[1:] {
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "required":
			spec.required = true
		case "positive":
			spec.positive = true
		case "word":
			spec.word = true
		case "ipv4", "ipv6":
			spec.family = key
		case "enum":
			spec.enum = value
		case "default":
			spec.def = value
		case "min", "max":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				panic(fmt.Sprintf("csvmodel: bad %s in tag %q", key, tag))
			}
			if key == "min" {
				spec.min = &n
			} else {
				spec.max = &n
			}
		default:
			panic(fmt.Sprintf("csvmodel: unknown option %q in tag %q", key, tag))
		}
	}
	return spec
}

// isZero reports whether a field holds no value
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice:
		return v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0)
	case reflect.String:
		return v.String() == ""
	}
	if v.Type() == addrType {
		return !v.Interface().(netip.Addr).IsValid()
	}
	return v.IsZero()
}

// setCell parses a CSV cell into a field
func setCell(v reflect.Value, cell string) error {
	if v.Kind() == reflect.Pointer {
		elem := reflect.New(v.Type().Elem())
		if err := setCell(elem.Elem(), cell); err != nil {
			return err
		}
		v.Set(elem)
		return nil
	}

	switch {
	case v.Type() == addrType:
		addr, err := netip.ParseAddr(cell)
		if err != nil {
			return fmt.Errorf("%q is not an IP address", cell)
		}
		v.Set(reflect.ValueOf(addr))
	case v.Type() == timeType:
		ts, err := time.Parse(TimeLayout, cell)
		if err != nil {
			return fmt.Errorf("%q is not a %s timestamp", cell, TimeLayout)
		}
		v.Set(reflect.ValueOf(ts))
	case v.Kind() == reflect.String:
		v.SetString(cell)
	case v.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return fmt.Errorf("%q is not a boolean", cell)
		}
		v.SetBool(b)
	case v.Kind() == reflect.Int64:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not an integer", cell)
		}
		v.SetInt(n)
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.String:
		var items []string
		for _, item := range strings.Split(cell, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		v.Set(reflect.ValueOf(items))
	default:
		return fmt.Errorf("unsupported field type %s", v.Type())
	}
	return nil
}

// cellOf formats a field as a CSV cell
func cellOf(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch {
	case v.Type() == addrType:
		addr := v.Interface().(netip.Addr)
		if !addr.IsValid() {
			return ""
		}
		return addr.String()
	case v.Type() == timeType:
		return v.Interface().(time.Time).Format(TimeLayout)
	case v.Kind() == reflect.Bool:
		if v.Bool() {
			return "True"
		}
		return "False"
	case v.Kind() == reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case v.Kind() == reflect.Slice:
		return strings.Join(v.Interface().([]string), ",")
	}
	return v.String()
}

// check validates a set field against its spec
func (s fieldSpec) check(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Int64:
		n := v.Int()
		if s.positive && n <= 0 {
			return fmt.Sprintf("%d is not a positive integer", n)
		}
		if s.min != nil && n < *s.min {
			return fmt.Sprintf("%d is less than %d", n, *s.min)
		}
		if s.max != nil && n > *s.max {
			return fmt.Sprintf("%d is greater than %d", n, *s.max)
		}
	case v.Type() == addrType:
		return checkFamily(s.family, v.Interface().(netip.Addr))
	case v.Kind() == reflect.Slice && s.family != "":
		for _, item := range v.Interface().([]string) {
			addr, err := netip.ParseAddr(item)
			if err != nil {
				return fmt.Sprintf("%q is not an IP address", item)
			}
			if msg := checkFamily(s.family, addr); msg != "" {
				return msg
			}
		}
	case v.Kind() == reflect.String:
		value := v.String()
		if s.enum != "" && !slices.Contains(enums[s.enum], value) {
			return fmt.Sprintf("%q is not valid (valid values: %s)", value, strings.Join(enums[s.enum], ", "))
		}
		if s.word && !wordPattern.MatchString(value) {
			return fmt.Sprintf("%q must be alphanumeric", value)
		}
	}
	return ""
}

func checkFamily(family string, addr netip.Addr) string {
	switch {
	case family == "ipv4" && !addr.Is4():
		return fmt.Sprintf("%s is not an IPv4 address", addr)
	case family == "ipv6" && (!addr.Is6() || addr.Is4In6()):
		return fmt.Sprintf("%s is not an IPv6 address", addr)
	}
	return ""
}
