// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Customization maps placeholder names to the concrete values an operator
// supplied for a template. Scalar placeholders map to strings; group
// placeholders map to ordered slices of field records. It round-trips
// through the customization JSONB column on the websites table.
type Customization map[string]any

// GroupItem is a single record inside a repeating group.
type GroupItem map[string]string

// Scalar returns the string value for a scalar placeholder.
func (c Customization) Scalar(name string) (string, bool) {
	v, ok := c[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Group returns the ordered item records for a group placeholder. Values
// arriving from JSON decode as []any of map[string]any; both that shape
// and the native []GroupItem shape are accepted.
func (c Customization) Group(name string) ([]GroupItem, bool) {
	v, ok := c[name]
	if !ok {
		return nil, false
	}
	switch items := v.(type) {
	case []GroupItem:
		return items, true
	case []any:
		out := make([]GroupItem, 0, len(items))
		for _, raw := range items {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, false
			}
			item := GroupItem{}
			for k, fv := range m {
				if s, ok := fv.(string); ok {
					item[k] = s
				}
			}
			out = append(out, item)
		}
		return out, true
	default:
		return nil, false
	}
}

// FieldPath addresses a single editable value inside a customization:
// either a scalar placeholder ("restaurant_name") or one field of one
// group item ("menu_items.2.price").
type FieldPath struct {
	Placeholder string
	Index       int    // group item index; -1 for scalars
	Field       string // group field name; empty for scalars
}

// ParseFieldPath splits a dotted field path into its components.
func ParseFieldPath(path string) (FieldPath, error) {
	parts := strings.Split(path, ".")
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return FieldPath{}, fmt.Errorf("empty field path")
		}
		return FieldPath{Placeholder: parts[0], Index: -1}, nil
	case 3:
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 {
			return FieldPath{}, fmt.Errorf("invalid group index %q in field path", parts[1])
		}
		if parts[0] == "" || parts[2] == "" {
			return FieldPath{}, fmt.Errorf("malformed field path %q", path)
		}
		return FieldPath{Placeholder: parts[0], Index: idx, Field: parts[2]}, nil
	default:
		return FieldPath{}, fmt.Errorf("malformed field path %q", path)
	}
}

// Set writes a value at the given path. Group paths may append exactly one
// item past the current end (index == len), so editors can add rows; any
// larger index is rejected.
func (c Customization) Set(path FieldPath, value string) error {
	if path.Index < 0 {
		c[path.Placeholder] = value
		return nil
	}

	items, _ := c.Group(path.Placeholder)
	if path.Index > len(items) {
		return fmt.Errorf("group index %d out of range (have %d items)", path.Index, len(items))
	}
	if path.Index == len(items) {
		items = append(items, GroupItem{})
	}
	items[path.Index][path.Field] = value
	c[path.Placeholder] = items
	return nil
}
