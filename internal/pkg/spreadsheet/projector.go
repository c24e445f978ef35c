// Package spreadsheet projects records into flat rows and writes them as XLSX.
package spreadsheet

import (
	"fmt"
	"strings"
	"time"
)

// AllValues is the filter sentinel meaning "do not filter on this field"
const AllValues = "all"

// Field is one named cell of a record
type Field struct {
	Name  string
	Value interface{}
}

// Record is an ordered list of fields
type Record []Field

// Get returns the value of the named field
func (r Record) Get(name string) (interface{}, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Filter is one equality predicate on a field's string form
type Filter struct {
	Field string
	Value string
}

// Active reports whether the filter constrains anything
func (f Filter) Active() bool {
	v := strings.TrimSpace(f.Value)
	return v != "" && !strings.EqualFold(v, AllValues)
}

// Project keeps the records matching every active filter and drops the
// excluded fields from each of them.
func Project(records []Record, filters []Filter, exclude ...string) []Record {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !matches(r, filters) {
			continue
		}
		projected := make(Record, 0, len(r))
		for _, f := range r {
			if !skip[f.Name] {
				projected = append(projected, f)
			}
		}
		out = append(out, projected)
	}
	return out
}

func matches(r Record, filters []Filter) bool {
	for _, f := range filters {
		if !f.Active() {
			continue
		}
		v, ok := r.Get(f.Field)
		if !ok || FormatValue(v) != strings.TrimSpace(f.Value) {
			return false
		}
	}
	return true
}

// FormatValue renders a cell value as text. Nil pointers become "".
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case *int:
		if x == nil {
			return ""
		}
		return fmt.Sprint(*x)
	case *int64:
		if x == nil {
			return ""
		}
		return fmt.Sprint(*x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	case *time.Time:
		if x == nil || x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

// FilteredFilename appends each active value to base, joined by "_".
// Pass values in the order they should appear (branch, year, batch).
func FilteredFilename(base, ext string, values ...string) string {
	parts := []string{base}
	for _, v := range values {
		if (Filter{Value: v}).Active() {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	return strings.Join(parts, "_") + "." + strings.TrimPrefix(ext, ".")
}
