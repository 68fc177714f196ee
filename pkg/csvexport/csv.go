// Package csvexport renders uniformly-shaped record slices as CSV for
// download. The header row is taken from the records' field names (json tags
// when present) and every cell is double-quoted, matching the export format
// the admin console has always produced.
package csvexport

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var ErrNotSlice = errors.New("csvexport: records must be a slice of structs")

// ToCSV renders a slice of structs as comma-separated text with a
// header row and one quoted row per record. An empty slice yields just the
// header when the element type is known, so downloads are never zero-byte.
func ToCSV(records any) (string, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return "", ErrNotSlice
	}
	elem := v.Type().Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return "", ErrNotSlice
	}

	headers, indexes := fieldHeaders(elem)

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteByte('\n')

	for i := 0; i < v.Len(); i++ {
		row := v.Index(i)
		if row.Kind() == reflect.Pointer {
			if row.IsNil() {
				continue
			}
			row = row.Elem()
		}
		cells := make([]string, len(indexes))
		for j, idx := range indexes {
			cells[j] = quote(row.Field(idx).Interface())
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// fieldHeaders returns the column names and the exported field indexes they
// map to. The json tag wins over the Go field name; fields tagged "-" are
// skipped.
func fieldHeaders(t reflect.Type) ([]string, []int) {
	var headers []string
	var indexes []int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}
		headers = append(headers, name)
		indexes = append(indexes, i)
	}
	return headers, indexes
}

// quote renders one cell, always double-quoted, with embedded quotes doubled.
func quote(val any) string {
	s := fmt.Sprintf("%v", val)
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
