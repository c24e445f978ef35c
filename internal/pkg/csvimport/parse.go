// Package csvimport turns uploaded CSV text into validated records.
//
// The line parser is intentionally small: a double quote toggles quoted mode,
// commas split only outside quotes, and surrounding quotes are stripped from a
// field afterwards. Embedded "" sequences are kept as is.
package csvimport

import "strings"

// ParseLine splits one CSV line into fields. An empty line yields a single
// empty field and a trailing comma yields a trailing empty field.
func ParseLine(line string) []string {
	fields := make([]string, 0, strings.Count(line, ",")+1)

	var current strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())

	for i, f := range fields {
		if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
			fields[i] = f[1 : len(f)-1]
		}
	}
	return fields
}
