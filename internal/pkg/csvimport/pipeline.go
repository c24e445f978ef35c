package csvimport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

// ErrNotEnoughRows is returned when the text has no data row after the header.
var ErrNotEnoughRows = apperrors.NewValidationError("CSV file must have at least a header row and one data row")

// Result summarizes one import run
type Result struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// DecodeFunc turns a row into a typed record
type DecodeFunc[T any] func(Row) (T, error)

// PersistFunc stores one decoded record
type PersistFunc[T any] func(context.Context, T) error

// RowObserver is notified once per data row with its outcome ("imported", "invalid" or "failed").
type RowObserver func(outcome string)

type line struct {
	number int
	text   string
}

// Run imports text row by row. Rows that fail validation or persistence are
// reported as "Row N: message" where N is the physical line number, and the
// run continues with the next row.
func Run[T any](ctx context.Context, text, kind string, decode DecodeFunc[T], persist PersistFunc[T], observers ...RowObserver) (*Result, error) {
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		return nil, ErrNotEnoughRows
	}

	header := ParseLine(lines[0].text)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	notify := func(outcome string) {
		for _, o := range observers {
			o(outcome)
		}
	}

	result := &Result{Errors: []string{}}
	for _, l := range lines[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values := ParseLine(l.text)
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(values) {
				row[col] = values[i]
			} else {
				row[col] = ""
			}
		}

		record, err := decode(row)
		if err != nil {
			result.Errors = append(result.Errors, rowError(l.number, err))
			notify("invalid")
			continue
		}
		if err := persist(ctx, record); err != nil {
			result.Errors = append(result.Errors, rowError(l.number, err))
			notify("failed")
			continue
		}
		result.Imported++
		notify("imported")
	}

	result.Success = result.Imported > 0
	result.Message = fmt.Sprintf("Imported %d %s successfully", result.Imported, kind)
	if len(result.Errors) > 0 {
		result.Message += fmt.Sprintf(", with %d errors", len(result.Errors))
	}
	return result, nil
}

func rowError(number int, err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("Row %d: %s", number, ve.Error())
	}
	return fmt.Sprintf("Row %d: %s", number, apperrors.Message(err))
}

func nonBlankLines(text string) []line {
	var out []line
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		out = append(out, line{number: i + 1, text: raw})
	}
	return out
}
