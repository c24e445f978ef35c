package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string  `validate:"notblank"`
	Link  *string `validate:"omitempty,link"`
	Phone string  `validate:"phone"`
}

func str(s string) *string { return &s }

func TestRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"ok relative link", sample{Title: "Drive", Link: str("/placements/register")}, true},
		{"ok absolute link", sample{Title: "Drive", Link: str("https://example.com/a")}, true},
		{"blank title", sample{Title: "   "}, false},
		{"protocol relative", sample{Title: "x", Link: str("//evil.example")}, false},
		{"ftp link", sample{Title: "x", Link: str("ftp://example.com")}, false},
		{"phone", sample{Title: "x", Phone: "+91 98765-43210"}, true},
		{"bad phone", sample{Title: "x", Phone: "call me"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			assert.Equal(t, tt.valid, err == nil, "err: %v", err)
		})
	}
}

type tagged struct {
	RollNumber string `json:"rollNumber" validate:"notblank"`
	Batch      string `form:"batch" validate:"notblank"`
	Plain      string `validate:"notblank"`
}

func TestRegister_ReportsJSONNames(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	err := v.Struct(tagged{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	names := []string{}
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	assert.Equal(t, []string{"rollNumber", "batch", "Plain"}, names)
}
