package csvimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"empty line", "", []string{""}},
		{"trailing comma", "a,b,", []string{"a", "b", ""}},
		{"quoted comma", `Ada,"CSE, AI",3`, []string{"Ada", "CSE, AI", "3"}},
		{"quoted whole field", `"R1","Ada"`, []string{"R1", "Ada"}},
		{"embedded double quote kept", `"say ""hi"""`, []string{`say ""hi""`}},
		{"lone quote", `"`, []string{`"`}},
		{"spaces preserved", " a , b ", []string{" a ", " b "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	sets := [][]string{
		{"name", "rollNumber", "branch"},
		{"", "", ""},
		{"Ada Lovelace", "R-001", "", "2020-2024"},
		{"single"},
	}
	for _, fields := range sets {
		assert.Equal(t, fields, ParseLine(strings.Join(fields, ",")))
	}
}
