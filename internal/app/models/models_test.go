package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestStudentPatchColumns(t *testing.T) {
	p := StudentPatch{
		Name:     ptr("Ada"),
		Branch:   ptr(""),
		Selected: ptr(true),
		Package:  ptr(12),
	}
	assert.Equal(t, map[string]interface{}{
		"name":     "Ada",
		"branch":   nil,
		"selected": true,
		"package":  12,
	}, p.Columns())
	assert.True(t, StudentPatch{}.Empty())
}

func TestStudentPatchApplyKeepsOmittedFields(t *testing.T) {
	s := &Student{Name: "Ada", RollNumber: "R1", Branch: ptr("CSE"), Email: ptr("ada@example.com"), Year: ptr(2)}
	StudentPatch{Year: ptr(3), Email: ptr("")}.Apply(s)

	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, "R1", s.RollNumber)
	assert.Equal(t, "CSE", StringValue(s.Branch))
	assert.Nil(t, s.Email)
	assert.Equal(t, 3, IntValue(s.Year))
}
