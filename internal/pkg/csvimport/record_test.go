package csvimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStudent(t *testing.T) {
	t.Run("required fields missing", func(t *testing.T) {
		_, err := DecodeStudent(Row{"name": "  ", "branch": "CSE"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"name", "rollNumber"}, ve.Fields())
		assert.Equal(t, "name is required; rollNumber is required", ve.Error())
	})

	t.Run("optional values", func(t *testing.T) {
		s, err := DecodeStudent(Row{
			"name":       "Ada",
			"rollNumber": "R1",
			"year":       "7",
			"package":    "twelve",
			"selected":   "TRUE",
			"batch":      "2020-2024",
			"unknown":    "ignored",
		})
		require.NoError(t, err)
		assert.Nil(t, s.Year)
		assert.Nil(t, s.Package)
		assert.True(t, s.Selected)
		assert.Nil(t, s.Branch)
		require.NotNil(t, s.Batch)
		assert.Equal(t, "2020-2024", *s.Batch)
	})

	t.Run("valid year kept", func(t *testing.T) {
		s, err := DecodeStudent(Row{"name": "Ada", "rollNumber": "R1", "year": "3", "selected": "yes"})
		require.NoError(t, err)
		require.NotNil(t, s.Year)
		assert.Equal(t, 3, *s.Year)
		assert.False(t, s.Selected)
	})
}

func TestDecodeEvent(t *testing.T) {
	row := Row{
		"title":       "Campus Drive",
		"description": "Hiring",
		"company":     "Acme",
		"startDate":   "2024-01-01",
		"endDate":     "2024-01-02T10:30",
	}
	e, err := DecodeEvent(row)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), e.StartDate)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC), e.EndDate)

	row["endDate"] = "2023-12-31"
	_, err = DecodeEvent(row)
	assert.EqualError(t, err, "endDate must not be before startDate")

	row["startDate"] = "someday"
	_, err = DecodeEvent(row)
	assert.EqualError(t, err, "startDate must be a valid date")
}

func TestDecodeAlumni(t *testing.T) {
	_, err := DecodeAlumni(Row{
		"name":          "Ada",
		"rollNumber":    "R1",
		"passOutYear":   "twenty",
		"address":       "Street 1",
		"contactNumber": "123",
	})
	assert.EqualError(t, err, "passOutYear must be a whole number; email is required")

	a, err := DecodeAlumni(Row{
		"name":          "Ada",
		"rollNumber":    "R1",
		"passOutYear":   "2022",
		"address":       "Street 1",
		"contactNumber": "123",
		"email":         "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2022, a.PassOutYear)
	assert.Nil(t, a.CollegeRollNumber)
}

func TestDecodeAttendance(t *testing.T) {
	a, err := DecodeAttendance(Row{"studentName": "Ada", "rollNumber": "R1", "eventId": "x"})
	require.NoError(t, err)
	assert.Nil(t, a.EventID)

	a, err = DecodeAttendance(Row{"studentName": "Ada", "rollNumber": "R1", "eventId": "12"})
	require.NoError(t, err)
	require.NotNil(t, a.EventID)
	assert.EqualValues(t, 12, *a.EventID)

	_, err = DecodeAttendance(Row{"rollNumber": "R1"})
	assert.EqualError(t, err, "studentName is required")
}
