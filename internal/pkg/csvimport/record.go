package csvimport

import (
	"strconv"
	"strings"
	"time"

	"github.com/yigit/tpoportal/internal/app/models"
)

// Row is one data line zipped with the header: column name -> raw value.
type Row map[string]string

// FieldProblem names one field that failed validation
type FieldProblem struct {
	Field   string
	Message string
}

// ValidationError lists every problem found in a row, in field order.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Message
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the names of the offending fields
func (e *ValidationError) Fields() []string {
	names := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		names[i] = p.Field
	}
	return names
}

// dateLayouts are tried in order when reading event dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate reads a timestamp in any of the accepted layouts.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// decoder accumulates problems while reading typed values from a Row.
type decoder struct {
	row      Row
	problems []FieldProblem
}

func (d *decoder) fail(field, message string) {
	d.problems = append(d.problems, FieldProblem{Field: field, Message: message})
}

func (d *decoder) value(field string) string {
	return strings.TrimSpace(d.row[field])
}

func (d *decoder) required(field string) string {
	v := d.value(field)
	if v == "" {
		d.fail(field, field+" is required")
	}
	return v
}

func (d *decoder) optional(field string) *string {
	v := d.value(field)
	if v == "" {
		return nil
	}
	return &v
}

// optionalInt returns nil for blank or unparsable values.
func (d *decoder) optionalInt(field string) *int {
	n, err := strconv.Atoi(d.value(field))
	if err != nil {
		return nil
	}
	return &n
}

func (d *decoder) requiredInt(field string) int {
	v := d.value(field)
	if v == "" {
		d.fail(field, field+" is required")
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		d.fail(field, field+" must be a whole number")
		return 0
	}
	return n
}

func (d *decoder) requiredDate(field string) time.Time {
	v := d.value(field)
	if v == "" {
		d.fail(field, field+" is required")
		return time.Time{}
	}
	t, ok := ParseDate(v)
	if !ok {
		d.fail(field, field+" must be a valid date")
	}
	return t
}

func (d *decoder) err() error {
	if len(d.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: d.problems}
}

// DecodeStudent validates a student row. An out of range year is dropped rather than rejected.
func DecodeStudent(row Row) (*models.Student, error) {
	d := &decoder{row: row}
	s := &models.Student{
		Name:           d.required("name"),
		RollNumber:     d.required("rollNumber"),
		Branch:         d.optional("branch"),
		Year:           d.optionalInt("year"),
		Batch:          d.optional("batch"),
		Email:          d.optional("email"),
		Phone:          d.optional("phone"),
		PhotoURL:       d.optional("photoUrl"),
		Selected:       strings.EqualFold(d.value("selected"), "true"),
		CompanyName:    d.optional("companyName"),
		OfferLetterURL: d.optional("offerLetterUrl"),
		Package:        d.optionalInt("package"),
		Role:           d.optional("role"),
	}
	if s.Year != nil && (*s.Year < 1 || *s.Year > 4) {
		s.Year = nil
	}
	if err := d.err(); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeEvent validates an event row
func DecodeEvent(row Row) (*models.Event, error) {
	d := &decoder{row: row}
	e := &models.Event{
		Title:            d.required("title"),
		Description:      d.required("description"),
		Company:          d.required("company"),
		StartDate:        d.requiredDate("startDate"),
		EndDate:          d.requiredDate("endDate"),
		NotificationLink: d.optional("notificationLink"),
		AttachmentURL:    d.optional("attachmentUrl"),
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		d.fail("endDate", "endDate must not be before startDate")
	}
	if err := d.err(); err != nil {
		return nil, err
	}
	return e, nil
}

// DecodeAlumni validates an alumni row
func DecodeAlumni(row Row) (*models.Alumni, error) {
	d := &decoder{row: row}
	a := &models.Alumni{
		Name:                   d.required("name"),
		RollNumber:             d.required("rollNumber"),
		PassOutYear:            d.requiredInt("passOutYear"),
		HigherEducationCollege: d.optional("higherEducationCollege"),
		CollegeRollNumber:      d.optional("collegeRollNumber"),
		Address:                d.required("address"),
		ContactNumber:          d.required("contactNumber"),
		Email:                  d.required("email"),
	}
	if err := d.err(); err != nil {
		return nil, err
	}
	return a, nil
}

// DecodeAttendance validates an attendance row. eventId is optional and an
// unparsable value leaves the record unlinked.
func DecodeAttendance(row Row) (*models.Attendance, error) {
	d := &decoder{row: row}
	a := &models.Attendance{
		StudentName: d.required("studentName"),
		RollNumber:  d.required("rollNumber"),
		Branch:      d.optional("branch"),
		Year:        d.optionalInt("year"),
	}
	if id := d.optionalInt("eventId"); id != nil {
		eventID := int64(*id)
		a.EventID = &eventID
	}
	if err := d.err(); err != nil {
		return nil, err
	}
	return a, nil
}
