package models

import "time"

// Alumni is a former student who registered with the placement office
type Alumni struct {
	ID                     int64     `json:"id" db:"id"`
	Name                   string    `json:"name" db:"name"`
	RollNumber             string    `json:"rollNumber" db:"roll_number"`
	PassOutYear            int       `json:"passOutYear" db:"pass_out_year"`
	HigherEducationCollege *string   `json:"higherEducationCollege" db:"higher_education_college"`
	CollegeRollNumber      *string   `json:"collegeRollNumber" db:"college_roll_number"`
	Address                string    `json:"address" db:"address"`
	ContactNumber          string    `json:"contactNumber" db:"contact_number"`
	Email                  string    `json:"email" db:"email"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

// AlumniPatch carries the fields of a partial alumni update
type AlumniPatch struct {
	Name                   *string
	RollNumber             *string
	PassOutYear            *int
	HigherEducationCollege *string
	CollegeRollNumber      *string
	Address                *string
	ContactNumber          *string
	Email                  *string
}

// Columns maps the set fields of the patch onto their database columns.
func (p AlumniPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "name", p.Name)
	setString(cols, "roll_number", p.RollNumber)
	setInt(cols, "pass_out_year", p.PassOutYear)
	setNullable(cols, "higher_education_college", p.HigherEducationCollege)
	setNullable(cols, "college_roll_number", p.CollegeRollNumber)
	setString(cols, "address", p.Address)
	setString(cols, "contact_number", p.ContactNumber)
	setString(cols, "email", p.Email)
	return cols
}
