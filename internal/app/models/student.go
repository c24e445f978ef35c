package models

import "time"

// Student is a currently enrolled student tracked by the placement office
type Student struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	RollNumber     string    `json:"rollNumber" db:"roll_number"`
	Branch         *string   `json:"branch" db:"branch"`
	Year           *int      `json:"year" db:"year"`   // year of study, 1-4
	Batch          *string   `json:"batch" db:"batch"` // e.g. "2020-2024"
	Email          *string   `json:"email" db:"email"`
	Phone          *string   `json:"phone" db:"phone"`
	PhotoURL       *string   `json:"photoUrl" db:"photo_url"`
	Selected       bool      `json:"selected" db:"selected"`
	CompanyName    *string   `json:"companyName" db:"company_name"`
	OfferLetterURL *string   `json:"offerLetterUrl" db:"offer_letter_url"`
	Package        *int      `json:"package" db:"package"` // LPA
	Role           *string   `json:"role" db:"role"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentPatch carries the fields of a partial student update. Nil means "leave unchanged".
type StudentPatch struct {
	Name           *string
	RollNumber     *string
	Branch         *string
	Year           *int
	Batch          *string
	Email          *string
	Phone          *string
	PhotoURL       *string
	Selected       *bool
	CompanyName    *string
	OfferLetterURL *string
	Package        *int
	Role           *string
}

// Columns maps the set fields of the patch onto their database columns.
func (p StudentPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "name", p.Name)
	setString(cols, "roll_number", p.RollNumber)
	setNullable(cols, "branch", p.Branch)
	setInt(cols, "year", p.Year)
	setNullable(cols, "batch", p.Batch)
	setNullable(cols, "email", p.Email)
	setNullable(cols, "phone", p.Phone)
	setNullable(cols, "photo_url", p.PhotoURL)
	if p.Selected != nil {
		cols["selected"] = *p.Selected
	}
	setNullable(cols, "company_name", p.CompanyName)
	setNullable(cols, "offer_letter_url", p.OfferLetterURL)
	setInt(cols, "package", p.Package)
	setNullable(cols, "role", p.Role)
	return cols
}

func setString(cols map[string]interface{}, column string, v *string) {
	if v != nil {
		cols[column] = *v
	}
}

// setNullable stores NULL for an explicit empty string
func setNullable(cols map[string]interface{}, column string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		cols[column] = nil
		return
	}
	cols[column] = *v
}

func setInt(cols map[string]interface{}, column string, v *int) {
	if v != nil {
		cols[column] = *v
	}
}

// Apply copies the set fields of the patch onto s
func (p StudentPatch) Apply(s *Student) {
	applyString(&s.Name, p.Name)
	applyString(&s.RollNumber, p.RollNumber)
	applyOptional(&s.Branch, p.Branch)
	if p.Year != nil {
		s.Year = p.Year
	}
	applyOptional(&s.Batch, p.Batch)
	applyOptional(&s.Email, p.Email)
	applyOptional(&s.Phone, p.Phone)
	applyOptional(&s.PhotoURL, p.PhotoURL)
	if p.Selected != nil {
		s.Selected = *p.Selected
	}
	applyOptional(&s.CompanyName, p.CompanyName)
	applyOptional(&s.OfferLetterURL, p.OfferLetterURL)
	if p.Package != nil {
		s.Package = p.Package
	}
	applyOptional(&s.Role, p.Role)
}

// Empty reports whether the patch changes nothing
func (p StudentPatch) Empty() bool {
	return len(p.Columns()) == 0
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	val := *v
	*dst = &val
}
