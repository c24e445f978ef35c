package dto

import (
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
)

// CreateAlumniRequest is the public alumni self registration form
type CreateAlumniRequest struct {
	Name                   string  `json:"name" binding:"required,notblank" example:"Ada Lovelace"`
	RollNumber             string  `json:"rollNumber" binding:"required,notblank" example:"16CS001"`
	PassOutYear            int     `json:"passOutYear" binding:"required,min=1900,max=2100" example:"2020"`
	HigherEducationCollege *string `json:"higherEducationCollege"`
	CollegeRollNumber      *string `json:"collegeRollNumber"`
	Address                string  `json:"address" binding:"required,notblank"`
	ContactNumber          string  `json:"contactNumber" binding:"required,phone"`
	Email                  string  `json:"email" binding:"required,email"`
}

// ToModel converts the request into an Alumni record
func (r *CreateAlumniRequest) ToModel() *models.Alumni {
	return &models.Alumni{
		Name:                   strings.TrimSpace(r.Name),
		RollNumber:             strings.TrimSpace(r.RollNumber),
		PassOutYear:            r.PassOutYear,
		HigherEducationCollege: trimmed(r.HigherEducationCollege),
		CollegeRollNumber:      trimmed(r.CollegeRollNumber),
		Address:                strings.TrimSpace(r.Address),
		ContactNumber:          strings.TrimSpace(r.ContactNumber),
		Email:                  strings.TrimSpace(r.Email),
	}
}

// UpdateAlumniRequest is a partial alumni update
type UpdateAlumniRequest struct {
	Name                   *string `json:"name" binding:"omitempty,notblank"`
	RollNumber             *string `json:"rollNumber" binding:"omitempty,notblank"`
	PassOutYear            *int    `json:"passOutYear" binding:"omitempty,min=1900,max=2100"`
	HigherEducationCollege *string `json:"higherEducationCollege"`
	CollegeRollNumber      *string `json:"collegeRollNumber"`
	Address                *string `json:"address" binding:"omitempty,notblank"`
	ContactNumber          *string `json:"contactNumber" binding:"omitempty,phone"`
	Email                  *string `json:"email" binding:"omitempty,email"`
}

// ToPatch converts the request into an AlumniPatch
func (r *UpdateAlumniRequest) ToPatch() models.AlumniPatch {
	return models.AlumniPatch{
		Name:                   trimmedKeep(r.Name),
		RollNumber:             trimmedKeep(r.RollNumber),
		PassOutYear:            r.PassOutYear,
		HigherEducationCollege: trimmedKeep(r.HigherEducationCollege),
		CollegeRollNumber:      trimmedKeep(r.CollegeRollNumber),
		Address:                trimmedKeep(r.Address),
		ContactNumber:          trimmedKeep(r.ContactNumber),
		Email:                  trimmedKeep(r.Email),
	}
}
