package dto

import (
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
)

// CreateStudentRequest is accepted as JSON or as a multipart form carrying
// optional "photo" and "offerLetter" files.
type CreateStudentRequest struct {
	Name           string  `json:"name" form:"name" binding:"required,notblank" example:"Ada Lovelace"`
	RollNumber     string  `json:"rollNumber" form:"rollNumber" binding:"required,notblank" example:"20CS001"`
	Branch         *string `json:"branch" form:"branch" example:"CSE"`
	Year           *int    `json:"year" form:"year" binding:"omitempty,min=1,max=4" example:"3"`
	Batch          *string `json:"batch" form:"batch" example:"2020-2024"`
	Email          *string `json:"email" form:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" form:"phone" binding:"omitempty,phone"`
	PhotoURL       *string `json:"photoUrl" form:"photoUrl" binding:"omitempty,link"`
	Selected       bool    `json:"selected" form:"selected"`
	CompanyName    *string `json:"companyName" form:"companyName"`
	OfferLetterURL *string `json:"offerLetterUrl" form:"offerLetterUrl" binding:"omitempty,link"`
	Package        *int    `json:"package" form:"package" binding:"omitempty,min=0"`
	Role           *string `json:"role" form:"role"`
}

// ToModel converts the request into a Student. Blank optional strings are dropped.
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:           strings.TrimSpace(r.Name),
		RollNumber:     strings.TrimSpace(r.RollNumber),
		Branch:         trimmed(r.Branch),
		Year:           r.Year,
		Batch:          trimmed(r.Batch),
		Email:          trimmed(r.Email),
		Phone:          trimmed(r.Phone),
		PhotoURL:       trimmed(r.PhotoURL),
		Selected:       r.Selected,
		CompanyName:    trimmed(r.CompanyName),
		OfferLetterURL: trimmed(r.OfferLetterURL),
		Package:        r.Package,
		Role:           trimmed(r.Role),
	}
}

// UpdateStudentRequest is a partial update; omitted fields keep their value
type UpdateStudentRequest struct {
	Name           *string `json:"name" form:"name" binding:"omitempty,notblank"`
	RollNumber     *string `json:"rollNumber" form:"rollNumber" binding:"omitempty,notblank"`
	Branch         *string `json:"branch" form:"branch"`
	Year           *int    `json:"year" form:"year" binding:"omitempty,min=1,max=4"`
	Batch          *string `json:"batch" form:"batch"`
	Email          *string `json:"email" form:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" form:"phone" binding:"omitempty,phone"`
	PhotoURL       *string `json:"photoUrl" form:"photoUrl" binding:"omitempty,link"`
	Selected       *bool   `json:"selected" form:"selected"`
	CompanyName    *string `json:"companyName" form:"companyName"`
	OfferLetterURL *string `json:"offerLetterUrl" form:"offerLetterUrl" binding:"omitempty,link"`
	Package        *int    `json:"package" form:"package" binding:"omitempty,min=0"`
	Role           *string `json:"role" form:"role"`
}

// ToPatch converts the request into a StudentPatch
func (r *UpdateStudentRequest) ToPatch() models.StudentPatch {
	return models.StudentPatch{
		Name:           trimmedKeep(r.Name),
		RollNumber:     trimmedKeep(r.RollNumber),
		Branch:         trimmedKeep(r.Branch),
		Year:           r.Year,
		Batch:          trimmedKeep(r.Batch),
		Email:          trimmedKeep(r.Email),
		Phone:          trimmedKeep(r.Phone),
		PhotoURL:       trimmedKeep(r.PhotoURL),
		Selected:       r.Selected,
		CompanyName:    trimmedKeep(r.CompanyName),
		OfferLetterURL: trimmedKeep(r.OfferLetterURL),
		Package:        r.Package,
		Role:           trimmedKeep(r.Role),
	}
}

// StudentFilter narrows student listings and exports. "all" or empty means no filter.
type StudentFilter struct {
	Branch string `form:"branch"`
	Year   string `form:"year"`
	Batch  string `form:"batch"`
}

// trimmed returns nil for missing or blank values
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// trimmedKeep trims but keeps an explicit empty string so a patch can clear a field
func trimmedKeep(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
