package dto

import (
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
)

// MarkAttendanceRequest is submitted by a student at an event
type MarkAttendanceRequest struct {
	EventID     *int64  `json:"eventId" binding:"omitempty,min=1" example:"3"`
	StudentName string  `json:"studentName" binding:"required,notblank" example:"Ada Lovelace"`
	RollNumber  string  `json:"rollNumber" binding:"required,notblank" example:"20CS001"`
	Branch      *string `json:"branch" example:"CSE"`
	Year        *int    `json:"year" binding:"omitempty,min=1,max=4" example:"3"`
}

// ToModel converts the request into an Attendance record
func (r *MarkAttendanceRequest) ToModel() *models.Attendance {
	return &models.Attendance{
		EventID:     r.EventID,
		StudentName: strings.TrimSpace(r.StudentName),
		RollNumber:  strings.TrimSpace(r.RollNumber),
		Branch:      trimmed(r.Branch),
		Year:        r.Year,
	}
}
