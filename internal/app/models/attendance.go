package models

import "time"

// Attendance records a student marking presence at an event. EventID is
// optional; unlinked records are kept.
type Attendance struct {
	ID          int64     `json:"id" db:"id"`
	EventID     *int64    `json:"eventId" db:"event_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	RollNumber  string    `json:"rollNumber" db:"roll_number"`
	Branch      *string   `json:"branch" db:"branch"`
	Year        *int      `json:"year" db:"year"`
	MarkedAt    time.Time `json:"markedAt" db:"marked_at"`
}
