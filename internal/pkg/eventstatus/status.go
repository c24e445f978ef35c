// Package eventstatus derives an event's status from its date range.
package eventstatus

import "time"

// Status is the derived lifecycle state of an event
type Status string

const (
	Upcoming Status = "upcoming"
	Ongoing  Status = "ongoing"
	Past     Status = "past"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case Upcoming, Ongoing, Past:
		return true
	}
	return false
}

// Classify returns the status of an event spanning [start, end] at now.
// Missing dates classify as Upcoming.
func Classify(now, start, end time.Time) Status {
	if start.IsZero() || end.IsZero() {
		return Upcoming
	}
	if !now.Before(start) && !now.After(end) {
		return Ongoing
	}
	if end.Before(now) {
		return Past
	}
	return Upcoming
}

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock is the wall clock in UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}
