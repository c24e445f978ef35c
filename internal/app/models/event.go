package models

import "time"

// Event is a placement drive or campus event. Its status is derived from the
// date range at read time and never stored.
type Event struct {
	ID               int64     `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	Company          string    `json:"company" db:"company"`
	StartDate        time.Time `json:"startDate" db:"start_date"`
	EndDate          time.Time `json:"endDate" db:"end_date"`
	NotificationLink *string   `json:"notificationLink" db:"notification_link"`
	AttachmentURL    *string   `json:"attachmentUrl" db:"attachment_url"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// EventPatch carries the fields of a partial event update
type EventPatch struct {
	Title            *string
	Description      *string
	Company          *string
	StartDate        *time.Time
	EndDate          *time.Time
	NotificationLink *string
	AttachmentURL    *string
}

// Columns maps the set fields of the patch onto their database columns.
func (p EventPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "title", p.Title)
	setString(cols, "description", p.Description)
	setString(cols, "company", p.Company)
	if p.StartDate != nil {
		cols["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		cols["end_date"] = *p.EndDate
	}
	setNullable(cols, "notification_link", p.NotificationLink)
	setNullable(cols, "attachment_url", p.AttachmentURL)
	return cols
}

// Apply copies the set fields of the patch onto e
func (p EventPatch) Apply(e *Event) {
	applyString(&e.Title, p.Title)
	applyString(&e.Description, p.Description)
	applyString(&e.Company, p.Company)
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	applyOptional(&e.NotificationLink, p.NotificationLink)
	applyOptional(&e.AttachmentURL, p.AttachmentURL)
}
