package models

import "time"

// Notification is a landing page notice. Category decides where it is shown.
type Notification struct {
	ID        int64                `json:"id" db:"id"`
	Category  NotificationCategory `json:"category" db:"category"`
	Title     string               `json:"title" db:"title"`
	Type      string               `json:"type" db:"type"` // URGENT, NEW, INFO, EVENT
	Link      *string              `json:"link" db:"link"`
	Icon      *string              `json:"icon,omitempty" db:"icon"`
	CreatedAt time.Time            `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time            `json:"updatedAt" db:"updated_at"`
}

// NotificationPatch carries the fields of a partial notification update
type NotificationPatch struct {
	Title *string
	Type  *string
	Link  *string
	Icon  *string
}

// Columns maps the set fields of the patch onto their database columns.
func (p NotificationPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "title", p.Title)
	setString(cols, "type", p.Type)
	setNullable(cols, "link", p.Link)
	setNullable(cols, "icon", p.Icon)
	return cols
}
