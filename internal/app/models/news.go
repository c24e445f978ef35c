package models

import "time"

// News is a short announcement shown on the landing page
type News struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewsPatch carries the fields of a partial news update
type NewsPatch struct {
	Title   *string
	Content *string
}

// Columns maps the set fields of the patch onto their database columns.
func (p NewsPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "title", p.Title)
	setString(cols, "content", p.Content)
	return cols
}
