package domain

import "time"

// Post is a published blog entry.
type Post struct {
	ID         int64
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CoverImage string
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
