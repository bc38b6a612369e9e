// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// ContactMessage, along with their domain-specific errors.
package entity

import "time"

// Article represents a blog article entity in the system.
// Content is stored as sanitized HTML restricted to the allow-listed tag set;
// Slug is derived from Title at creation time and never recomputed afterwards,
// so public URLs stay stable across title edits.
type Article struct {
	ID              string
	Title           string
	Category        string
	Content         string
	Slug            string
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
