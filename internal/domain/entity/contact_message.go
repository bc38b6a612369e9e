package entity

import "time"

// ContactMessage represents a message submitted through the public contact form.
// It carries no derived fields; the subsystem is plain CRUD.
type ContactMessage struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
