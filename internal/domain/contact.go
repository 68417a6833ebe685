package domain

import "time"

// ContactMessage is a submission from the public contact form. Reference is
// the public identifier handed back to the sender.
type ContactMessage struct {
	ID        int64
	Reference string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
