package message

import "time"

// Message is a contact-form submission. Created anonymously; only staff can
// read or delete them.
type Message struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Topic   string    `json:"topic"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}
