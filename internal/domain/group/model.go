package group

import "time"

// Group is a named bucket contacts may reference by key. The group side
// holds no contact list; ownership is expressed only through the foreign
// key on the contact.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
