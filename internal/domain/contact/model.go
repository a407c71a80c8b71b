package contact

import "time"

// Contact is a directory entry. The ID is assigned by storage on create
// and immutable afterwards. GroupID is an optional reference to a group;
// contacts never hold the group itself, only the key.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	GroupID   *int64    `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
