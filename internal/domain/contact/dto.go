package contact

import "time"

// CreateRequest carries only the fields a caller may supply when creating
// a contact. There is deliberately no ID field: the identifier is assigned
// by storage.
type CreateRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email"`
	Notes   string `json:"notes,omitempty"`
	GroupID *int64 `json:"group_id,omitempty"`
}

// UpdateRequest is a partial update. Nil fields are left untouched on the
// target record.
type UpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Age     *int    `json:"age,omitempty"`
	Email   *string `json:"email,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	GroupID *int64  `json:"group_id,omitempty"`
}

// Response is the caller-facing projection of a Contact. Once assigned,
// the identifier is always present.
type Response struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	GroupID   *int64    `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListResponse is a bounded slice of the collection plus page metadata.
type ListResponse struct {
	Contacts   []Response `json:"contacts"`
	TotalItems int64      `json:"total_items"`
	TotalPages int        `json:"total_pages"`
	Page       int        `json:"page"`
	Size       int        `json:"size"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
}

// FromCreateRequest maps a create request onto a fresh Contact. Purely
// structural; validation happens before this in the service.
func FromCreateRequest(req CreateRequest) *Contact {
	return &Contact{
		Name:    req.Name,
		Age:     req.Age,
		Email:   req.Email,
		Notes:   req.Notes,
		GroupID: req.GroupID,
	}
}

// ApplyUpdate copies the supplied fields of a partial update onto the
// contact. Absent (nil) fields never touch the target.
func (c *Contact) ApplyUpdate(req UpdateRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Age != nil {
		c.Age = *req.Age
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.GroupID != nil {
		c.GroupID = req.GroupID
	}
}

// ToResponse projects a Contact into its external shape.
func ToResponse(c *Contact) Response {
	return Response{
		ID:        c.ID,
		Name:      c.Name,
		Age:       c.Age,
		Email:     c.Email,
		Notes:     c.Notes,
		GroupID:   c.GroupID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToResponses(contacts []Contact) []Response {
	items := make([]Response, len(contacts))
	for i := range contacts {
		items[i] = ToResponse(&contacts[i])
	}
	return items
}
