package contact

import (
	"rolodex/internal/domain/contact"
)

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name    string `json:"name" doc:"Full name" example:"Sam"`
	Age     int    `json:"age" doc:"Age in years" example:"25"`
	Email   string `json:"email" doc:"Email address" example:"sam@mail.com"`
	Notes   string `json:"notes,omitempty" doc:"Free-form notes"`
	GroupID *int64 `json:"group_id,omitempty" doc:"Group the contact belongs to"`
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Contact ID"`
	Body updateRequest
}

// updateRequest is a partial update: omitted fields keep their value.
type updateRequest struct {
	Name    *string `json:"name,omitempty" doc:"Full name"`
	Age     *int    `json:"age,omitempty" doc:"Age in years"`
	Email   *string `json:"email,omitempty" doc:"Email address"`
	Notes   *string `json:"notes,omitempty" doc:"Free-form notes"`
	GroupID *int64  `json:"group_id,omitempty" doc:"Group the contact belongs to"`
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"Contact ID"`
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Contact ID"`
}

type listInput struct {
	Page    int    `query:"page" default:"0" doc:"Zero-based page index"`
	Size    int    `query:"size" doc:"Page size, capped at 100; 0 means default (20)"`
	Sort    string `query:"sort" doc:"Sort field: one of id, name, age, email, created_at, updated_at"`
	Order   string `query:"order" enum:"asc,desc" default:"asc" doc:"Sort direction"`
	Name    string `query:"name" doc:"Filter: name contains (case-insensitive)"`
	Email   string `query:"email" doc:"Filter: exact email"`
	MinAge  *int   `query:"min_age" doc:"Filter: age greater or equal"`
	MaxAge  *int   `query:"max_age" doc:"Filter: age less or equal"`
	GroupID *int64 `query:"group_id" doc:"Filter: exact group"`
}

type contactOutput struct {
	Body contact.Response
}

type listOutput struct {
	Body contact.ListResponse
}

type deleteOutput struct{}

func (r createRequest) toDomain() contact.CreateRequest {
	return contact.CreateRequest{
		Name:    r.Name,
		Age:     r.Age,
		Email:   r.Email,
		Notes:   r.Notes,
		GroupID: r.GroupID,
	}
}

func (r updateRequest) toDomain() contact.UpdateRequest {
	return contact.UpdateRequest{
		Name:    r.Name,
		Age:     r.Age,
		Email:   r.Email,
		Notes:   r.Notes,
		GroupID: r.GroupID,
	}
}
