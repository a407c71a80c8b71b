package group

import (
	"rolodex/internal/domain/group"
)

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name        string `json:"name" doc:"Group name, unique" example:"friends"`
	Description string `json:"description,omitempty" doc:"Optional description"`
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Group ID"`
	Body updateRequest
}

type updateRequest struct {
	Name        *string `json:"name,omitempty" doc:"Group name, unique"`
	Description *string `json:"description,omitempty" doc:"Optional description"`
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"Group ID"`
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Group ID"`
}

type groupOutput struct {
	Body group.Response
}

type listResponse struct {
	Groups []group.Response `json:"groups"`
	Total  int              `json:"total"`
}

type listOutput struct {
	Body listResponse
}

type deleteOutput struct{}

func (r createRequest) toDomain() group.CreateRequest {
	return group.CreateRequest{
		Name:        r.Name,
		Description: r.Description,
	}
}

func (r updateRequest) toDomain() group.UpdateRequest {
	return group.UpdateRequest{
		Name:        r.Name,
		Description: r.Description,
	}
}
