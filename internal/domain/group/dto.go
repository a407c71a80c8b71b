package group

import (
	"strings"
	"time"

	"rolodex/internal/domain/validation"
)

const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500
)

type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Response struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r CreateRequest) Validate() error {
	violations := validation.Violations{}
	checkName(violations, r.Name)
	checkDescription(violations, r.Description)
	return violations.Err()
}

func (r UpdateRequest) Validate() error {
	violations := validation.Violations{}
	if r.Name != nil {
		checkName(violations, *r.Name)
	}
	if r.Description != nil {
		checkDescription(violations, *r.Description)
	}
	return violations.Err()
}

func checkName(violations validation.Violations, name string) {
	if strings.TrimSpace(name) == "" {
		violations.Add("name", "must not be blank")
		return
	}
	if len(name) > MaxNameLen {
		violations.Add("name", "must be at most %d characters", MaxNameLen)
	}
}

func checkDescription(violations validation.Violations, description string) {
	if len(description) > MaxDescriptionLen {
		violations.Add("description", "must be at most %d characters", MaxDescriptionLen)
	}
}

func ToResponse(g *Group) Response {
	return Response{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
	}
}

func ToResponses(groups []Group) []Response {
	items := make([]Response, len(groups))
	for i := range groups {
		items[i] = ToResponse(&groups[i])
	}
	return items
}
