package contact

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer defines the business logic for contact operations.
type Servicer interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context, q PageQuery) (ListResponse, error)
	Find(ctx context.Context, id int64) (Response, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo      Repository
	validator *Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator *Validator, log *slog.Logger) Servicer {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "contact_service"),
	}
}

// Create validates the request, maps it to a contact and persists it.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Response, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return Response{}, err
	}

	c := FromCreateRequest(req)
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return Response{}, ErrGroupNotFound
		}
		s.log.Error("failed to create contact", "name", req.Name, "error", err)
		return Response{}, fmt.Errorf("create contact: %w", err)
	}

	s.log.Info("contact created", "contact_id", c.ID)
	return ToResponse(c), nil
}

// List returns one page of the (optionally filtered and sorted) collection.
// An empty collection is a success with an empty page, not an error.
func (s *Service) List(ctx context.Context, q PageQuery) (ListResponse, error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.log.Error("failed to list contacts", "page", q.Page, "size", q.Size, "error", err)
		return ListResponse{}, fmt.Errorf("list contacts: %w", err)
	}

	page := NewPage(items, total, q)
	return ListResponse{
		Contacts:   ToResponses(page.Items),
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		Size:       page.Size,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}, nil
}

// Find returns a single contact by ID.
func (s *Service) Find(ctx context.Context, id int64) (Response, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, ErrNotFound
		}
		s.log.Error("failed to find contact", "contact_id", id, "error", err)
		return Response{}, fmt.Errorf("find contact: %w", err)
	}
	return ToResponse(c), nil
}

// Update applies a partial update to an existing contact.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Response, error) {
	if err := s.validator.ValidateUpdate(req); err != nil {
		return Response{}, err
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, ErrNotFound
		}
		return Response{}, fmt.Errorf("get contact for update: %w", err)
	}

	c.ApplyUpdate(req)

	if err := s.repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return Response{}, ErrNotFound
		case errors.Is(err, ErrGroupNotFound):
			return Response{}, ErrGroupNotFound
		}
		s.log.Error("failed to update contact", "contact_id", id, "error", err)
		return Response{}, fmt.Errorf("update contact: %w", err)
	}

	s.log.Info("contact updated", "contact_id", id)
	return ToResponse(c), nil
}

// Delete removes a contact permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete contact", "contact_id", id, "error", err)
		return fmt.Errorf("delete contact: %w", err)
	}

	s.log.Info("contact deleted", "contact_id", id)
	return nil
}
