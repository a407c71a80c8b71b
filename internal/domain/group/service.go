package group

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context) ([]Response, error)
	Find(ctx context.Context, id int64) (Response, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "group_service"),
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	g := &Group{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, g); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return Response{}, ErrDuplicateName
		}
		s.log.Error("failed to create group", "name", req.Name, "error", err)
		return Response{}, fmt.Errorf("create group: %w", err)
	}

	s.log.Info("group created", "group_id", g.ID, "name", g.Name)
	return ToResponse(g), nil
}

func (s *Service) List(ctx context.Context) ([]Response, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list groups", "error", err)
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return ToResponses(groups), nil
}

func (s *Service) Find(ctx context.Context, id int64) (Response, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, ErrNotFound
		}
		s.log.Error("failed to find group", "group_id", id, "error", err)
		return Response{}, fmt.Errorf("find group: %w", err)
	}
	return ToResponse(g), nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	g, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, ErrNotFound
		}
		return Response{}, fmt.Errorf("get group for update: %w", err)
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Description != nil {
		g.Description = *req.Description
	}

	if err := s.repo.Update(ctx, g); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return Response{}, ErrNotFound
		case errors.Is(err, ErrDuplicateName):
			return Response{}, ErrDuplicateName
		}
		s.log.Error("failed to update group", "group_id", id, "error", err)
		return Response{}, fmt.Errorf("update group: %w", err)
	}

	s.log.Info("group updated", "group_id", id)
	return ToResponse(g), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return ErrNotFound
		case errors.Is(err, ErrInUse):
			return ErrInUse
		}
		s.log.Error("failed to delete group", "group_id", id, "error", err)
		return fmt.Errorf("delete group: %w", err)
	}

	s.log.Info("group deleted", "group_id", id)
	return nil
}
