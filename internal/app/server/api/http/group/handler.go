package group

import (
	"context"
	"errors"
	"sort"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"rolodex/internal/domain/group"
	"rolodex/internal/domain/validation"
)

type Handler struct {
	service    group.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service group.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	groups, err := h.service.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if groups == nil {
		groups = []group.Response{}
	}

	return &listOutput{
		Body: listResponse{
			Groups: groups,
			Total:  len(groups),
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*groupOutput, error) {
	resp, err := h.service.Create(ctx, input.Body.toDomain())
	if err != nil {
		return nil, mapError(err)
	}

	return &groupOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*groupOutput, error) {
	resp, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &groupOutput{Body: resp}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*groupOutput, error) {
	resp, err := h.service.Update(ctx, input.ID, input.Body.toDomain())
	if err != nil {
		return nil, mapError(err)
	}

	return &groupOutput{Body: resp}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &deleteOutput{}, nil
}

func mapError(err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return validationError(verr)
	case errors.Is(err, group.ErrNotFound):
		return huma.Error404NotFound("group not found")
	case errors.Is(err, group.ErrInUse):
		return huma.Error409Conflict("group is still referenced by contacts")
	case errors.Is(err, group.ErrDuplicateName):
		return huma.Error409Conflict("group name already exists")
	}
	return err
}

func validationError(verr *validation.Error) error {
	fields := make([]string, 0, len(verr.Violations))
	for field := range verr.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]error, 0, len(fields))
	for _, field := range fields {
		details = append(details, &huma.ErrorDetail{
			Message:  verr.Violations[field],
			Location: "body." + field,
		})
	}
	return huma.Error422UnprocessableEntity("request validation failed", details...)
}
