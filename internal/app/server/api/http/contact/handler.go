package contact

import (
	"context"
	"errors"
	"sort"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"rolodex/internal/domain/contact"
	"rolodex/internal/domain/validation"
)

type Handler struct {
	service    contact.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service contact.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
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

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	q, err := buildQuery(input)
	if err != nil {
		return nil, mapError(err)
	}

	page, err := h.service.List(ctx, q)
	if err != nil {
		return nil, mapError(err)
	}

	return &listOutput{Body: page}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*contactOutput, error) {
	resp, err := h.service.Create(ctx, input.Body.toDomain())
	if err != nil {
		return nil, mapError(err)
	}

	return &contactOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*contactOutput, error) {
	resp, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &contactOutput{Body: resp}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*contactOutput, error) {
	resp, err := h.service.Update(ctx, input.ID, input.Body.toDomain())
	if err != nil {
		return nil, mapError(err)
	}

	return &contactOutput{Body: resp}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &deleteOutput{}, nil
}

// buildQuery translates the raw list parameters into a page query. Unknown
// sort or filter fields fail here, at request time.
func buildQuery(input *listInput) (contact.PageQuery, error) {
	q, err := contact.NewPageQuery(input.Page, input.Size)
	if err != nil {
		return contact.PageQuery{}, err
	}

	if input.Sort != "" {
		if err := q.WithSort(input.Sort, input.Order == "desc"); err != nil {
			return contact.PageQuery{}, err
		}
	}

	if input.Name != "" {
		if err := q.WithFilter("name", contact.OpContains, input.Name); err != nil {
			return contact.PageQuery{}, err
		}
	}
	if input.Email != "" {
		if err := q.WithFilter("email", contact.OpEq, input.Email); err != nil {
			return contact.PageQuery{}, err
		}
	}
	if input.MinAge != nil {
		if err := q.WithFilter("age", contact.OpGte, *input.MinAge); err != nil {
			return contact.PageQuery{}, err
		}
	}
	if input.MaxAge != nil {
		if err := q.WithFilter("age", contact.OpLte, *input.MaxAge); err != nil {
			return contact.PageQuery{}, err
		}
	}
	if input.GroupID != nil {
		if err := q.WithFilter("group_id", contact.OpEq, *input.GroupID); err != nil {
			return contact.PageQuery{}, err
		}
	}

	return q, nil
}

// mapError converts domain outcomes into transport statuses. Validation
// and not-found are expected negative results; anything else passes
// through and surfaces as a generic server failure without detail.
func mapError(err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return validationError(verr)
	case errors.Is(err, contact.ErrNotFound):
		return huma.Error404NotFound("contact not found")
	case errors.Is(err, contact.ErrGroupNotFound):
		return huma.Error422UnprocessableEntity("request validation failed",
			&huma.ErrorDetail{Message: "group does not exist", Location: "body.group_id"})
	case errors.Is(err, contact.ErrBadPage),
		errors.Is(err, contact.ErrBadSort),
		errors.Is(err, contact.ErrBadFilter):
		return huma.Error422UnprocessableEntity(err.Error())
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
