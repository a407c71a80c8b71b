package group

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "groups-list",
		Method:      http.MethodGet,
		Path:        "/api/groups",
		Summary:     "List groups",
		Tags:        []string{"groups"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "groups-create",
		Method:        http.MethodPost,
		Path:          "/api/groups",
		Summary:       "Create a group",
		Tags:          []string{"groups"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "groups-find",
		Method:      http.MethodGet,
		Path:        "/api/groups/{id}",
		Summary:     "Get a group",
		Tags:        []string{"groups"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "groups-update",
		Method:      http.MethodPut,
		Path:        "/api/groups/{id}",
		Summary:     "Update a group",
		Tags:        []string{"groups"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "groups-delete",
		Method:        http.MethodDelete,
		Path:          "/api/groups/{id}",
		Summary:       "Delete a group",
		Description:   "Fails with 409 while contacts still reference the group.",
		Tags:          []string{"groups"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
