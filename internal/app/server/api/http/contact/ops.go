package contact

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-list",
		Method:      http.MethodGet,
		Path:        "/api/contacts",
		Summary:     "List contacts",
		Description: "Returns one page of the contact collection. Filters narrow the set before paging applies; an empty collection is a 200 with an empty page.",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "contacts-create",
		Method:        http.MethodPost,
		Path:          "/api/contacts",
		Summary:       "Create a contact",
		Description:   "Creates a contact. Field violations are reported together as a 422 with one entry per field.",
		Tags:          []string{"contacts"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-find",
		Method:      http.MethodGet,
		Path:        "/api/contacts/{id}",
		Summary:     "Get a contact",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-update",
		Method:      http.MethodPut,
		Path:        "/api/contacts/{id}",
		Summary:     "Update a contact",
		Description: "Partial update: omitted fields keep their current value.",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "contacts-delete",
		Method:        http.MethodDelete,
		Path:          "/api/contacts/{id}",
		Summary:       "Delete a contact",
		Tags:          []string{"contacts"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
