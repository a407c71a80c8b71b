package contact

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	domain "rolodex/internal/domain/contact"
	"rolodex/internal/domain/validation"
)

type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) Create(ctx context.Context, req domain.CreateRequest) (domain.Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Response), args.Error(1)
}

func (m *MockServicer) List(ctx context.Context, q domain.PageQuery) (domain.ListResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.ListResponse), args.Error(1)
}

func (m *MockServicer) Find(ctx context.Context, id int64) (domain.Response, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Response), args.Error(1)
}

func (m *MockServicer) Update(ctx context.Context, id int64, req domain.UpdateRequest) (domain.Response, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.Response), args.Error(1)
}

func (m *MockServicer) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestHandler(svc domain.Servicer) *Handler {
	return NewHandler(svc, slog.Default(), huma.Middlewares{})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_create(t *testing.T) {
	ctx := context.Background()

	t.Run("created response carries the assigned id", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("Create", ctx, domain.CreateRequest{Name: "Sam", Age: 25, Email: "sam@mail.com"}).
			Return(domain.Response{ID: 7, Name: "Sam", Age: 25, Email: "sam@mail.com"}, nil)

		h := newTestHandler(svc)
		out, err := h.create(ctx, &createInput{Body: createRequest{Name: "Sam", Age: 25, Email: "sam@mail.com"}})

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.Body.ID)
		svc.AssertExpectations(t)
	})

	t.Run("validation failure maps to 422 with per-field detail", func(t *testing.T) {
		verr := &validation.Error{Violations: validation.Violations{
			"email": "must be a valid email address",
			"age":   "must be between 0 and 150",
		}}
		svc := new(MockServicer)
		svc.On("Create", ctx, mock.Anything).Return(domain.Response{}, verr)

		h := newTestHandler(svc)
		_, err := h.create(ctx, &createInput{Body: createRequest{Name: "Sam", Age: -1, Email: "bad"}})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))

		var humaErr *huma.ErrorModel
		require.ErrorAs(t, err, &humaErr)
		require.Len(t, humaErr.Errors, 2)
		assert.Equal(t, "body.age", humaErr.Errors[0].Location)
		assert.Equal(t, "body.email", humaErr.Errors[1].Location)
	})

	t.Run("unknown group maps to 422 on group_id", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("Create", ctx, mock.Anything).Return(domain.Response{}, domain.ErrGroupNotFound)

		h := newTestHandler(svc)
		groupID := int64(99)
		_, err := h.create(ctx, &createInput{Body: createRequest{Name: "Sam", Age: 25, Email: "sam@mail.com", GroupID: &groupID}})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
	})
}

func TestHandler_find(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("Find", ctx, int64(1)).
			Return(domain.Response{ID: 1, Name: "Sam"}, nil)

		h := newTestHandler(svc)
		out, err := h.find(ctx, &findInput{ID: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Body.ID)
	})

	t.Run("absent id maps to 404", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("Find", ctx, int64(404)).Return(domain.Response{}, domain.ErrNotFound)

		h := newTestHandler(svc)
		_, err := h.find(ctx, &findInput{ID: 404})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestHandler_list(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the built query to the service", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("List", ctx, mock.MatchedBy(func(q domain.PageQuery) bool {
			return q.Page == 1 && q.Size == 10 &&
				q.Sort != nil && q.Sort.Field == "name" && q.Sort.Desc &&
				len(q.Filter) == 1 && q.Filter[0].Field == "name" && q.Filter[0].Op == domain.OpContains
		})).Return(domain.ListResponse{Contacts: []domain.Response{}, Page: 1, Size: 10}, nil)

		h := newTestHandler(svc)
		out, err := h.list(ctx, &listInput{Page: 1, Size: 10, Sort: "name", Order: "desc", Name: "sa"})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Body.Page)
		svc.AssertExpectations(t)
	})

	t.Run("unknown sort field fails at request time", func(t *testing.T) {
		svc := new(MockServicer)
		h := newTestHandler(svc)

		_, err := h.list(ctx, &listInput{Sort: "password"})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		svc.AssertNotCalled(t, "List")
	})

	t.Run("negative page fails at request time", func(t *testing.T) {
		svc := new(MockServicer)
		h := newTestHandler(svc)

		_, err := h.list(ctx, &listInput{Page: -1})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		svc.AssertNotCalled(t, "List")
	})
}

func TestHandler_update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial body forwarded as-is", func(t *testing.T) {
		name := "Samuel"
		svc := new(MockServicer)
		svc.On("Update", ctx, int64(1), domain.UpdateRequest{Name: &name}).
			Return(domain.Response{ID: 1, Name: "Samuel"}, nil)

		h := newTestHandler(svc)
		out, err := h.update(ctx, &updateInput{ID: 1, Body: updateRequest{Name: &name}})

		require.NoError(t, err)
		assert.Equal(t, "Samuel", out.Body.Name)
		svc.AssertExpectations(t)
	})

	t.Run("absent id maps to 404", func(t *testing.T) {
		name := "Samuel"
		svc := new(MockServicer)
		svc.On("Update", ctx, int64(404), mock.Anything).
			Return(domain.Response{}, domain.ErrNotFound)

		h := newTestHandler(svc)
		_, err := h.update(ctx, &updateInput{ID: 404, Body: updateRequest{Name: &name}})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestHandler_delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("Delete", ctx, int64(1)).Return(nil)

		h := newTestHandler(svc)
		_, err := h.delete(ctx, &deleteInput{ID: 1})

		assert.NoError(t, err)
	})

	t.Run("absent id maps to 404", func(t *testing.T) {
		svc := new(MockServicer)
		svc.On("Delete", ctx, int64(404)).Return(domain.ErrNotFound)

		h := newTestHandler(svc)
		_, err := h.delete(ctx, &deleteInput{ID: 404})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestMapError_passthrough(t *testing.T) {
	unexpected := errors.New("connection reset")
	assert.Equal(t, unexpected, mapError(unexpected))
}
