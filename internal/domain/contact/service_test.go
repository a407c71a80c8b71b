package contact

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"rolodex/internal/domain/validation"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, c *Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, q PageQuery) ([]Contact, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, c *Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) Servicer {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, NewValidator(), log)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns storage identity", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*contact.Contact")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*Contact).ID = 7
			}).
			Return(nil)

		svc := newTestService(repo)
		resp, err := svc.Create(ctx, CreateRequest{Name: "Sam", Age: 25, Email: "sam@mail.com"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Sam", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("invalid request never reaches storage", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		_, err := svc.Create(ctx, CreateRequest{Name: "", Age: -1, Email: "bad"})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("missing group surfaces as sentinel", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.Anything).Return(ErrGroupNotFound)

		svc := newTestService(repo)
		groupID := int64(99)
		_, err := svc.Create(ctx, CreateRequest{Name: "Sam", Age: 25, Email: "sam@mail.com", GroupID: &groupID})

		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

		svc := newTestService(repo)
		_, err := svc.Create(ctx, CreateRequest{Name: "Sam", Age: 25, Email: "sam@mail.com"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create contact")
	})
}

func TestService_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(1)).
			Return(&Contact{ID: 1, Name: "Sam", Age: 25, Email: "sam@mail.com"}, nil)

		svc := newTestService(repo)
		resp, err := svc.Find(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("absent id is the expected negative", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(404)).Return(nil, ErrNotFound)

		svc := newTestService(repo)
		_, err := svc.Find(ctx, 404)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("page metadata from the post-filter total", func(t *testing.T) {
		q := PageQuery{Page: 0, Size: 2}
		repo := new(MockRepository)
		repo.On("List", ctx, q).
			Return([]Contact{{ID: 1, Name: "Sam"}, {ID: 2, Name: "Ann"}}, int64(5), nil)

		svc := newTestService(repo)
		resp, err := svc.List(ctx, q)

		require.NoError(t, err)
		assert.Len(t, resp.Contacts, 2)
		assert.Equal(t, int64(5), resp.TotalItems)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.False(t, resp.HasPrev)
	})

	t.Run("empty collection is a success", func(t *testing.T) {
		q := PageQuery{Page: 0, Size: 20}
		repo := new(MockRepository)
		repo.On("List", ctx, q).Return([]Contact(nil), int64(0), nil)

		svc := newTestService(repo)
		resp, err := svc.List(ctx, q)

		require.NoError(t, err)
		assert.NotNil(t, resp.Contacts)
		assert.Empty(t, resp.Contacts)
		assert.Equal(t, int64(0), resp.TotalItems)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("absent fields keep current values", func(t *testing.T) {
		existing := &Contact{ID: 1, Name: "Sam", Age: 25, Email: "sam@mail.com", Notes: "keep me"}
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(1)).Return(existing, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(c *Contact) bool {
			return c.Name == "Samuel" && c.Age == 25 && c.Notes == "keep me"
		})).Return(nil)

		svc := newTestService(repo)
		name := "Samuel"
		resp, err := svc.Update(ctx, 1, UpdateRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Samuel", resp.Name)
		assert.Equal(t, 25, resp.Age)
		repo.AssertExpectations(t)
	})

	t.Run("invalid field never reaches storage", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		email := "broken"
		_, err := svc.Update(ctx, 1, UpdateRequest{Email: &email})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Get")
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(404)).Return(nil, ErrNotFound)

		svc := newTestService(repo)
		name := "Sam"
		_, err := svc.Update(ctx, 404, UpdateRequest{Name: &name})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removed", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, int64(1)).Return(nil)

		svc := newTestService(repo)
		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, int64(404)).Return(ErrNotFound)

		svc := newTestService(repo)
		assert.ErrorIs(t, svc.Delete(ctx, 404), ErrNotFound)
	})
}
