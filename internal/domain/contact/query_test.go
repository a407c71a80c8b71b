package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageQuery(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
		wantErr  error
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 0, wantSize: DefaultPageSize},
		{name: "explicit size", page: 2, size: 5, wantPage: 2, wantSize: 5},
		{name: "oversized clamps to max", page: 0, size: MaxPageSize + 50, wantPage: 0, wantSize: MaxPageSize},
		{name: "negative page rejected", page: -1, size: 10, wantErr: ErrBadPage},
		{name: "negative size rejected", page: 0, size: -5, wantErr: ErrBadPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewPageQuery(tt.page, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantSize, q.Size)
		})
	}
}

func TestPageQuery_WithSort(t *testing.T) {
	t.Run("whitelisted field accepted", func(t *testing.T) {
		q, err := NewPageQuery(0, 10)
		require.NoError(t, err)

		require.NoError(t, q.WithSort("name", true))
		require.NotNil(t, q.Sort)
		assert.Equal(t, "name", q.Sort.Field)
		assert.True(t, q.Sort.Desc)
	})

	t.Run("unknown field rejected up front", func(t *testing.T) {
		q, err := NewPageQuery(0, 10)
		require.NoError(t, err)

		err = q.WithSort("password", false)
		assert.ErrorIs(t, err, ErrBadSort)
		assert.Nil(t, q.Sort)
	})
}

func TestPageQuery_WithFilter(t *testing.T) {
	t.Run("supported field and operator", func(t *testing.T) {
		q, err := NewPageQuery(0, 10)
		require.NoError(t, err)

		require.NoError(t, q.WithFilter("name", OpContains, "sa"))
		require.NoError(t, q.WithFilter("age", OpGte, 18))
		assert.Len(t, q.Filter, 2)
		assert.Equal(t, Condition{Field: "name", Op: OpContains, Value: "sa"}, q.Filter[0])
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		q, err := NewPageQuery(0, 10)
		require.NoError(t, err)

		err = q.WithFilter("ssn", OpEq, "x")
		assert.ErrorIs(t, err, ErrBadFilter)
	})

	t.Run("operator not supported by the field", func(t *testing.T) {
		q, err := NewPageQuery(0, 10)
		require.NoError(t, err)

		err = q.WithFilter("age", OpContains, "2")
		assert.ErrorIs(t, err, ErrBadFilter)
		assert.Empty(t, q.Filter)
	})
}

func TestPageQuery_Offset(t *testing.T) {
	q := PageQuery{Page: 3, Size: 20}
	assert.Equal(t, 60, q.Offset())
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name           string
		items          []Contact
		total          int64
		page           int
		size           int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{
			name:           "first of many pages",
			items:          make([]Contact, 10),
			total:          25,
			page:           0,
			size:           10,
			wantTotalPages: 3,
			wantHasNext:    true,
			wantHasPrev:    false,
		},
		{
			name:           "middle page",
			items:          make([]Contact, 10),
			total:          25,
			page:           1,
			size:           10,
			wantTotalPages: 3,
			wantHasNext:    true,
			wantHasPrev:    true,
		},
		{
			name:           "last short page",
			items:          make([]Contact, 5),
			total:          25,
			page:           2,
			size:           10,
			wantTotalPages: 3,
			wantHasNext:    false,
			wantHasPrev:    true,
		},
		{
			name:           "empty collection",
			items:          nil,
			total:          0,
			page:           0,
			size:           10,
			wantTotalPages: 0,
			wantHasNext:    false,
			wantHasPrev:    false,
		},
		{
			name:           "page past the end",
			items:          nil,
			total:          5,
			page:           10,
			size:           10,
			wantTotalPages: 1,
			wantHasNext:    false,
			wantHasPrev:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.items, tt.total, PageQuery{Page: tt.page, Size: tt.size})

			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNext)
			assert.Equal(t, tt.wantHasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.NotNil(t, p.Items, "an empty page still carries an empty slice")
		})
	}
}
