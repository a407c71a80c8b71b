package contact

import (
	"context"
)

// Repository is the storage gateway for contacts. Each operation is atomic
// at single-record granularity. "Not found" is an expected negative result
// reported as ErrNotFound, never a fault.
type Repository interface {
	// Create persists a new contact and fills in its assigned ID and
	// storage-side timestamps.
	Create(ctx context.Context, c *Contact) error
	// Get returns one contact by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Contact, error)
	// List returns the rows of one page plus the post-filter total count.
	List(ctx context.Context, q PageQuery) ([]Contact, int64, error)
	// Update rewrites an existing contact, or returns ErrNotFound.
	Update(ctx context.Context, c *Contact) error
	// Delete removes a contact, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
