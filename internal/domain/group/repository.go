package group

import (
	"context"
)

// Repository is the storage gateway for groups. Groups are a small set, so
// the collection read is unpaged.
type Repository interface {
	Create(ctx context.Context, g *Group) error
	Get(ctx context.Context, id int64) (*Group, error)
	List(ctx context.Context) ([]Group, error)
	Update(ctx context.Context, g *Group) error
	// Delete removes a group. A group still referenced by contacts is
	// reported as ErrInUse.
	Delete(ctx context.Context, id int64) error
}
