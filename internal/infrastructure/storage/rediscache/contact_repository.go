package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"rolodex/internal/domain/contact"
)

// ContactRepository decorates a contact repository with a read-through
// cache for Get. Reads check the cache first and fall back to the inner
// repository on a miss; writes invalidate. Cache failures degrade to the
// inner repository rather than surfacing to the caller.
type ContactRepository struct {
	kv        KV
	next      contact.Repository
	ttl       time.Duration
	namespace string
	log       *slog.Logger
}

func NewContactRepository(kv KV, next contact.Repository, ttl time.Duration, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		kv:        kv,
		next:      next,
		ttl:       ttl,
		namespace: "rolodex",
		log:       log.With("component", "contact_cache"),
	}
}

func (r *ContactRepository) key(id int64) string {
	return fmt.Sprintf("%s:contacts:%d", r.namespace, id)
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	// Nothing cached for an unassigned id.
	return r.next.Create(ctx, c)
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*contact.Contact, error) {
	key := r.key(id)

	if value, err := r.kv.Get(ctx, key); err == nil {
		var c contact.Contact
		if err := json.Unmarshal(value, &c); err == nil {
			return &c, nil
		}
		// Unreadable entry: drop it and fall through to storage.
		_ = r.kv.Del(ctx, key)
	} else if !errors.Is(err, ErrMiss) {
		r.log.Warn("cache read failed", "key", key, "error", err)
	}

	c, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if value, err := json.Marshal(c); err == nil {
		if err := r.kv.Set(ctx, key, value, r.ttl); err != nil {
			r.log.Warn("cache populate failed", "key", key, "error", err)
		}
	}

	return c, nil
}

// List always goes to storage; page metadata must reflect the collection
// at query time.
func (r *ContactRepository) List(ctx context.Context, q contact.PageQuery) ([]contact.Contact, int64, error) {
	return r.next.List(ctx, q)
}

func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	if err := r.next.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.ID)
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *ContactRepository) invalidate(ctx context.Context, id int64) {
	if err := r.kv.Del(ctx, r.key(id)); err != nil {
		r.log.Warn("cache invalidate failed", "contact_id", id, "error", err)
	}
}
