package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"rolodex/internal/app/client/config"
	"rolodex/internal/domain/contact"
	"rolodex/internal/domain/group"
)

// App bundles the HTTP client and the local cache behind the operations
// the CLI commands call. Reads prefer the server and fall back to the
// cache when it is unreachable; writes require the server.
type App struct {
	cfg   *config.Config
	http  *HTTPClient
	cache *SQLiteCache
	log   *slog.Logger
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("init local cache: %w", err)
	}

	return &App{
		cfg:   cfg,
		http:  NewHTTPClient(cfg, log),
		cache: cache,
		log:   log.With("component", "client_app"),
	}, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

func (a *App) CreateContact(ctx context.Context, req contact.CreateRequest) (*contact.Response, error) {
	resp, err := a.http.CreateContact(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Put(*resp); err != nil {
		a.log.Warn("failed to cache created contact", "contact_id", resp.ID, "error", err)
	}
	return resp, nil
}

// GetContact reads from the server, falling back to the local cache when
// the server cannot be reached. A server-side 404 never falls back: the
// contact is gone and the stale cache entry is dropped.
func (a *App) GetContact(ctx context.Context, id int64) (*contact.Response, bool, error) {
	resp, err := a.http.GetContact(ctx, id)
	if err == nil {
		if cerr := a.cache.Put(*resp); cerr != nil {
			a.log.Warn("failed to cache contact", "contact_id", id, "error", cerr)
		}
		return resp, false, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == 404 {
			_ = a.cache.Delete(id)
		}
		return nil, false, err
	}

	cached, cacheErr := a.cache.Get(id)
	if cacheErr != nil {
		return nil, false, err
	}

	a.log.Debug("serving contact from local cache", "contact_id", id)
	return cached, true, nil
}

// ListContacts reads one page from the server; offline it lists whatever
// the cache holds (unpaged, since the cache has no total).
func (a *App) ListContacts(ctx context.Context, params ListParams) (*contact.ListResponse, bool, error) {
	resp, err := a.http.ListContacts(ctx, params)
	if err == nil {
		for _, c := range resp.Contacts {
			if cerr := a.cache.Put(c); cerr != nil {
				a.log.Warn("failed to cache contact", "contact_id", c.ID, "error", cerr)
			}
		}
		return resp, false, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return nil, false, err
	}

	cached, cacheErr := a.cache.List()
	if cacheErr != nil {
		return nil, false, err
	}

	a.log.Debug("serving contact list from local cache", "count", len(cached))
	return &contact.ListResponse{
		Contacts:   cached,
		TotalItems: int64(len(cached)),
		TotalPages: 1,
		Size:       len(cached),
	}, true, nil
}

func (a *App) UpdateContact(ctx context.Context, id int64, req contact.UpdateRequest) (*contact.Response, error) {
	resp, err := a.http.UpdateContact(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Put(*resp); err != nil {
		a.log.Warn("failed to cache updated contact", "contact_id", id, "error", err)
	}
	return resp, nil
}

func (a *App) DeleteContact(ctx context.Context, id int64) error {
	if err := a.http.DeleteContact(ctx, id); err != nil {
		return err
	}

	if err := a.cache.Delete(id); err != nil {
		a.log.Warn("failed to evict deleted contact", "contact_id", id, "error", err)
	}
	return nil
}

func (a *App) ListGroups(ctx context.Context) ([]group.Response, error) {
	return a.http.ListGroups(ctx)
}

func (a *App) CreateGroup(ctx context.Context, req group.CreateRequest) (*group.Response, error) {
	return a.http.CreateGroup(ctx, req)
}
