package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"rolodex/internal/domain/group"
)

type GroupRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewGroupRepository(pool *pgxpool.Pool, log *slog.Logger) *GroupRepository {
	return &GroupRepository{
		pool: pool,
		log:  log.With("component", "group_repository"),
	}
}

func (r *GroupRepository) Create(ctx context.Context, g *group.Group) error {
	const query = `
		INSERT INTO groups (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, g.Name, g.Description).
		Scan(&g.ID, &g.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return group.ErrDuplicateName
		}
		r.log.Error("failed to create group", "name", g.Name, "error", err)
		return fmt.Errorf("create group: %w", err)
	}

	return nil
}

func (r *GroupRepository) Get(ctx context.Context, id int64) (*group.Group, error) {
	const query = `
		SELECT id, name, description, created_at
		FROM groups
		WHERE id = $1`

	var g group.Group
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, group.ErrNotFound
		}
		r.log.Error("failed to get group", "group_id", id, "error", err)
		return nil, fmt.Errorf("get group: %w", err)
	}

	return &g, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]group.Group, error) {
	const query = `
		SELECT id, name, description, created_at
		FROM groups
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list groups", "error", err)
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []group.Group
	for rows.Next() {
		var g group.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r *GroupRepository) Update(ctx context.Context, g *group.Group) error {
	const query = `
		UPDATE groups
		SET name = $1, description = $2
		WHERE id = $3`

	result, err := r.pool.Exec(ctx, query, g.Name, g.Description, g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return group.ErrDuplicateName
		}
		r.log.Error("failed to update group", "group_id", g.ID, "error", err)
		return fmt.Errorf("update group: %w", err)
	}

	if result.RowsAffected() == 0 {
		return group.ErrNotFound
	}

	return nil
}

func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM groups WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		// contacts.group_id is ON DELETE RESTRICT
		if isForeignKeyViolation(err) {
			return group.ErrInUse
		}
		r.log.Error("failed to delete group", "group_id", id, "error", err)
		return fmt.Errorf("delete group: %w", err)
	}

	if result.RowsAffected() == 0 {
		return group.ErrNotFound
	}

	return nil
}
