package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"rolodex/internal/domain/contact"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type ContactRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewContactRepository(pool *pgxpool.Pool, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		pool: pool,
		log:  log.With("component", "contact_repository"),
	}
}

// contactColumns whitelists the SQL column for every filterable or sortable
// field. The domain query builder already rejects unknown names; this map
// keeps identifiers out of caller hands entirely.
var contactColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"age":        "age",
	"email":      "email",
	"group_id":   "group_id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	const query = `
		INSERT INTO contacts (name, age, email, notes, group_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		c.Name, c.Age, c.Email, c.Notes, c.GroupID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return contact.ErrGroupNotFound
		}
		r.log.Error("failed to create contact", "name", c.Name, "error", err)
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*contact.Contact, error) {
	const query = `
		SELECT id, name, age, email, notes, group_id, created_at, updated_at
		FROM contacts
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrNotFound
		}
		r.log.Error("failed to get contact", "contact_id", id, "error", err)
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return c, nil
}

// List executes one page read: the filter narrows the set, the count runs
// over the narrowed set, then order/limit/offset bound the rows.
func (r *ContactRepository) List(ctx context.Context, q contact.PageQuery) ([]contact.Contact, int64, error) {
	where, args, err := buildWhere(q.Filter)
	if err != nil {
		return nil, 0, err
	}

	countQuery := "SELECT COUNT(*) FROM contacts" + where

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.log.Error("failed to count contacts", "error", err)
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	order, err := buildOrder(q.Sort)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT id, name, age, email, notes, group_id, created_at, updated_at FROM contacts%s%s LIMIT $%d OFFSET $%d",
		where, order, len(args)+1, len(args)+2,
	)
	args = append(args, q.Size, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list contacts", "error", err)
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	const query = `
		UPDATE contacts
		SET name = $1, age = $2, email = $3, notes = $4, group_id = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		c.Name, c.Age, c.Email, c.Notes, c.GroupID, c.ID,
	).Scan(&c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return contact.ErrGroupNotFound
		}
		r.log.Error("failed to update contact", "contact_id", c.ID, "error", err)
		return fmt.Errorf("update contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contacts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete contact", "contact_id", id, "error", err)
		return fmt.Errorf("delete contact: %w", err)
	}

	if result.RowsAffected() == 0 {
		return contact.ErrNotFound
	}

	return nil
}

// buildWhere renders filter conditions into a WHERE clause with positional
// arguments. Column names come only from the whitelist.
func buildWhere(conditions []contact.Condition) (string, []any, error) {
	if len(conditions) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(conditions))
	args := make([]any, 0, len(conditions))

	for _, cond := range conditions {
		col, ok := contactColumns[cond.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", contact.ErrBadFilter, cond.Field)
		}

		n := len(args) + 1
		switch cond.Op {
		case contact.OpEq:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", col, n))
		case contact.OpNe:
			clauses = append(clauses, fmt.Sprintf("%s <> $%d", col, n))
		case contact.OpLt:
			clauses = append(clauses, fmt.Sprintf("%s < $%d", col, n))
		case contact.OpLte:
			clauses = append(clauses, fmt.Sprintf("%s <= $%d", col, n))
		case contact.OpGt:
			clauses = append(clauses, fmt.Sprintf("%s > $%d", col, n))
		case contact.OpGte:
			clauses = append(clauses, fmt.Sprintf("%s >= $%d", col, n))
		case contact.OpContains:
			clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, n))
		default:
			return "", nil, fmt.Errorf("%w: operator %q", contact.ErrBadFilter, cond.Op)
		}
		args = append(args, cond.Value)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// buildOrder renders the sort into an ORDER BY clause. Natural order is id
// ascending; an explicit sort gets an id tiebreak so pages stay stable.
func buildOrder(sort *contact.Sort) (string, error) {
	if sort == nil {
		return " ORDER BY id ASC", nil
	}

	col, ok := contactColumns[sort.Field]
	if !ok {
		return "", fmt.Errorf("%w: %q", contact.ErrBadSort, sort.Field)
	}

	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id ASC", col, dir), nil
}

func scanContacts(rows pgx.Rows) ([]contact.Contact, error) {
	var contacts []contact.Contact

	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}

	return contacts, rows.Err()
}

func scanContact(row pgx.Row) (*contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(
		&c.ID, &c.Name, &c.Age, &c.Email, &c.Notes,
		&c.GroupID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
