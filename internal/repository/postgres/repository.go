package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"magicvilla/internal/repository"
)

// Repository is the PostgreSQL implementation of repository.Repository[T].
// It uses database/sql with parameterized queries built from a Table and
// contains no business logic. It is safe for concurrent use.
type Repository[T any] struct {
	db    *sql.DB
	table repository.Table[T]
}

// NewRepository creates a repository for the entity described by table.
func NewRepository[T any](db *sql.DB, table repository.Table[T]) *Repository[T] {
	return &Repository[T]{db: db, table: table}
}

// GetAll returns every row matching filter, in store order.
func (r *Repository[T]) GetAll(ctx context.Context, filter *repository.Filter) ([]T, error) {
	q, args := r.selectQuery(filter, false)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, repository.NewPersistenceError("select", r.table.Name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var e T
		if err := rows.Scan(r.table.Fields(&e)...); err != nil {
			return nil, repository.NewPersistenceError("select", r.table.Name, err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.NewPersistenceError("select", r.table.Name, err)
	}
	return items, nil
}

// Get returns the first row matching filter, or nil if none match.
func (r *Repository[T]) Get(ctx context.Context, filter *repository.Filter, opts ...repository.GetOption) (*T, error) {
	o := repository.ResolveGetOptions(opts...)

	q, args := r.selectQuery(filter, true)
	var e T
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(r.table.Fields(&e)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.NewPersistenceError("select", r.table.Name, err)
	}
	if !o.Tracked {
		return &e, nil
	}
	return repository.Attach(repository.TrackerFrom(ctx), r.table.Name, r.table.KeyOf(&e), &e), nil
}

// Create inserts entity in its own transaction and scans the stored row back
// into it.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	cols := r.table.Columns
	vals := r.table.Values(entity)
	if !r.table.GeneratedKey {
		cols = append([]string{r.table.Key}, cols...)
		vals = append([]any{r.table.KeyOf(entity)}, vals...)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.table.Name,
		strings.Join(cols, ", "),
		placeholders(1, len(cols)),
		strings.Join(r.table.SelectColumns(), ", "),
	)

	return r.inTx(ctx, "insert", func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, q, vals...).Scan(r.table.Fields(entity)...)
	})
}

// Update replaces every non-key column of the row sharing entity's key.
// A missing row is reported as a PersistenceError of kind KindNoRows.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	sets := make([]string, len(r.table.Columns))
	for i, c := range r.table.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	key := r.table.KeyOf(entity)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		r.table.Name, strings.Join(sets, ", "), r.table.Key, len(r.table.Columns)+1)
	args := append(r.table.Values(entity), key)

	err := r.inTx(ctx, "update", func(tx *sql.Tx) error {
		return execOne(ctx, tx, q, args...)
	})
	if err != nil {
		return err
	}
	repository.Replace(repository.TrackerFrom(ctx), r.table.Name, key, entity)
	return nil
}

// Delete removes the row sharing entity's key.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	key := r.table.KeyOf(entity)
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.table.Name, r.table.Key)

	err := r.inTx(ctx, "delete", func(tx *sql.Tx) error {
		return execOne(ctx, tx, q, key)
	})
	if err != nil {
		return err
	}
	repository.TrackerFrom(ctx).Detach(r.table.Name, key)
	return nil
}

func (r *Repository[T]) selectQuery(filter *repository.Filter, single bool) (string, []any) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(r.table.SelectColumns(), ", "), r.table.Name)
	if clause := filter.Clause(); clause != "" {
		b.WriteString(" WHERE ")
		b.WriteString(repository.Rebind(clause, 1))
	}
	if single {
		b.WriteString(" LIMIT 1")
	}
	return b.String(), filter.Args()
}

// inTx runs fn in a transaction and commits, so every write is all-or-nothing
// and visible once the call returns.
func (r *Repository[T]) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.NewPersistenceError(op, r.table.Name, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return repository.NewPersistenceError(op, r.table.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return repository.NewPersistenceError(op, r.table.Name, err)
	}
	return nil
}

func execOne(ctx context.Context, tx *sql.Tx, q string, args ...any) error {
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func placeholders(start, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ph, ", ")
}
