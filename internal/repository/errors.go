package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind tags the cause of a PersistenceError.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConflict
	KindForeignKey
	KindNotNull
	KindCheck
	KindNoRows
)

func (k ErrorKind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindForeignKey:
		return "foreign_key"
	case KindNotNull:
		return "not_null"
	case KindCheck:
		return "check"
	case KindNoRows:
		return "no_rows"
	default:
		return "unknown"
	}
}

// PersistenceError reports a store round-trip that failed or a write the store
// rejected. Err is the store's own error, unmodified.
type PersistenceError struct {
	Op    string
	Table string
	Kind  ErrorKind
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError tags err with its kind. A nil err yields nil.
func NewPersistenceError(op, table string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Table: table, Kind: Classify(err), Err: err}
}

// Classify maps a driver error onto an ErrorKind using PostgreSQL SQLSTATE codes.
func Classify(err error) ErrorKind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNoRows
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindConflict
		case "23503":
			return KindForeignKey
		case "23502":
			return KindNotNull
		case "23514":
			return KindCheck
		}
	}
	return KindUnknown
}

// IsKind reports whether err is a PersistenceError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Kind == kind
}
