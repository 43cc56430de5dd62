package repository

// Table describes how an entity type maps onto one relational table.
// A single generic implementation serves every entity through its Table.
type Table[T any] struct {
	// Name is the table name.
	Name string
	// Key is the primary key column.
	Key string
	// GeneratedKey is true when the store assigns the key on insert.
	GeneratedKey bool
	// Columns lists the non-key columns in a fixed order.
	Columns []string
	// KeyOf returns the key value of e.
	KeyOf func(e *T) any
	// Values returns e's non-key values in Columns order.
	Values func(e *T) []any
	// Fields returns scan destinations for the key followed by Columns.
	Fields func(e *T) []any
}

// SelectColumns returns the key followed by Columns.
func (t Table[T]) SelectColumns() []string {
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, t.Key)
	return append(cols, t.Columns...)
}
