package repository

import (
	"strconv"
	"strings"
)

// Filter is a predicate over one entity, expressed as a SQL boolean
// expression so the store evaluates it. Arguments bind to '?' placeholders.
type Filter struct {
	clause string
	args   []any
}

// Where builds a filter from a raw boolean expression, e.g.
// Where("lower(name) = lower(?)", name).
//
// Every '?' outside a quoted literal or quoted identifier is a placeholder,
// so the jsonb ?, ?| and ?& operators must be spelled as jsonb_exists,
// jsonb_exists_any and jsonb_exists_all.
func Where(clause string, args ...any) *Filter {
	return &Filter{clause: clause, args: args}
}

// Eq matches rows whose column equals v.
func Eq(column string, v any) *Filter {
	return Where(column+" = ?", v)
}

// And matches rows satisfying every non-nil filter.
func And(filters ...*Filter) *Filter {
	parts := make([]string, 0, len(filters))
	var args []any
	for _, f := range filters {
		if f == nil || f.clause == "" {
			continue
		}
		parts = append(parts, "("+f.clause+")")
		args = append(args, f.args...)
	}
	if len(parts) == 0 {
		return nil
	}
	return &Filter{clause: strings.Join(parts, " AND "), args: args}
}

// Clause returns the expression with '?' placeholders.
func (f *Filter) Clause() string {
	if f == nil {
		return ""
	}
	return f.clause
}

// Args returns the bound arguments in placeholder order.
func (f *Filter) Args() []any {
	if f == nil {
		return nil
	}
	return f.args
}

// Rebind rewrites '?' placeholders to PostgreSQL ordinals starting at
// $start. Placeholders inside single-quoted literals and double-quoted
// identifiers are left alone.
func Rebind(clause string, start int) string {
	var b strings.Builder
	b.Grow(len(clause) + 8)
	n := start
	var quote rune
	for _, r := range clause {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			b.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			b.WriteRune(r)
		case r == '?':
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
