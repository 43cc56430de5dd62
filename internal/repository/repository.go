// Package repository contains the generic data access abstraction shared by
// every entity type. Implementations live in subpackages (e.g., postgres).
package repository

import "context"

// Repository gives any entity type T the same CRUD surface.
//
// Every write commits before returning; there is no unit of work spanning
// calls. Reads reach the store on every call.
type Repository[T any] interface {
	// GetAll returns every stored T matching filter, or all rows when filter is nil.
	// The slice is fully materialized and never nil.
	GetAll(ctx context.Context, filter *Filter) ([]T, error)

	// Get returns the first T matching filter, or nil when nothing matches.
	// Reads are tracked unless Untracked is passed.
	Get(ctx context.Context, filter *Filter, opts ...GetOption) (*T, error)

	// Create inserts entity and commits. Store-generated values (such as a
	// serial key) are written back into entity.
	Create(ctx context.Context, entity *T) error

	// Update replaces the whole stored row sharing entity's key and commits.
	// Fields are never merged with the prior row.
	Update(ctx context.Context, entity *T) error

	// Delete removes the row sharing entity's key and commits.
	Delete(ctx context.Context, entity *T) error
}

// GetOption tunes a single Get call.
type GetOption func(*GetOptions)

// GetOptions is the resolved form of a Get call's options.
type GetOptions struct {
	Tracked bool
}

// Untracked keeps the returned instance out of the request's tracking scope.
// Use it for read-only access or before pushing a freshly built replacement.
func Untracked() GetOption {
	return func(o *GetOptions) { o.Tracked = false }
}

// ResolveGetOptions applies opts over the defaults (tracked).
func ResolveGetOptions(opts ...GetOption) GetOptions {
	o := GetOptions{Tracked: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
