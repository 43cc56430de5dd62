package mocks

import (
	"context"

	"magicvilla/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of repository.Repository[T].
// Get records whether the read was tracked as its third argument.
type MockRepository[T any] struct {
	mock.Mock
}

var _ repository.Repository[struct{}] = (*MockRepository[struct{}])(nil)

func (m *MockRepository[T]) GetAll(ctx context.Context, filter *repository.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Get(ctx context.Context, filter *repository.Filter, opts ...repository.GetOption) (*T, error) {
	args := m.Called(ctx, filter, repository.ResolveGetOptions(opts...).Tracked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}
