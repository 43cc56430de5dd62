package mocks

import (
	"context"
	"io"

	"magicvilla/internal/model"
	"magicvilla/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockVillaService struct {
	mock.Mock
}

var _ service.VillaService = (*MockVillaService)(nil)

func (m *MockVillaService) List(ctx context.Context) ([]model.Villa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Villa), args.Error(1)
}

func (m *MockVillaService) Get(ctx context.Context, id int) (*model.Villa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Villa), args.Error(1)
}

func (m *MockVillaService) Create(ctx context.Context, dto model.VillaCreateDTO) (*model.Villa, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Villa), args.Error(1)
}

func (m *MockVillaService) Update(ctx context.Context, id int, dto model.VillaUpdateDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *MockVillaService) Patch(ctx context.Context, id int, patch []byte) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockVillaService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVillaService) UploadImage(ctx context.Context, id int, r io.Reader, filename, contentType string, size int64) (*model.Villa, error) {
	args := m.Called(ctx, id, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Villa), args.Error(1)
}

func (m *MockVillaService) ImageURL(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
