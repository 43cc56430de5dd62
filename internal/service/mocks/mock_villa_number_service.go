package mocks

import (
	"context"

	"magicvilla/internal/model"
	"magicvilla/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockVillaNumberService struct {
	mock.Mock
}

var _ service.VillaNumberService = (*MockVillaNumberService)(nil)

func (m *MockVillaNumberService) List(ctx context.Context) ([]model.VillaNumberDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VillaNumberDTO), args.Error(1)
}

func (m *MockVillaNumberService) Get(ctx context.Context, villaNo int) (*model.VillaNumberDTO, error) {
	args := m.Called(ctx, villaNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VillaNumberDTO), args.Error(1)
}

func (m *MockVillaNumberService) Create(ctx context.Context, dto model.VillaNumberCreateDTO) (*model.VillaNumberDTO, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VillaNumberDTO), args.Error(1)
}

func (m *MockVillaNumberService) Update(ctx context.Context, villaNo int, dto model.VillaNumberUpdateDTO) error {
	args := m.Called(ctx, villaNo, dto)
	return args.Error(0)
}

func (m *MockVillaNumberService) Delete(ctx context.Context, villaNo int) error {
	args := m.Called(ctx, villaNo)
	return args.Error(0)
}
