package service

import (
	"context"
	"time"

	"magicvilla/internal/model"
	"magicvilla/internal/repository"
)

// VillaNumberService defines the villa number use cases of the API tier.
// Results embed the villa each number belongs to.
type VillaNumberService interface {
	List(ctx context.Context) ([]model.VillaNumberDTO, error)
	Get(ctx context.Context, villaNo int) (*model.VillaNumberDTO, error)
	// Create rejects an existing number and a villa id with no villa.
	Create(ctx context.Context, dto model.VillaNumberCreateDTO) (*model.VillaNumberDTO, error)
	Update(ctx context.Context, villaNo int, dto model.VillaNumberUpdateDTO) error
	Delete(ctx context.Context, villaNo int) error
}

type villaNumberService struct {
	numbers repository.Repository[model.VillaNumber]
	villas  repository.Repository[model.Villa]
	now     func() time.Time
}

// NewVillaNumberService constructs a VillaNumberService.
func NewVillaNumberService(numbers repository.Repository[model.VillaNumber], villas repository.Repository[model.Villa]) VillaNumberService {
	return &villaNumberService{numbers: numbers, villas: villas, now: func() time.Time { return time.Now().UTC() }}
}

func byVillaNo(no int) *repository.Filter { return repository.Eq("villa_no", no) }

func (s *villaNumberService) List(ctx context.Context) ([]model.VillaNumberDTO, error) {
	numbers, err := s.numbers.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	villas, err := s.villas.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	byVilla := make(map[int]*model.Villa, len(villas))
	for i := range villas {
		byVilla[villas[i].ID] = &villas[i]
	}

	out := make([]model.VillaNumberDTO, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, n.DTO(byVilla[n.VillaID]))
	}
	return out, nil
}

func (s *villaNumberService) Get(ctx context.Context, villaNo int) (*model.VillaNumberDTO, error) {
	if villaNo <= 0 {
		return nil, ErrInvalidID
	}
	n, err := s.numbers.Get(ctx, byVillaNo(villaNo), repository.Untracked())
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}
	v, err := s.villas.Get(ctx, byID(n.VillaID), repository.Untracked())
	if err != nil {
		return nil, err
	}
	dto := n.DTO(v)
	return &dto, nil
}

func (s *villaNumberService) Create(ctx context.Context, dto model.VillaNumberCreateDTO) (*model.VillaNumberDTO, error) {
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	existing, err := s.numbers.Get(ctx, byVillaNo(dto.VillaNo), repository.Untracked())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrVillaNumberExists
	}
	villa, err := s.villas.Get(ctx, byID(dto.VillaID), repository.Untracked())
	if err != nil {
		return nil, err
	}
	if villa == nil {
		return nil, ErrInvalidVilla
	}

	n := dto.VillaNumber()
	n.CreatedDate = s.now()
	n.UpdatedDate = n.CreatedDate
	if err := s.numbers.Create(ctx, &n); err != nil {
		return nil, err
	}
	out := n.DTO(villa)
	return &out, nil
}

func (s *villaNumberService) Update(ctx context.Context, villaNo int, dto model.VillaNumberUpdateDTO) error {
	if villaNo <= 0 {
		return ErrInvalidID
	}
	if villaNo != dto.VillaNo {
		return ErrIDMismatch
	}
	if err := model.Validate(dto); err != nil {
		return err
	}
	villa, err := s.villas.Get(ctx, byID(dto.VillaID), repository.Untracked())
	if err != nil {
		return err
	}
	if villa == nil {
		return ErrInvalidVilla
	}
	current, err := s.numbers.Get(ctx, byVillaNo(villaNo), repository.Untracked())
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}

	n := dto.VillaNumber()
	n.CreatedDate = current.CreatedDate
	n.UpdatedDate = s.now()
	return s.numbers.Update(ctx, &n)
}

func (s *villaNumberService) Delete(ctx context.Context, villaNo int) error {
	if villaNo <= 0 {
		return ErrInvalidID
	}
	n, err := s.numbers.Get(ctx, byVillaNo(villaNo))
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotFound
	}
	return s.numbers.Delete(ctx, n)
}
