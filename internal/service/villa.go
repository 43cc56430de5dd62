package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	jsonpatch "github.com/evanphx/json-patch"
	jsoniter "github.com/json-iterator/go"

	"magicvilla/internal/model"
	"magicvilla/internal/repository"
	"magicvilla/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// imageURLExpiry is how long a presigned image link stays valid.
const imageURLExpiry = 15 * time.Minute

// VillaService defines the villa use cases of the API tier.
type VillaService interface {
	List(ctx context.Context) ([]model.Villa, error)
	// Get returns ErrNotFound when no villa has the id.
	Get(ctx context.Context, id int) (*model.Villa, error)
	// Create rejects a name already used by another villa, ignoring case.
	Create(ctx context.Context, dto model.VillaCreateDTO) (*model.Villa, error)
	// Update replaces the whole villa; nothing from the stored row is merged
	// except its creation date.
	Update(ctx context.Context, id int, dto model.VillaUpdateDTO) error
	// Patch applies an RFC 6902 document to the villa's update representation
	// and then replaces the villa with the result.
	Patch(ctx context.Context, id int, patch []byte) error
	Delete(ctx context.Context, id int) error
	// UploadImage stores the image and points the villa's imageUrl at it.
	UploadImage(ctx context.Context, id int, r io.Reader, filename, contentType string, size int64) (*model.Villa, error)
	// ImageURL returns a link the villa image can be downloaded from.
	ImageURL(ctx context.Context, id int) (string, error)
}

type villaService struct {
	repo   repository.Repository[model.Villa]
	images storage.ImageStore
	now    func() time.Time
}

// NewVillaService constructs a VillaService. images may be storage.Disabled().
func NewVillaService(repo repository.Repository[model.Villa], images storage.ImageStore) VillaService {
	return &villaService{repo: repo, images: images, now: func() time.Time { return time.Now().UTC() }}
}

func byID(id int) *repository.Filter { return repository.Eq("id", id) }

func (s *villaService) List(ctx context.Context) ([]model.Villa, error) {
	return s.repo.GetAll(ctx, nil)
}

func (s *villaService) Get(ctx context.Context, id int) (*model.Villa, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	v, err := s.repo.Get(ctx, byID(id), repository.Untracked())
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *villaService) Create(ctx context.Context, dto model.VillaCreateDTO) (*model.Villa, error) {
	// The stored name and the duplicate check must agree with the
	// lower(name) unique index.
	dto.Name = strings.TrimSpace(dto.Name)
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	dup, err := s.repo.Get(ctx, repository.Where("lower(name) = lower(?)", dto.Name), repository.Untracked())
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, ErrVillaExists
	}

	v := dto.Villa()
	v.CreatedDate = s.now()
	v.UpdatedDate = v.CreatedDate
	if err := s.repo.Create(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *villaService) Update(ctx context.Context, id int, dto model.VillaUpdateDTO) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if id != dto.ID {
		return ErrIDMismatch
	}
	dto.Name = strings.TrimSpace(dto.Name)
	if err := model.Validate(dto); err != nil {
		return err
	}
	return s.replace(ctx, id, dto)
}

func (s *villaService) Patch(ctx context.Context, id int, patch []byte) error {
	if id <= 0 {
		return ErrInvalidID
	}
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	current, err := s.repo.Get(ctx, byID(id), repository.Untracked())
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}

	doc, err := json.Marshal(current.UpdateDTO())
	if err != nil {
		return fmt.Errorf("encode villa %d: %w", id, err)
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	var dto model.VillaUpdateDTO
	if err := json.Unmarshal(patched, &dto); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	if dto.ID != id {
		return ErrIDMismatch
	}
	dto.Name = strings.TrimSpace(dto.Name)
	if err := model.Validate(dto); err != nil {
		return err
	}

	v := dto.Villa()
	v.CreatedDate = current.CreatedDate
	v.UpdatedDate = s.now()
	return s.repo.Update(ctx, &v)
}

// replace confirms the villa exists with an untracked read, then pushes a
// freshly built replacement.
func (s *villaService) replace(ctx context.Context, id int, dto model.VillaUpdateDTO) error {
	current, err := s.repo.Get(ctx, byID(id), repository.Untracked())
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}
	v := dto.Villa()
	v.CreatedDate = current.CreatedDate
	v.UpdatedDate = s.now()
	return s.repo.Update(ctx, &v)
}

func (s *villaService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	v, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, v)
}

func (s *villaService) UploadImage(ctx context.Context, id int, r io.Reader, filename, contentType string, size int64) (*model.Villa, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storage.ImageKey(id, filename)
	info, err := s.images.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	v := *current
	v.ImageURL = info.Key
	v.UpdatedDate = s.now()
	if err := s.repo.Update(ctx, &v); err != nil {
		// Rollback: the row still points at the previous image.
		if delErr := s.images.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return &v, nil
}

func (s *villaService) ImageURL(ctx context.Context, id int) (string, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	switch {
	case v.ImageURL == "":
		return "", ErrNoImage
	case strings.HasPrefix(v.ImageURL, "http://"), strings.HasPrefix(v.ImageURL, "https://"):
		return v.ImageURL, nil
	}
	return s.images.PresignGet(ctx, v.ImageURL, imageURLExpiry)
}
