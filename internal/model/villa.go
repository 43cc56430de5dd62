package model

import "time"

// Villa is a rentable property.
// CreatedDate and UpdatedDate are set by the service layer, never by clients.
type Villa struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Details     string    `json:"details"`
	Rate        float64   `json:"rate"`
	Sqft        int       `json:"sqft"`
	Occupancy   int       `json:"occupancy"`
	ImageURL    string    `json:"imageUrl"`
	Amenity     string    `json:"amenity"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

// VillaDTO is the representation returned to clients.
type VillaDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate"`
	Sqft      int     `json:"sqft"`
	Occupancy int     `json:"occupancy"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

// VillaCreateDTO is the body accepted by the create endpoint.
type VillaCreateDTO struct {
	Name      string  `json:"name" validate:"required,max=30"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" validate:"gte=0"`
	Sqft      int     `json:"sqft" validate:"gte=0"`
	Occupancy int     `json:"occupancy" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

// VillaUpdateDTO is the full replacement body accepted by PUT and the
// document JSON Patch operations are applied to.
type VillaUpdateDTO struct {
	ID        int     `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required,max=30"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" validate:"gte=0"`
	Sqft      int     `json:"sqft" validate:"gte=0"`
	Occupancy int     `json:"occupancy" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

// DTO maps the entity to its client representation.
func (v Villa) DTO() VillaDTO {
	return VillaDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Sqft:      v.Sqft,
		Occupancy: v.Occupancy,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

// UpdateDTO maps the entity to the shape JSON Patch documents target.
func (v Villa) UpdateDTO() VillaUpdateDTO {
	return VillaUpdateDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Sqft:      v.Sqft,
		Occupancy: v.Occupancy,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

// Villa builds a new, unsaved entity.
func (d VillaCreateDTO) Villa() Villa {
	return Villa{
		Name:      d.Name,
		Details:   d.Details,
		Rate:      d.Rate,
		Sqft:      d.Sqft,
		Occupancy: d.Occupancy,
		ImageURL:  d.ImageURL,
		Amenity:   d.Amenity,
	}
}

// Villa builds the full replacement for the stored row with the same ID.
func (d VillaUpdateDTO) Villa() Villa {
	return Villa{
		ID:        d.ID,
		Name:      d.Name,
		Details:   d.Details,
		Rate:      d.Rate,
		Sqft:      d.Sqft,
		Occupancy: d.Occupancy,
		ImageURL:  d.ImageURL,
		Amenity:   d.Amenity,
	}
}

// VillaDTOs maps a list of entities.
func VillaDTOs(vs []Villa) []VillaDTO {
	out := make([]VillaDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.DTO())
	}
	return out
}
