package postgres

import (
	"database/sql"

	"magicvilla/internal/model"
	"magicvilla/internal/repository"
)

// VillaTable maps model.Villa onto the villas table.
var VillaTable = repository.Table[model.Villa]{
	Name:         "villas",
	Key:          "id",
	GeneratedKey: true,
	Columns:      []string{"name", "details", "rate", "sqft", "occupancy", "image_url", "amenity", "created_date", "updated_date"},
	KeyOf:        func(v *model.Villa) any { return v.ID },
	Values: func(v *model.Villa) []any {
		return []any{v.Name, v.Details, v.Rate, v.Sqft, v.Occupancy, v.ImageURL, v.Amenity, v.CreatedDate, v.UpdatedDate}
	},
	Fields: func(v *model.Villa) []any {
		return []any{&v.ID, &v.Name, &v.Details, &v.Rate, &v.Sqft, &v.Occupancy, &v.ImageURL, &v.Amenity, &v.CreatedDate, &v.UpdatedDate}
	},
}

// VillaNumberTable maps model.VillaNumber onto the villa_numbers table.
var VillaNumberTable = repository.Table[model.VillaNumber]{
	Name:    "villa_numbers",
	Key:     "villa_no",
	Columns: []string{"villa_id", "special_details", "created_date", "updated_date"},
	KeyOf:   func(n *model.VillaNumber) any { return n.VillaNo },
	Values: func(n *model.VillaNumber) []any {
		return []any{n.VillaID, n.SpecialDetails, n.CreatedDate, n.UpdatedDate}
	},
	Fields: func(n *model.VillaNumber) []any {
		return []any{&n.VillaNo, &n.VillaID, &n.SpecialDetails, &n.CreatedDate, &n.UpdatedDate}
	},
}

// NewVillaRepository returns the villa repository.
func NewVillaRepository(db *sql.DB) repository.Repository[model.Villa] {
	return NewRepository(db, VillaTable)
}

// NewVillaNumberRepository returns the villa number repository.
func NewVillaNumberRepository(db *sql.DB) repository.Repository[model.VillaNumber] {
	return NewRepository(db, VillaNumberTable)
}

var (
	_ repository.Repository[model.Villa]       = (*Repository[model.Villa])(nil)
	_ repository.Repository[model.VillaNumber] = (*Repository[model.VillaNumber])(nil)
)
