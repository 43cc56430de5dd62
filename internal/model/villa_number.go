package model

import "time"

// VillaNumber is a numbered unit belonging to a villa. VillaNo is the key.
type VillaNumber struct {
	VillaNo        int       `json:"villaNo"`
	VillaID        int       `json:"villaID"`
	SpecialDetails string    `json:"specialDetails"`
	CreatedDate    time.Time `json:"createdDate"`
	UpdatedDate    time.Time `json:"updatedDate"`
}

type VillaNumberDTO struct {
	VillaNo        int       `json:"villaNo"`
	VillaID        int       `json:"villaID"`
	SpecialDetails string    `json:"specialDetails"`
	Villa          *VillaDTO `json:"villa,omitempty"`
}

type VillaNumberCreateDTO struct {
	VillaNo        int    `json:"villaNo" validate:"required,gt=0"`
	VillaID        int    `json:"villaID" validate:"required,gt=0"`
	SpecialDetails string `json:"specialDetails"`
}

type VillaNumberUpdateDTO struct {
	VillaNo        int    `json:"villaNo" validate:"required,gt=0"`
	VillaID        int    `json:"villaID" validate:"required,gt=0"`
	SpecialDetails string `json:"specialDetails"`
}

// DTO maps the entity; villa is embedded when non-nil.
func (n VillaNumber) DTO(villa *Villa) VillaNumberDTO {
	out := VillaNumberDTO{
		VillaNo:        n.VillaNo,
		VillaID:        n.VillaID,
		SpecialDetails: n.SpecialDetails,
	}
	if villa != nil {
		v := villa.DTO()
		out.Villa = &v
	}
	return out
}

func (d VillaNumberCreateDTO) VillaNumber() VillaNumber {
	return VillaNumber{VillaNo: d.VillaNo, VillaID: d.VillaID, SpecialDetails: d.SpecialDetails}
}

func (d VillaNumberUpdateDTO) VillaNumber() VillaNumber {
	return VillaNumber{VillaNo: d.VillaNo, VillaID: d.VillaID, SpecialDetails: d.SpecialDetails}
}
