package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amenity is a predefined room feature key
type Amenity string

const (
	AmenityAirConditioning Amenity = "air_conditioning"
	AmenityWifi            Amenity = "wifi"
	AmenityCouch           Amenity = "couch"
	AmenityArmchairs       Amenity = "armchairs"
	AmenityWhiteboard      Amenity = "whiteboard"
	AmenityToys            Amenity = "toys"
	AmenityAccessibility   Amenity = "accessibility"
	AmenitySoundInsulation Amenity = "sound_insulation"
	AmenityNaturalLight    Amenity = "natural_light"
	AmenityTV              Amenity = "tv"
)

// AllAmenities lists every supported amenity key
var AllAmenities = []Amenity{
	AmenityAirConditioning,
	AmenityWifi,
	AmenityCouch,
	AmenityArmchairs,
	AmenityWhiteboard,
	AmenityToys,
	AmenityAccessibility,
	AmenitySoundInsulation,
	AmenityNaturalLight,
	AmenityTV,
}

// IsValid returns true if the amenity is a predefined key
func (a Amenity) IsValid() bool {
	for _, known := range AllAmenities {
		if a == known {
			return true
		}
	}
	return false
}

// Room represents a clinic room that can be requested for in-person sessions
type Room struct {
	ID            int64
	ClinicID      int64
	Name          string
	Number        *string
	Description   *string
	Capacity      int
	Amenities     []Amenity
	SubleasePrice decimal.NullDecimal // NULL = no fee
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSubleaseFee returns true if the room charges a positive sublease price
func (r *Room) HasSubleaseFee() bool {
	return r.SubleasePrice.Valid && r.SubleasePrice.Decimal.IsPositive()
}

// NormalizeAmenities removes duplicates keeping the first occurrence order
func NormalizeAmenities(amenities []Amenity) []Amenity {
	seen := make(map[Amenity]struct{}, len(amenities))
	result := make([]Amenity, 0, len(amenities))
	for _, a := range amenities {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		result = append(result, a)
	}
	return result
}
