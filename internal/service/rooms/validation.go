package rooms

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
	"github.com/shopspring/decimal"
)

// validateRoomInput валидирует данные комнаты до любых записей
func validateRoomInput(in *models.RoomInput) error {
	if in == nil {
		return fmt.Errorf("%w: room data is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}

	if in.Number != nil && utf8.RuneCountInString(*in.Number) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: number must be at most %d characters", ErrInvalidInput, domain.MaxRoomNumberLength)
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > domain.MaxRoomDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxRoomDescriptionLength)
	}

	if in.Capacity < domain.MinRoomCapacity || in.Capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}

	for _, a := range in.Amenities {
		if !domain.Amenity(a).IsValid() {
			return fmt.Errorf("%w: unknown amenity %q", ErrInvalidInput, a)
		}
	}

	if in.SubleasePrice != nil && in.SubleasePrice.IsNegative() {
		return fmt.Errorf("%w: subleasePrice must not be negative", ErrInvalidInput)
	}

	return nil
}

// applyRoomInput переносит проверенные данные в domain модель
func applyRoomInput(room *domain.Room, in *models.RoomInput) {
	room.Name = strings.TrimSpace(in.Name)
	room.Number = in.Number
	room.Description = in.Description
	room.Capacity = in.Capacity

	amenities := make([]domain.Amenity, 0, len(in.Amenities))
	for _, a := range in.Amenities {
		amenities = append(amenities, domain.Amenity(a))
	}
	room.Amenities = domain.NormalizeAmenities(amenities)

	room.SubleasePrice = decimal.NullDecimal{}
	if in.SubleasePrice != nil {
		room.SubleasePrice = decimal.NewNullDecimal(*in.SubleasePrice)
	}

	if in.IsActive != nil {
		room.IsActive = *in.IsActive
	}
}
