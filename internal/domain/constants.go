package domain

// Default values
const (
	DefaultDurationMinutes   = 50
	DefaultSlotGridStartHour = 8
	DefaultSlotGridEndHour   = 18 // inclusive
)

// Business validation constants
const (
	MaxNotesLength           = 1000
	MaxDurationMinutes       = 480 // 8 hours
	MinRoomCapacity          = 1
	MaxRoomCapacity          = 10
	MaxRoomNameLength        = 100
	MaxRoomNumberLength      = 20
	MaxRoomDescriptionLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
