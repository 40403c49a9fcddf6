package schedule_appointment

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.PsychologistID <= 0 {
		return fmt.Errorf("%w: psychologistID must be positive", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.Type)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Date.After(now) {
		return ErrDateInPast
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.SessionValue != nil && req.SessionValue.IsNegative() {
		return fmt.Errorf("%w: sessionValue must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Для online комната отбрасывается и не проверяется
	if req.Type == domain.TypeInPerson && req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Recurrence != nil {
		if err := req.Recurrence.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
