package get_session_value

import (
	"encoding/json"

	resolveSessionValue "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/resolve_session_value"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/money"
)

// SessionValueResponse HTTP response model
type SessionValueResponse struct {
	PsychologistID int64       `json:"psychologistId"`
	Value          json.Number `json:"value"`
	Display        string      `json:"display"`
	Source         string      `json:"source"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSessionValue.Response) *SessionValueResponse {
	return &SessionValueResponse{
		PsychologistID: resp.PsychologistID,
		Value:          money.Number(resp.Value),
		Display:        money.Format(resp.Value),
		Source:         string(resp.Source),
	}
}
