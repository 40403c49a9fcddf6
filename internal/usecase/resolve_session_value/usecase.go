package resolve_session_value

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/shopspring/decimal"
)

// fallbackKindSessionValue метка метрики деградации стоимости
const fallbackKindSessionValue = "session_value"

// UseCase use case определения стоимости сессии по умолчанию
type UseCase struct {
	directory DirectoryClient
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directory DirectoryClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute определяет стоимость сессии.
// Если психолог использует цены клиники и клиника указана, берется стоимость клиники.
// Ошибка загрузки клиники не возвращается: используется собственная стоимость психолога.
// Отсутствующее значение считается нулем.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSessionValue: psychologist=%d", req.PsychologistID)

	if req.PsychologistID <= 0 {
		return nil, fmt.Errorf("%w: psychologistID must be positive", ErrInvalidInput)
	}

	psychologist, err := uc.directory.GetPsychologist(ctx, req.PsychologistID)
	if err != nil {
		if errors.Is(err, directoryservice.ErrPsychologistNotFound) {
			uc.logger.Warn("ResolveSessionValue: psychologist id=%d not found", req.PsychologistID)
			return nil, ErrPsychologistNotFound
		}
		uc.logger.Error("ResolveSessionValue: failed to get psychologist id=%d: %v", req.PsychologistID, err)
		return nil, fmt.Errorf("%w: failed to get psychologist: %v", ErrDirectoryUnavailable, err)
	}

	resp := &Response{
		PsychologistID: psychologist.ID,
		Value:          valueOrZero(psychologist.DefaultSessionValue),
		Source:         SourcePsychologist,
	}

	if !psychologist.UseClinicValue || psychologist.ClinicID == nil {
		return resp, nil
	}

	clinic, err := uc.directory.GetClinic(ctx, *psychologist.ClinicID)
	if err != nil {
		uc.logger.Warn("ResolveSessionValue: failed to get clinic id=%d, using psychologist value: %v",
			*psychologist.ClinicID, err)
		uc.metrics.IncDirectoryFallback(fallbackKindSessionValue)
		return resp, nil
	}

	resp.Value = valueOrZero(clinic.PaymentSettings.DefaultSessionValue)
	resp.Source = SourceClinic

	uc.logger.Info("ResolveSessionValue: psychologist=%d, value=%s, source=%s",
		req.PsychologistID, resp.Value.StringFixed(2), resp.Source)
	return resp, nil
}

func valueOrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
