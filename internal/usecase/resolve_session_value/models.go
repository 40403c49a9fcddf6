package resolve_session_value

import "github.com/shopspring/decimal"

// Source откуда взята стоимость сессии
type Source string

const (
	SourcePsychologist Source = "psychologist"
	SourceClinic       Source = "clinic"
)

// Request модель запроса стоимости сессии по умолчанию
type Request struct {
	PsychologistID int64
}

// Response стоимость сессии по умолчанию для предзаполнения формы записи
type Response struct {
	PsychologistID int64
	Value          decimal.Decimal
	Source         Source
}
