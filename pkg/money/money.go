package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Format возвращает сумму с двумя знаками после запятой и запятой в качестве разделителя ("80,00").
// Только для отображения, в API суммы передаются числом.
func Format(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1)
}

// FormatNullable форматирует опциональную сумму, пустая строка для NULL
func FormatNullable(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return Format(amount.Decimal)
}

// Number возвращает сумму JSON-числом с двумя знаками (80.00)
func Number(amount decimal.Decimal) json.Number {
	return json.Number(amount.StringFixed(2))
}

// NullableNumber возвращает nil для NULL
func NullableNumber(amount decimal.NullDecimal) *json.Number {
	if !amount.Valid {
		return nil
	}
	n := Number(amount.Decimal)
	return &n
}
