package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func pricedRoom(price string) *Room {
	room := &Room{ID: 1, ClinicID: 10, IsActive: true}
	if price != "" {
		room.SubleasePrice = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	return room
}

func TestSubleaseApplies(t *testing.T) {
	own := int64(10)
	other := int64(20)

	tests := []struct {
		name            string
		room            *Room
		patientClinicID *int64
		want            bool
	}{
		{name: "no price, external patient", room: pricedRoom(""), patientClinicID: nil, want: false},
		{name: "zero price, external patient", room: pricedRoom("0"), patientClinicID: &other, want: false},
		{name: "zero price, own patient", room: pricedRoom("0.00"), patientClinicID: &own, want: false},
		{name: "priced, patient without clinic", room: pricedRoom("80.00"), patientClinicID: nil, want: true},
		{name: "priced, patient of other clinic", room: pricedRoom("80.00"), patientClinicID: &other, want: true},
		{name: "priced, own patient", room: pricedRoom("80.00"), patientClinicID: &own, want: false},
		{name: "nil room", room: nil, patientClinicID: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubleaseApplies(tt.room, tt.patientClinicID, 10))
		})
	}
}

func TestSublease_CanBeMarkedPaid(t *testing.T) {
	assert.True(t, (&Sublease{Status: SubleaseStatusPending}).CanBeMarkedPaid())
	assert.False(t, (&Sublease{Status: SubleaseStatusPaid}).CanBeMarkedPaid())
	assert.False(t, (&Sublease{Status: SubleaseStatusCancelled}).CanBeMarkedPaid())
}
