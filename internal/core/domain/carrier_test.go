package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCarrier(t *testing.T) {
	tests := []struct {
		msisdn string
		want   Carrier
	}{
		{"0244000000", CarrierMTN},
		{"0255123456", CarrierMTN},
		{"0531234567", CarrierMTN},
		{"0590000000", CarrierMTN},
		{"+233244000000", CarrierMTN},
		{"0203000000", CarrierVodafone},
		{"0501769307", CarrierVodafone},
		{"+233501769307", CarrierVodafone},
		{"0273000000", CarrierAirtelTigo},
		{"0261234567", CarrierAirtelTigo},
		{"0571234567", CarrierAirtelTigo},
		{"+233271234567", CarrierAirtelTigo},
		{"0123456789", CarrierUnknown},
		{"0600000000", CarrierUnknown},
		{"", CarrierUnknown},
		{"02", CarrierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.msisdn, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCarrier(tt.msisdn))
		})
	}
}

func TestDetectCarrier_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, CarrierMTN, DetectCarrier("0244000000"))
	}
}

func TestCarrier_IsKnown(t *testing.T) {
	assert.True(t, CarrierMTN.IsKnown())
	assert.False(t, CarrierUnknown.IsKnown())
}

func TestValidMSISDN(t *testing.T) {
	assert.True(t, ValidMSISDN("0244000000"))
	assert.True(t, ValidMSISDN("0501769307"))
	assert.False(t, ValidMSISDN("024400000"))    // 9 digits
	assert.False(t, ValidMSISDN("02440000000"))  // 11 digits
	assert.False(t, ValidMSISDN("1244000000"))   // bad leading digit
	assert.False(t, ValidMSISDN("0644000000"))   // unrecognized range
	assert.False(t, ValidMSISDN("+2330244000000"))
}
