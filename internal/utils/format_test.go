package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999, "999.00"},
		{1500, "1.50k"},
		{2_350_000, "2.35M"},
		{1.2e9, "1.20B"},
		{4e12, "4.00T"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compact(tt.in))
	}
}

func TestMoneyGrouping(t *testing.T) {
	assert.Equal(t, "EUR 12,345.67", Money(12345.67))
	assert.Equal(t, "EUR 2.35M", Money(2_350_000))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.42, Round2(2.4199999))
	assert.Equal(t, 3.1, Round2(3.1000001))
}
