package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattery_TimeLeft(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"unlimited", TimeUnlimited, "N/A"},
		{"unknown", TimeUnknown, "Unknown"},
		{"other negative", -7, "Unknown"},
		{"zero", 0, "0h 0m"},
		{"minutes only", 59 * 60, "0h 59m"},
		{"hours and minutes", 2*3600 + 5*60 + 30, "2h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Battery{SecondsLeft: tt.seconds}.TimeLeft())
		})
	}
}

func TestBattery_State(t *testing.T) {
	assert.Equal(t, "Charging", Battery{Plugged: true}.State())
	assert.Equal(t, "Discharging", Battery{}.State())
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "N/A", orNA("  unknown "))
	assert.Equal(t, "N/A", orNA("To Be Filled By O.E.M."))
	assert.Equal(t, "ASUSTeK", orNA(" ASUSTeK "))
}

func TestNewSystem_Defaults(t *testing.T) {
	s := NewSystem(nil)
	assert.Equal(t, DefaultHwmonRoot, s.HwmonRoot)
	assert.NotNil(t, s.log)
	assert.Contains(t, s.String(), DefaultHwmonRoot)
}
