package sampler

import (
	"testing"

	"github.com/distatus/battery"
	"github.com/stretchr/testify/assert"
)

func TestConvertBattery(t *testing.T) {
	tests := []struct {
		name        string
		in          battery.Battery
		wantPct     float64
		wantPlugged bool
		wantSeconds int64
	}{
		{
			name:        "charging is unlimited",
			in:          battery.Battery{State: battery.State{Raw: battery.Charging}, Current: 30000, Full: 60000, ChargeRate: 15000},
			wantPct:     50,
			wantPlugged: true,
			wantSeconds: TimeUnlimited,
		},
		{
			name:        "full is unlimited",
			in:          battery.Battery{State: battery.State{Raw: battery.Full}, Current: 60000, Full: 60000},
			wantPct:     100,
			wantPlugged: true,
			wantSeconds: TimeUnlimited,
		},
		{
			name:        "discharging with rate",
			in:          battery.Battery{State: battery.State{Raw: battery.Discharging}, Current: 30000, Full: 60000, ChargeRate: 10000},
			wantPct:     50,
			wantSeconds: 3 * 3600,
		},
		{
			name:        "discharging without rate is unknown",
			in:          battery.Battery{State: battery.State{Raw: battery.Discharging}, Current: 12000, Full: 60000},
			wantPct:     20,
			wantSeconds: TimeUnknown,
		},
		{
			name:        "over-full capacity is clamped",
			in:          battery.Battery{State: battery.State{Raw: battery.Full}, Current: 61000, Full: 60000},
			wantPct:     100,
			wantPlugged: true,
			wantSeconds: TimeUnlimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			got := convertBattery(&b)
			assert.InDelta(t, tt.wantPct, got.Percent, 0.001)
			assert.Equal(t, tt.wantPlugged, got.Plugged)
			assert.Equal(t, tt.wantSeconds, got.SecondsLeft)
		})
	}
}
