package sampler

import (
	"context"

	"github.com/distatus/battery"
)

// Battery returns the state of the first battery the OS reports.
func (s *System) Battery(ctx context.Context) (Battery, error) {
	if err := ctx.Err(); err != nil {
		return Battery{}, err
	}

	batteries, err := battery.GetAll()
	if len(batteries) == 0 {
		if err != nil {
			s.log.Debug("battery: %v", err)
		}
		return Battery{}, ErrUnavailable
	}
	for _, b := range batteries {
		if b != nil && b.Full > 0 {
			return convertBattery(b), nil
		}
	}
	return Battery{}, ErrUnavailable
}

// convertBattery maps the library's capacity and rate figures (mWh, mW)
// onto a percentage and a time estimate.
func convertBattery(b *battery.Battery) Battery {
	out := Battery{SecondsLeft: TimeUnknown}
	if b.Full > 0 {
		out.Percent = b.Current / b.Full * 100
		if out.Percent > 100 {
			out.Percent = 100
		}
	}

	switch b.State.Raw {
	case battery.Charging, battery.Full, battery.Idle:
		out.Plugged = true
		out.SecondsLeft = TimeUnlimited
	case battery.Discharging, battery.Empty:
		if b.ChargeRate > 0 {
			out.SecondsLeft = int64(b.Current / b.ChargeRate * 3600)
		}
	}
	return out
}
