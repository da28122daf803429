package sampler

import (
	"context"
	"strings"

	"github.com/jaypipes/ghw"
)

// Board returns motherboard identification from DMI.
func (s *System) Board(ctx context.Context) (Board, error) {
	if err := ctx.Err(); err != nil {
		return Board{}, err
	}

	info, err := ghw.Baseboard(ghw.WithDisableWarnings())
	if err != nil {
		return Board{}, err
	}
	return Board{
		Vendor:  orNA(info.Vendor),
		Product: orNA(info.Product),
		Version: orNA(info.Version),
		Serial:  orNA(info.SerialNumber),
	}, nil
}

// GPUNames lists graphics adapters known to the PCI database.
func (s *System) GPUNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var vendor, product string
		if card.DeviceInfo.Vendor != nil {
			vendor = strings.TrimSpace(card.DeviceInfo.Vendor.Name)
		}
		if card.DeviceInfo.Product != nil {
			product = strings.TrimSpace(card.DeviceInfo.Product.Name)
		}
		name := strings.TrimSpace(vendor + " " + product)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, ErrUnavailable
	}
	return names, nil
}

// orNA maps empty and DMI placeholder values to "N/A".
func orNA(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "unknown", "none", "default string", "to be filled by o.e.m.":
		return "N/A"
	}
	return v
}
