package probe

import (
	"context"
	"strings"
)

// ParseUSBDevices returns lsusb lines containing keyword, ignoring case.
func ParseUSBDevices(output, keyword string) []string {
	var out []string
	for _, line := range nonEmptyLines(output) {
		if containsAny(line, keyword) {
			out = append(out, line)
		}
	}
	return out
}

// USBDevices lists USB devices whose description mentions keyword.
func (p *Prober) USBDevices(ctx context.Context, keyword string) ([]string, error) {
	out, err := p.run(ctx, "lsusb", "lsusb")
	if err != nil {
		return nil, err
	}
	return ParseUSBDevices(out, keyword), nil
}

// Keyboards lists USB keyboards.
func (p *Prober) Keyboards(ctx context.Context) ([]string, error) {
	return p.USBDevices(ctx, "keyboard")
}

// Mice lists USB mice.
func (p *Prober) Mice(ctx context.Context) ([]string, error) {
	return p.USBDevices(ctx, "mouse")
}

// ParseESSIDs returns the iwconfig lines that carry an ESSID.
func ParseESSIDs(output string) []string {
	var out []string
	for _, line := range nonEmptyLines(output) {
		if strings.Contains(line, "ESSID") {
			out = append(out, line)
		}
	}
	return out
}

// WirelessNetworks lists wireless interfaces with their ESSID.
func (p *Prober) WirelessNetworks(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "iwconfig", "iwconfig 2>/dev/null || true")
	if err != nil {
		return nil, err
	}
	return ParseESSIDs(out), nil
}
