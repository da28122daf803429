package probe

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// DefaultXorgLog is searched for the VRAM size of AMD cards.
const DefaultXorgLog = "/var/log/Xorg.0.log"

// GPU is a dedicated graphics adapter found on the PCI bus.
type GPU struct {
	// Description is the full lspci line, bus ID included.
	Description string
	BusID       string
	Vendor      string // "NVIDIA" or "AMD"

	// LinkWidth and MaxLinkWidth are PCIe lane counts; zero when unknown.
	LinkWidth    int
	MaxLinkWidth int

	// VRAM is display text, for example "8192 MB" or "Unknown".
	VRAM string
}

// PCIe formats the link width line.
func (g GPU) PCIe() string {
	if g.LinkWidth == 0 || g.MaxLinkWidth == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("x%d (max x%d)", g.LinkWidth, g.MaxLinkWidth)
}

var linkWidthRe = regexp.MustCompile(`(?s)LnkSta:\s+Speed\s+[^,]+,\s+Width\s+x(\d+).*?\n.*?LnkCap:\s+Speed\s+[^,]+,\s+Width\s+x(\d+)`)

// Fallbacks for the usual lspci ordering where LnkCap precedes LnkSta.
var (
	lnkCapRe = regexp.MustCompile(`LnkCap:.*?Width\s+x(\d+)`)
	lnkStaRe = regexp.MustCompile(`LnkSta:.*?Width\s+x(\d+)`)
)

// ParseLinkWidth extracts the current and maximum PCIe lane counts from
// `lspci -vv` output. ok is false when either value is missing.
func ParseLinkWidth(output string) (current, maximum int, ok bool) {
	if m := linkWidthRe.FindStringSubmatch(output); m != nil {
		return atoi(m[1]), atoi(m[2]), true
	}

	sta := lnkStaRe.FindStringSubmatch(output)
	capm := lnkCapRe.FindStringSubmatch(output)
	if sta == nil || capm == nil {
		return 0, 0, false
	}
	return atoi(sta[1]), atoi(capm[1]), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ParseDedicatedGPUs picks NVIDIA and AMD display controllers out of lspci
// output. Integrated AMD APUs are skipped.
func ParseDedicatedGPUs(output string) []GPU {
	var gpus []GPU
	for _, line := range nonEmptyLines(output) {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D") {
			continue
		}
		if containsAny(line, "APU") {
			continue
		}

		var vendor string
		switch {
		case containsAny(line, "NVIDIA Corporation"):
			vendor = "NVIDIA"
		case containsAny(line, "Advanced Micro Devices, Inc."):
			vendor = "AMD"
		default:
			continue
		}

		gpus = append(gpus, GPU{
			Description: line,
			BusID:       strings.Fields(line)[0],
			Vendor:      vendor,
			VRAM:        "Unknown",
		})
	}
	return gpus
}

// ParseIntelGPUs returns Intel display controller lines from lspci output.
func ParseIntelGPUs(output string) []string {
	var out []string
	for _, line := range nonEmptyLines(output) {
		if containsAny(line, "intel") && containsAny(line, "vga", "3d", "2d") {
			out = append(out, line)
		}
	}
	return out
}

// ParseNvidiaVRAM parses `nvidia-smi --query-gpu=memory.total
// --format=csv,noheader,nounits` output, one MiB figure per GPU.
func ParseNvidiaVRAM(output string) []string {
	var out []string
	for _, line := range nonEmptyLines(output) {
		if containsAny(line, "failed", "error", "not found", "no devices") {
			return nil
		}
		if line == "[N/A]" {
			line = "Unknown"
		}
		out = append(out, line)
	}
	return out
}

// GPUs lists dedicated NVIDIA and AMD adapters with link width and VRAM.
func (p *Prober) GPUs(ctx context.Context) ([]GPU, error) {
	out, err := p.run(ctx, "lspci", "lspci")
	if err != nil {
		return nil, err
	}

	gpus := ParseDedicatedGPUs(out)
	if len(gpus) == 0 {
		return nil, nil
	}

	var nvidiaVRAM []string
	nvidiaIdx := 0
	for i := range gpus {
		g := &gpus[i]

		detail, err := p.run(ctx, "lspci", "lspci -s "+g.BusID+" -vv")
		if err != nil {
			p.log.Debug("lspci -s %s: %v", g.BusID, err)
		} else if cur, maxWidth, ok := ParseLinkWidth(detail); ok {
			g.LinkWidth, g.MaxLinkWidth = cur, maxWidth
		}

		switch g.Vendor {
		case "NVIDIA":
			if nvidiaVRAM == nil {
				nvidiaVRAM = p.nvidiaVRAM(ctx)
			}
			if nvidiaIdx < len(nvidiaVRAM) && nvidiaVRAM[nvidiaIdx] != "Unknown" {
				g.VRAM = nvidiaVRAM[nvidiaIdx] + " MB"
			}
			nvidiaIdx++
		case "AMD":
			g.VRAM = p.amdVRAM()
		}
	}
	return gpus, nil
}

func (p *Prober) nvidiaVRAM(ctx context.Context) []string {
	out, err := p.run(ctx, "nvidia-smi", "nvidia-smi --query-gpu=memory.total --format=csv,noheader,nounits")
	if err != nil {
		p.log.Debug("nvidia-smi: %v", err)
		return []string{}
	}
	return ParseNvidiaVRAM(out)
}

// amdVRAM reports the first VRAM line of the X server log. AMD exposes no
// portable userspace query.
func (p *Prober) amdVRAM() string {
	raw, err := os.ReadFile(DefaultXorgLog)
	if err == nil {
		for _, line := range strings.Split(string(raw), "\n") {
			if containsAny(line, "VRAM") {
				return strings.TrimSpace(line)
			}
		}
	}
	return "Unknown (AMD userspace tools vary)"
}

// IntelGPUs lists Intel display controllers.
func (p *Prober) IntelGPUs(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "lspci", "lspci")
	if err != nil {
		return nil, err
	}
	return ParseIntelGPUs(out), nil
}
