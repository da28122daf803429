package monitor

import "context"

func renderGPU(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	gpus, err := env.Probe.GPUs(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, g := range gpus {
		lines = append(lines,
			g.Description,
			"  PCIe: "+g.PCIe(),
			"  VRAM: "+g.VRAM,
		)
	}
	return lines, nil
}

func renderIntelGPU(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	return env.Probe.IntelGPUs(ctx)
}

func renderKeyboards(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	return env.Probe.Keyboards(ctx)
}

func renderMice(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	return env.Probe.Mice(ctx)
}

func renderWiFi(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	return env.Probe.WirelessNetworks(ctx)
}
