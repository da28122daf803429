package main

import (
	"github.com/louisboii747/hwmon/internal/cli"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=2.0.1 -X main.commit=abc123 -X main.date=2026-01-01" ./cmd/hwmon
var (
	version = "2.0.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
