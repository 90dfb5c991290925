package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the CLI logger. Verbose runs get debug-level console
// output; otherwise only warnings and errors are shown.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// consoleProgress prints coarse progress lines as percent accumulates.
// It implements archive.Progress.
type consoleProgress struct {
	enabled bool
	percent float64
	printed int
}

func (p *consoleProgress) Report(message string, increment float64) {
	p.percent += increment
	if !p.enabled {
		return
	}
	step := int(p.percent) / 10
	if step > p.printed {
		p.printed = step
		pct := step * 10
		if pct > 100 {
			pct = 100
		}
		fmt.Printf("%3d%% %s\n", pct, message)
	}
}
