package logging

import (
	"io"
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns the root "wellquest" logger. Components derive their own with
// Named. Unknown levels fall back to warn.
func New(opts Options) hclog.Logger {
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "wellquest",
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
	})
}
