package clipboard

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultEnricherTimeout = 2 * time.Second

// CommandEnricher extracts the current page URL from a browser by running
// an external command with the application name as its final argument.
// Extraction is gated by a permission flag and bounded by a timeout; it
// never returns an error.
type CommandEnricher struct {
	enabled bool
	command []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewCommandEnricher builds an enricher. It is permitted only when enabled
// and a command is configured.
func NewCommandEnricher(enabled bool, command []string, timeout time.Duration, logger *zap.Logger) *CommandEnricher {
	if timeout <= 0 {
		timeout = defaultEnricherTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandEnricher{enabled: enabled, command: command, timeout: timeout, logger: logger}
}

// PermissionGranted reports whether enrichment may run at all. When false,
// no I/O is attempted.
func (e *CommandEnricher) PermissionGranted() bool {
	return e.enabled && len(e.command) > 0
}

// ExtractURL asks the configured command for the browser's current URL.
// Every failure path degrades to "".
func (e *CommandEnricher) ExtractURL(ctx context.Context, app string) string {
	if !e.PermissionGranted() {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := append(append([]string{}, e.command[1:]...), app)
	out, err := exec.CommandContext(ctx, e.command[0], args...).Output()
	if err != nil {
		e.logger.Debug("url enrichment failed",
			zap.String("app", app),
			zap.Error(err))
		return ""
	}

	line, _, _ := strings.Cut(string(out), "\n")
	u, ok := ParseURLPayload(line)
	if !ok {
		return ""
	}
	return u
}
