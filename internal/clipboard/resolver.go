package clipboard

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultResolverTimeout = time.Second

// CommandResolver resolves the frontmost application name by running an
// external command (for example xdotool) and taking the first line of its
// output. Any failure, including timeout, yields "".
type CommandResolver struct {
	command []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewCommandResolver builds a resolver around the given command line. An
// empty command produces a resolver that always reports unknown.
func NewCommandResolver(command []string, timeout time.Duration, logger *zap.Logger) *CommandResolver {
	if timeout <= 0 {
		timeout = defaultResolverTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandResolver{command: command, timeout: timeout, logger: logger}
}

// FrontmostApp returns the current frontmost application name, or "" when
// it cannot be determined.
func (r *CommandResolver) FrontmostApp() string {
	if len(r.command) == 0 {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, r.command[0], r.command[1:]...).Output()
	if err != nil {
		r.logger.Debug("frontmost app lookup failed", zap.Error(err))
		return ""
	}

	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
