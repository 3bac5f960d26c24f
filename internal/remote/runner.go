package remote

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/extremedonkey/castbot-sub005/internal/config"
)

// ExecFunc runs a command and returns its combined output. Injected so tests
// never shell out to a real ssh binary.
type ExecFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runner executes a Plan once over SSH against a fixed target.
type Runner struct {
	user    string
	host    string
	workdir string
	timeout time.Duration
	execCmd ExecFunc
}

// NewRunner creates a Runner for the config's remote target.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		user:    cfg.RemoteUser,
		host:    cfg.RemoteHost,
		workdir: cfg.RemoteDir,
		timeout: cfg.RemoteTimeout,
		execCmd: defaultExec,
	}
}

// NewRunnerWithExec creates a Runner with a custom exec function (tests).
func NewRunnerWithExec(cfg *config.Config, execCmd ExecFunc) *Runner {
	r := NewRunner(cfg)
	r.execCmd = execCmd
	return r
}

func defaultExec(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Run executes the joined plan in the target workdir. The whole call is
// bounded by the configured timeout; host-key checking is disabled because
// the production box is reprovisioned often enough that its key changes.
func (r *Runner) Run(plan Plan) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	remoteCmd := fmt.Sprintf("cd %s && %s", r.workdir, plan.Join())
	args := []string{
		"-o", "StrictHostKeyChecking=no",
		r.user + "@" + r.host,
		remoteCmd,
	}

	out, err := r.execCmd(ctx, "ssh", args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return string(out), fmt.Errorf("remote setup timed out after %s", r.timeout)
		}
		return string(out), fmt.Errorf("remote command failed: %w", err)
	}
	return string(out), nil
}
