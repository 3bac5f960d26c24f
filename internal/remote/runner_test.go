package remote

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/extremedonkey/castbot-sub005/internal/config"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.RemoteUser = "deploy"
	cfg.RemoteHost = "example.com"
	cfg.RemoteDir = "/srv/bot"
	return cfg
}

func TestRunner_Run_BuildsSSHInvocation(t *testing.T) {
	var gotName string
	var gotArgs []string

	cfg := testConfig()
	runner := NewRunnerWithExec(cfg, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte("ok\n"), nil
	})

	plan := NewPlan(Step{Name: "check", Command: "echo check"})
	output, err := runner.Run(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "ok\n" {
		t.Errorf("expected combined output, got %q", output)
	}

	if gotName != "ssh" {
		t.Errorf("expected ssh invocation, got %q", gotName)
	}

	joined := strings.Join(gotArgs, " ")
	if !strings.Contains(joined, "-o StrictHostKeyChecking=no") {
		t.Errorf("host-key checking should be disabled: %q", joined)
	}
	if !strings.Contains(joined, "deploy@example.com") {
		t.Errorf("expected user@host target in %q", joined)
	}

	remoteCmd := gotArgs[len(gotArgs)-1]
	if !strings.HasPrefix(remoteCmd, "cd /srv/bot && ") {
		t.Errorf("remote command should start in the workdir: %q", remoteCmd)
	}
	if !strings.Contains(remoteCmd, plan.Join()) {
		t.Errorf("remote command should contain the joined plan: %q", remoteCmd)
	}
}

func TestRunner_Run_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.RemoteTimeout = 50 * time.Millisecond

	runner := NewRunnerWithExec(cfg, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		// Simulate a hung remote call that only returns when cancelled
		<-ctx.Done()
		return nil, ctx.Err()
	})

	start := time.Now()
	_, err := runner.Run(ProductionLoggingPlan())
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("expected timeout error, got %v", err)
	}
	if elapsed > 5*time.Second {
		t.Errorf("timeout was not enforced, took %s", elapsed)
	}
}

func TestRunner_Run_RemoteFailure(t *testing.T) {
	cfg := testConfig()
	runner := NewRunnerWithExec(cfg, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("step 2 failed\n"), context.Canceled // any non-nil error stands in for a non-zero exit
	})

	output, err := runner.Run(ProductionLoggingPlan())
	if err == nil {
		t.Fatal("expected error for failing remote command")
	}
	if !strings.Contains(err.Error(), "remote command failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if output != "step 2 failed\n" {
		t.Errorf("partial output should be preserved, got %q", output)
	}
}
