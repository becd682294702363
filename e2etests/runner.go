// Package e2etests drives a built palcfg binary the way the game's wrapper
// script does and checks exit statuses and file contents.
package e2etests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes palcfg commands against a sandbox directory.
type Runner struct {
	Cmd string // path to palcfg binary
}

// SetupSandbox creates an empty directory to hold sdlpal.cfg.
func (r *Runner) SetupSandbox() (string, error) {
	return os.MkdirTemp("", "palcfg-e2e-")
}

// TeardownSandbox removes a sandbox directory.
func (r *Runner) TeardownSandbox(path string) error {
	return os.RemoveAll(path)
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes palcfg with the given arguments inside sandbox. PALCFG_*
// variables from the caller's environment are dropped so only args apply.
func (r *Runner) Run(sandbox string, args ...string) RunResult {
	cmd := exec.Command(r.Cmd, args...)
	cmd.Dir = sandbox
	cmd.Env = cleanEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// ConfigPath returns the settings file inside sandbox.
func ConfigPath(sandbox string) string {
	return filepath.Join(sandbox, "sdlpal.cfg")
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PALCFG_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}
