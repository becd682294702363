package e2etests

import (
	"os"
	"strings"
	"testing"
)

type testCase struct {
	Name string
	Fn   func(t *testing.T, r *Runner, sandbox string)
}

var testCases = []testCase{
	{"launch_sets_launch_setting", caseLaunch},
	{"launch_setting_zero_skips_editor", caseSkipEditor},
	{"set_get_roundtrip", caseSetGet},
	{"set_rejects_invalid", caseSetInvalid},
	{"check_reports_corrections", caseCheck},
	{"positional_arguments", casePositional},
	{"unknown_profile", caseUnknownProfile},
}

func TestE2E(t *testing.T) {
	cmd := os.Getenv("PALCFG_CMD")
	if cmd == "" {
		t.Skip("PALCFG_CMD environment variable not set; skipping e2e tests")
	}

	runner := &Runner{Cmd: cmd}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			sandbox, err := runner.SetupSandbox()
			if err != nil {
				t.Fatalf("failed to setup sandbox: %v", err)
			}
			defer runner.TeardownSandbox(sandbox)

			tc.Fn(t, runner, sandbox)
		})
	}
}

func writeConfig(t *testing.T, sandbox, content string) {
	t.Helper()
	if err := os.WriteFile(ConfigPath(sandbox), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readConfig(t *testing.T, sandbox string) string {
	t.Helper()
	raw, err := os.ReadFile(ConfigPath(sandbox))
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func expectExit(t *testing.T, res RunResult, code int) {
	t.Helper()
	if res.ExitCode != code {
		t.Fatalf("exit code = %d, want %d\nstdout: %s\nstderr: %s", res.ExitCode, code, res.Stdout, res.Stderr)
	}
}

func caseLaunch(t *testing.T, r *Runner, sandbox string) {
	writeConfig(t, sandbox, "FullScreen=1\r\nLaunchSetting=1\r\n")
	res := r.Run(sandbox, "launch")
	expectExit(t, res, 11)
	if res.Stderr != "" {
		t.Errorf("launch printed to stderr: %q", res.Stderr)
	}
	got := readConfig(t, sandbox)
	if !strings.Contains(got, "LaunchSetting=0\r\n") || !strings.Contains(got, "FullScreen=1\r\n") {
		t.Errorf("unexpected file:\n%q", got)
	}
}

func caseSkipEditor(t *testing.T, r *Runner, sandbox string) {
	writeConfig(t, sandbox, "LaunchSetting=0\n")
	expectExit(t, r.Run(sandbox), 11)
}

func caseSetGet(t *testing.T, r *Runner, sandbox string) {
	expectExit(t, r.Run(sandbox, "set", "musicvolume", "55"), 0)
	res := r.Run(sandbox, "get", "MusicVolume")
	expectExit(t, res, 0)
	if strings.TrimSpace(res.Stdout) != "55" {
		t.Errorf("get MusicVolume = %q, want 55", res.Stdout)
	}
}

func caseSetInvalid(t *testing.T, r *Runner, sandbox string) {
	res := r.Run(sandbox, "set", "MusicVolume", "150")
	expectExit(t, res, 1)
	if !strings.Contains(res.Stderr, "invalid value") {
		t.Errorf("stderr = %q, want invalid value", res.Stderr)
	}
	if _, err := os.Stat(ConfigPath(sandbox)); !os.IsNotExist(err) {
		t.Error("rejected set created the file")
	}
}

func caseCheck(t *testing.T, r *Runner, sandbox string) {
	writeConfig(t, sandbox, "SampleRate=96000\n")
	res := r.Run(sandbox, "check")
	expectExit(t, res, 1)
	if !strings.Contains(res.Stdout, `SampleRate="96000" is read as "48000"`) {
		t.Errorf("stdout = %q", res.Stdout)
	}
}

func casePositional(t *testing.T, r *Runner, sandbox string) {
	writeConfig(t, sandbox, "LaunchSetting=0\n")
	expectExit(t, r.Run(sandbox, "pandora", "classic", ConfigPath(sandbox)), 11)
}

func caseUnknownProfile(t *testing.T, r *Runner, sandbox string) {
	res := r.Run(sandbox, "list", "--platform", "gp2x")
	expectExit(t, res, 1)
	if !strings.Contains(res.Stderr, "unknown profile") {
		t.Errorf("stderr = %q", res.Stderr)
	}
}
