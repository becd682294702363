package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"palcfg/internal/config"
	"palcfg/internal/configservice"
	"palcfg/internal/labels"
	"palcfg/internal/tui"
	"palcfg/testutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const testPath = "/pal/sdlpal.cfg"

// setupTestApp creates an App for the pc/git profile on an in-memory
// filesystem, loaded from content (no file when content is empty).
func setupTestApp(t *testing.T, content string) (*App, *bytes.Buffer, afero.Fs) {
	t.Helper()
	return setupTestAppFor(t, config.Profile{Platform: config.PlatformPC, Version: config.VersionGit}, content)
}

func setupTestAppFor(t *testing.T, profile config.Profile, content string) (*App, *bytes.Buffer, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		if err := afero.WriteFile(fs, testPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	log := testutil.DiscardLogger()
	store, err := config.NewStoreForProfile(profile, config.WithFs(fs), config.WithLogger(log))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	store.Load(testPath)

	var out bytes.Buffer
	app := &App{
		Store:    store,
		Settings: configservice.Settings{Path: testPath, Profile: profile, LogLevel: logrus.WarnLevel},
		Fs:       fs,
		Labels:   labels.English(),
		Log:      log,
		Out:      &out,
		Err:      &out,
		RunEditor: func(tui.Model) (tui.Result, error) {
			t.Fatal("editor started unexpectedly")
			return tui.ResultExit, nil
		},
	}
	return app, &out, fs
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exit *ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("unexpected error: %v", err)
	}
	return exit.Code
}

func TestRoot_EditorExit(t *testing.T) {
	app, _, fs := setupTestApp(t, "")
	started := false
	app.RunEditor = func(m tui.Model) (tui.Result, error) {
		started = true
		return tui.ResultExit, nil
	}

	cmd := newRootCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if code := exitCode(t, cmd.Execute()); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !started {
		t.Error("editor was not started")
	}
	if exists, _ := afero.Exists(fs, testPath); exists {
		t.Error("leaving the editor wrote the file")
	}
}

func TestRoot_EditorLaunch(t *testing.T) {
	app, _, _ := setupTestApp(t, "")
	app.RunEditor = func(m tui.Model) (tui.Result, error) {
		return tui.ResultLaunch, nil
	}

	cmd := newRootCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"edit"})
	if code := exitCode(t, cmd.Execute()); code != ExitLaunch {
		t.Errorf("exit code = %d, want %d", code, ExitLaunch)
	}
}

func TestRoot_LaunchSettingZeroSkipsEditor(t *testing.T) {
	app, _, _ := setupTestApp(t, "LaunchSetting=0\n")

	cmd := newRootCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if code := exitCode(t, cmd.Execute()); code != ExitLaunch {
		t.Errorf("exit code = %d, want %d", code, ExitLaunch)
	}
}

func TestRoot_EditorError(t *testing.T) {
	app, _, _ := setupTestApp(t, "")
	app.RunEditor = func(m tui.Model) (tui.Result, error) {
		return tui.ResultExit, errors.New("no terminal")
	}

	cmd := newRootCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "no terminal") {
		t.Errorf("error = %v, want editor failure", err)
	}
}

func TestRoot_ArgCount(t *testing.T) {
	app, _, _ := setupTestApp(t, "")
	cmd := newRootCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"pc", "git"})
	if err := cmd.Execute(); err == nil {
		t.Error("two positional arguments should be rejected")
	}
}

// The provider resolves flags and environment itself when no App is given.
func TestProvider_PositionalArgs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pal.cfg")
	testutil.NewFileBuilder("\n").Set("LaunchSetting", "0").Write(t, afero.NewOsFs(), path)

	var out bytes.Buffer
	provider := &AppProvider{Out: &out, Err: &out}
	cmd := newRootCmd(provider)
	cmd.SetArgs([]string{"pyra", "v2017", path})
	if code := exitCode(t, cmd.Execute()); code != ExitLaunch {
		t.Fatalf("exit code = %d, want %d", code, ExitLaunch)
	}

	app, err := provider.Get()
	if err != nil {
		t.Fatal(err)
	}
	if app.Settings.Profile.Platform != config.PlatformPyra || app.Settings.Profile.Version != config.VersionV2017 {
		t.Errorf("profile = %v, want pyra/v2017", app.Settings.Profile)
	}
	if app.Path() != path {
		t.Errorf("path = %q, want %q", app.Path(), path)
	}
}

func TestProvider_Flags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PALCFG_PLATFORM", "pandora")

	var out bytes.Buffer
	provider := &AppProvider{Out: &out, Err: &out}
	cmd := newRootCmd(provider)
	cmd.SetArgs([]string{"get", "WindowHeight", "--file", dir, "-r", "classic"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "800" {
		t.Errorf("pandora/classic WindowHeight = %q, want 800", got)
	}

	app, err := provider.Get()
	if err != nil {
		t.Fatal(err)
	}
	if app.Path() != filepath.Join(dir, configservice.DefaultFileName) {
		t.Errorf("path = %q, want default file inside %s", app.Path(), dir)
	}
}

func TestProvider_BadProfile(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Out: &out, Err: &out}
	cmd := newRootCmd(provider)
	cmd.SetArgs([]string{"list", "--platform", "dreamcast", "--file", t.TempDir()})
	if err := cmd.Execute(); !errors.Is(err, config.ErrUnknownProfile) {
		t.Errorf("error = %v, want ErrUnknownProfile", err)
	}
}

func TestProvider_DirectoryOnAppFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/pal", 0755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	provider := &AppProvider{Fs: fs, Out: &out, Err: &out}
	cmd := newRootCmd(provider)
	cmd.SetArgs([]string{"set", "FullScreen", "1", "--file", "/pal", "-p", "pc", "-r", "git"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if got := testutil.ReadFile(t, fs, "/pal/"+configservice.DefaultFileName); !strings.Contains(got, "FullScreen=1") {
		t.Errorf("settings file content = %q, want FullScreen=1", got)
	}
}
