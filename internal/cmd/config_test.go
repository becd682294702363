package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"palcfg/internal/config"
	"palcfg/testutil"

	"github.com/spf13/afero"
)

func TestGet(t *testing.T) {
	app, out, _ := setupTestApp(t, "fullscreen=1\nCD=ogg\nMusicVolume=250\n")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"FullScreen"}, "1"},
		{[]string{"cd"}, "ogg"},
		{[]string{"CD", "--index"}, "2"},
		{[]string{"MusicVolume"}, "100"},
		{[]string{"GamePath"}, ""},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out.Reset()
			cmd := newGetCmd(NewTestProvider(app))
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("get %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestGet_JSON(t *testing.T) {
	app, out, _ := setupTestApp(t, "OPLChip=OPL3\n")
	app.JSON = true

	cmd := newGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"oplchip"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var got entryJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if got.Name != "OPLChip" || got.Value != "OPL3" || got.Default != "OPL2" || got.Format != "OPL2/OPL3" || got.Kind != "enum" {
		t.Errorf("unexpected JSON: %+v", got)
	}
	if got.Index == nil || *got.Index != 1 {
		t.Errorf("index = %v, want 1", got.Index)
	}
}

func TestGet_UnknownSuggests(t *testing.T) {
	app, _, _ := setupTestApp(t, "")

	cmd := newGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"fulscreen"})
	err := cmd.Execute()
	if !errors.Is(err, config.ErrUnknownEntry) {
		t.Fatalf("error = %v, want ErrUnknownEntry", err)
	}
	if !strings.Contains(err.Error(), "did you mean FullScreen") {
		t.Errorf("error %q has no suggestion", err)
	}
}

func TestGet_IndexOnText(t *testing.T) {
	app, _, _ := setupTestApp(t, "")

	cmd := newGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"GamePath", "--index"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrUnsupportedOperation) {
		t.Errorf("error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestSet(t *testing.T) {
	app, out, fs := setupTestApp(t, "GamePath=/games/pal\r\nUnknownKey=kept?\r\n")

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"samplerate", "22050"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !strings.Contains(out.String(), "SampleRate=22050") {
		t.Errorf("output = %q", out.String())
	}

	raw := testutil.ReadFile(t, fs, testPath)
	for _, want := range []string{"SampleRate=22050\r\n", "GamePath=/games/pal\r\n"} {
		if !strings.Contains(raw, want) {
			t.Errorf("file missing %q:\n%s", want, raw)
		}
	}
	if strings.Contains(raw, "UnknownKey") {
		t.Errorf("unknown key survived the save:\n%s", raw)
	}
	if app.Store.AnyChanged() {
		t.Error("file values should match after save")
	}
}

func TestSet_ByIndex(t *testing.T) {
	app, _, _ := setupTestApp(t, "")

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"OPLCore", "3", "--index"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if v, _ := app.Store.EntryValue("OPLCore"); v != "NUKED" {
		t.Errorf("OPLCore = %q, want NUKED", v)
	}

	cmd = newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"OPLCore", "4", "--index"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSet_StrictRejects(t *testing.T) {
	tests := []struct {
		name, value string
	}{
		{"SampleRate", "96000"},
		{"SampleRate", "abc"},
		{"FullScreen", "yes"},
		{"CD", "WAV"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			app, _, fs := setupTestApp(t, "")
			cmd := newSetCmd(NewTestProvider(app))
			cmd.SetArgs([]string{tt.name, tt.value})
			if err := cmd.Execute(); !errors.Is(err, config.ErrInvalidValue) {
				t.Errorf("error = %v, want ErrInvalidValue", err)
			}
			if exists, _ := afero.Exists(fs, testPath); exists {
				t.Error("rejected value was saved")
			}
		})
	}
}
