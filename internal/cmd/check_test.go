package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCheck_Clean(t *testing.T) {
	app, out, _ := setupTestApp(t, "# comment\nFullScreen=1\nCD=OGG\n")

	cmd := newCheckCmd(NewTestProvider(app))
	if code := exitCode(t, cmd.Execute()); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "No problems") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCheck_MissingFile(t *testing.T) {
	app, _, _ := setupTestApp(t, "")

	cmd := newCheckCmd(NewTestProvider(app))
	if code := exitCode(t, cmd.Execute()); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestCheck_Findings(t *testing.T) {
	app, out, _ := setupTestApp(t, "SampleRate=96000\nFulScreen=1\nCD=WAV\nCD=OGG\nGamePath=anything\n")
	app.JSON = true

	cmd := newCheckCmd(NewTestProvider(app))
	if code := exitCode(t, cmd.Execute()); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	var got []finding
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	want := []finding{
		{Pair: 1, Kind: findingCorrected, Key: "SampleRate", Value: "96000", Corrected: "48000"},
		{Pair: 2, Kind: findingUnknown, Key: "FulScreen", Value: "1", Hint: "FullScreen"},
		{Pair: 3, Kind: findingCorrected, Key: "CD", Value: "WAV", Corrected: "NONE"},
		{Pair: 4, Kind: findingDuplicate, Key: "CD", Value: "OGG"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d findings, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("finding %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCheck_Text(t *testing.T) {
	app, out, _ := setupTestApp(t, "MusicVolume=-3\n")

	cmd := newCheckCmd(NewTestProvider(app))
	if code := exitCode(t, cmd.Execute()); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := strings.TrimSpace(out.String()); got != `pair 1: MusicVolume="-3" is read as "0"` {
		t.Errorf("output = %q", got)
	}
}
