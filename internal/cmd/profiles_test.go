package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestProfilesCmd(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Out: &out}

	cmd := newProfilesCmd(provider)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("profiles failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want header plus 9 profiles:\n%s", len(lines), out.String())
	}
	if fields := strings.Fields(lines[len(lines)-1]); len(fields) != 3 || fields[0] != "pyra" || fields[1] != "git" || fields[2] != "39" {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestProfilesCmd_JSON(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Out: &out, JSONOutput: true}

	cmd := newProfilesCmd(provider)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("profiles failed: %v", err)
	}

	var got []profileJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("got %d profiles, want 9", len(got))
	}
	if got[0].Platform != "pc" || got[0].Version != "classic" || got[0].Handheld || len(got[0].Entries) != 25 {
		t.Errorf("first profile = %+v", got[0])
	}
}
