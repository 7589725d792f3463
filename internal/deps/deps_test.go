package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheck(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: ""},
	}

	results := Check(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for unset command: %#v", results[2])
	}
}

func TestDefaultsCoverPlayersAndEngines(t *testing.T) {
	var commands []string
	for _, req := range Defaults() {
		commands = append(commands, req.Command)
	}
	for _, want := range []string{"paplay", "pw-play", "aplay", "ffplay", "mpv", "espeak", "spd-say", "festival"} {
		found := false
		for _, cmd := range commands {
			if cmd == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("defaults missing %q", want)
		}
	}
}
