package main

import (
	"testing"

	"chime/internal/config"
)

func TestApplyServeFlags(t *testing.T) {
	cfg := config.Default()
	flags := serveFlags{
		host:      "0.0.0.0",
		port:      9999,
		soundFile: "/tmp/ding.wav",
	}
	changed := map[string]bool{"host": true, "sound": true}

	applyServeFlags(&cfg, flags, func(name string) bool { return changed[name] })

	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("host not overridden: %q", cfg.Server.Host)
	}
	if cfg.Server.Port == 9999 {
		t.Fatal("port should keep its config value when the flag was not set")
	}
	if cfg.Notify.SoundFile != "/tmp/ding.wav" {
		t.Fatalf("sound file not overridden: %q", cfg.Notify.SoundFile)
	}
}

func TestResolveBindHostKeepsPlainHost(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"

	if err := resolveBindHost(&cfg); err != nil {
		t.Fatalf("resolve bind host: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("host changed without interface settings: %q", cfg.Server.Host)
	}
}

func TestResolveBindHostUnknownInterface(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Interface = "does-not-exist-0"

	if err := resolveBindHost(&cfg); err == nil {
		t.Fatal("expected error for unknown interface")
	}
}

func TestIsLoopbackHost(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"127.0.0.1", true},
		{"localhost", true},
		{"::1", true},
		{"0.0.0.0", false},
		{"192.168.1.20", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isLoopbackHost(tc.host); got != tc.want {
			t.Errorf("isLoopbackHost(%q) = %v, want %v", tc.host, got, tc.want)
		}
	}
}
