package main

import (
	"io"
	"testing"
)

func TestParseOptionsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CULT_SEED", "5")
	t.Setenv("CULT_LOG_LEVEL", "warn")

	opts, err := parseOptions([]string{"-seed", "9", "-classic"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Seed != 9 || !opts.Classic {
		t.Fatalf("flags not applied: %+v", opts)
	}
	if opts.LogLevel != "warn" {
		t.Fatalf("expected env log level to survive, got %q", opts.LogLevel)
	}
}

func TestParseOptionsVersion(t *testing.T) {
	opts, err := parseOptions([]string{"-version"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opts.ShowVersion {
		t.Fatal("expected version flag")
	}
}

func TestParseOptionsRejectsBadLevel(t *testing.T) {
	if _, err := parseOptions([]string{"-log-level", "loud"}, io.Discard); err == nil {
		t.Fatal("expected invalid level error")
	}
}

func TestParseOptionsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseOptions([]string{"-no-such-flag"}, io.Discard); err == nil {
		t.Fatal("expected unknown flag error")
	}
}
