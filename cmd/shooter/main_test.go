package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

func TestRuntimeConfig(t *testing.T) {
	tests := []struct {
		name    string
		fps     int
		hold    time.Duration
		delay   time.Duration
		wantErr bool
	}{
		{"defaults", 60, 150 * time.Millisecond, 500 * time.Millisecond, false},
		{"zero fps", 0, 150 * time.Millisecond, 500 * time.Millisecond, true},
		{"negative hold", 60, -time.Millisecond, 500 * time.Millisecond, true},
		{"zero repeat delay", 60, 150 * time.Millisecond, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagFPS, flagHold, flagRepeatDelay, flagSeed = tt.fps, tt.hold, tt.delay, 9
			t.Cleanup(func() {
				flagFPS, flagHold, flagRepeatDelay, flagSeed = 60, 150*time.Millisecond, 500*time.Millisecond, 0
			})

			cfg, err := runtimeConfig(100, 40)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if cfg.ScreenW != 100 || cfg.ScreenH != 40 || cfg.TickRate != tt.fps || cfg.Seed != 9 || cfg.KeyHold != tt.hold || cfg.KeyRepeatDelay != tt.delay {
				t.Errorf("cfg = %+v", cfg)
			}
		})
	}
}

func TestOpenLogFile(t *testing.T) {
	logger, closeLog, err := openLogFile("")
	if err != nil || logger != nil {
		t.Fatalf("empty path: logger=%v err=%v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "shooter.log")
	logger, closeLog, err = openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	logger.Debug("enemy destroyed", "score", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "enemy destroyed") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenLogFileBadPath(t *testing.T) {
	_, _, err := openLogFile(filepath.Join(t.TempDir(), "missing", "shooter.log"))
	if err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestLogFileFlagShared(t *testing.T) {
	if rootCmd.LocalNonPersistentFlags().Lookup("log-file") != nil {
		t.Error("log-file should only be registered as a persistent flag")
	}
	if rootCmd.PersistentFlags().Lookup("log-file") == nil {
		t.Fatal("log-file persistent flag missing")
	}
	for _, cmd := range []string{"play", "serve"} {
		sub, _, err := rootCmd.Find([]string{cmd})
		if err != nil {
			t.Fatalf("find %s: %v", cmd, err)
		}
		if sub.LocalFlags().Lookup("log-file") != nil {
			t.Errorf("%s registers its own log-file flag", cmd)
		}
		if sub.InheritedFlags().Lookup("log-file") == nil {
			t.Errorf("%s does not inherit log-file", cmd)
		}
	}
}

func TestPrintGames(t *testing.T) {
	var buf bytes.Buffer
	printGames(&buf, registry.List())

	out := buf.String()
	if !strings.Contains(out, "shooter") || !strings.Contains(out, "Space Shooter") {
		t.Errorf("list output = %q", out)
	}

	buf.Reset()
	printGames(&buf, nil)
	if !strings.Contains(buf.String(), "No games available") {
		t.Errorf("empty list output = %q", buf.String())
	}
}
