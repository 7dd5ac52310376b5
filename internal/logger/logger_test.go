package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"off", LevelOff, false, false},
		{"normal", LevelNormal, false, true},
		{"verbose", LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug %s", "line")
			log.Info("info %s", "line")
			log.Warn("warn line")
			log.Error("error line")
			log.Sync()

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Fatalf("debug output = %v, want %v (out=%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Fatalf("info output = %v, want %v (out=%q)", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "error line"); got != tt.wantInfo {
				t.Fatalf("error output = %v, want %v (out=%q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestLevelMarkers(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelVerbose, &buf)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
	log.Sync()

	out := buf.String()
	for _, marker := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("expected %s marker in output, got %q", marker, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)

	log.Info("hidden")
	log.SetLevel(LevelNormal)
	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected level %d, got %d", LevelNormal, log.GetLevel())
	}
	log.Info("visible")
	log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("message logged while off: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("message missing after SetLevel: %q", out)
	}
}
