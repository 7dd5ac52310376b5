package installer

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

func newTestInstaller(t *testing.T) (*Installer, string) {
	t.Helper()
	appsDir := filepath.Join(t.TempDir(), "applications")
	ins, err := New(logger.New(logger.LevelOff, nil),
		WithExecutable("/opt/claude-voice/claudevoice"),
		WithApplicationsDir(appsDir),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return ins, appsDir
}

func entryField(t *testing.T, content, key string) string {
	t.Helper()
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, key+"=") {
			return strings.TrimPrefix(line, key+"=")
		}
	}
	t.Fatalf("entry has no %s field:\n%s", key, content)
	return ""
}

func TestInstallWritesEntry(t *testing.T) {
	ins, appsDir := newTestInstaller(t)

	path, err := ins.Install()
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if want := filepath.Join(appsDir, "claude-voice.desktop"); path != want {
		t.Errorf("got path %s, want %s", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	content := string(data)

	if got := entryField(t, content, "Name"); got != "Claude Voice Assistant" {
		t.Errorf("got Name %q", got)
	}
	if got := entryField(t, content, "Terminal"); got != "true" {
		t.Errorf("got Terminal %q, want true", got)
	}
	if got := entryField(t, content, "Categories"); got != "Development;Utility;Audio;" {
		t.Errorf("got Categories %q", got)
	}
	if !strings.Contains(content, "Keywords=voice;claude;assistant;dictation;speech;") {
		t.Error("entry is missing launcher keywords")
	}
}

func TestInstalledEntryIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no unix permission bits on windows")
	}
	ins, _ := newTestInstaller(t)

	path, err := ins.Install()
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode()&0o111 == 0 {
		t.Errorf("entry mode %v is not executable", info.Mode())
	}
}

func TestExecAndIconAreAbsoluteUnderRoot(t *testing.T) {
	ins, _ := newTestInstaller(t)

	path, err := ins.Install()
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	content := string(data)

	for _, key := range []string{"Exec", "Icon"} {
		val := entryField(t, content, key)
		if !filepath.IsAbs(val) {
			t.Errorf("%s=%q is not absolute", key, val)
		}
		if !strings.HasPrefix(val, "/opt/claude-voice/") {
			t.Errorf("%s=%q is outside the installation root", key, val)
		}
	}
}

func TestInstallWithoutUpdateDesktopDatabase(t *testing.T) {
	// An empty PATH guarantees the refresh utility is missing.
	t.Setenv("PATH", t.TempDir())
	ins, _ := newTestInstaller(t)

	if _, err := ins.Install(); err != nil {
		t.Fatalf("Install failed without update-desktop-database: %v", err)
	}
}

func TestInstallRunsUpdateDesktopDatabase(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake utility uses a shell script")
	}

	binDir := t.TempDir()
	argsFile := filepath.Join(binDir, "args")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\n"
	if err := os.WriteFile(filepath.Join(binDir, "update-desktop-database"), []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake utility: %v", err)
	}
	t.Setenv("PATH", binDir)

	ins, appsDir := newTestInstaller(t)
	if _, err := ins.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("refresh utility was not invoked: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != appsDir {
		t.Errorf("refresh invoked with %q, want %q", got, appsDir)
	}
}

func TestUninstall(t *testing.T) {
	ins, _ := newTestInstaller(t)

	path, err := ins.Install()
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if err := ins.Uninstall(); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("entry still present after uninstall")
	}

	// Removing again is fine.
	if err := ins.Uninstall(); err != nil {
		t.Errorf("Uninstall of missing entry failed: %v", err)
	}
}

func TestDefaultApplicationsDirHonorsXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	ins, err := New(logger.New(logger.LevelOff, nil), WithExecutable("/opt/x/bin"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	want := filepath.Join(dataHome, "applications", "claude-voice.desktop")
	if got := ins.EntryPath(); got != want {
		t.Errorf("got entry path %s, want %s", got, want)
	}
}
