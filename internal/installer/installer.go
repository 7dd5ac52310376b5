// Package installer writes and removes the per-user desktop launcher
// entry so the assistant shows up in the application menu.
package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

const entryFileName = "claude-voice.desktop"

const entryTemplate = `[Desktop Entry]
Version=1.0
Type=Application
Name=Claude Voice Assistant
Comment=Voice control for the Claude CLI assistant
Comment[pl]=Sterowanie głosowe dla asystenta Claude
Exec=%s
Icon=%s
Terminal=true
Categories=Development;Utility;Audio;
Keywords=voice;claude;assistant;dictation;speech;
StartupNotify=false
`

// Option configures the Installer.
type Option func(*Installer)

// WithExecutable overrides the binary path written into the entry.
// Defaults to the running executable.
func WithExecutable(path string) Option {
	return func(i *Installer) { i.execPath = path }
}

// WithApplicationsDir overrides the desktop-entry directory. Defaults
// to $XDG_DATA_HOME/applications or ~/.local/share/applications.
func WithApplicationsDir(dir string) Option {
	return func(i *Installer) { i.appsDir = dir }
}

// Installer manages the desktop-entry file.
type Installer struct {
	execPath string // absolute path to the launched binary
	appsDir  string
	log      *logger.Logger
}

// New creates an installer. Fails only when the running executable
// cannot be resolved and no override is given.
func New(log *logger.Logger, opts ...Option) (*Installer, error) {
	i := &Installer{log: log}
	for _, opt := range opts {
		opt(i)
	}

	if i.execPath == "" {
		path, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolving executable path: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}
		i.execPath = path
	}
	if !filepath.IsAbs(i.execPath) {
		if abs, err := filepath.Abs(i.execPath); err == nil {
			i.execPath = abs
		}
	}

	if i.appsDir == "" {
		i.appsDir = defaultApplicationsDir()
	}
	return i, nil
}

// EntryPath returns where the desktop entry lives (or would live).
func (i *Installer) EntryPath() string {
	return filepath.Join(i.appsDir, entryFileName)
}

// Install writes the desktop entry, marks it executable, and refreshes
// the desktop database. Returns the written path.
func (i *Installer) Install() (string, error) {
	if err := os.MkdirAll(i.appsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", i.appsDir, err)
	}

	path := i.EntryPath()
	if err := os.WriteFile(path, []byte(i.renderEntry()), 0o755); err != nil {
		return "", fmt.Errorf("writing desktop entry: %w", err)
	}

	i.log.Info("desktop entry installed at %s", path)
	i.refreshDatabase()
	return path, nil
}

// Uninstall removes the desktop entry. A missing entry is not an
// error.
func (i *Installer) Uninstall() error {
	path := i.EntryPath()
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			i.log.Info("desktop entry not installed, nothing to remove")
			return nil
		}
		return fmt.Errorf("removing desktop entry: %w", err)
	}

	i.log.Info("desktop entry removed from %s", path)
	i.refreshDatabase()
	return nil
}

func (i *Installer) renderEntry() string {
	root := filepath.Dir(i.execPath)
	return fmt.Sprintf(entryTemplate, i.execPath, filepath.Join(root, "icon.png"))
}

// refreshDatabase asks the desktop environment to re-read the
// applications directory. A missing or failing utility never fails the
// install.
func (i *Installer) refreshDatabase() {
	bin, err := exec.LookPath("update-desktop-database")
	if err != nil {
		i.log.Debug("update-desktop-database not found, skipping refresh")
		return
	}
	if out, err := exec.Command(bin, i.appsDir).CombinedOutput(); err != nil {
		i.log.Debug("update-desktop-database failed: %v (%s)", err, strings.TrimSpace(string(out)))
	}
}

func defaultApplicationsDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "applications")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share", "applications")
	}
	return filepath.Join(home, ".local", "share", "applications")
}
