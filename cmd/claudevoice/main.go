// Claude Voice Assistant — voice control for the Claude CLI.
//
// Usage:
//
//	claudevoice [run] [-v] [--quiet]
//	claudevoice install | uninstall
//	claudevoice license <status|trial|activate|clear>
//	claudevoice config <show|set>
//	claudevoice actions <list|add|remove>
package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/config"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

var (
	verbose bool
	quiet   bool
	logFile string

	log   *logger.Logger
	files *storage.FileStore
	cfg   *config.Config

	logClose func()
)

var rootCmd = &cobra.Command{
	Use:           "claudevoice",
	Short:         "Voice control for the Claude CLI assistant",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}

		log = logger.New(logLevel(), openLogOutput(dir))

		// Third-party libraries that use the default log package go to
		// the same place, never the terminal.
		stdlog.SetOutput(log.StdLogger().Writer())
		stdlog.SetFlags(0)

		files = storage.NewFileStore(dir, log)
		cfg, err = config.Load(files, log)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
		if logClose != nil {
			logClose()
		}
	},
	// Bare `claudevoice` starts the interactive session.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func logLevel() logger.Level {
	switch {
	case quiet:
		return logger.LevelOff
	case verbose:
		return logger.LevelVerbose
	}
	return logger.LevelNormal
}

// openLogOutput opens the log file inside the config dir. The TUI owns
// the terminal, so stderr is only the fallback when the file cannot be
// opened.
func openLogOutput(dir string) io.Writer {
	path := logFile
	if path == "" {
		path = filepath.Join(dir, config.LogFileName)
	}
	if path == "stderr" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr
	}
	logClose = func() { f.Close() }
	return f
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose/debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "disable all logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default <config-dir>/"+config.LogFileName+", \"stderr\" for console)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(licenseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
