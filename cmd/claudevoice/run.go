package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/app"
	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/i18n"
	"github.com/WojtekL7/claude-voice-assistant/internal/license"
	"github.com/WojtekL7/claude-voice-assistant/internal/quickactions"
)

var noDiskCache bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive voice session (the default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func init() {
	runCmd.Flags().BoolVar(&noDiskCache, "no-disk-cache", false, "keep the synthesized-audio cache in memory only")
}

func runSession(cmd *cobra.Command) error {
	tr := i18n.New(cfg.Language)

	lic, err := license.NewManager(cfg.LicenseServerURL, files, log)
	if err != nil {
		return fmt.Errorf("license state: %w", err)
	}
	actions, err := quickactions.NewStore(files, log)
	if err != nil {
		return fmt.Errorf("quick actions: %w", err)
	}

	a := app.New(cfg, tr, lic, actions, log,
		app.WithDiskCache(!noDiskCache),
	)

	err = a.Run(cmd.Context())
	switch {
	case errors.Is(err, domain.ErrLicenseRequired):
		fmt.Fprintln(os.Stderr, tr.T("license_expired"))
		fmt.Fprintln(os.Stderr, tr.T("buy_license")+": "+lic.PurchaseURL())
		return err
	case errors.Is(err, domain.ErrAssistantNotFound):
		fmt.Fprintf(os.Stderr, "%q not found on PATH; install the Claude CLI or set claude_command in config\n", cfg.ClaudeCommand)
		return err
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}
