package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the app in the desktop application menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := installer.New(log)
		if err != nil {
			return err
		}
		path, err := inst.Install()
		if err != nil {
			return err
		}
		fmt.Println("Desktop entry installed:", path)
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the desktop application menu entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := installer.New(log)
		if err != nil {
			return err
		}
		if err := inst.Uninstall(); err != nil {
			return err
		}
		fmt.Println("Desktop entry removed:", inst.EntryPath())
		return nil
	},
}
