package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (%s/%s)\n", config.AppName, config.AppVersion, runtime.GOOS, runtime.GOARCH)
	},
}
