package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		fmt.Println("Config dir:         ", dir)
		fmt.Println("claude_command:     ", cfg.ClaudeCommand)
		fmt.Println("language:           ", cfg.Language)
		fmt.Println("auto_read:          ", cfg.AutoRead)
		fmt.Println("tts_voice:          ", cfg.TTSVoice)
		fmt.Println("tts_rate:           ", cfg.TTSRate)
		fmt.Println("tts_volume:         ", cfg.TTSVolume)
		fmt.Println("license_server_url: ", cfg.LicenseServerURL)
		fmt.Println("groq_api_key:       ", mask(cfg.GroqAPIKey))
		fmt.Println("azure_speech_key:   ", mask(cfg.AzureSpeechKey))
		fmt.Println("azure_speech_region:", cfg.AzureSpeechRegion)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their default voices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, l := range config.Supported() {
			marker := "  "
			if l.Code == cfg.Language {
				marker = "* "
			}
			fmt.Printf("%s%-8s %-24s %s\n", marker, l.Code, l.Native, l.Voice)
		}
		return nil
	},
}

// mask hides all but the tail of a secret so `config show` output can
// be pasted into bug reports.
func mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configLanguagesCmd)
}
