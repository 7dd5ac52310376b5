package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/license"
)

var trialEmail string

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Inspect and manage the license",
}

var licenseStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current license status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lic, err := license.NewManager(cfg.LicenseServerURL, files, log)
		if err != nil {
			return err
		}

		status := lic.Validate(cmd.Context())
		info := lic.LicenseInfo()

		fmt.Println("Status:   ", status)
		if info.LicenseType != "" {
			fmt.Println("Type:     ", info.LicenseType)
		}
		if info.Email != "" {
			fmt.Println("Email:    ", info.Email)
		}
		switch status {
		case license.StatusTrial:
			fmt.Println("Days left:", lic.DaysLeft())
		case license.StatusValid:
			if info.ExpiryDate != nil {
				fmt.Println("Expires:  ", info.ExpiryDate.Format("2006-01-02"))
			}
		case license.StatusTrialExpired, license.StatusExpired, license.StatusInvalid:
			fmt.Println("Purchase: ", lic.PurchaseURL())
		}
		fmt.Println("Device:   ", lic.DeviceID())
		return nil
	},
}

var licenseTrialCmd = &cobra.Command{
	Use:   "trial",
	Short: "Start the 30-day free trial",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lic, err := license.NewManager(cfg.LicenseServerURL, files, log)
		if err != nil {
			return err
		}
		if err := lic.StartTrial(cmd.Context(), trialEmail); err != nil {
			return err
		}
		fmt.Printf("Trial started, %d days left.\n", lic.DaysLeft())
		return nil
	},
}

var licenseActivateCmd = &cobra.Command{
	Use:   "activate <key>",
	Short: "Activate a purchased license key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lic, err := license.NewManager(cfg.LicenseServerURL, files, log)
		if err != nil {
			return err
		}
		if err := lic.Activate(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("License activated.")
		return nil
	},
}

var licenseClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored license state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lic, err := license.NewManager(cfg.LicenseServerURL, files, log)
		if err != nil {
			return err
		}
		if err := lic.Clear(); err != nil {
			return err
		}
		fmt.Println("License state cleared.")
		return nil
	},
}

func init() {
	licenseTrialCmd.Flags().StringVar(&trialEmail, "email", "", "email to register the trial under (optional)")

	licenseCmd.AddCommand(licenseStatusCmd)
	licenseCmd.AddCommand(licenseTrialCmd)
	licenseCmd.AddCommand(licenseActivateCmd)
	licenseCmd.AddCommand(licenseClearCmd)
}
