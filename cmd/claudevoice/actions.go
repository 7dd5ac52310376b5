package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/WojtekL7/claude-voice-assistant/internal/quickactions"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Manage quick-action shortcuts",
}

var actionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the quick actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := quickactions.NewStore(files, log)
		if err != nil {
			return err
		}
		for i, a := range store.List() {
			fmt.Printf("%2d. %-20s %s\n", i+1, a.Label, a.Command)
		}
		return nil
	},
}

var actionsAddCmd = &cobra.Command{
	Use:   "add <label> <command>",
	Short: "Add a quick action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := quickactions.NewStore(files, log)
		if err != nil {
			return err
		}
		if err := store.Add(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Added %q.\n", args[0])
		return nil
	},
}

var actionsRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a quick action by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %q", args[0])
		}
		store, err := quickactions.NewStore(files, log)
		if err != nil {
			return err
		}
		act, err := store.Get(n - 1)
		if err != nil {
			return err
		}
		if err := store.Remove(n - 1); err != nil {
			return err
		}
		fmt.Printf("Removed %q.\n", act.Label)
		return nil
	},
}

func init() {
	actionsCmd.AddCommand(actionsListCmd)
	actionsCmd.AddCommand(actionsAddCmd)
	actionsCmd.AddCommand(actionsRemoveCmd)
}
