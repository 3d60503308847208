package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slangeveld/xtgeo/internal/userconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage xtgeo dialog configuration",
	Long: `Manage the xtgeo dialog defaults file.

Configuration is stored in ~/.config/xtgeo/dialog.toml (override with
XTG_CONFIG). Environment variables always win over file values.

Examples:
  xtgdialog config get logging_level
  xtgdialog config set verbose_level 2
  xtgdialog config list`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := userconfig.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		value, ok := cfg.Get(args[0])
		if !ok {
			fmt.Fprintln(os.Stderr, "Available keys:")
			printAvailableKeys()
			return &usageError{msg: fmt.Sprintf("unknown config key: %s", args[0])}
		}

		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := userconfig.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "Available keys:")
			printAvailableKeys()
			return &usageError{msg: err.Error()}
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := userconfig.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		for _, key := range sortedKeys() {
			value, _ := cfg.Get(key)
			fmt.Printf("%-17s %s\n", key, value)
		}
		return nil
	},
}

func sortedKeys() []string {
	keys := make([]string, 0, len(userconfig.AvailableKeys()))
	for k := range userconfig.AvailableKeys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printAvailableKeys() {
	descriptions := userconfig.AvailableKeys()
	for _, k := range sortedKeys() {
		fmt.Fprintf(os.Stderr, "  %s - %s\n", k, descriptions[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}
