package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slangeveld/xtgeo/internal/config"
	"github.com/slangeveld/xtgeo/internal/dialog"
	"github.com/slangeveld/xtgeo/internal/version"
)

// xtg is the process-wide coordinator, constructed once in main before
// any command runs.
var xtg *dialog.Dialog

var rootCmd = &cobra.Command{
	Use:   "xtgdialog",
	Short: "Inspect and exercise the xtgeo dialog and logging subsystem",
	Long: `xtgdialog is a companion tool for the xtgeo dialog subsystem.

It prints the application banner, shows the effective verbosity settings
resolved from the environment and the user config file, and can emit
sample messages at every severity tier for debugging format and color
handling in a given terminal.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var bannerCmd = &cobra.Command{
	Use:   "banner <appname> <appversion>",
	Short: "Print the xtgeo application banner",
	Long: `Print the standard xtgeo startup banner for an application.

Examples:
  xtgdialog banner myapp 0.2.1
  xtgdialog banner myapp 0.2.1 --info "Beta release!"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, _ := cmd.Flags().GetString("info")
		xtg.PrintHeader(args[0], args[1], info)
		return nil
	},
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the effective verbosity settings",
	Long: `Show the verbosity settings the coordinator resolved from defaults,
the user config file and the XTG_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("syslevel        %d\n", xtg.Syslevel())
		fmt.Printf("logging level   %s (numeric %d)\n",
			xtg.LoggingLevel(), xtg.NumericLoggingLevel())
		fmt.Printf("format level    %d\n", xtg.FormatLevel())
		for _, key := range []string{
			config.EnvLoggingLevel, config.EnvLoggingFormat,
			config.EnvVerboseLevel, config.EnvConfigFile,
		} {
			if v, ok := os.LookupEnv(key); ok {
				fmt.Printf("%-17s %s (set)\n", key, v)
			} else {
				fmt.Printf("%-17s (unset)\n", key)
			}
		}
		return nil
	},
}

func init() {
	bannerCmd.Flags().String("info", "", "extra info shown in the banner, e.g. 'Beta release!'")
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(demoCmd)
}

// main is the single boundary where a FatalError from Critical actually
// terminates the process.
func main() {
	xtg = dialog.New()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var fatal *dialog.FatalError
		var usage *usageError
		switch {
		case errors.As(err, &fatal):
			exitWithCode(ExitFatal)
		case errors.As(err, &usage):
			exitWithCode(ExitUsage)
		default:
			exitWithCode(ExitGeneral)
		}
	}
}
