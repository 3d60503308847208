package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slangeveld/xtgeo/internal/describe"
	"github.com/slangeveld/xtgeo/internal/dialog"
	"github.com/slangeveld/xtgeo/internal/progress"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit sample output at every severity tier",
	Long: `Emit one message per severity tier, a progress run and a
description table, to check how gating, formats and colors behave in the
current terminal and environment.

Examples:
  xtgdialog demo
  xtgdialog demo --syslevel 2
  xtgdialog demo --critical`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("syslevel") {
			n, _ := cmd.Flags().GetInt("syslevel")
			xtg.SetSyslevel(n)
		}
		fmt.Printf("Current syslevel is %d\n\n", xtg.Syslevel())

		xtg.Insane("insane message (level 4)")
		xtg.Trace("trace message (level 3)")
		xtg.Debug("debug message (level 2)")
		xtg.Speak("speak message (level 1)")
		xtg.Say("say message (level -5)")
		xtg.Warn("warn message (level 0)")
		xtg.Error("error message (level -8)")
		xtg.WarnDeprecated("this flag is deprecated")
		xtg.WarnUser("this is a user warning")

		logger := xtg.BasicLogger("xtgdialog.demo", dialog.WithLoggingLevel("INFO"))
		logger.Info("structured logging is configured", "format", xtg.FormatLevel())

		runProgressDemo()
		runDescribeDemo()

		if wantCritical, _ := cmd.Flags().GetBool("critical"); wantCritical {
			// Propagates to main, which prints STOP! and exits.
			return xtg.Critical("critical message (level -9)")
		}
		return nil
	},
}

func runProgressDemo() {
	fmt.Println()
	show := progress.ShouldShowProgress()

	spin := progress.NewSpinner()
	spin.Start("Warming up...")
	time.Sleep(300 * time.Millisecond)
	spin.Stop("Warmed up.")

	rep := progress.New(30, "compute stuff",
		progress.WithSkip(10), progress.WithDisplay(show))
	for i := 0; i < 30; i++ {
		time.Sleep(10 * time.Millisecond)
		rep.Flush(i)
	}
	rep.Finished()
}

func runDescribeDemo() {
	fmt.Println()
	d := describe.New()
	d.Title("Sample description")
	d.Row("Name", "demo object")
	d.Row("Dimensions", "80", "110", "55")
	d.Row("Undefined value", fmt.Sprint(10e32))
	d.Flush()
}

func init() {
	demoCmd.Flags().Int("syslevel", 0, "set syslevel before emitting (0..4)")
	demoCmd.Flags().Bool("critical", false, "finish with a critical message (terminates)")
}
