// Command gpuprobe diagnoses GPU rendering capabilities from the
// terminal: it runs the same capability probe a host application
// would, and reads or changes the persisted rendering backend choice.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/probe"
	"github.com/gogpu/probe/cmd/gpuprobe/ui"
)

func main() {
	var debug bool

	root := &cobra.Command{
		Use:           "gpuprobe",
		Short:         "Diagnose GPU rendering capabilities",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			probe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(checkCmd())
	root.AddCommand(backendCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
