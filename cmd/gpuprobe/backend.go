package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/probe/angle"
	"github.com/gogpu/probe/cmd/gpuprobe/ui"
)

func backendCmd() *cobra.Command {
	var selectionPath string

	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Show or change the persisted rendering backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := angle.NewSelector(selectionPath)
			sel.Configure()
			fmt.Print(ui.KeyValues("  ",
				ui.KV("backend", ui.Accent(sel.Current().String())),
				ui.KV("file", ui.Muted(selectionPath)),
			))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&selectionPath, "selection",
		defaultSelectionPath(), "Backend selection file path")

	set := &cobra.Command{
		Use:   "set <gl|d3d9|d3d11|d3d11on12>",
		Short: "Persist a backend choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := angle.ParseBackend(args[0])
			if err != nil {
				return err
			}
			angle.NewSelector(selectionPath).Change(b)
			fmt.Println(ui.SuccessMsg("backend set to %s", ui.Accent(b.String())))
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Reset the backend choice to auto",
		RunE: func(cmd *cobra.Command, args []string) error {
			angle.NewSelector(selectionPath).Change(angle.Auto)
			fmt.Println(ui.SuccessMsg("backend reset to %s", ui.Accent("auto")))
			return nil
		},
	}

	cmd.AddCommand(set, reset)
	return cmd
}

// defaultSelectionPath puts the selection file under the user config
// directory, falling back to the working directory when none exists.
func defaultSelectionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "angle_backend"
	}
	return filepath.Join(dir, "gpuprobe", "angle_backend")
}
