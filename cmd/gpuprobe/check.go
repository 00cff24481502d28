package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/probe"
	"github.com/gogpu/probe/cmd/gpuprobe/ui"
	"github.com/gogpu/probe/wgpu"
)

func checkCmd() *cobra.Command {
	var (
		sentinelPath string
		buglistPath  string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the GPU stack and report capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []probe.Option
			if sentinelPath != "" {
				sentinel := probe.NewSentinel(sentinelPath)
				if sentinel.LastCheckFailed() && !force {
					fmt.Println(ui.WarnMsg("previous capability check did not finish — the driver probably crashed"))
					fmt.Println(ui.Muted("  re-run with --force to probe again"))
					return nil
				}
				opts = append(opts, probe.WithSentinel(sentinel))
			}
			if buglistPath != "" {
				opts = append(opts, probe.WithDriverBugList(buglistPath))
			}

			prober := probe.NewProber(wgpu.NewDevice(), opts...)
			caps := prober.CheckCapabilities(nil)

			fmt.Println(ui.InfoMsg("GPU capability report"))
			fmt.Print(ui.KeyValues("  ",
				ui.KV("supported", ui.Bool(caps.Supported)),
				ui.KV("transparency", ui.Bool(caps.Transparency)),
			))
			if caps.Supported {
				fmt.Println(ui.SuccessMsg("hardware rendering is usable"))
			} else {
				fmt.Println(ui.ErrorMsg("hardware rendering is not usable — the log shows the failing step"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sentinelPath, "sentinel", "", "Crash sentinel file path")
	cmd.Flags().StringVar(&buglistPath, "buglist", "", "Driver bug list JSON path")
	cmd.Flags().BoolVar(&force, "force", false, "Probe even if the previous check crashed")
	return cmd
}
