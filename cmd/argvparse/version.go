package main

import (
	"github.com/spf13/cobra"

	"argvparse/internal/config"
	"argvparse/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := version.ValidateVersion(); err != nil {
				return err
			}
			if a.cfg.Output != config.OutputText {
				info, err := version.GetInfo()
				if err != nil {
					return err
				}
				return a.renderer.Data(info)
			}
			if detailed {
				return a.renderer.Text(version.GetDetailedVersion())
			}
			return a.renderer.Text(version.GetFormattedVersion())
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "Show all build fields")
	return cmd
}
