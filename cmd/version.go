package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/cronparse/pkg/version"
)

func newVersionCommand(build version.Info) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the cronparse version, commit hash, and build date.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if short, _ := cmd.Flags().GetBool("short"); short {
				_, err := fmt.Fprintln(out, build.Version)
				return err
			}
			_, err := fmt.Fprintln(out, build.String())
			return err
		},
	}
	cmd.Flags().BoolP("short", "s", false, "Show only version number")
	return cmd
}
