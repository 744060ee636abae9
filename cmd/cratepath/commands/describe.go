package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <package>",
		Short: "Print the manifest path and package fields of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := c.app.Describe(cmd.Context(), args[0], options(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "manifest: %s\n", desc.ManifestPath)
			_, _ = fmt.Fprintf(out, "name:     %s\n", desc.Manifest.Name)
			_, _ = fmt.Fprintf(out, "version:  %s\n", desc.Manifest.Version)
			_, err = fmt.Fprintf(out, "edition:  %s\n", desc.Manifest.Edition)
			return err
		},
	}
}
