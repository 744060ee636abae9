package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [packages...]",
		Short: "Print the manifest path of each package",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			results, err := c.app.Resolve(cmd.Context(), args, options(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if _, err := fmt.Fprintln(out, r.ManifestPath); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
