package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTestGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-gen",
		Short: "Generate Unity-fixture test runners for the given test sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srcs, _ := cmd.Flags().GetStringSlice("src")
			aggregate, _ := cmd.Flags().GetString("aggregate")

			result, err := c.app.TestGen(cmd.Context(), c.cwd(cmd), srcs, aggregate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, runner := range result.RunnerPaths {
				fmt.Fprintln(out, runner) //nolint:errcheck
			}
			fmt.Fprintln(out, result.AggregatePath) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringSlice("src", nil, "test source files to scan")
	cmd.Flags().String("aggregate", "", "path to write the aggregate run_all_tests dispatcher")
	_ = cmd.MarkFlagRequired("aggregate")

	return cmd
}
