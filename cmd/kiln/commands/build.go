package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile a source, archive a library, or link an executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			name, _ := cmd.Flags().GetString("name")
			srcs, _ := cmd.Flags().GetStringSlice("src")
			deps, _ := cmd.Flags().GetStringSlice("dep")

			out, err := c.app.Build(cmd.Context(), c.cwd(cmd), app.TargetKind(kind), name, srcs, deps)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().String("kind", string(app.TargetSource), "target kind: source, library, or executable")
	cmd.Flags().String("name", "", "library or executable name (ignored for kind=source)")
	cmd.Flags().StringSlice("src", nil, "source files (kind=source takes exactly one; kind=library takes many; kind=executable takes object paths)")
	cmd.Flags().StringSlice("dep", nil, "extra dependency paths beyond the scanned include graph")

	return cmd
}
