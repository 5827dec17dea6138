package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/saidoc/doclet/builders"
)

func newOutlineCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the outline that drives the method details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := builders.LoadOutline(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), root.String())
			return err
		},
	}
	cmd.Flags().StringVar(&path, "outline", "", "outline file replacing the built-in layout")
	return cmd
}
