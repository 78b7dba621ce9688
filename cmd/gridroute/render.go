package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/internal/problem"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the problem lattice as an ASCII grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := problem.Load(flags.file)
			if err != nil {
				return err
			}
			l := p.Lattice()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lattice %d×%d, %d of %d cells present", l.Columns(), l.Rows(), l.Len(), l.Size())
			fmt.Fprint(out, l.String())
			return nil
		},
	}
}
