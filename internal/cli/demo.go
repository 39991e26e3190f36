// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strided/array"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through literals, views and write-through",
		Long: `Build a 3x4 literal, take the view b[1:3, 1:4], write through an
exclusive view and through the owner, then check b·I == b.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	b, err := array.FromRows([][]float64{
		{1, 2, 7, 9},
		{3, 4, 8, 5},
		{5, 6, 4, 3},
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "b:\n%s", b)

	rows, cols := array.Span(1, 3), array.Span(1, 4)
	v, err := b.Slice(rows, cols)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "d = b[%v, %v] (stride %d, offset %d):\n%s", rows, cols, v.Stride(), v.Offset(), v)
	if err = v.Release(); err != nil {
		return err
	}

	d, err := b.SliceMut(rows, cols)
	if err != nil {
		return err
	}
	if err = d.Set(1, 1, 5); err != nil {
		return err
	}
	if err = d.Release(); err != nil {
		return err
	}
	if err = b.Set(0, 1, 1); err != nil {
		return err
	}
	fmt.Fprintf(w, "after d[1,1] = 5 and b[0,1] = 1:\n%s", b)

	id, err := array.Identity[float64](b.Cols())
	if err != nil {
		return err
	}
	p, err := array.Multiply[float64](b, id)
	if err != nil {
		return err
	}
	eq, err := array.Equal[float64](b, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "b·I == b: %t\n", eq)

	return nil
}
