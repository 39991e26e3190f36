// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewSliceCommand creates the slice command.
func NewSliceCommand(rootOpts *RootOptions) *cobra.Command {
	var rows, cols string

	cmd := &cobra.Command{
		Use:   "slice <m.yaml>",
		Short: "Print a window of a matrix",
		Long: `Print the window selected by --rows and --cols.

Range expressions are half-open: "a:b", "a:", ":b", ":" or a single index "k".`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(rootOpts, args[0], rows, cols, cmd)
		},
	}
	cmd.Flags().StringVar(&rows, "rows", ":", "row range")
	cmd.Flags().StringVar(&cols, "cols", ":", "column range")

	return cmd
}

func runSlice(opts *RootOptions, path, rowExpr, colExpr string, cmd *cobra.Command) error {
	r, err := ParseRange(rowExpr)
	if err != nil {
		return err
	}
	c, err := ParseRange(colExpr)
	if err != nil {
		return err
	}
	m, err := LoadMatrix(path)
	if err != nil {
		return err
	}

	v, err := m.Slice(r, c)
	if err != nil {
		return err
	}
	defer func() { _ = v.Release() }()
	opts.log().Debug("view",
		zap.Stringer("rows", r), zap.Stringer("cols", c),
		zap.Int("offset", v.Offset()), zap.Int("stride", v.Stride()))

	return newFormatter(opts, cmd.OutOrStdout()).Matrix(v)
}
