// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/strided/array"
	"github.com/katalvlaran/strided/gemm"
)

// kernelNames maps --kernel values to gemm levels; "auto" uses init-time dispatch.
var kernelNames = map[string]gemm.Level{
	"reference": gemm.LevelReference,
	"blocked":   gemm.LevelBlocked,
	"parallel":  gemm.LevelParallel,
}

// NewMulCommand creates the mul command.
func NewMulCommand(rootOpts *RootOptions) *cobra.Command {
	var kernel string

	cmd := &cobra.Command{
		Use:   "mul <a.yaml> <b.yaml>",
		Short: "Multiply two matrices",
		Long: `Load two matrices and print their product a·b.

The kernel is chosen by CPU dispatch unless --kernel pins one of
reference, blocked or parallel.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMul(rootOpts, kernel, args[0], args[1], cmd)
		},
	}
	cmd.Flags().StringVar(&kernel, "kernel", "auto", "kernel family (auto|reference|blocked|parallel)")

	return cmd
}

func runMul(opts *RootOptions, kernel, pathA, pathB string, cmd *cobra.Command) error {
	log := opts.log()

	var mopts []array.Option[float64]
	if kernel != "auto" {
		l, ok := kernelNames[kernel]
		if !ok {
			return fmt.Errorf("unknown kernel %q", kernel)
		}
		mopts = append(mopts, array.WithLevel[float64](l))
	}

	a, err := LoadMatrix(pathA)
	if err != nil {
		return err
	}
	b, err := LoadMatrix(pathB)
	if err != nil {
		return err
	}
	log.Debug("operands loaded",
		zap.String("a", pathA), zap.Int("a_rows", a.Rows()), zap.Int("a_cols", a.Cols()),
		zap.String("b", pathB), zap.Int("b_rows", b.Rows()), zap.Int("b_cols", b.Cols()))

	c, err := array.Multiply(a, b, mopts...)
	if err != nil {
		return err
	}
	log.Debug("product computed", zap.Int("rows", c.Rows()), zap.Int("cols", c.Cols()))

	return newFormatter(opts, cmd.OutOrStdout()).Matrix(c)
}
