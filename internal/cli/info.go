// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strided/gemm"
)

// Info describes the GEMM dispatch decision of this process.
type Info struct {
	Level       string `yaml:"level"`
	CPU         string `yaml:"cpu"`
	VectorBytes int    `yaml:"vector_bytes"`
	NoOpt       bool   `yaml:"no_opt"`
	RowBlock    int    `yaml:"row_block"`
	ColBlock    int    `yaml:"col_block"`
}

// CurrentInfo snapshots the dispatch state for float64 kernels.
func CurrentInfo() Info {
	t := gemm.TilingFor[float64]()
	return Info{
		Level:       gemm.CurrentLevel().String(),
		CPU:         gemm.CPUName(),
		VectorBytes: gemm.VectorBytes(),
		NoOpt:       gemm.NoOptEnv(),
		RowBlock:    t.RowBlock,
		ColBlock:    t.ColBlock,
	}
}

// String renders one "key: value" line per field.
func (i Info) String() string {
	return fmt.Sprintf("level: %s\ncpu: %s\nvector_bytes: %d\nno_opt: %t\ntiling: %dx%d\n",
		i.Level, i.CPU, i.VectorBytes, i.NoOpt, i.RowBlock, i.ColBlock)
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "info",
		Short:        "Show the selected GEMM kernel and CPU features",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := CurrentInfo()
			return newFormatter(rootOpts, cmd.OutOrStdout()).Value(info.String(), info)
		},
	}
}
