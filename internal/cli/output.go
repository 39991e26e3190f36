// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strided/array"
)

// OutputFormatter handles text vs YAML output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// newFormatter builds a formatter for the command's stdout.
func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// Matrix writes r either as bracketed rows or as a MatrixFile document.
func (f *OutputFormatter) Matrix(r array.Readable[float64]) error {
	if f.Format != "yaml" {
		_, err := fmt.Fprint(f.Writer, r.String())
		return err
	}
	mf, err := EncodeMatrix(r)
	if err != nil {
		return err
	}
	return f.yaml(mf)
}

// Value writes v as YAML, or as text via its fmt representation.
func (f *OutputFormatter) Value(text string, v any) error {
	if f.Format == "yaml" {
		return f.yaml(v)
	}
	_, err := fmt.Fprint(f.Writer, text)
	return err
}

func (f *OutputFormatter) yaml(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
