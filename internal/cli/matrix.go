// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strided/array"
)

// MatrixFile is the on-disk YAML form of a matrix: rows: [[1, 2], [3, 4]].
type MatrixFile struct {
	Rows [][]float64 `yaml:"rows,flow"`
}

// errNoRows is returned for documents without a rows key.
var errNoRows = errors.New("missing rows")

// DecodeMatrix reads a MatrixFile from r and builds a Dense from it.
func DecodeMatrix(r io.Reader) (*array.Dense[float64], error) {
	var mf MatrixFile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoRows
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if mf.Rows == nil {
		return nil, errNoRows
	}

	return array.FromRows(mf.Rows)
}

// LoadMatrix reads the matrix stored at path.
func LoadMatrix(path string) (*array.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := DecodeMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// EncodeMatrix converts r into its YAML form.
func EncodeMatrix(r array.Readable[float64]) (MatrixFile, error) {
	rows := make([][]float64, r.Rows())
	for i := range rows {
		rows[i] = make([]float64, 0, r.Cols())
	}
	err := r.Do(func(i, _ int, v float64) bool {
		rows[i] = append(rows[i], v)
		return true
	})
	return MatrixFile{Rows: rows}, err
}

// ParseRange parses a range expression: "a:b", "a:", ":b", ":" or a single
// index "k".
func ParseRange(expr string) (array.Range, error) {
	expr = strings.TrimSpace(expr)
	lo, hi, found := strings.Cut(expr, ":")
	if !found {
		k, err := strconv.Atoi(lo)
		if err != nil {
			return array.Range{}, fmt.Errorf("range %q: %w", expr, err)
		}
		return array.Index(k), nil
	}

	var start, end int
	var err error
	if lo != "" {
		if start, err = strconv.Atoi(lo); err != nil {
			return array.Range{}, fmt.Errorf("range %q: start: %w", expr, err)
		}
	}
	if hi == "" {
		return array.From(start), nil
	}
	if end, err = strconv.Atoi(hi); err != nil {
		return array.Range{}, fmt.Errorf("range %q: end: %w", expr, err)
	}

	return array.Span(start, end), nil
}
