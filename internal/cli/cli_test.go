package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strided/array"
	"github.com/katalvlaran/strided/gemm"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { gemm.SetLogger(nil) })

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func fixture(name string) string { return filepath.Join("testdata", name) }

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestGolden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"mul", []string{"mul", fixture("a.yaml"), fixture("b.yaml")}},
		{"mul", []string{"mul", "--kernel", "reference", fixture("a.yaml"), fixture("b.yaml")}},
		{"mul", []string{"mul", "--kernel", "parallel", fixture("a.yaml"), fixture("b.yaml")}},
		{"slice_window", []string{"slice", fixture("sample.yaml"), "--rows", "1:3", "--cols", "1:"}},
		{"slice_row", []string{"slice", fixture("sample.yaml"), "--rows", "0", "--cols", ":2"}},
		{"demo", []string{"demo"}},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			assertGolden(t, tc.name, out)
		})
	}
}

func TestMulYAMLRoundTrip(t *testing.T) {
	out, _, err := execute(t, "--format", "yaml", "mul", fixture("a.yaml"), fixture("b.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "rows: "), out)

	got, err := DecodeMatrix(strings.NewReader(out))
	require.NoError(t, err)
	want, err := array.FromRows([][]float64{{58, 64}, {139, 154}})
	require.NoError(t, err)
	eq, err := array.Equal[float64](want, got)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMulErrors(t *testing.T) {
	_, _, err := execute(t, "mul", fixture("b.yaml"), fixture("b.yaml"))
	require.ErrorIs(t, err, array.ErrShapeMismatch)

	_, _, err = execute(t, "mul", fixture("ragged.yaml"), fixture("b.yaml"))
	require.ErrorIs(t, err, array.ErrRaggedRows)
	assert.Contains(t, err.Error(), "ragged.yaml")

	_, _, err = execute(t, "mul", fixture("norows.yaml"), fixture("b.yaml"))
	require.ErrorIs(t, err, errNoRows)

	_, _, err = execute(t, "mul", fixture("missing.yaml"), fixture("b.yaml"))
	require.Error(t, err)

	_, _, err = execute(t, "mul", "--kernel", "simd", fixture("a.yaml"), fixture("b.yaml"))
	require.EqualError(t, err, `unknown kernel "simd"`)

	_, _, err = execute(t, "--format", "json", "demo")
	require.EqualError(t, err, `invalid format "json": must be one of [text yaml]`)
}

func TestSliceErrors(t *testing.T) {
	_, _, err := execute(t, "slice", fixture("sample.yaml"), "--rows", "2:1")
	require.ErrorIs(t, err, array.ErrInvalidRange)

	_, _, err = execute(t, "slice", fixture("sample.yaml"), "--cols", "0:9")
	require.ErrorIs(t, err, array.ErrOutOfBounds)

	_, _, err = execute(t, "slice", fixture("sample.yaml"), "--rows", "x")
	require.Error(t, err)
}

// TestVerboseLogsDispatch checks --verbose routes gemm debug logs to stderr.
func TestVerboseLogsDispatch(t *testing.T) {
	out, errOut, err := execute(t, "--verbose", "mul", fixture("a.yaml"), fixture("b.yaml"))
	require.NoError(t, err)
	assertGolden(t, "mul", out)
	assert.Contains(t, errOut, "gemm kernel selected")
	assert.Contains(t, errOut, "operands loaded")

	_, errOut, err = execute(t, "mul", fixture("a.yaml"), fixture("b.yaml"))
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "level: "+gemm.CurrentLevel().String()+"\n")
	assert.Contains(t, out, "cpu: "+gemm.CPUName()+"\n")

	out, _, err = execute(t, "--format", "yaml", "info")
	require.NoError(t, err)
	var info Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, CurrentInfo(), info)
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		expr string
		want array.Range
	}{
		{":", array.All()},
		{"2:", array.From(2)},
		{":3", array.To(3)},
		{"1:4", array.Span(1, 4)},
		{" 5 ", array.Index(5)},
		{"0:0", array.Span(0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := ParseRange(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "a", "1:b", "x:2", "1:2:3"} {
		_, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestEncodeMatrixOfView(t *testing.T) {
	m, err := LoadMatrix(fixture("sample.yaml"))
	require.NoError(t, err)
	v, err := m.Slice(array.From(1), array.Index(3))
	require.NoError(t, err)
	defer func() { require.NoError(t, v.Release()) }()

	mf, err := EncodeMatrix(v)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5}, {3}}, mf.Rows)
}
