package render_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/katalvlaran/detrace/determinant"
	"github.com/katalvlaran/detrace/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laplaceReport(t *testing.T) render.Report {
	t.Helper()
	res, err := determinant.Compute([][]float64{{1, 2}, {3, 4}}, determinant.Laplace)
	require.NoError(t, err)

	return render.Report{Result: res}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]render.Format{
		"":         render.Text,
		"TEXT":     render.Text,
		" md ":     render.Markdown,
		"markdown": render.Markdown,
		"json":     render.JSON,
	}
	for in, want := range cases {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestWriteText(t *testing.T) {
	rep := laplaceReport(t)
	rep.Verification = &render.Verification{Reference: -2, Agrees: true}

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, rep, render.Options{Format: render.Text}))
	out := buf.String()

	for _, line := range rep.Steps {
		assert.Contains(t, out, line)
	}
	assert.Contains(t, out, "Laplace expansion: -2 (2×2)\n")
	assert.Contains(t, out, "LU reference: -2 (agrees)\n")
	assert.NotContains(t, out, "\x1b[", "no escapes without color")
}

func TestWriteTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, laplaceReport(t), render.Options{Format: render.Text, Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWriteTextLegacy(t *testing.T) {
	res, err := determinant.Compute([][]float64{{1}}, "gauss", determinant.WithLegacyFallback())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.Report{Result: res}, render.Options{}))
	assert.Equal(t, "Determinant: 0\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	rep := laplaceReport(t)
	rep.Verification = &render.Verification{Reference: -2, Agrees: true}

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, rep, render.Options{Format: render.JSON}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, -2.0, got["determinant"])
	assert.Equal(t, "laplace", got["method"])
	assert.Equal(t, 2.0, got["order"])
	assert.Equal(t, true, got["exact"])
	assert.Len(t, got["steps"], len(rep.Steps))
	assert.Equal(t, map[string]any{"reference": -2.0, "agrees": true}, got["verification"])
}

func TestWriteMarkdown(t *testing.T) {
	rep := laplaceReport(t)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, rep, render.Options{Format: render.Markdown}))
	out := buf.String()

	assert.Contains(t, out, "Laplace expansion")
	assert.Contains(t, out, "LAPLACE EXPANSION")
	assert.Contains(t, out, "-2")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := render.Write(&bytes.Buffer{}, laplaceReport(t), render.Options{Format: "yaml"})
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestTitleAndValue(t *testing.T) {
	assert.Equal(t, "Sarrus' rule", render.Title(determinant.Sarrus))
	assert.Equal(t, "Chiò condensation", render.Title(determinant.Chio))
	assert.Equal(t, "Determinant", render.Title(""))
	assert.Equal(t, "0", render.Value(math.Copysign(0, -1)))
	assert.Equal(t, "0.5", render.Value(0.5))
	assert.Equal(t, "-118", render.Value(-118))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, render.IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, render.IsTerminal(f))
}
