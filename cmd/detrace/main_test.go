package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/detrace/determinant"
	"github.com/katalvlaran/detrace/internal/logging"
	"github.com/katalvlaran/detrace/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonResult struct {
	Determinant  float64  `json:"determinant"`
	Steps        []string `json:"steps"`
	Method       string   `json:"method"`
	Order        int      `json:"order"`
	Verification *struct {
		Reference float64 `json:"reference"`
		Agrees    bool    `json:"agrees"`
	} `json:"verification"`
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func decodeJSON(t *testing.T, s string) jsonResult {
	t.Helper()
	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(s), &res), s)

	return res
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "detrace version 0.1.0\n", out)
}

func TestComputeInline(t *testing.T) {
	out, _, err := execute(t, "", "compute", "-m", "sarrus", "--matrix", "1,2;3,4", "-o", "json")
	require.NoError(t, err)

	res := decodeJSON(t, out)
	assert.Equal(t, -2.0, res.Determinant)
	assert.Equal(t, "sarrus", res.Method)
	assert.Equal(t, 2, res.Order)
	assert.Nil(t, res.Verification)
}

func TestComputeVerifyText(t *testing.T) {
	out, _, err := execute(t, "", "compute", "--matrix", "1 0 2; -1 5 0; 0 3 1", "--verify", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "LAPLACE EXPANSION")
	assert.Contains(t, out, "Laplace expansion: -1 (3×3)")
	assert.Contains(t, out, "(agrees)")
}

func TestComputeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	doc := "method: chio\nchio_policy: scaled\nmatrix:\n  - [2, 1, 0, 0]\n  - [1, 2, 1, 0]\n  - [0, 1, 2, 1]\n  - [0, 0, 1, 2]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "", "compute", "-f", path, "-o", "json")
	require.NoError(t, err)
	res := decodeJSON(t, out)
	assert.Equal(t, "chio", res.Method)
	assert.Equal(t, 60.0, res.Determinant)

	// Explicit flags win over document fields.
	out, _, err = execute(t, "", "compute", "-f", path, "-o", "json", "--chio-policy", "normalized", "--verify")
	require.NoError(t, err)
	res = decodeJSON(t, out)
	assert.InDelta(t, 5.0, res.Determinant, 1e-12)
	require.NotNil(t, res.Verification)
	assert.True(t, res.Verification.Agrees)
}

func TestComputeStdin(t *testing.T) {
	out, _, err := execute(t, `{"method":"laplace","matrix":[[2,""],["1",3]]}`, "compute", "-f", "-", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, 6.0, decodeJSON(t, out).Determinant)
}

func TestComputeMarkdown(t *testing.T) {
	out, _, err := execute(t, "", "compute", "--matrix", "1,2;3,4", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Laplace expansion")
	assert.Contains(t, out, "-2")
}

func TestComputeErrors(t *testing.T) {
	_, _, err := execute(t, "", "compute")
	assert.ErrorIs(t, err, errNoMatrix)

	_, _, err = execute(t, "", "compute", "-m", "gauss", "--matrix", "1,2;3,4")
	assert.ErrorIs(t, err, determinant.ErrUnknownMethod)

	_, _, err = execute(t, "", "compute", "--matrix", "1,2,3;4,5,6")
	assert.ErrorIs(t, err, determinant.ErrInvalidInput)

	_, _, err = execute(t, "", "compute", "--matrix", "7")
	assert.ErrorIs(t, err, determinant.ErrInvalidInput)

	_, _, err = execute(t, "", "compute", "--matrix", "1,2;3,4", "-o", "xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	_, _, err = execute(t, "", "compute", "--matrix", "1,2;3,4", "--chio-policy", "halved")
	assert.ErrorIs(t, err, determinant.ErrUnknownPolicy)

	_, _, err = execute(t, "", "compute", "--matrix", "1,2;3,4", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = execute(t, "", "compute", "--matrix", "1,2;3,4", "--color", "sometimes")
	assert.Error(t, err)
}

func TestComputeLegacy(t *testing.T) {
	out, _, err := execute(t, "", "compute", "-m", "gauss", "--legacy", "--matrix", "1,2;3,4", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "Determinant: 0\n", out)
}

func TestRandom(t *testing.T) {
	out, _, err := execute(t, "", "random", "--size", "9", "--seed", "7", "-m", "chio", "-o", "json", "--verify")
	require.NoError(t, err)

	res := decodeJSON(t, out)
	assert.Equal(t, 6, res.Order)
	require.NotNil(t, res.Verification)
	assert.True(t, res.Verification.Agrees)

	again, _, err := execute(t, "", "random", "--size", "9", "--seed", "7", "-m", "chio", "-o", "json", "--verify")
	require.NoError(t, err)
	assert.Equal(t, out, again, "a fixed seed is repeatable")
}

func TestRandomLogsSeed(t *testing.T) {
	_, errOut, err := execute(t, "", "random", "--size", "1", "--seed", "3", "--log-level", "info", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "seed=3")
	assert.Contains(t, errOut, "size=2")
}

func TestClampOrder(t *testing.T) {
	assert.Equal(t, 2, clampOrder(-1))
	assert.Equal(t, 2, clampOrder(2))
	assert.Equal(t, 4, clampOrder(4))
	assert.Equal(t, 6, clampOrder(60))
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	a := &app{out: &out, errOut: &errOut}
	a.logger = newTestLogger(&errOut)

	assert.NoError(t, a.serve(ctx, "127.0.0.1:0"))
}

func newTestLogger(w *bytes.Buffer) *slog.Logger {
	return logging.NewWithWriter(w, slog.LevelDebug)
}
