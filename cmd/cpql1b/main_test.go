package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/cutpursuit/internal/problem"
)

// TestRun_BadFormatBeforeLoad rejects an unknown -format before the problem
// file is even read.
func TestRun_BadFormatBeforeLoad(t *testing.T) {
	err := run(zaptest.NewLogger(t), filepath.Join(t.TempDir(), "missing.json"), "", "yaml", 0)
	require.ErrorIs(t, err, problem.ErrFormat)
}

// TestRun_WritesSolution solves a small file end to end.
func TestRun_WritesSolution(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "p.json"), filepath.Join(dir, "s.msgpack")
	require.NoError(t, problem.Save(in, &problem.File{
		Edges:     &problem.EdgeGraph{V: 4, Pairs: [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		Quadratic: &problem.Quadratic{Kind: "identity", Y: []float64{0, 0, 10, 10}},
	}))

	require.NoError(t, run(zaptest.NewLogger(t), in, out, "json", 1))

	fh, err := os.Open(out)
	require.NoError(t, err)
	defer fh.Close()
	var sol problem.Solution
	require.NoError(t, problem.Decode(fh, problem.MsgPack, &sol))
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 9.5, 9.5}, sol.X, 1e-3)
}

// TestRun_MissingInput reports the missing flag.
func TestRun_MissingInput(t *testing.T) {
	assert.Error(t, run(zaptest.NewLogger(t), "", "", "json", 0))
}
