package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestOrderCommand_Grid(t *testing.T) {
	out, err := run(t, "order", "--grid", "3x3", "--perm", "--metrics", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "n=9 arcs=24 ")
	require.Contains(t, out, "sequence: [")
	require.Contains(t, out, "mindeg_orderings_total 1")
}

func TestOrderCommand_EdgeListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("# square\n0 1\n1 2\n\n2 3\n3 0\n"), 0o600))

	out, err := run(t, "order", "--input", path, "--single", "--log-level", "error")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "n=4 arcs=8 "), out)
}

func TestOrderCommand_InputChoice(t *testing.T) {
	_, err := run(t, "order", "--log-level", "error")
	require.ErrorIs(t, err, errInputChoice)

	_, err = run(t, "order", "--grid", "2x2", "--path", "3", "--log-level", "error")
	require.ErrorIs(t, err, errInputChoice)

	_, err = run(t, "order", "--grid", "three", "--log-level", "error")
	require.Error(t, err)
}

func TestOrderCommand_Env(t *testing.T) {
	t.Setenv("MINDEG_PATH", "5")
	t.Setenv("MINDEG_DELTA", "-1")
	_, err := run(t, "order", "--log-level", "error")
	require.ErrorContains(t, err, "--delta")

	t.Setenv("MINDEG_DELTA", "2")
	out, err := run(t, "order", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "n=5 arcs=8 ")
}

func TestReadEdgeList(t *testing.T) {
	g, err := readEdgeList(strings.NewReader("0 3\n# comment\n  1 3 \n3 3\n"))
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.True(t, g.HasEdge(1, 3))
	require.True(t, g.HasLoop(3))
	require.Equal(t, 0, g.Degree(2))

	for _, bad := range []string{"0\n", "0 1 2\n", "a 1\n", "-1 2\n", "99999999999999999999 1\n"} {
		_, err := readEdgeList(strings.NewReader(bad))
		require.Error(t, err, bad)
	}

	_, err = readEdgeList(strings.NewReader("0 1\n\n0 999999999999999\n"))
	require.EqualError(t, err, "line 3: vertex id 999999999999999 exceeds 16777215")
}
