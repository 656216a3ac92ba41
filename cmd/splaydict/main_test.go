package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeDict(t, "tree\tgreen\nfun\tdata structures\ntree\tbalanced\n")
	for _, args := range [][]string{
		{"splaydict", "--file", path, "list"},
		{"splaydict", "--file", path, "lookup", "tree", "fun"},
		{"splaydict", "--file", path, "--log-level", "debug", "tree", "--touch", "fun"},
	} {
		assert.NoError(t, run(args), "%v", args)
	}
}

func TestRun_Errors(t *testing.T) {
	path := writeDict(t, "tree\tgreen\n")
	assert.Error(t, run([]string{"splaydict", "--file", filepath.Join(t.TempDir(), "missing"), "list"}))
	assert.Error(t, run([]string{"splaydict", "--file", path, "--log-level", "loud", "list"}))
	assert.Error(t, run([]string{"splaydict", "--file", path, "lookup"}))
	assert.Error(t, run([]string{"splaydict", "--file", writeDict(t, "broken line\n"), "list"}))

	err := run([]string{"splaydict", "--file", path, "lookup", "tree", "nope"})
	require.Error(t, err)
	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 2, ec.ExitCode())
}
