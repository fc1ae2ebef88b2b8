package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/daniacca/genchem/internal/genchem/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerate_Text(t *testing.T) {
	out, _, err := execute(t, "generate", "--seed", "42", "--color", "never")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, ":: SEED = 42 ::\n"))
	assert.Contains(t, out, ":: ELEMENT TABLE ::\n")
	assert.Contains(t, out, ":: REACTION TABLE ::\n")
	assert.NotContains(t, out, "\x1b[")

	again, _, err := execute(t, "generate", "--seed", "42", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_JSON(t *testing.T) {
	out, _, err := execute(t, "generate", "-s", "7", "-n", "4", "--charge", "--solvent", "--format", "json")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "generated-7", doc.Name)
	require.NotNil(t, doc.Seed)
	assert.Equal(t, uint64(7), *doc.Seed)
	assert.True(t, doc.TrackCharge)
	require.Len(t, doc.Species, 5)
	assert.Equal(t, genchem.SolventName, doc.Species[4].Name)
	assert.True(t, doc.Species[4].Inert)
	for _, r := range doc.Reactions {
		assert.NotContains(t, r.Equation, "Solvent")
	}
}

func TestGenerate_ChemSimIndexed(t *testing.T) {
	out, _, err := execute(t, "generate", "--seed", "3", "--species", "3", "--naming", "indexed", "--format", "chemsim")
	require.NoError(t, err)
	assert.Contains(t, out, "ele S1 teal\n")
	assert.Contains(t, out, "ele S3 darkorange\n")
}

func TestGenerate_ColorAlways(t *testing.T) {
	out, _, err := execute(t, "generate", "--seed", "42", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestGenerate_InvalidFlags(t *testing.T) {
	tests := [][]string{
		{"generate", "--format", "xml"},
		{"generate", "--color", "rainbow"},
		{"generate", "--naming", "greek"},
		{"generate", "--max-order", "0"},
		{"generate", "--temperature", "0"},
		{"generate", "--mass-max", "0"},
		{"generate", "extra-arg"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_LogsAtInfo(t *testing.T) {
	_, errOut, err := execute(t, "generate", "--seed", "1", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[INFO] Chemistry generated: seed=1")
}

const abcYAML = `name: abc
species:
  - name: A
    mass: 1
    free_energy: 0
  - name: B
    mass: 2
    free_energy: 10
  - name: C
    mass: 3
    free_energy: -5
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(abcYAML), 0o644))

	out, _, err := execute(t, "load", path)
	require.NoError(t, err)
	assert.NotContains(t, out, ":: SEED")
	assert.Contains(t, out, "A + B -> C\t  ΔG = -15\n")

	out, _, err = execute(t, "load", path, "--max-order", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "->")

	_, _, err = execute(t, "load", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "load")
	assert.Error(t, err)
}

func TestEnumerate(t *testing.T) {
	out, _, err := execute(t, "enumerate", "--n", "2", "--max-order", "2")
	require.NoError(t, err)
	assert.Equal(t, "[0 1]\n[0 2]\n[1 0]\n[1 1]\n[2 0]\n", out)

	out, _, err = execute(t, "enumerate", "--n", "10", "--count")
	require.NoError(t, err)
	assert.Equal(t, "65\n", out)

	_, _, err = execute(t, "enumerate", "--n", "0")
	assert.ErrorIs(t, err, genchem.ErrInvalidArgument)

	_, _, err = execute(t, "enumerate", "--max-order", "0", "--count")
	assert.ErrorIs(t, err, genchem.ErrInvalidArgument)
}

func TestEnumerate_LargeCount(t *testing.T) {
	out, _, err := execute(t, "enumerate", "--n", "20", "-k", "20", "--count")
	require.NoError(t, err)
	assert.Equal(t, "137846528819\n", out)

	out, _, err = execute(t, "enumerate", "--n", "40", "-k", "40", "--count")
	require.Error(t, err)
	assert.ErrorIs(t, err, genchem.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "overflows int")
	assert.Empty(t, out)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	on, err := useColor("always", &buf)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = useColor("auto", &buf)
	require.NoError(t, err)
	assert.False(t, on, "buffers are not terminals")

	_, err = useColor("sometimes", &buf)
	assert.ErrorIs(t, err, genchem.ErrInvalidArgument)
}
