package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/katas/matrix"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestThreeSumCmd_Sample(t *testing.T) {
	out, _, err := execute(t, "threesum")
	require.NoError(t, err)
	assert.Equal(t, "(-1, -1, 2)\n(-1, 0, 1)\n", out)
}

func TestThreeSumCmd_Args(t *testing.T) {
	out, _, err := execute(t, "threesum", "--", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "no triplets\n", out)

	out, _, err = execute(t, "threesum", "--format", "json", "--", "0", "0", "0", "0")
	require.NoError(t, err)
	var res struct {
		Input    []int    `json:"input"`
		Triplets [][3]int `json:"triplets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int{0, 0, 0, 0}, res.Input)
	assert.Equal(t, [][3]int{{0, 0, 0}}, res.Triplets)
}

func TestThreeSumCmd_BadInput(t *testing.T) {
	_, stderr, err := execute(t, "threesum", "--log-format", "json", "--", "1", "x")
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid input")
}

func TestDetCmd(t *testing.T) {
	out, _, err := execute(t, "det", "--", "2,5,3", "1,-2,-1", "1,3,4")
	require.NoError(t, err)
	assert.Equal(t, "-20\n", out)

	out, _, err = execute(t, "det", "--format", "yaml", "1,3", "2,5")
	require.NoError(t, err)
	var res struct {
		Matrix      matrix.Matrix `yaml:"matrix"`
		Determinant int64         `yaml:"determinant"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(-1), res.Determinant)
	assert.Equal(t, matrix.Matrix{{1, 3}, {2, 5}}, res.Matrix)
}

func TestDetCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "det", "1,2,3", "4,5,6")
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = execute(t, "det", "1,2", "3")
	assert.ErrorIs(t, err, matrix.ErrRagged)

	_, _, err = execute(t, "det", "1,a")
	assert.Error(t, err)

	_, _, err = execute(t, "det")
	assert.Error(t, err, "det needs at least one row")

	_, _, err = execute(t, "det", "--format", "xml", "1")
	assert.Error(t, err)
}

func TestDeadfishCmd(t *testing.T) {
	out, _, err := execute(t, "deadfish", "iiisdoso")
	require.NoError(t, err)
	assert.Equal(t, "[8 64]\n", out)
}

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix([]string{"1, 2", " -3,4 "})
	require.NoError(t, err)
	assert.Equal(t, matrix.Matrix{{1, 2}, {-3, 4}}, m)

	_, err = parseMatrix(nil)
	assert.ErrorIs(t, err, errNoRows)
}

func TestParseInts(t *testing.T) {
	nums, err := parseInts([]string{"-1", " 2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2, 3}, nums)

	_, err = parseInts([]string{"1.5"})
	assert.Error(t, err)
}
