package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modpoet/dfs"
	"github.com/katalvlaran/modpoet/internal/cli"
	"github.com/katalvlaran/modpoet/resolve"
)

const starHCL = `
project_name    = "demo"
android_modules = 1
num_modules     = 3

topology "star" {
  center = 0
}

dependency {
  from   = "module0"
  to     = "module1"
  method = "api"
}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func noEnv(string) string { return "" }

func TestRun_TextWithOrderAndClosure(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "project.hcl", starHCL)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"--order", "--closure", "androidAppModule0", path}, noEnv)
	require.NoError(t, err)

	want := "project demo\n" +
		"androidAppModule0 -> module0 (implementation)\n" +
		"androidAppModule0 -> module1 (implementation)\n" +
		"androidAppModule0 -> module2 (implementation)\n" +
		"module0 -> module1 (api)\n" +
		"module1\n" +
		"module2\n" +
		"order: module1, module0, module2, androidAppModule0\n" +
		"closure androidAppModule0: module0@1 module1@1 module2@1\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, errOut.String(), "Resolved dependencies.")
}

func TestRun_JSONFromYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "project.yaml", `
projectName: ring
numModules: 3
topologies:
  - type: circle
`)
	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"--format", "json", path}, noEnv))

	var doc struct {
		Project string     `json:"project"`
		Cycles  [][]string `json:"cycles"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "ring", doc.Project)
	assert.Equal(t, [][]string{{"module0", "module1", "module2", "module0"}}, doc.Cycles)
}

func TestRun_OrderOnCycleFails(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "project.yml", "numModules: 2\ntopologies:\n  - type: circle\n")
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--order", path}, noEnv)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestRun_StrictRejectsUnknownModule(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "project.json", `{"numModules": 1, "dependencies": [{"from": "module0", "to": "ghost"}]}`)

	require.NoError(t, run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path}, noEnv))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--strict", path}, noEnv)
	require.ErrorIs(t, err, resolve.ErrUnknownModule)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}, noEnv))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"}, noEnv)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_ConfigErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing.hcl": "",
		"bad.hcl":     "topology \"star\" {\n",
		"hex.yaml":    "numModules: 2\ntopologies:\n  - type: hexagon\n",
		"neg.yaml":    "numModules: -1\n",
		"project.txt": "whatever",
	}
	for name, body := range cases {
		var path string
		if body == "" {
			path = filepath.Join(t.TempDir(), name)
		} else {
			path = writeFile(t, name, body)
		}
		err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path}, noEnv)
		require.Error(t, err, name)
		var exitErr *cli.ExitError
		assert.NotErrorAs(t, err, &exitErr, name)
	}
}

func TestRun_HCLSnapshotReloads(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "random.yaml", `
numModules: 6
topologies:
  - type: random
    seed: 7
    probability: 0.5
`)
	snap := &bytes.Buffer{}
	require.NoError(t, run(snap, &bytes.Buffer{}, []string{"--format", "hcl", path}, noEnv))
	assert.NotContains(t, snap.String(), "topology")

	first := &bytes.Buffer{}
	require.NoError(t, run(first, &bytes.Buffer{}, []string{path}, noEnv))

	snapPath := writeFile(t, "snapshot.hcl", snap.String())
	second := &bytes.Buffer{}
	require.NoError(t, run(second, &bytes.Buffer{}, []string{snapPath}, noEnv))

	assert.Equal(t, first.String(), second.String())
}
