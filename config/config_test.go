package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modpoet/core"
	"github.com/katalvlaran/modpoet/topology"
)

const projectHCL = `
project_name    = "demo"
root            = "out"
android_modules = 1
num_modules     = 4

topology "star" {
  center    = 0
  direction = "in"
}

topology "random" {
  seed        = 42
  probability = 0.25
}

dependency {
  from   = "module0"
  to     = "module3"
  method = "api"
}

dependency {
  from = "module1"
  to   = "module2"
}
`

const projectYAML = `
projectName: demo
root: out
androidModules: 1
numModules: 4
topologies:
  - type: star
    center: 0
    direction: in
  - type: random
    seed: 42
    probability: 0.25
dependencies:
  - from: module0
    to: module3
    method: api
  - from: module1
    to: module2
`

func wantFile() *File {
	return &File{
		ProjectName:    "demo",
		Root:           "out",
		NumModules:     4,
		AndroidModules: 1,
		Topologies: []topology.Params{
			{"type": "star", "center": "0", "direction": "in"},
			{"type": "random", "seed": "42", "probability": "0.25"},
		},
		Dependencies: []Dependency{
			{From: "module0", To: "module3", Method: "api"},
			{From: "module1", To: "module2"},
		},
	}
}

func TestParseHCL(t *testing.T) {
	f, err := ParseHCL([]byte(projectHCL), "project.hcl")
	require.NoError(t, err)
	if diff := cmp.Diff(wantFile(), f); diff != "" {
		t.Errorf("ParseHCL mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	f, err := ParseYAML([]byte(projectYAML))
	require.NoError(t, err)
	if diff := cmp.Diff(wantFile(), f); diff != "" {
		t.Errorf("ParseYAML mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML_JSONInput(t *testing.T) {
	f, err := ParseYAML([]byte(`{"numModules": 3, "topologies": [{"type": "linear", "length": 2}]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, f.NumModules)
	assert.Equal(t, []topology.Params{{"type": "linear", "length": "2"}}, f.Topologies)
}

func TestParseYAML_Empty(t *testing.T) {
	f, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestParseYAML_Errors(t *testing.T) {
	_, err := ParseYAML([]byte("numModule: 3\n"))
	assert.Error(t, err, "unknown field")

	_, err = ParseYAML([]byte("topologies:\n  - type: star\n    center: [1, 2]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseHCL_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":        "topology \"star\" {\n",
		"missing label": "topology {\n}\n",
		"unknown attr":  "modules = 3\n",
		"type conflict": "topology \"star\" {\n  type = \"linear\"\n}\n",
		"variable ref":  "topology \"star\" {\n  center = var.x\n}\n",
		"list value":    "topology \"star\" {\n  center = [0]\n}\n",
		"dep no to":     "dependency {\n  from = \"a\"\n}\n",
	}
	for name, src := range cases {
		_, err := ParseHCL([]byte(src), "bad.hcl")
		assert.Error(t, err, name)
	}
}

func TestFileProject(t *testing.T) {
	f, err := ParseHCL([]byte(projectHCL), "project.hcl")
	require.NoError(t, err)

	cfg, err := f.Project()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.AppModules)
	assert.Equal(t, 4, cfg.Modules)
	assert.Equal(t, []topology.Topology{
		topology.Star{Center: 0, Direction: topology.DirectionIn},
		topology.Random{Seed: 42, Probability: 0.25},
	}, cfg.Topologies)
	assert.Equal(t, []core.Edge{
		{From: "module0", To: "module3", Method: core.API},
		{From: "module1", To: "module2", Method: core.Implementation},
	}, cfg.Dependencies)
}

func TestFileProject_Errors(t *testing.T) {
	_, err := (&File{NumModules: -1}).Project()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = (&File{AndroidModules: -2}).Project()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = (&File{Topologies: []topology.Params{{"type": "hexagon"}}}).Project()
	assert.ErrorIs(t, err, topology.ErrUnknownTopologyKind)

	_, err = (&File{Topologies: []topology.Params{{"type": "star"}}}).Project()
	assert.ErrorIs(t, err, topology.ErrInvalidTopologyParameter)

	_, err = (&File{Dependencies: []Dependency{{From: "a"}}}).Project()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = (&File{Dependencies: []Dependency{{From: "a", To: "b", Method: "kapt"}}}).Project()
	assert.ErrorIs(t, err, core.ErrUnknownMethod)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fromHCL, err := Load(write("p.hcl", projectHCL), WithLogger(logger))
	require.NoError(t, err)
	fromYAML, err := Load(write("p.YML", projectYAML))
	require.NoError(t, err)
	assert.Equal(t, fromHCL, fromYAML)
	assert.Contains(t, logs.String(), "Configuration loaded.")

	_, err = Load(write("p.toml", "x = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithLoggerNilPanics(t *testing.T) {
	assert.Panics(t, func() { WithLogger(nil) })
}
