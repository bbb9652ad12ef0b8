package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"project.hcl"}, out, nil)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, &Config{
		Path:      "project.hcl",
		Format:    "text",
		LogLevel:  "info",
		LogFormat: "text",
	}, cfg)
}

func TestParse_Flags(t *testing.T) {
	cfg, _, err := Parse([]string{"--format", "YAML", "--order", "--strict", "--log-level", "debug", "p.yaml"}, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.True(t, cfg.Order)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "p.yaml", cfg.Path)
}

func TestParse_EnvDefaultsAndOverride(t *testing.T) {
	env := envMap(map[string]string{EnvLogLevel: "warn", EnvLogFormat: "json"})

	cfg, _, err := Parse([]string{"p.hcl"}, &bytes.Buffer{}, env)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg, _, err = Parse([]string{"--log-level", "error", "p.hcl"}, &bytes.Buffer{}, env)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out, nil)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown flag", []string{"--nope", "p.hcl"}, "flag provided but not defined"},
		{"missing config", []string{}, "missing CONFIG"},
		{"two configs", []string{"a.hcl", "b.hcl"}, "expected one CONFIG"},
		{"bad format", []string{"--format", "xml", "p.hcl"}, "invalid format"},
		{"bad log format", []string{"--log-format", "xml", "p.hcl"}, "invalid log-format"},
		{"bad log level", []string{"--log-level", "loud", "p.hcl"}, "invalid log-level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{}, nil)
			require.Error(t, err)
			assert.False(t, exit)
			var ee *ExitError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, 2, ee.Code)
			assert.Contains(t, ee.Message, tc.msg)
		})
	}
}

func TestEnv_DotenvFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MODPOET_TEST_ONLY_KEY=fromfile\n"), 0o600))

	get := Env(filepath.Join(dir, "missing.env"), path)
	assert.Equal(t, "fromfile", get("MODPOET_TEST_ONLY_KEY"))

	t.Setenv("MODPOET_TEST_ONLY_KEY", "fromenv")
	assert.Equal(t, "fromenv", get("MODPOET_TEST_ONLY_KEY"))
}
