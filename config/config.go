// Package config loads project descriptions from HCL, YAML or JSON files and
// validates them into a resolve.Config.
//
// Topology descriptors are parsed into typed variants here, at load time, so
// a bad descriptor is reported with its position before any resolution runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/modpoet/core"
	"github.com/katalvlaran/modpoet/resolve"
	"github.com/katalvlaran/modpoet/topology"
)

var (
	// ErrInvalidConfig indicates a structurally valid file with invalid values.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// File is the decoded, not yet validated, project description.
type File struct {
	// ProjectName names the generated project.
	ProjectName string `yaml:"projectName" json:"projectName"`
	// Root is the output directory of the downstream generators.
	Root string `yaml:"root" json:"root"`
	// NumModules is the number of plain modules.
	NumModules int `yaml:"numModules" json:"numModules"`
	// AndroidModules is the number of application modules.
	AndroidModules int `yaml:"androidModules" json:"androidModules"`
	// Topologies are raw descriptors in configured order.
	Topologies []topology.Params `yaml:"topologies" json:"topologies"`
	// Dependencies are explicit edges in input order.
	Dependencies []Dependency `yaml:"dependencies" json:"dependencies"`
}

// Dependency is one explicit edge as written in a file.
type Dependency struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Method string `yaml:"method,omitempty" json:"method,omitempty"`
}

// Option customizes loading.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes loader diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("config: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load reads path and decodes it according to its extension:
// .hcl with the HCL decoder; .yaml, .yml and .json with the YAML decoder.
func Load(path string, opts ...Option) (*File, error) {
	o := newOptions(opts...)
	logger := o.logger.With("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		f, err = ParseHCL(data, path)
	case ".yaml", ".yml", ".json":
		f, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("config: %s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	logger.Debug("Configuration loaded.",
		"project", f.ProjectName,
		"app_modules", f.AndroidModules,
		"modules", f.NumModules,
		"topologies", len(f.Topologies),
		"dependencies", len(f.Dependencies))

	return f, nil
}

// Project validates f and converts it into a resolve.Config: counts must be
// non-negative, every topology descriptor must parse and every dependency
// needs both endpoints and a known method.
func (f *File) Project() (resolve.Config, error) {
	if f.NumModules < 0 {
		return resolve.Config{}, fmt.Errorf("numModules=%d must be ≥ 0: %w", f.NumModules, ErrInvalidConfig)
	}
	if f.AndroidModules < 0 {
		return resolve.Config{}, fmt.Errorf("androidModules=%d must be ≥ 0: %w", f.AndroidModules, ErrInvalidConfig)
	}

	tops, err := topology.ParseAll(f.Topologies)
	if err != nil {
		return resolve.Config{}, err
	}

	deps := make([]core.Edge, 0, len(f.Dependencies))
	for i, d := range f.Dependencies {
		e, err := d.Edge()
		if err != nil {
			return resolve.Config{}, fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		deps = append(deps, e)
	}

	return resolve.Config{
		AppModules:   f.AndroidModules,
		Modules:      f.NumModules,
		Topologies:   tops,
		Dependencies: deps,
	}, nil
}

// Edge converts d into a core.Edge.
func (d Dependency) Edge() (core.Edge, error) {
	if d.From == "" || d.To == "" {
		return core.Edge{}, fmt.Errorf("from=%q to=%q: both endpoints are required: %w", d.From, d.To, ErrInvalidConfig)
	}
	m, err := core.ParseMethod(d.Method)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%s -> %s: %w", d.From, d.To, err)
	}
	return core.Edge{From: core.ModuleName(d.From), To: core.ModuleName(d.To), Method: m}, nil
}
