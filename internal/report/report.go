// Package report renders a resolved project as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modpoet/core"
)

// Document is the rendered view of one resolved project.
type Document struct {
	Project    string              `json:"project,omitempty" yaml:"project,omitempty"`
	Modules    []Module            `json:"modules" yaml:"modules"`
	BuildOrder []core.ModuleName   `json:"buildOrder,omitempty" yaml:"buildOrder,omitempty"`
	Cycles     [][]core.ModuleName `json:"cycles,omitempty" yaml:"cycles,omitempty"`
	Closure    *Closure            `json:"closure,omitempty" yaml:"closure,omitempty"`
}

// Closure lists the transitive dependencies of one module by distance.
type Closure struct {
	Module       core.ModuleName `json:"module" yaml:"module"`
	Dependencies []Reached       `json:"dependencies" yaml:"dependencies"`
}

// Reached is one transitive dependency and its distance in edges.
type Reached struct {
	Name  core.ModuleName `json:"name" yaml:"name"`
	Depth int             `json:"depth" yaml:"depth"`
}

// Module lists the outgoing edges of one module.
type Module struct {
	Name         core.ModuleName `json:"name" yaml:"name"`
	Dependencies []Dependency    `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Dependency is one outgoing edge without its source.
type Dependency struct {
	To     core.ModuleName `json:"to" yaml:"to"`
	Method core.Method     `json:"method" yaml:"method"`
}

// New builds a Document. Modules appear in universe order, followed by any
// source module of g outside the universe.
func New(project string, universe []core.ModuleName, g *core.Graph, order []core.ModuleName, cycles [][]core.ModuleName) Document {
	doc := Document{Project: project, BuildOrder: order, Cycles: cycles}
	seen := make(map[core.ModuleName]struct{}, len(universe))
	add := func(m core.ModuleName) {
		if _, ok := seen[m]; ok {
			return
		}
		seen[m] = struct{}{}
		mod := Module{Name: m}
		for _, e := range g.EdgesFrom(m) {
			mod.Dependencies = append(mod.Dependencies, Dependency{To: e.To, Method: e.Method})
		}
		doc.Modules = append(doc.Modules, mod)
	}
	for _, m := range universe {
		add(m)
	}
	for _, m := range g.Sources() {
		add(m)
	}
	return doc
}

// Write renders doc to w in format ("text", "json" or "yaml").
func Write(w io.Writer, format string, doc Document) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return writeText(w, doc)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func writeText(w io.Writer, doc Document) error {
	var b strings.Builder
	if doc.Project != "" {
		fmt.Fprintf(&b, "project %s\n", doc.Project)
	}
	for _, m := range doc.Modules {
		if len(m.Dependencies) == 0 {
			fmt.Fprintf(&b, "%s\n", m.Name)
			continue
		}
		for _, d := range m.Dependencies {
			fmt.Fprintf(&b, "%s -> %s (%s)\n", m.Name, d.To, d.Method)
		}
	}
	if len(doc.BuildOrder) > 0 {
		parts := make([]string, len(doc.BuildOrder))
		for i, m := range doc.BuildOrder {
			parts[i] = string(m)
		}
		fmt.Fprintf(&b, "order: %s\n", strings.Join(parts, ", "))
	}
	for _, c := range doc.Cycles {
		parts := make([]string, len(c))
		for i, m := range c {
			parts[i] = string(m)
		}
		fmt.Fprintf(&b, "cycle: %s\n", strings.Join(parts, " -> "))
	}
	if c := doc.Closure; c != nil {
		fmt.Fprintf(&b, "closure %s:", c.Module)
		for _, r := range c.Dependencies {
			fmt.Fprintf(&b, " %s@%d", r.Name, r.Depth)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
