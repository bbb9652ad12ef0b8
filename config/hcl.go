package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/katalvlaran/modpoet/topology"
)

// hclProjectFile is the top-level structure of an HCL project file:
//
//	project_name    = "demo"
//	num_modules     = 4
//	android_modules = 1
//
//	topology "star" {
//	  center = 0
//	}
//
//	dependency {
//	  from   = "module0"
//	  to     = "module3"
//	  method = "api"
//	}
type hclProjectFile struct {
	ProjectName    string           `hcl:"project_name,optional"`
	Root           string           `hcl:"root,optional"`
	NumModules     int              `hcl:"num_modules,optional"`
	AndroidModules int              `hcl:"android_modules,optional"`
	Topologies     []*hclTopology   `hcl:"topology,block"`
	Dependencies   []*hclDependency `hcl:"dependency,block"`
}

// hclTopology keeps its parameters as a raw body; the accepted keys depend on
// the topology kind and are checked by topology.Parse.
type hclTopology struct {
	Type   string   `hcl:"type,label"`
	Params hcl.Body `hcl:",remain"`
}

type hclDependency struct {
	From   string `hcl:"from"`
	To     string `hcl:"to"`
	Method string `hcl:"method,optional"`
}

// ParseHCL decodes an HCL project file. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var parsed hclProjectFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	f := &File{
		ProjectName:    parsed.ProjectName,
		Root:           parsed.Root,
		NumModules:     parsed.NumModules,
		AndroidModules: parsed.AndroidModules,
	}
	for i, t := range parsed.Topologies {
		p, err := topologyParams(t)
		if err != nil {
			return nil, fmt.Errorf("topology[%d] %q: %w", i, t.Type, err)
		}
		f.Topologies = append(f.Topologies, p)
	}
	for _, d := range parsed.Dependencies {
		f.Dependencies = append(f.Dependencies, Dependency{From: d.From, To: d.To, Method: d.Method})
	}

	return f, nil
}

// topologyParams flattens a topology block into descriptor form. The block
// label becomes the "type" key; every attribute must be a literal that
// converts to a string.
func topologyParams(t *hclTopology) (topology.Params, error) {
	attrs, diags := t.Params.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	p := topology.Params{topology.KeyType: t.Type}
	for _, name := range names {
		if name == topology.KeyType {
			return nil, fmt.Errorf("attribute %q conflicts with the block label: %w", name, ErrInvalidConfig)
		}
		attr := attrs[name]
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		if str.IsNull() || !str.IsKnown() {
			return nil, fmt.Errorf("attribute %q must be a known, non-null value: %w", name, ErrInvalidConfig)
		}
		p[name] = str.AsString()
	}

	return p, nil
}
