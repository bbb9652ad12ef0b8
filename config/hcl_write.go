package config

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/modpoet/core"
	"github.com/katalvlaran/modpoet/topology"
)

// EncodeHCL renders f in the layout ParseHCL reads. Topology attributes are
// written in key order as strings.
func EncodeHCL(f *File) []byte {
	hf := hclwrite.NewEmptyFile()
	body := hf.Body()

	if f.ProjectName != "" {
		body.SetAttributeValue("project_name", cty.StringVal(f.ProjectName))
	}
	if f.Root != "" {
		body.SetAttributeValue("root", cty.StringVal(f.Root))
	}
	body.SetAttributeValue("android_modules", cty.NumberIntVal(int64(f.AndroidModules)))
	body.SetAttributeValue("num_modules", cty.NumberIntVal(int64(f.NumModules)))

	for _, p := range f.Topologies {
		body.AppendNewline()
		block := body.AppendNewBlock("topology", []string{p[topology.KeyType]})
		keys := make([]string, 0, len(p))
		for k := range p {
			if k != topology.KeyType {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			block.Body().SetAttributeValue(k, cty.StringVal(p[k]))
		}
	}

	for _, d := range f.Dependencies {
		body.AppendNewline()
		b := body.AppendNewBlock("dependency", nil).Body()
		b.SetAttributeValue("from", cty.StringVal(d.From))
		b.SetAttributeValue("to", cty.StringVal(d.To))
		if d.Method != "" {
			b.SetAttributeValue("method", cty.StringVal(d.Method))
		}
	}

	return hf.Bytes()
}

// Snapshot returns a copy of f whose topologies are replaced by the explicit
// edges of g, in (From, To) order. Loading the snapshot resolves to g again,
// which pins down the output of random topologies.
func Snapshot(f *File, g *core.Graph) *File {
	out := &File{
		ProjectName:    f.ProjectName,
		Root:           f.Root,
		NumModules:     f.NumModules,
		AndroidModules: f.AndroidModules,
	}
	for _, e := range g.Edges() {
		out.Dependencies = append(out.Dependencies, Dependency{
			From:   string(e.From),
			To:     string(e.To),
			Method: e.Method.String(),
		})
	}
	return out
}
