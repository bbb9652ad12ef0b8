package resolve

import (
	"sync"

	"github.com/katalvlaran/modpoet/core"
	"github.com/katalvlaran/modpoet/naming"
	"github.com/katalvlaran/modpoet/topology"
)

// Config is the validated input of one project: module counts, parsed
// topologies in configured order, and explicit edges in input order.
type Config struct {
	// AppModules is the number of application modules.
	AppModules int
	// Modules is the number of plain modules.
	Modules int
	// Topologies are applied in order before Dependencies.
	Topologies []topology.Topology
	// Dependencies are explicit edges.
	Dependencies []core.Edge
}

// Project exposes the module universe and the resolved dependency graph of
// one Config. Both are computed at most once, on first access, and the same
// result (or error) is returned to every caller, including concurrent ones.
type Project struct {
	cfg  Config
	opts []Option

	universe func() (*naming.Universe, error)
	resolved func() (*core.Graph, error)
}

// New returns a Project for cfg. Nothing is computed until the first call
// to Universe or ResolvedDependencies.
func New(cfg Config, opts ...Option) *Project {
	p := &Project{cfg: cfg, opts: opts}
	p.universe = sync.OnceValues(func() (*naming.Universe, error) {
		return naming.NewUniverse(p.cfg.AppModules, p.cfg.Modules)
	})
	p.resolved = sync.OnceValues(p.resolve)
	return p
}

// ModuleName returns the name of the index-th module of kind. It does not
// trigger resolution.
func (p *Project) ModuleName(kind naming.Kind, index int) core.ModuleName {
	return naming.Name(kind, index)
}

// Universe returns the ordered module universe, computed once.
func (p *Project) Universe() (*naming.Universe, error) {
	return p.universe()
}

// ResolvedDependencies returns the frozen graph mapping every module to its
// outgoing edges. The first call runs the merge; later calls return the
// cached graph or the cached error.
func (p *Project) ResolvedDependencies() (*core.Graph, error) {
	return p.resolved()
}

func (p *Project) resolve() (*core.Graph, error) {
	u, err := p.universe()
	if err != nil {
		return nil, err
	}
	o := newOptions(p.opts...)
	o.logger.Debug("Resolving dependencies.",
		"modules", u.Len(), "topologies", len(p.cfg.Topologies), "explicit", len(p.cfg.Dependencies))

	return Merge(u.Names(), p.cfg.Topologies, p.cfg.Dependencies, p.opts...)
}
