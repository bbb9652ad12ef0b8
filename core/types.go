// File: types.go
// Role: ModuleName, Method and Edge value types, sentinel errors and the
//       Graph struct with its constructor.
//
// Errors:
//
//	ErrEmptyModuleName - an edge endpoint is the empty string.
//	ErrSelfDependency  - an edge has From == To.
//	ErrUnknownMethod   - a dependency method name is not recognised.
//	ErrFrozen          - mutation attempted on a frozen graph.

package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyModuleName indicates that an edge endpoint is empty.
	ErrEmptyModuleName = errors.New("core: module name is empty")

	// ErrSelfDependency indicates that an edge would make a module depend on itself.
	ErrSelfDependency = errors.New("core: module depends on itself")

	// ErrUnknownMethod indicates a dependency method name outside the closed set.
	ErrUnknownMethod = errors.New("core: unknown dependency method")

	// ErrFrozen indicates a mutation of a graph that has already been published.
	ErrFrozen = errors.New("core: graph is frozen")
)

// ModuleName identifies one generated module within a project.
type ModuleName string

// String implements fmt.Stringer.
func (m ModuleName) String() string { return string(m) }

// Method is the build-file verb used to declare a dependency.
type Method int

// Dependency methods. Implementation is the zero value and the default.
const (
	Implementation Method = iota
	API
	CompileOnly
	TestImplementation
)

var methodNames = [...]string{
	Implementation:     "implementation",
	API:                "api",
	CompileOnly:        "compileOnly",
	TestImplementation: "testImplementation",
}

// String returns the build-file spelling of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod maps a method name to its Method, case-insensitively.
// The empty string yields Implementation.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return Implementation, nil
	}
	for i, name := range methodNames {
		if strings.EqualFold(name, s) {
			return Method(i), nil
		}
	}
	return Implementation, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Edge is a directed "From depends on To" relation.
//
// Identity inside a Graph is the (From,To) pair; Method is metadata carried
// by whichever edge was inserted first.
type Edge struct {
	// From is the module whose build file declares the dependency.
	From ModuleName `json:"from" yaml:"from"`

	// To is the module being depended upon.
	To ModuleName `json:"to" yaml:"to"`

	// Method is the declaration verb (implementation by default).
	Method Method `json:"method" yaml:"method"`
}

// NewEdge returns an implementation edge from→to.
func NewEdge(from, to ModuleName) Edge {
	return Edge{From: from, To: to}
}

// Validate reports whether e can be stored in a Graph.
func (e Edge) Validate() error {
	if e.From == "" || e.To == "" {
		return ErrEmptyModuleName
	}
	if e.From == e.To {
		return fmt.Errorf("%s: %w", e.From, ErrSelfDependency)
	}
	return nil
}

// String renders e as "from -> to (method)".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s (%s)", e.From, e.To, e.Method)
}

// Graph is the resolved dependency graph: From module → edge set.
//
// mu guards adjacency, count and frozen. Read methods return copies in a
// deterministic order (sources ascending, then targets ascending).
type Graph struct {
	mu sync.RWMutex

	frozen bool
	count  int

	// adjacency[from][to] = Edge
	adjacency map[ModuleName]map[ModuleName]Edge
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[ModuleName]map[ModuleName]Edge),
	}
}
