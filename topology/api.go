// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// api.go - public entry points of the topology package.
//
// Design contract (strict):
//   - One parser: Parse(Params) turns a raw descriptor into a typed Topology
//     variant. All syntactic validation happens here, once, at load time.
//   - Variants are a closed set (Full, Linear, Circle, Star, Random), sealed
//     by an unexported method; implementations live in impl_*.go.
//   - Determinism: same variant + same universe ⇒ identical ordered edges.
//   - Safety: never panic; return *ParamError / sentinel errors.

package topology

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// Topology is one configured dependency-shape strategy.
//
// Edges validates the variant against the universe (e.g. the star center
// must be a valid index) and returns the produced edges in a stable order.
// Any edge with From == To fails with ErrSelfDependency.
type Topology interface {
	fmt.Stringer

	// Kind reports which strategy this variant is.
	Kind() Kind

	// Edges produces the directed edges over the ordered module universe.
	Edges(universe []core.ModuleName) ([]core.Edge, error)

	// Params renders the variant back into a raw descriptor accepted by Parse.
	Params() Params

	sealed()
}

// Parse validates a raw descriptor and returns its typed variant.
//
// Errors:
//   - missing or empty "type" → *ParamError (ErrInvalidTopologyParameter).
//   - unrecognised "type"     → ErrUnknownTopologyKind.
//   - malformed, out-of-range or unknown parameters → *ParamError.
//
// Complexity: O(len(p) log len(p)).
func Parse(p Params) (Topology, error) {
	raw, ok := p[KeyType]
	if !ok {
		return nil, paramErrorf(p, KeyType, "required parameter is missing")
	}
	if raw == "" {
		return nil, paramErrorf(p, KeyType, "must not be empty")
	}
	kind, err := ParseKind(raw)
	if err != nil {
		return nil, fmt.Errorf("topology %s: %w", p, err)
	}

	r := newReader(p)
	method := r.method()

	var t Topology
	switch kind {
	case KindFull:
		t = Full{Method: method}
	case KindLinear:
		t = Linear{Length: r.optionalInt(KeyLength, MinLength, 0), Method: method}
	case KindCircle:
		t = Circle{Length: r.optionalInt(KeyLength, MinLength, 0), Method: method}
	case KindStar:
		t = Star{
			Center:    r.requiredInt(KeyCenter, 0),
			Direction: r.direction(KeyDirection),
			Method:    method,
		}
	case KindRandom:
		t = Random{
			Seed:        r.optionalInt64(KeySeed, 0),
			Probability: r.probability(KeyProbability, DefaultProbability),
			Method:      method,
		}
	default:
		return nil, fmt.Errorf("topology %s: %v: %w", p, kind, ErrUnknownTopologyKind)
	}

	r.rejectUnknown()
	if r.err != nil {
		return nil, r.err
	}

	return t, nil
}

// ParseAll parses descriptors in order and stops at the first failure,
// wrapping it with the descriptor position.
func ParseAll(list []Params) ([]Topology, error) {
	out := make([]Topology, 0, len(list))
	for i, p := range list {
		t, err := Parse(p)
		if err != nil {
			return nil, fmt.Errorf("topologies[%d]: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// checkEdges rejects self edges eagerly, naming the offending topology.
func checkEdges(t Topology, edges []core.Edge) ([]core.Edge, error) {
	for _, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("topology %s: edge %s: %w", t, e, ErrSelfDependency)
		}
	}
	return edges, nil
}

// prefix resolves an optional length against the universe size.
// length == 0 selects the whole universe.
func prefix(t Topology, universe []core.ModuleName, length int) ([]core.ModuleName, error) {
	switch {
	case length == 0:
		return universe, nil
	case length < 0 || length > len(universe):
		return nil, paramErrorf(t, KeyLength, "must be in [%d,%d], got %d", MinLength, len(universe), length)
	default:
		return universe[:length], nil
	}
}
