package topology

import (
	"fmt"
	"strings"
)

//-----------------------------------------------------------------------------
// Kinds
//-----------------------------------------------------------------------------

// Kind is the closed enumeration of topology strategies.
type Kind int

const (
	// KindFull: every module depends on every later module.
	KindFull Kind = iota
	// KindLinear: module i depends on module i+1.
	KindLinear
	// KindCircle: linear chain closed by last → first.
	KindCircle
	// KindStar: a center module connected to every other module.
	KindStar
	// KindRandom: seeded Bernoulli sampling over forward pairs.
	KindRandom
)

// kindNames holds the canonical spelling of each Kind.
var kindNames = [...]string{
	KindFull:   "full",
	KindLinear: "linear",
	KindCircle: "circle",
	KindStar:   "star",
	KindRandom: "random",
}

// kindAliases maps accepted alternative spellings to their Kind.
var kindAliases = map[string]Kind{
	"line":  KindLinear,
	"chain": KindLinear,
}

// String returns the canonical lowercase name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a "type" value case-insensitively.
// Unknown names return ErrUnknownTopologyKind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownTopologyKind)
}

//-----------------------------------------------------------------------------
// Parameter keys
//-----------------------------------------------------------------------------

const (
	// KeyType selects the strategy. Required in every descriptor.
	KeyType = "type"
	// KeyMethod sets the dependency method of every produced edge.
	KeyMethod = "method"
	// KeyLength limits linear/circle to the first N modules of the universe.
	KeyLength = "length"
	// KeyCenter is the universe index of the star center. Required for star.
	KeyCenter = "center"
	// KeyDirection is "out" (center depends on leaves) or "in".
	KeyDirection = "direction"
	// KeySeed seeds the random strategy.
	KeySeed = "seed"
	// KeyProbability is the per-pair edge probability of the random strategy.
	KeyProbability = "probability"
)

//-----------------------------------------------------------------------------
// Defaults and bounds
//-----------------------------------------------------------------------------

const (
	// MinLength is the smallest accepted explicit length.
	MinLength = 1
	// DefaultProbability is used by random when no probability is given.
	DefaultProbability = 0.5
	// MinProbability and MaxProbability bound the random probability, inclusive.
	MinProbability = 0.0
	MaxProbability = 1.0
)

//-----------------------------------------------------------------------------
// Star direction
//-----------------------------------------------------------------------------

// Direction orients star spokes.
type Direction int

const (
	// DirectionOut: the center depends on every leaf.
	DirectionOut Direction = iota
	// DirectionIn: every leaf depends on the center.
	DirectionIn
)

// String returns "out" or "in".
func (d Direction) String() string {
	if d == DirectionIn {
		return "in"
	}
	return "out"
}

// parseDirection accepts "out" and "in", case-insensitively.
func parseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "out":
		return DirectionOut, true
	case "in":
		return DirectionIn, true
	default:
		return DirectionOut, false
	}
}
