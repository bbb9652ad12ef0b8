// Package naming maps (module kind, zero-based ordinal) pairs to module names
// and builds the ordered module universe of a project.
//
// Every kind owns a purely alphabetic prefix and an independent ordinal
// range; names are prefix + decimal ordinal ("androidAppModule0", "module0").
// Prefixes contain no digits and neither is a prefix of the other, so
// distinct (kind, index) pairs never collide.
package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/modpoet/core"
)

// Kind is the closed set of module kinds.
type Kind int

const (
	// KindApp is an application module.
	KindApp Kind = iota
	// KindPlain is a plain library module.
	KindPlain
)

// Name prefixes per kind.
const (
	AppPrefix   = "androidAppModule"
	PlainPrefix = "module"
)

// Kinds lists every Kind in universe order.
var Kinds = []Kind{KindApp, KindPlain}

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindPlain:
		return "plain"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Prefix returns the name prefix owned by k.
// Panics on a Kind outside the closed set (programmer error).
func (k Kind) Prefix() string {
	switch k {
	case KindApp:
		return AppPrefix
	case KindPlain:
		return PlainPrefix
	default:
		panic(fmt.Sprintf("naming: unknown kind %d", int(k)))
	}
}

// Name returns the module name for (kind, index).
// Panics if index < 0 (programmer error).
// Complexity: O(d), d = number of decimal digits in index.
func Name(kind Kind, index int) core.ModuleName {
	if index < 0 {
		panic(fmt.Sprintf("naming: index must be ≥ 0, got %d", index))
	}
	return core.ModuleName(kind.Prefix() + strconv.Itoa(index))
}

// Parse is the inverse of Name. It reports ok == false for any string that
// Name could not have produced (unknown prefix, empty or non-canonical
// ordinal such as "module01").
func Parse(name core.ModuleName) (kind Kind, index int, ok bool) {
	s := string(name)
	for _, k := range Kinds {
		p := k.Prefix()
		if !strings.HasPrefix(s, p) {
			continue
		}
		digits := s[len(p):]
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 || strconv.Itoa(n) != digits {
			return 0, 0, false
		}
		return k, n, true
	}
	return 0, 0, false
}
