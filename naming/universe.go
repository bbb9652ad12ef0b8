package naming

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// ErrNegativeCount indicates a negative module count.
var ErrNegativeCount = errors.New("naming: module count must be ≥ 0")

// Universe is the complete ordered list of module names of one project:
// application modules first, then plain modules, each in ordinal order.
// A Universe is immutable after construction.
type Universe struct {
	names []core.ModuleName
	index map[core.ModuleName]int
	app   int
	plain int
}

// NewUniverse builds the universe for the given counts.
// Negative counts are rejected.
// Complexity: O(app+plain).
func NewUniverse(app, plain int) (*Universe, error) {
	if app < 0 || plain < 0 {
		return nil, fmt.Errorf("app=%d plain=%d: %w", app, plain, ErrNegativeCount)
	}

	u := &Universe{
		names: make([]core.ModuleName, 0, app+plain),
		index: make(map[core.ModuleName]int, app+plain),
		app:   app,
		plain: plain,
	}
	for i := 0; i < app; i++ {
		u.add(Name(KindApp, i))
	}
	for i := 0; i < plain; i++ {
		u.add(Name(KindPlain, i))
	}

	return u, nil
}

func (u *Universe) add(name core.ModuleName) {
	u.index[name] = len(u.names)
	u.names = append(u.names, name)
}

// Names returns a copy of the ordered module names.
func (u *Universe) Names() []core.ModuleName {
	out := make([]core.ModuleName, len(u.names))
	copy(out, u.names)
	return out
}

// Len returns the number of modules.
func (u *Universe) Len() int { return len(u.names) }

// Count returns how many modules of kind k the universe holds.
func (u *Universe) Count(k Kind) int {
	switch k {
	case KindApp:
		return u.app
	case KindPlain:
		return u.plain
	default:
		return 0
	}
}

// At returns the i-th module name in universe order.
func (u *Universe) At(i int) (core.ModuleName, bool) {
	if i < 0 || i >= len(u.names) {
		return "", false
	}
	return u.names[i], true
}

// IndexOf returns the universe position of name.
func (u *Universe) IndexOf(name core.ModuleName) (int, bool) {
	i, ok := u.index[name]
	return i, ok
}

// Contains reports whether name belongs to the universe.
func (u *Universe) Contains(name core.ModuleName) bool {
	_, ok := u.index[name]
	return ok
}
