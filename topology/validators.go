// Package topology: parameter readers used by Parse.
//
// A reader walks one descriptor, converts each requested key to its typed
// value and remembers the first failure, so Parse can request every field
// and check a single error at the end.
package topology

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/modpoet/core"
)

// Params is a raw, string-keyed topology descriptor as it arrives from
// configuration. It must contain KeyType.
type Params map[string]string

// String renders p with keys sorted, e.g. "{center=0, type=star}".
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p[k])
	}
	b.WriteByte('}')

	return b.String()
}

// reader extracts typed values from Params with sticky error semantics.
type reader struct {
	p    Params
	used map[string]struct{}
	err  error
}

func newReader(p Params) *reader {
	return &reader{p: p, used: map[string]struct{}{KeyType: {}}}
}

// lookup marks key as consumed and returns its trimmed value.
func (r *reader) lookup(key string) (string, bool) {
	r.used[key] = struct{}{}
	v, ok := r.p[key]
	return strings.TrimSpace(v), ok
}

func (r *reader) fail(key, format string, args ...interface{}) {
	if r.err == nil {
		r.err = paramErrorf(r.p, key, format, args...)
	}
}

// requiredInt reads a mandatory integer ≥ min.
func (r *reader) requiredInt(key string, min int) int {
	if _, ok := r.lookup(key); !ok {
		r.fail(key, "required parameter is missing")
		return 0
	}
	return r.optionalInt(key, min, 0)
}

// optionalInt reads an integer ≥ min, or returns def when the key is absent.
func (r *reader) optionalInt(key string, min, def int) int {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(key, "%q is not an integer", raw)
		return def
	}
	if n < min {
		r.fail(key, "must be ≥ %d, got %d", min, n)
		return def
	}
	return n
}

// optionalInt64 reads any 64-bit integer, or def when absent.
func (r *reader) optionalInt64(key string, def int64) int64 {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.fail(key, "%q is not a 64-bit integer", raw)
		return def
	}
	return n
}

// probability reads a float in [MinProbability, MaxProbability], or def.
func (r *reader) probability(key string, def float64) float64 {
	raw, ok := r.lookup(key)
	if !ok {
		return def
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail(key, "%q is not a number", raw)
		return def
	}
	if !validProbability(p) {
		r.fail(key, "must be in [%.1f,%.1f], got %g", MinProbability, MaxProbability, p)
		return def
	}
	return p
}

// direction reads a star Direction, defaulting to DirectionOut.
func (r *reader) direction(key string) Direction {
	raw, ok := r.lookup(key)
	if !ok {
		return DirectionOut
	}
	d, ok := parseDirection(raw)
	if !ok {
		r.fail(key, "%q is neither \"out\" nor \"in\"", raw)
	}
	return d
}

// method reads the optional dependency method.
func (r *reader) method() core.Method {
	raw, _ := r.lookup(KeyMethod)
	m, err := core.ParseMethod(raw)
	if err != nil {
		r.fail(KeyMethod, "%v", err)
	}
	return m
}

// rejectUnknown fails on the first key (in sorted order) no field consumed.
func (r *reader) rejectUnknown() {
	if r.err != nil {
		return
	}
	keys := make([]string, 0, len(r.p))
	for k := range r.p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := r.used[k]; !ok {
			r.fail(k, "unknown parameter for this topology")
			return
		}
	}
}

// validProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN compares false on both sides and is rejected.
func validProbability(p float64) bool {
	return p >= MinProbability && p <= MaxProbability
}
