// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// errors.go - sentinel errors and the typed parameter error.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never match strings.
//   • Parameter problems are reported as *ParamError, which names the key and
//     the offending descriptor and unwraps to ErrInvalidTopologyParameter.
//   • Strategies never panic at runtime.

package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// ErrInvalidTopologyParameter indicates a descriptor that is missing a
// required key or carries an unparseable or out-of-range value.
var ErrInvalidTopologyParameter = errors.New("topology: invalid parameter")

// ErrUnknownTopologyKind indicates a "type" value that names no strategy.
var ErrUnknownTopologyKind = errors.New("topology: unknown kind")

// ErrSelfDependency indicates a strategy produced an edge with From == To.
// It is the same sentinel as core.ErrSelfDependency.
var ErrSelfDependency = core.ErrSelfDependency

// ParamError describes one rejected descriptor parameter.
type ParamError struct {
	// Descriptor renders the offending descriptor, e.g. "{center=x, type=star}".
	Descriptor string
	// Key is the missing or invalid parameter name.
	Key string
	// Reason says what is wrong with the value.
	Reason string
}

// Error implements error.
func (e *ParamError) Error() string {
	return fmt.Sprintf("topology %s: parameter %q: %s", e.Descriptor, e.Key, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidTopologyParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidTopologyParameter }

// paramErrorf builds a *ParamError with a formatted reason.
func paramErrorf(desc fmt.Stringer, key, format string, args ...interface{}) error {
	return &ParamError{
		Descriptor: desc.String(),
		Key:        key,
		Reason:     fmt.Sprintf(format, args...),
	}
}
