// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/pkg/errors"
)

// On describes the operand types of one dispatch, as returned by DispatchOn.
type On struct {
	tokens    [MaxDispatchTypes]typeinfo.Token
	n         int
	allNative bool
}

// DispatchOn classifies the operand types of a call.
//
// It returns ErrUnsupportedType if any of the types is not a compute type, and panics (ErrArityOverflow) if there
// are no types or more than MaxDispatchTypes.
func DispatchOn(types ...typeinfo.Haver) (On, error) {
	n := len(types)
	if n == 0 || n > MaxDispatchTypes {
		panicWith(ErrArityOverflow, "dispatch on %d types, it must be between 1 and %d", n, MaxDispatchTypes)
	}
	on := On{n: n, allNative: true}
	for ii, haver := range types {
		dtype := haver.TypeInfo()
		if !dtype.IsCompute() {
			return On{}, errors.Wrapf(ErrUnsupportedType, "operand #%d has type %s", ii, dtype)
		}
		on.tokens[ii] = dtype.Token()
		on.allNative = on.allNative && dtype.IsNative()
	}
	return on, nil
}

// Arity is the number of operand types.
func (on On) Arity() int { return on.n }

// AllNative returns whether all operand types are native, in which case the dispatch uses a Table.
func (on On) AllNative() bool { return on.allNative }

// Tokens of the operand types.
func (on On) Tokens() []typeinfo.Token { return on.tokens[:on.n] }

// NativeKey returns the key into a Table. It panics (ErrUnsupportedType) if not all operand types are native.
func (on On) NativeKey() NativeKey { return NativeKeyOf(on.Tokens()...) }

// Key returns the key into a Registry.
func (on On) Key() Key { return KeyOf(on.Tokens()...) }

// Dispatcher chooses between the Table of an operation, if all the operand types are native, or the Registry
// otherwise.
type Dispatcher struct {
	registry *Registry

	nativeCalls, registryCalls atomic.Uint64
}

// NewDispatcher returns a Dispatcher that uses the given registry for non-native operand types.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

var defaultDispatcher = sync.OnceValue(func() *Dispatcher { return NewDispatcher(Default()) })

// DefaultDispatcher returns the Dispatcher using the Default registry.
func DefaultDispatcher() *Dispatcher { return defaultDispatcher() }

// Registry used by the dispatcher.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Dispatch calls the implementation of the operation for the operand types described by on, with args.
//
//   - If all operand types are native, it calls the table entry indexed by on.NativeKey(), without touching the registry.
//     table may be nil for operations only implemented in the registry. Registry entries for all-native keys are
//     never used when a table is given, see Registry.ReserveNative.
//   - Otherwise, it calls the registry entry for (name, on.Key()).
//
// It returns ErrNotFound if there is no implementation, ErrArgumentMismatch if args don't match the implementation,
// or the error returned by the implementation.
func (d *Dispatcher) Dispatch(table *Table, name string, on On, args ...any) error {
	if on.allNative && table != nil {
		if on.n != table.arity {
			panicWith(ErrArityOverflow, "dispatching %d types on table %q of arity %d", on.n, table.name, table.arity)
		}
		entry := table.Entry(on.NativeKey())
		if !entry.IsValid() {
			return errors.Wrapf(ErrNotFound, "dispatch table %q has no entry for %s", table.name, on.Key())
		}
		d.nativeCalls.Add(1)
		err := entry.call(args)
		if err != nil && errors.Is(err, ErrArgumentMismatch) {
			return errors.WithMessagef(err, "calling %q for %s with %s", table.name, on.Key(), describeArgs(args))
		}
		return err
	}
	d.registryCalls.Add(1)
	return d.registry.call(name, on.Key(), args)
}

// DispatcherStats counts the dispatches by path.
type DispatcherStats struct {
	NativeCalls, RegistryCalls uint64
}

// Stats returns the current dispatch counters.
func (d *Dispatcher) Stats() DispatcherStats {
	return DispatcherStats{NativeCalls: d.nativeCalls.Load(), RegistryCalls: d.registryCalls.Load()}
}

// Dispatch using the DefaultDispatcher. See Dispatcher.Dispatch.
func Dispatch(table *Table, name string, on On, args ...any) error {
	return DefaultDispatcher().Dispatch(table, name, on, args...)
}
