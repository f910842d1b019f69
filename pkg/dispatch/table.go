// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"strings"
	"sync"

	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// MaxTableArity is the maximum number of types a Table can dispatch on.
// A table has NumNativeTypes^arity entries.
const MaxTableArity = 6

// Table is a dense dispatch table, indexed by the NativeKey of the operand types.
//
// It has one slot per combination of native types, which is filled by the generated code (see package ops)
// using Set, and then is only read.
// Usually it is built once per operation with LazyTable.
type Table struct {
	name    string
	arity   int
	entries []Entry
}

// NewTable creates an empty table for an operation on arity native types.
//
// It panics (ErrArityOverflow) if arity is not between 1 and MaxTableArity.
func NewTable(name string, arity int) *Table {
	if arity <= 0 || arity > MaxTableArity {
		panicWith(ErrArityOverflow, "dispatch table %q for %d types, it must be between 1 and %d", name, arity, MaxTableArity)
	}
	size := 1
	for range arity {
		size *= typeinfo.NumNativeTypes
	}
	return &Table{
		name:    name,
		arity:   arity,
		entries: make([]Entry, size),
	}
}

// Name of the operation the table implements.
func (t *Table) Name() string { return t.name }

// Arity is the number of types the table dispatches on.
func (t *Table) Arity() int { return t.arity }

// Len returns the number of slots in the table, filled or not.
func (t *Table) Len() int { return len(t.entries) }

// Set the entry for the given native types and returns the table itself, so calls can be chained.
//
// It panics if the number of types doesn't match the table arity (ErrArityOverflow), or if any of the types
// is not native (ErrUnsupportedType).
func (t *Table) Set(entry Entry, types ...typeinfo.TypeInfo) *Table {
	if len(types) != t.arity {
		panicWith(ErrArityOverflow, "dispatch table %q takes %d types, got %d", t.name, t.arity, len(types))
	}
	tokens := make([]typeinfo.Token, len(types))
	for ii, dtype := range types {
		if !dtype.IsNative() {
			panicWith(ErrUnsupportedType, "dispatch table %q only accepts native types, got %s at position %d", t.name, dtype, ii)
		}
		tokens[ii] = dtype.Token()
	}
	t.entries[NativeKeyOf(tokens...)] = entry
	return t
}

// Entry returns the entry for the key. It may be invalid (see Entry.IsValid) if the slot was never set.
//
// It panics with ErrIndexOverflow if the key is outside the table, which indicates a key built for a different arity.
func (t *Table) Entry(key NativeKey) Entry {
	if uint64(key) >= uint64(len(t.entries)) {
		panicWith(ErrIndexOverflow, "native key %d for dispatch table %q of %d entries", uint64(key), t.name, len(t.entries))
	}
	return t.entries[key]
}

// Validate returns an error (ErrNotFound) listing the slots that were never set, if any.
func (t *Table) Validate() error {
	var missing []string
	for idx, entry := range t.entries {
		if entry.IsValid() {
			continue
		}
		names := make([]string, t.arity)
		for ii, token := range NativeKey(idx).Tokens(t.arity) {
			dtype, _ := typeinfo.ForToken(token)
			names[ii] = dtype.Name()
		}
		missing = append(missing, "("+strings.Join(names, ",")+")")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrNotFound, "dispatch table %q is missing %d of %d entries: %s",
			t.name, len(missing), len(t.entries), strings.Join(missing, ", "))
	}
	return nil
}

// Validated returns the table itself if all its entries are set, and panics otherwise (see Validate).
// It is used to finish the construction of generated tables.
func (t *Table) Validated() *Table {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// LazyTable returns a function that builds the table on its first call, and returns the same table afterwards.
// It is safe for concurrent use.
//
// Example:
//
//	var negateTable = dispatch.LazyTable(func() *dispatch.Table {
//		return dispatch.NewTable("negate", 1).
//			Set(dispatch.Func1(negateFloat32), typeinfo.Float32).
//			...
//	})
func LazyTable(build func() *Table) func() *Table {
	return sync.OnceValue(func() *Table {
		table := build()
		klog.V(2).Infof("dispatch: built table %q with %d entries", table.name, len(table.entries))
		return table
	})
}
