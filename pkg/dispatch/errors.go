// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import "github.com/pkg/errors"

// Errors returned (wrapped, use errors.Is to check) by the dispatch runtime.
//
// ErrArityOverflow and ErrIndexOverflow indicate bugs in the calling code (or in the generated tables),
// and are raised as panics instead.
var (
	// ErrNotFound is returned when the registry has no entry for a (name, key).
	ErrNotFound = errors.New("dispatch entry not found")

	// ErrUnsupportedType is returned when dispatching on a type that is not a compute type.
	ErrUnsupportedType = errors.New("unsupported type for dispatch")

	// ErrArityOverflow is raised when more types are requested than a dispatch key can encode.
	ErrArityOverflow = errors.New("dispatch arity overflow")

	// ErrIndexOverflow is raised when a native key falls outside its dispatch table.
	ErrIndexOverflow = errors.New("native dispatch key out of table bounds")

	// ErrArgumentMismatch is returned when the erased arguments don't match the signature of the entry.
	ErrArgumentMismatch = errors.New("dispatch arguments mismatch")

	// ErrBuiltinOverride is returned when trying to register over, or unregister, a builtin entry.
	ErrBuiltinOverride = errors.New("cannot override builtin dispatch entry")

	// ErrAlreadyRegistered is returned when re-registering an entry with the "reject" policy.
	ErrAlreadyRegistered = errors.New("dispatch entry already registered")

	// ErrFinalized is returned when using a registry after Registry.Finalize.
	ErrFinalized = errors.New("dispatch registry finalized")

	// ErrInvalidEntry is returned when registering an empty Entry or a value that is not a function.
	ErrInvalidEntry = errors.New("invalid dispatch entry")
)
