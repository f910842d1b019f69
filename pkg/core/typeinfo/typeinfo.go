// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package typeinfo is the catalog of element types known to the dispatch runtime.
//
// Every type gets a small integer Token, unique within the process. There are three families of types:
//
//   - Native compute types (float32, float64, int32, uint32): a closed set with contiguous tokens starting
//     at 0, for which dense dispatch tables are built.
//   - Other compute types: library-known types (Float16, BFloat16, Int64) and custom types registered
//     by users with Register. They can only be dispatched through a registry.
//   - Storage-only types (e.g. bool): they have a token, but are not compute types, and dispatching on them
//     is refused.
//
// The element types of the library-known types are described by github.com/gomlx/gopjrt/dtypes.
package typeinfo

import (
	"fmt"
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
)

// Token identifies a type in the catalog.
type Token uint8

const (
	// NumNativeTypes is the number of native compute types: they hold tokens 0 to NumNativeTypes-1.
	NumNativeTypes = 4

	// BitsPerNativeType is the number of bits needed to represent any native token.
	BitsPerNativeType = 2

	// BitsPerComputeType is the number of bits needed to represent any token.
	BitsPerComputeType = 8

	// InvalidToken is reserved for types unknown to the catalog.
	InvalidToken Token = 1<<BitsPerComputeType - 1

	// MaxToken is the largest token that can be assigned to a type.
	MaxToken = InvalidToken - 1
)

// Compile-time check that BitsPerNativeType can hold all native tokens: a negative constant won't convert to uint.
const _ = uint(1<<BitsPerNativeType - NumNativeTypes)

// TypeInfo is the runtime descriptor of a type in the catalog.
//
// The zero value is not valid, use Invalid instead.
type TypeInfo struct {
	token   Token
	name    string
	goType  reflect.Type
	dtype   dtypes.DType
	compute bool
}

// Haver is anything that can report its runtime type: a TypeInfo itself, or a type-erased buffer.
type Haver interface {
	TypeInfo() TypeInfo
}

// TypeInfo implements Haver.
func (t TypeInfo) TypeInfo() TypeInfo { return t }

// Token returns the type's token.
func (t TypeInfo) Token() Token { return t.token }

// Name of the type.
func (t TypeInfo) Name() string { return t.name }

// GoType returns the Go type described, or nil for Invalid.
func (t TypeInfo) GoType() reflect.Type { return t.goType }

// DType returns the corresponding dtypes.DType, or dtypes.InvalidDType for custom types.
func (t TypeInfo) DType() dtypes.DType { return t.dtype }

// IsValid returns whether t is a type known to the catalog.
func (t TypeInfo) IsValid() bool { return t.token != InvalidToken && t.goType != nil }

// IsNative returns whether t is one of the native compute types.
func (t TypeInfo) IsNative() bool { return t.IsValid() && t.token < NumNativeTypes }

// IsCompute returns whether t can be dispatched on (native or not).
func (t TypeInfo) IsCompute() bool { return t.IsValid() && t.compute }

// String implements fmt.Stringer.
func (t TypeInfo) String() string {
	if !t.IsValid() {
		return "invalid"
	}
	return t.name
}

// GoString implements fmt.GoStringer, used by "%#v".
func (t TypeInfo) GoString() string {
	return fmt.Sprintf("typeinfo.TypeInfo{%s, token=%d, native=%v, compute=%v}", t, t.token, t.IsNative(), t.IsCompute())
}
