// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"
	"strings"

	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/pkg/errors"
)

// NativeKey indexes a dense dispatch Table. It can only be built from native type tokens.
//
// Native keys carry no arity: a (Float32) key and a (Float32, Float32) key are both 0.
// So they are only comparable among keys of the same arity.
type NativeKey uint64

// Key identifies the types a registry entry dispatches on. It works for any compute type, native or not.
//
// The top byte holds the number of types (the arity), and the lower bytes hold the tokens of the types,
// the first type in the most significant position. Keys of different arities never collide.
//
// A NativeKey and a Key are never comparable, nor convertible to one another.
type Key uint64

const (
	// KeyBits is the width in bits of both dispatch keys.
	KeyBits = 64

	// arityShift is the number of bits to shift to reach the top byte of a Key.
	arityShift = KeyBits - 8

	// MaxDispatchTypes is the maximum number of types a Key can dispatch on.
	MaxDispatchTypes = arityShift / typeinfo.BitsPerComputeType

	// MaxNativeDispatchTypes is the maximum number of types a NativeKey can dispatch on.
	MaxNativeDispatchTypes = KeyBits / typeinfo.BitsPerNativeType

	nativeTokenMask  = 1<<typeinfo.BitsPerNativeType - 1
	computeTokenMask = 1<<typeinfo.BitsPerComputeType - 1
)

// Compile-time checks that a Key can hold at least one type below the arity byte, and that the
// arity itself fits in the top byte.
const (
	_ = uint(MaxDispatchTypes - 1)
	_ = uint(255 - MaxDispatchTypes)
)

// panicWith panics with the sentinel error wrapped with the formatted message.
// It is used for "bugs in the code", like a nil-pointer panic.
func panicWith(sentinel error, format string, args ...any) {
	panic(errors.Wrapf(sentinel, format, args...))
}

// NativeKeyOf packs the tokens of native types into a NativeKey, the first token being the most significant.
//
// It panics if there are no tokens, too many tokens (ErrArityOverflow) or if any token is not native.
func NativeKeyOf(tokens ...typeinfo.Token) NativeKey {
	n := len(tokens)
	if n == 0 || n > MaxNativeDispatchTypes {
		panicWith(ErrArityOverflow, "native dispatch key for %d types, it must be between 1 and %d", n, MaxNativeDispatchTypes)
	}
	var key NativeKey
	for ii, token := range tokens {
		if token >= typeinfo.NumNativeTypes {
			panicWith(ErrUnsupportedType, "cannot construct native dispatch key with non-native token %d at position %d", token, ii)
		}
		key |= NativeKey(token) << (typeinfo.BitsPerNativeType * (n - 1 - ii))
	}
	return key
}

// Tokens unpacks the key into arity tokens.
func (k NativeKey) Tokens(arity int) []typeinfo.Token {
	tokens := make([]typeinfo.Token, arity)
	for ii := range tokens {
		tokens[ii] = typeinfo.Token((k >> (typeinfo.BitsPerNativeType * (arity - 1 - ii))) & nativeTokenMask)
	}
	return tokens
}

// KeyOf packs the tokens into a Key, with the arity in the top byte and the first token being the most significant.
//
// It panics if there are no tokens or more than MaxDispatchTypes (ErrArityOverflow).
func KeyOf(tokens ...typeinfo.Token) Key {
	n := len(tokens)
	if n == 0 || n > MaxDispatchTypes {
		panicWith(ErrArityOverflow, "dispatch key for %d types, it must be between 1 and %d", n, MaxDispatchTypes)
	}
	key := Key(n) << arityShift
	for ii, token := range tokens {
		key |= Key(token) << (typeinfo.BitsPerComputeType * (n - 1 - ii))
	}
	return key
}

// GetKey returns the Key to register or call an implementation for the given operand types.
//
// It fails with ErrUnsupportedType if any of them is not a compute type.
func GetKey(types ...typeinfo.Haver) (Key, error) {
	on, err := DispatchOn(types...)
	if err != nil {
		return 0, err
	}
	return on.Key(), nil
}

// Arity returns the number of types encoded in the key.
func (k Key) Arity() int {
	return int(k >> arityShift)
}

// IsValid returns whether the key encodes between 1 and MaxDispatchTypes tokens, with no bits set
// outside of its token slots.
func (k Key) IsValid() bool {
	arity := k.Arity()
	if arity == 0 || arity > MaxDispatchTypes {
		return false
	}
	return (k&(1<<arityShift-1))>>(typeinfo.BitsPerComputeType*arity) == 0
}

// AllNative returns whether all the types in the key are native.
func (k Key) AllNative() bool {
	for _, token := range k.Tokens() {
		if token >= typeinfo.NumNativeTypes {
			return false
		}
	}
	return true
}

// Tokens unpacks the key.
func (k Key) Tokens() []typeinfo.Token {
	arity := k.Arity()
	tokens := make([]typeinfo.Token, arity)
	for ii := range tokens {
		tokens[ii] = typeinfo.Token((k >> (typeinfo.BitsPerComputeType * (arity - 1 - ii))) & computeTokenMask)
	}
	return tokens
}

// String implements fmt.Stringer, listing the names of the types in the key.
func (k Key) String() string {
	parts := make([]string, 0, k.Arity())
	for _, token := range k.Tokens() {
		if t, found := typeinfo.ForToken(token); found {
			parts = append(parts, t.Name())
		} else {
			parts = append(parts, fmt.Sprintf("#%d", token))
		}
	}
	return "(" + strings.Join(parts, ",") + ")"
}
