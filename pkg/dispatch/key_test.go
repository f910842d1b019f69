// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeKey(t *testing.T) {
	f32, f64 := typeinfo.Float32.Token(), typeinfo.Float64.Token()
	assert.Equal(t, NativeKey(1), NativeKeyOf(f32, f64))
	assert.Equal(t, NativeKey(4), NativeKeyOf(f64, f32))
	assert.Equal(t, NativeKey(0*4+1), NativeKeyOf(f32, f64))

	u32, i32 := typeinfo.Uint32.Token(), typeinfo.Int32.Token()
	key := NativeKeyOf(u32, i32, f64)
	assert.Equal(t, NativeKey(3*16+2*4+1), key)
	assert.Equal(t, []typeinfo.Token{u32, i32, f64}, key.Tokens(3))

	// Native keys don't carry the arity.
	assert.Equal(t, NativeKeyOf(f32), NativeKeyOf(f32, f32))

	err := exceptions.TryCatch[error](func() { _ = NativeKeyOf(typeinfo.Float16.Token()) })
	require.ErrorIs(t, err, ErrUnsupportedType)
	err = exceptions.TryCatch[error](func() { _ = NativeKeyOf() })
	require.ErrorIs(t, err, ErrArityOverflow)
	err = exceptions.TryCatch[error](func() { _ = NativeKeyOf(make([]typeinfo.Token, MaxNativeDispatchTypes+1)...) })
	require.ErrorIs(t, err, ErrArityOverflow)
	require.NotPanics(t, func() { _ = NativeKeyOf(make([]typeinfo.Token, MaxNativeDispatchTypes)...) })
}

func TestKey(t *testing.T) {
	f32, f64, f16 := typeinfo.Float32.Token(), typeinfo.Float64.Token(), typeinfo.Float16.Token()

	// Order matters.
	assert.NotEqual(t, KeyOf(f32, f64), KeyOf(f64, f32))

	// Different arities never collide, even for the zero token.
	assert.NotEqual(t, KeyOf(f32), KeyOf(f32, f32))
	assert.NotEqual(t, KeyOf(f32, f32), KeyOf(f32, f32, f32))
	assert.Equal(t, 1, KeyOf(f32).Arity())
	assert.Equal(t, 3, KeyOf(f32, f32, f32).Arity())

	key := KeyOf(f16, f64, f32)
	assert.Equal(t, []typeinfo.Token{f16, f64, f32}, key.Tokens())
	assert.Equal(t, "(Float16,Float64,Float32)", key.String())
	assert.Equal(t, "(#250)", KeyOf(250).String())

	maxTokens := make([]typeinfo.Token, MaxDispatchTypes)
	for ii := range maxTokens {
		maxTokens[ii] = typeinfo.MaxToken - typeinfo.Token(ii)
	}
	assert.Equal(t, maxTokens, KeyOf(maxTokens...).Tokens())

	err := exceptions.TryCatch[error](func() { _ = KeyOf(make([]typeinfo.Token, MaxDispatchTypes+1)...) })
	require.ErrorIs(t, err, ErrArityOverflow)
	err = exceptions.TryCatch[error](func() { _ = KeyOf() })
	require.ErrorIs(t, err, ErrArityOverflow)
}

func TestKeyValidity(t *testing.T) {
	f32, u32, f16 := typeinfo.Float32.Token(), typeinfo.Uint32.Token(), typeinfo.Float16.Token()
	assert.True(t, KeyOf(f16).IsValid())
	assert.True(t, KeyOf(make([]typeinfo.Token, MaxDispatchTypes)...).IsValid())
	assert.False(t, Key(0).IsValid())
	assert.False(t, (Key(MaxDispatchTypes+1) << arityShift).IsValid())
	assert.False(t, Key(1<<arityShift|0x1FF).IsValid())
	assert.False(t, (KeyOf(f32, f16) | 1<<(2*typeinfo.BitsPerComputeType)).IsValid())

	assert.True(t, KeyOf(f32, u32).AllNative())
	assert.False(t, KeyOf(f32, f16).AllNative())
	assert.False(t, KeyOf(typeinfo.MaxToken).AllNative())
}

func TestGetKey(t *testing.T) {
	key, err := GetKey(typeinfo.Float16, typeinfo.Float32)
	require.NoError(t, err)
	assert.Equal(t, KeyOf(typeinfo.Float16.Token(), typeinfo.Float32.Token()), key)

	_, err = GetKey(typeinfo.Float32, typeinfo.Bool)
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = GetKey(typeinfo.Invalid)
	require.ErrorIs(t, err, ErrUnsupportedType)
}
