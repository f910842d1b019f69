// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"
	"testing"

	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scale(dst []float32, factor float32) {
	for ii := range dst {
		dst[ii] *= factor
	}
}

func TestEntry(t *testing.T) {
	entry := Func2(scale)
	require.True(t, entry.IsValid())
	assert.Equal(t, 2, entry.NumArgs())
	assert.Equal(t, "func([]float32, float32)", entry.Signature())

	values := []float32{1, 2, 3}
	require.NoError(t, entry.Call(values, float32(2)))
	assert.Equal(t, []float32{2, 4, 6}, values)

	// Wrong number of arguments.
	require.ErrorIs(t, entry.Call(values), ErrArgumentMismatch)
	require.ErrorIs(t, entry.Call(values, float32(2), 3), ErrArgumentMismatch)

	// Wrong types: no implicit conversions.
	err := entry.Call(values, 2.0)
	require.ErrorIs(t, err, ErrArgumentMismatch)
	assert.Contains(t, err.Error(), "argument #1 is float64, expected float32")
	require.ErrorIs(t, entry.Call([]float64{1}, float32(2)), ErrArgumentMismatch)
	assert.Equal(t, []float32{2, 4, 6}, values)

	// A nil slice is a valid []float32.
	require.NoError(t, entry.Call(nil, float32(2)))
	require.ErrorIs(t, entry.Call(values, nil), ErrArgumentMismatch)
}

func TestEntryErrorsAndInterfaces(t *testing.T) {
	errKernel := errors.New("kernel failed")
	var got []string
	entry := FuncErr2(func(s fmt.Stringer, fail bool) error {
		got = append(got, s.String())
		if fail {
			return errKernel
		}
		return nil
	})
	require.NoError(t, entry.Call(typeinfo.Float32, false))
	require.ErrorIs(t, entry.Call(typeinfo.Int32, true), errKernel)
	assert.Equal(t, []string{"Float32", "Int32"}, got)
	require.ErrorIs(t, entry.Call(1, false), ErrArgumentMismatch)

	// Panics inside the kernel are not intercepted.
	panicking := Func1(func(int) { panic("boom") })
	require.PanicsWithValue(t, "boom", func() { _ = panicking.Call(1) })
}

func TestEntryInvalid(t *testing.T) {
	var empty Entry
	assert.False(t, empty.IsValid())
	assert.Equal(t, "Entry(invalid)", empty.String())
	require.ErrorIs(t, empty.Call(), ErrInvalidEntry)

	nilFn := Func1[int](nil)
	assert.False(t, nilFn.IsValid())
}

func TestFuncOf(t *testing.T) {
	var sum int
	entry, err := FuncOf(func(a, b, c, d, e, f, g int, p *int) {
		sum = a + b + c + d + e + f + g
		if p != nil {
			*p = sum
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 8, entry.NumArgs())
	var result int
	require.NoError(t, entry.Call(1, 2, 3, 4, 5, 6, 7, &result))
	assert.Equal(t, 28, result)
	require.NoError(t, entry.Call(1, 1, 1, 1, 1, 1, 1, nil))
	assert.Equal(t, 7, sum)
	require.ErrorIs(t, entry.Call(1, 2, 3), ErrArgumentMismatch)
	require.ErrorIs(t, entry.Call(1, 2, 3, 4, 5, 6, 7, result), ErrArgumentMismatch)

	errKernel := errors.New("kernel failed")
	entry, err = FuncOf(func(fail bool) error {
		if fail {
			return errKernel
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, entry.Call(false))
	require.ErrorIs(t, entry.Call(true), errKernel)

	for _, fn := range []any{nil, 1, (func())(nil), func() int { return 0 }, func(...int) {}} {
		_, err = FuncOf(fn)
		require.ErrorIs(t, err, ErrInvalidEntry, "FuncOf(%T) should have failed", fn)
	}
}

func TestDescribeArgs(t *testing.T) {
	assert.Equal(t, "([]float32, nil, int)", describeArgs([]any{[]float32{}, nil, 1}))
	assert.Equal(t, "()", describeArgs(nil))
}
