// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/kdispatch/pkg/core/buffers"
	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func newOps(t *testing.T) (*Ops, *dispatch.Registry) {
	registry := dispatch.NewRegistry()
	ops, err := New(registry)
	require.NoError(t, err)
	return ops, registry
}

func TestTables(t *testing.T) {
	for _, tables := range [][device.NumDevices]func() *dispatch.Table{fillTables, castTables} {
		for dev := range device.NumDevices {
			table := tables[dev]()
			require.NoError(t, table.Validate())
			assert.Same(t, table, tables[dev]())
		}
	}
	assert.Equal(t, 4, fillTables[device.CPU]().Len())
	assert.Equal(t, 16, castTables[device.CPU]().Len())
	assert.Equal(t, "cast_gpu", castTables[device.GPU]().Name())

	tables, err := Tables(device.CPU)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "fill_cpu", tables[0].Name())
	assert.Equal(t, "cast_cpu", tables[1].Name())
	if !device.HasGPU {
		_, err = Tables(device.GPU)
		require.ErrorIs(t, err, device.ErrUnsupported)
	}
}

func TestBuiltins(t *testing.T) {
	_, registry := newOps(t)
	// Per device: 3 fill entries and 7*7-4*4 cast entries.
	assert.Equal(t, int(device.NumDevices)*(3+33), registry.Len())
	assert.Equal(t, []string{"cast_cpu", "cast_gpu", "fill_cpu", "fill_gpu"}, registry.Names())
	assert.True(t, registry.IsBuiltin("fill_cpu", keyFor(typeinfo.Float16)))
	assert.True(t, registry.IsBuiltin("cast_cpu", keyFor(typeinfo.Int64, typeinfo.Float32)))
	assert.False(t, registry.Has("cast_cpu", keyFor(typeinfo.Float32, typeinfo.Float32)))

	// Builtins can't be replaced by users.
	err := registry.Register("fill_cpu", keyFor(typeinfo.Int64), dispatch.Func2(func([]int64, float64) {}))
	require.ErrorIs(t, err, dispatch.ErrBuiltinOverride)

	// Registering the builtins again is fine.
	require.NoError(t, RegisterBuiltins(registry))

	// The default registry is initialized with the builtins.
	assert.True(t, dispatch.Default().IsBuiltin("cast_cpu", keyFor(typeinfo.BFloat16, typeinfo.Float16)))
}

func TestFill(t *testing.T) {
	ops, registry := newOps(t)

	f32 := must.M1(buffers.New[float32](device.CPU, 3))
	require.NoError(t, ops.Fill(f32, 1.5))
	assert.Equal(t, []float32{1.5, 1.5, 1.5}, f32.Flat())
	u32 := must.M1(buffers.New[uint32](device.CPU, 2))
	require.NoError(t, ops.Fill(u32, 7))
	assert.Equal(t, []uint32{7, 7}, u32.Flat())
	assert.Equal(t, uint64(0), registry.Stats().Lookups)
	assert.Equal(t, uint64(2), ops.Dispatcher().Stats().NativeCalls)

	f16 := must.M1(buffers.New[float16.Float16](device.CPU, 2))
	require.NoError(t, ops.Fill(f16, 0.5))
	assert.Equal(t, float32(0.5), f16.Flat()[1].Float32())
	bf16 := must.M1(buffers.New[bfloat16.BFloat16](device.CPU, 2))
	require.NoError(t, ops.Fill(bf16, -2))
	assert.Equal(t, float32(-2), bf16.Flat()[0].Float32())
	i64 := must.M1(buffers.New[int64](device.CPU, 1))
	require.NoError(t, ops.Fill(i64, 42))
	assert.Equal(t, []int64{42}, i64.Flat())
	assert.Equal(t, uint64(3), registry.Stats().Lookups)

	// Storage-only types are rejected before any lookup.
	b := must.M1(buffers.New[bool](device.CPU, 1))
	require.ErrorIs(t, ops.Fill(b, 1), dispatch.ErrUnsupportedType)
	assert.Equal(t, uint64(3), registry.Stats().Lookups)
}

func TestFillNativeReserved(t *testing.T) {
	ops, registry := newOps(t)
	assert.Equal(t, []string{"cast_cpu", "cast_gpu", "fill_cpu", "fill_gpu"}, registry.NativeNames())

	// Native types are served by the tables: user entries for them are rejected instead of silently ignored.
	var calls int
	err := registry.Register(device.DispatchName(FillName, device.CPU), keyFor(typeinfo.Float32),
		dispatch.Func2(func(dst []float32, value float64) { calls++ }))
	require.ErrorIs(t, err, dispatch.ErrBuiltinOverride)
	assert.False(t, registry.Has("fill_cpu", keyFor(typeinfo.Float32)))
	err = registry.Register("cast_gpu", keyFor(typeinfo.Int32, typeinfo.Uint32),
		dispatch.Func2(func([]int32, []uint32) {}))
	require.ErrorIs(t, err, dispatch.ErrBuiltinOverride)

	buf := must.M1(buffers.New[float32](device.CPU, 2))
	require.NoError(t, ops.Fill(buf, 1))
	assert.Equal(t, []float32{1, 1}, buf.Flat())
	assert.Equal(t, 0, calls)
	assert.Equal(t, uint64(0), registry.Stats().Lookups)

	// A user entry registered before the reservation is an error when binding the operations.
	other := dispatch.NewRegistry()
	require.NoError(t, other.Register("fill_cpu", keyFor(typeinfo.Float32), dispatch.Func2(func([]float32, float64) {})))
	_, err = New(other)
	require.ErrorIs(t, err, dispatch.ErrBuiltinOverride)
}

// rgba8 is a custom type used to test user registered kernels.
type rgba8 struct{ R, G, B, A uint8 }

func TestFillCustomType(t *testing.T) {
	dtype, err := typeinfo.Register[rgba8]("RGBA8")
	require.NoError(t, err)
	ops, registry := newOps(t)
	buf := must.M1(buffers.New[rgba8](device.CPU, 2))
	require.ErrorIs(t, ops.Fill(buf, 1), dispatch.ErrNotFound)

	key, err := dispatch.GetKey(dtype)
	require.NoError(t, err)
	var calls int
	require.NoError(t, registry.Register(device.DispatchName(FillName, device.CPU), key,
		dispatch.Func2(func(dst []rgba8, value float64) {
			calls++
			v := uint8(value * 255)
			for ii := range dst {
				dst[ii] = rgba8{v, v, v, 255}
			}
		})))
	require.NoError(t, ops.Fill(buf, 1))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []rgba8{{255, 255, 255, 255}, {255, 255, 255, 255}}, buf.Flat())
}

func TestCast(t *testing.T) {
	ops, registry := newOps(t)

	src := must.M1(buffers.FromFlat(device.CPU, []float64{1.5, -2.25, 3}))
	f32 := must.M1(buffers.New[float32](device.CPU, 3))
	require.NoError(t, ops.Cast(f32, src))
	assert.Equal(t, []float32{1.5, -2.25, 3}, f32.Flat())
	i32 := must.M1(buffers.New[int32](device.CPU, 3))
	require.NoError(t, ops.Cast(i32, f32))
	assert.Equal(t, []int32{1, -2, 3}, i32.Flat())
	assert.Equal(t, uint64(0), registry.Stats().Lookups)

	// Through the builtin registry entries.
	f16 := must.M1(buffers.New[float16.Float16](device.CPU, 3))
	require.NoError(t, ops.Cast(f16, src))
	bf16 := must.M1(buffers.New[bfloat16.BFloat16](device.CPU, 3))
	require.NoError(t, ops.Cast(bf16, f16))
	i64 := must.M1(buffers.New[int64](device.CPU, 3))
	require.NoError(t, ops.Cast(i64, bf16))
	assert.Equal(t, []int64{1, -2, 3}, i64.Flat())
	back := must.M1(buffers.New[float64](device.CPU, 3))
	require.NoError(t, ops.Cast(back, f16))
	assert.Equal(t, []float64{1.5, -2.25, 3}, back.Flat())
	assert.Equal(t, uint64(4), registry.Stats().Lookups)
	assert.Equal(t, dispatch.DispatcherStats{NativeCalls: 2, RegistryCalls: 4}, ops.Dispatcher().Stats())

	// Errors.
	short := must.M1(buffers.New[float32](device.CPU, 2))
	require.Error(t, ops.Cast(short, src))
	b := must.M1(buffers.New[bool](device.CPU, 3))
	require.ErrorIs(t, ops.Cast(b, src), dispatch.ErrUnsupportedType)
}

func TestDefaultOps(t *testing.T) {
	values := must.M1(buffers.FromFlat(device.CPU, []float32{1, 2}))
	require.NoError(t, Fill(values, 3))
	assert.Equal(t, []float32{3, 3}, values.Flat())
	f16 := must.M1(buffers.New[float16.Float16](device.CPU, 2))
	require.NoError(t, Cast(f16, values))
	assert.Equal(t, float32(3), f16.Flat()[0].Float32())
}

func TestNegate(t *testing.T) {
	values := []float64{1, -2, 0}
	require.NoError(t, Negate(device.CPU, values))
	assert.Equal(t, []float64{-1, 2, 0}, values)

	ints := []int64{5}
	require.NoError(t, Negate(device.CPU, ints))
	assert.Equal(t, []int64{-5}, ints)

	err := Negate(device.GPU, values)
	if device.HasGPU {
		require.NoError(t, err)
		assert.Equal(t, []float64{1, -2, 0}, values)
	} else {
		require.ErrorIs(t, err, device.ErrUnsupported)
	}
}
