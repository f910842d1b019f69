// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/gomlx/kdispatch/pkg/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolve(t *testing.T) {
	op, types, err := parseResolve("cast: Float16, Float32")
	require.NoError(t, err)
	assert.Equal(t, "cast", op)
	assert.Equal(t, []typeinfo.TypeInfo{typeinfo.Float16, typeinfo.Float32}, types)

	for _, invalid := range []string{"", "cast", "cast:", ":Float32", "cast:Float32,Complex"} {
		_, _, err = parseResolve(invalid)
		require.Error(t, err, "parseResolve(%q) should have failed", invalid)
	}
}

func TestParseDevice(t *testing.T) {
	dev, err := parseDevice("GPU")
	require.NoError(t, err)
	assert.Equal(t, device.GPU, dev)
	dev, err = parseDevice("cpu")
	require.NoError(t, err)
	assert.Equal(t, device.CPU, dev)
	_, err = parseDevice("tpu")
	require.Error(t, err)
}

func TestRegistryFilter(t *testing.T) {
	registry := dispatch.NewRegistry()
	filter, title := registryFilter(registry, "")
	assert.Nil(t, filter)
	assert.Equal(t, "Registry "+registry.String(), title)

	filter, title = registryFilter(registry, "fill_cpu,cast_cpu,fill_cpu")
	assert.Len(t, filter, 2)
	assert.True(t, filter.Has("cast_cpu"))
	assert.False(t, filter.Has("cast_gpu"))
	assert.Equal(t, "Registry "+registry.String()+" for cast_cpu, fill_cpu", title)
}

func TestResolve(t *testing.T) {
	registry := dispatch.NewRegistry()
	require.NoError(t, ops.RegisterBuiltins(registry))

	r := resolve(registry, device.CPU, "cast", []typeinfo.TypeInfo{typeinfo.Float32, typeinfo.Float64})
	require.NoError(t, r.Err)
	assert.Equal(t, "table", r.Path)
	assert.Equal(t, dispatch.NativeKey(1), r.NativeKey)
	assert.Equal(t, "func([]float32, []float64)", r.Entry.Signature())
	assert.Equal(t, uint64(0), registry.Stats().Lookups)

	r = resolve(registry, device.CPU, "cast", []typeinfo.TypeInfo{typeinfo.Float16, typeinfo.Float32})
	require.NoError(t, r.Err)
	assert.Equal(t, "registry", r.Path)
	assert.Equal(t, "func([]float16.Float16, []float32)", r.Entry.Signature())

	r = resolve(registry, device.CPU, "negate", []typeinfo.TypeInfo{typeinfo.Float32})
	require.ErrorIs(t, r.Err, dispatch.ErrNotFound)
	assert.Equal(t, "registry", r.Path)

	r = resolve(registry, device.CPU, "fill", []typeinfo.TypeInfo{typeinfo.Bool})
	require.ErrorIs(t, r.Err, dispatch.ErrUnsupportedType)
}
