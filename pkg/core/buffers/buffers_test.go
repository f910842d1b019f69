// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package buffers

import (
	"testing"

	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestBuffer(t *testing.T) {
	b, err := New[float16.Float16](device.CPU, 3)
	require.NoError(t, err)
	assert.Equal(t, typeinfo.Float16, b.TypeInfo())
	assert.Equal(t, device.CPU, b.Device())
	assert.Equal(t, 3, b.Len())
	assert.Len(t, b.FlatAny().([]float16.Float16), 3)

	flat := []int32{1, 2, 3}
	b2, err := FromFlat(device.CPU, flat)
	require.NoError(t, err)
	b2.Flat()[0] = 7
	assert.Equal(t, int32(7), flat[0])
	assert.Equal(t, "Buffer[Int32@CPU][7 2 3]", b2.String())

	var base Base = b2
	back, err := As[int32](base)
	require.NoError(t, err)
	assert.Same(t, b2, back)
	_, err = As[float32](base)
	require.Error(t, err)

	_, err = New[float32](device.CPU, -1)
	require.Error(t, err)
}

type unknownElement struct{ X int }

func TestBufferErrors(t *testing.T) {
	_, err := New[unknownElement](device.CPU, 1)
	require.ErrorIs(t, err, typeinfo.ErrInvalidType)

	if !device.HasGPU {
		_, err = New[float32](device.GPU, 1)
		require.ErrorIs(t, err, device.ErrUnsupported)
	}
}
