// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package device

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchName(t *testing.T) {
	assert.Equal(t, "cast_cpu", DispatchName("cast", CPU))
	assert.Equal(t, "cast_gpu", DispatchName("cast", GPU))
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "UnknownDevice", NumDevices.String())
}

func tagDevice[D Tag](tag D) Device { return tag.Device() }

func TestSelect(t *testing.T) {
	var got []Device
	onCPU := func(tag CPUDev) { got = append(got, tagDevice(tag)) }
	onGPU := func(tag GPUDev) { got = append(got, tagDevice(tag)) }

	require.NoError(t, Select(CPU, onCPU, onGPU))
	require.Equal(t, []Device{CPU}, got)

	err := Select(GPU, onCPU, onGPU)
	if HasGPU {
		require.NoError(t, err)
		require.Equal(t, []Device{CPU, GPU}, got)
	} else {
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnsupported))
		require.Equal(t, []Device{CPU}, got)
	}

	// Missing implementation.
	err = Select(CPU, nil, onGPU)
	require.ErrorIs(t, err, ErrUnsupported)

	// Unknown device.
	require.ErrorIs(t, Select(NumDevices, onCPU, onGPU), ErrUnsupported)
}
