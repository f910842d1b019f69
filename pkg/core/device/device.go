// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package device defines the closed set of devices kernels can run on, and the compile-time tags
// used to select device-specific kernel variants.
//
// Device-specific code is selected with tag types: a kernel is written once, generic over a Tag,
// and Select calls the variant for a runtime Device. There is no virtual dispatch involved.
package device

import (
	"github.com/pkg/errors"
)

// Device where a buffer lives, or a kernel runs.
type Device int8

const (
	// CPU is the host.
	CPU Device = iota

	// GPU is an accelerator. It is only available if built with the "kdispatch_gpu" tag, see HasGPU.
	GPU

	// NumDevices is the number of devices in the enum.
	NumDevices
)

// String implements fmt.Stringer.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case GPU:
		return "GPU"
	default:
		return "UnknownDevice"
	}
}

// Suffix returns the lower-case suffix used to name device-specific dispatch entries.
func (d Device) Suffix() string {
	switch d {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// IsAvailable returns whether kernels can run on the device in this build.
func (d Device) IsAvailable() bool {
	switch d {
	case CPU:
		return true
	case GPU:
		return HasGPU
	default:
		return false
	}
}

// ErrUnsupported is returned when selecting a device that is not available in this build.
var ErrUnsupported = errors.New("unsupported device")

// CPUDev is the compile-time tag for the CPU.
type CPUDev struct{}

// Device implements Tag.
func (CPUDev) Device() Device { return CPU }

// GPUDev is the compile-time tag for the GPU.
type GPUDev struct{}

// Device implements Tag.
func (GPUDev) Device() Device { return GPU }

// Tag is the constraint for generic kernels specialized per device.
type Tag interface {
	CPUDev | GPUDev
	Device() Device
}

// DispatchName returns the name used to register device-specific implementations of the named operation.
// E.g.: DispatchName("cast", GPU) returns "cast_gpu".
func DispatchName(name string, dev Device) string {
	return name + "_" + dev.Suffix()
}

// Select calls onCPU or onGPU according to dev.
//
// It returns ErrUnsupported (wrapped) if dev is not available in this build, or if the corresponding
// function is nil.
func Select(dev Device, onCPU func(CPUDev), onGPU func(GPUDev)) error {
	if !dev.IsAvailable() {
		return errors.Wrapf(ErrUnsupported, "device %s", dev)
	}
	switch dev {
	case CPU:
		if onCPU == nil {
			break
		}
		onCPU(CPUDev{})
		return nil
	case GPU:
		if onGPU == nil {
			break
		}
		onGPU(GPUDev{})
		return nil
	}
	return errors.Wrapf(ErrUnsupported, "no implementation for device %s", dev)
}
