// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// PODNumber are the element types the generic kernels are instantiated with: the native types plus
// the library-known numeric types Go can convert directly.
type PODNumber interface {
	constraints.Integer | constraints.Float
}

// Kernels are generic on the device tag D, so each device gets its own instantiation (and its own table).
// The device memory is the host memory in this build, so the bodies are the same.

func fillGeneric[D device.Tag, T PODNumber](dst []T, value float64) {
	v := T(value)
	for ii := range dst {
		dst[ii] = v
	}
}

func fillFloat16[D device.Tag](dst []float16.Float16, value float64) {
	v := float16.Fromfloat32(float32(value))
	for ii := range dst {
		dst[ii] = v
	}
}

func fillBFloat16[D device.Tag](dst []bfloat16.BFloat16, value float64) {
	v := bfloat16.FromFloat32(float32(value))
	for ii := range dst {
		dst[ii] = v
	}
}

func castGeneric[D device.Tag, ToT, FromT PODNumber](dst []ToT, src []FromT) {
	for idx, value := range src {
		dst[idx] = ToT(value)
	}
}

func castCopy[D device.Tag, T any](dst, src []T) {
	copy(dst, src)
}

func castToFloat16[D device.Tag, FromT PODNumber](dst []float16.Float16, src []FromT) {
	for idx, value := range src {
		dst[idx] = float16.Fromfloat32(float32(value))
	}
}

func castFromFloat16[D device.Tag, ToT PODNumber](dst []ToT, src []float16.Float16) {
	for idx, value := range src {
		dst[idx] = ToT(value.Float32())
	}
}

func castToBFloat16[D device.Tag, FromT PODNumber](dst []bfloat16.BFloat16, src []FromT) {
	for idx, value := range src {
		dst[idx] = bfloat16.FromFloat32(float32(value))
	}
}

func castFromBFloat16[D device.Tag, ToT PODNumber](dst []ToT, src []bfloat16.BFloat16) {
	for idx, value := range src {
		dst[idx] = ToT(value.Float32())
	}
}

func castFloat16ToBFloat16[D device.Tag](dst []bfloat16.BFloat16, src []float16.Float16) {
	for idx, value := range src {
		dst[idx] = bfloat16.FromFloat32(value.Float32())
	}
}

func castBFloat16ToFloat16[D device.Tag](dst []float16.Float16, src []bfloat16.BFloat16) {
	for idx, value := range src {
		dst[idx] = float16.Fromfloat32(value.Float32())
	}
}

func negateKernel[D device.Tag, T PODNumber](_ D, values []T) {
	for ii, value := range values {
		values[ii] = -value
	}
}
