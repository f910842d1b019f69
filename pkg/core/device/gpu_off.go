// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

//go:build !kdispatch_gpu

package device

// HasGPU reports whether this build includes GPU kernels.
const HasGPU = false
