// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := MakeWith("cast_cpu", "fill_cpu")
	assert.True(t, s.Has("cast_cpu"))
	assert.False(t, s.Has("fill_gpu"))
	s.Insert("fill_gpu", "cast_cpu")
	assert.Len(t, s, 3)
	assert.Equal(t, []string{"cast_cpu", "fill_cpu", "fill_gpu"}, Sorted(s))

	var empty Set[string]
	assert.False(t, empty.Has("cast_cpu"))
	assert.Empty(t, Sorted(empty))
}
