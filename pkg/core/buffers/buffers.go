// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package buffers implements a minimal flat buffer that carries its runtime type and device.
//
// It is what kernels dispatched with package dispatch operate on: a Buffer[T] is statically typed,
// while Base erases T and exposes the TypeInfo used to build the dispatch keys.
package buffers

import (
	"fmt"

	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/pkg/errors"
)

// Base is the type-erased interface of a Buffer.
type Base interface {
	typeinfo.Haver

	// Device where the buffer lives.
	Device() device.Device

	// Len is the number of elements in the buffer.
	Len() int

	// FlatAny returns the underlying []T as an any.
	FlatAny() any
}

// Buffer holds a flat slice of values of type T.
type Buffer[T any] struct {
	dtype typeinfo.TypeInfo
	dev   device.Device
	flat  []T
}

// Assert Buffer implements Base.
var _ Base = (*Buffer[float32])(nil)

// New allocates a buffer of the given length, filled with zeros.
//
// It fails if T is not a type known by typeinfo, or if the device is not available.
func New[T any](dev device.Device, length int) (*Buffer[T], error) {
	if length < 0 {
		return nil, errors.Errorf("buffers.New: negative length %d", length)
	}
	return FromFlat(dev, make([]T, length))
}

// FromFlat creates a buffer that uses flat as its storage: it is not copied.
//
// It fails if T is not a type known by typeinfo, or if the device is not available.
func FromFlat[T any](dev device.Device, flat []T) (*Buffer[T], error) {
	dtype := typeinfo.Of[T]()
	if !dtype.IsValid() {
		var zero T
		return nil, errors.Wrapf(typeinfo.ErrInvalidType, "buffers: element type %T is not registered in typeinfo", zero)
	}
	if !dev.IsAvailable() {
		return nil, errors.Wrapf(device.ErrUnsupported, "buffers: device %s", dev)
	}
	return &Buffer[T]{dtype: dtype, dev: dev, flat: flat}, nil
}

// TypeInfo implements typeinfo.Haver.
func (b *Buffer[T]) TypeInfo() typeinfo.TypeInfo { return b.dtype }

// Device implements Base.
func (b *Buffer[T]) Device() device.Device { return b.dev }

// Len implements Base.
func (b *Buffer[T]) Len() int { return len(b.flat) }

// FlatAny implements Base.
func (b *Buffer[T]) FlatAny() any { return b.flat }

// Flat returns the underlying storage. Changes to it are reflected in the buffer.
func (b *Buffer[T]) Flat() []T { return b.flat }

// String implements fmt.Stringer.
func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer[%s@%s]%v", b.dtype, b.dev, b.flat)
}

// As converts back a Base to its concrete *Buffer[T].
func As[T any](base Base) (*Buffer[T], error) {
	b, ok := base.(*Buffer[T])
	if !ok {
		var zero T
		return nil, errors.Errorf("buffer of type %s can't be used as a buffer of %T", base.TypeInfo(), zero)
	}
	return b, nil
}
