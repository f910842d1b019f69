// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ops implements a few operations on buffers, dispatched to type and device specific kernels.
//
// Operations on native types (see typeinfo.Natives) are dispatched through dense tables generated by
// internal/cmd/ops_generator. The library-known non-native types (Float16, BFloat16, Int64) are implemented
// by builtin registry entries, and users can register implementations for their own types:
//
//	key, _ := dispatch.GetKey(myType)
//	err := dispatch.Default().Register(device.DispatchName(ops.FillName, device.CPU), key,
//		dispatch.Func2(func(dst []MyType, value float64) { ... }))
//
// The names of the operations are reserved as native in the registry (see dispatch.Registry.ReserveNative):
// the kernels for native types can't be replaced by registering them.
//
// The package functions use dispatch.Default(), which gets the builtin entries when this package is initialized.
// Use New to bind the operations to a different registry.
package ops

import (
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/kdispatch/pkg/core/buffers"
	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/pkg/errors"
)

//go:generate go run ../../internal/cmd/ops_generator

// Names of the operations, as registered in a dispatch.Registry: the actual names are suffixed with the device,
// see device.DispatchName.
const (
	FillName = "fill"
	CastName = "cast"
)

// Ops dispatches the operations using a given registry.
type Ops struct {
	dispatcher *dispatch.Dispatcher
}

// New registers the builtin entries in registry and returns the operations bound to it.
func New(registry *dispatch.Registry) (*Ops, error) {
	if err := RegisterBuiltins(registry); err != nil {
		return nil, err
	}
	return &Ops{dispatcher: dispatch.NewDispatcher(registry)}, nil
}

// RegisterBuiltins registers in registry the implementations of the operations for the library-known
// non-native types, and reserves the operation names for their native tables (see dispatch.Registry.ReserveNative).
func RegisterBuiltins(registry *dispatch.Registry) error {
	var names []string
	for dev := range device.NumDevices {
		names = append(names, device.DispatchName(FillName, dev), device.DispatchName(CastName, dev))
	}
	if err := registry.ReserveNative(names...); err != nil {
		return errors.WithMessagef(err, "registering builtin ops in %s", registry)
	}
	return errors.WithMessagef(registerGeneratedBuiltins(registry), "registering builtin ops in %s", registry)
}

func init() {
	if err := RegisterBuiltins(dispatch.Default()); err != nil {
		exceptions.Panicf("ops: %+v", err)
	}
}

var defaultOps = sync.OnceValue(func() *Ops {
	return &Ops{dispatcher: dispatch.DefaultDispatcher()}
})

// Default returns the operations bound to dispatch.Default().
func Default() *Ops { return defaultOps() }

// Dispatcher used by the operations.
func (o *Ops) Dispatcher() *dispatch.Dispatcher { return o.dispatcher }

// keyFor is used by the generated code.
func keyFor(types ...typeinfo.TypeInfo) dispatch.Key {
	tokens := make([]typeinfo.Token, len(types))
	for ii, dtype := range types {
		tokens[ii] = dtype.Token()
	}
	return dispatch.KeyOf(tokens...)
}

func deviceTable(tables *[device.NumDevices]func() *dispatch.Table, dev device.Device) (*dispatch.Table, error) {
	if !dev.IsAvailable() {
		return nil, errors.Wrapf(device.ErrUnsupported, "device %s", dev)
	}
	return tables[dev](), nil
}

// Tables returns the dispatch tables of all operations for the device, building them if needed.
func Tables(dev device.Device) ([]*dispatch.Table, error) {
	var tables []*dispatch.Table
	for _, opTables := range []*[device.NumDevices]func() *dispatch.Table{&fillTables, &castTables} {
		table, err := deviceTable(opTables, dev)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Fill sets all elements of dst to value, converted to the dst type.
func (o *Ops) Fill(dst buffers.Base, value float64) error {
	dev := dst.Device()
	table, err := deviceTable(&fillTables, dev)
	if err != nil {
		return errors.WithMessagef(err, "Fill(%s)", dst.TypeInfo())
	}
	on, err := dispatch.DispatchOn(dst)
	if err != nil {
		return errors.WithMessage(err, "Fill")
	}
	return o.dispatcher.Dispatch(table, device.DispatchName(FillName, dev), on, dst.FlatAny(), value)
}

// Cast converts the values of src to the type of dst, and stores them in dst.
// Both buffers must have the same length and live in the same device.
func (o *Ops) Cast(dst, src buffers.Base) error {
	if dst.Len() != src.Len() {
		return errors.Errorf("Cast(%s <- %s): dst has %d elements, src has %d", dst.TypeInfo(), src.TypeInfo(), dst.Len(), src.Len())
	}
	dev := dst.Device()
	if src.Device() != dev {
		return errors.Wrapf(device.ErrUnsupported, "Cast(%s <- %s): dst is on %s, src is on %s",
			dst.TypeInfo(), src.TypeInfo(), dev, src.Device())
	}
	table, err := deviceTable(&castTables, dev)
	if err != nil {
		return errors.WithMessagef(err, "Cast(%s <- %s)", dst.TypeInfo(), src.TypeInfo())
	}
	on, err := dispatch.DispatchOn(dst, src)
	if err != nil {
		return errors.WithMessage(err, "Cast")
	}
	return o.dispatcher.Dispatch(table, device.DispatchName(CastName, dev), on, dst.FlatAny(), src.FlatAny())
}

// Fill sets all elements of dst to value, using Default().
func Fill(dst buffers.Base, value float64) error { return Default().Fill(dst, value) }

// Cast converts src into dst, using Default().
func Cast(dst, src buffers.Base) error { return Default().Cast(dst, src) }

// Negate negates values in place, using the kernel of the given device.
//
// The kernel is selected at compile time by the type T and the device tag: there is no
// runtime dispatch on types involved.
func Negate[T PODNumber](dev device.Device, values []T) error {
	return device.Select(dev,
		func(tag device.CPUDev) { negateKernel(tag, values) },
		func(tag device.GPUDev) { negateKernel(tag, values) })
}
