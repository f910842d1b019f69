/***** File generated by ./internal/cmd/ops_generator. Don't edit it directly. *****/

package ops

import (
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/x448/float16"
)

// fillTables holds the dispatch tables for FillName, per device, for all combinations of native types.
var fillTables = [device.NumDevices]func() *dispatch.Table{
	device.CPU: dispatch.LazyTable(func() *dispatch.Table {
		return dispatch.NewTable(device.DispatchName(FillName, device.CPU), 1).
			Set(dispatch.Func2(fillGeneric[device.CPUDev, float32]), typeinfo.Float32).
			Set(dispatch.Func2(fillGeneric[device.CPUDev, float64]), typeinfo.Float64).
			Set(dispatch.Func2(fillGeneric[device.CPUDev, int32]), typeinfo.Int32).
			Set(dispatch.Func2(fillGeneric[device.CPUDev, uint32]), typeinfo.Uint32).
			Validated()
	}),
	device.GPU: dispatch.LazyTable(func() *dispatch.Table {
		return dispatch.NewTable(device.DispatchName(FillName, device.GPU), 1).
			Set(dispatch.Func2(fillGeneric[device.GPUDev, float32]), typeinfo.Float32).
			Set(dispatch.Func2(fillGeneric[device.GPUDev, float64]), typeinfo.Float64).
			Set(dispatch.Func2(fillGeneric[device.GPUDev, int32]), typeinfo.Int32).
			Set(dispatch.Func2(fillGeneric[device.GPUDev, uint32]), typeinfo.Uint32).
			Validated()
	}),
}

// castTables holds the dispatch tables for CastName, per device, for all combinations of native types.
var castTables = [device.NumDevices]func() *dispatch.Table{
	device.CPU: dispatch.LazyTable(func() *dispatch.Table {
		return dispatch.NewTable(device.DispatchName(CastName, device.CPU), 2).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float32, float32]), typeinfo.Float32, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float32, float64]), typeinfo.Float32, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float32, int32]), typeinfo.Float32, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float32, uint32]), typeinfo.Float32, typeinfo.Uint32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float64, float32]), typeinfo.Float64, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float64, float64]), typeinfo.Float64, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float64, int32]), typeinfo.Float64, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, float64, uint32]), typeinfo.Float64, typeinfo.Uint32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, int32, float32]), typeinfo.Int32, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, int32, float64]), typeinfo.Int32, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.CPUDev, int32, int32]), typeinfo.Int32, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, int32, uint32]), typeinfo.Int32, typeinfo.Uint32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, uint32, float32]), typeinfo.Uint32, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, uint32, float64]), typeinfo.Uint32, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.CPUDev, uint32, int32]), typeinfo.Uint32, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.CPUDev, uint32, uint32]), typeinfo.Uint32, typeinfo.Uint32).
			Validated()
	}),
	device.GPU: dispatch.LazyTable(func() *dispatch.Table {
		return dispatch.NewTable(device.DispatchName(CastName, device.GPU), 2).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float32, float32]), typeinfo.Float32, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float32, float64]), typeinfo.Float32, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float32, int32]), typeinfo.Float32, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float32, uint32]), typeinfo.Float32, typeinfo.Uint32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float64, float32]), typeinfo.Float64, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float64, float64]), typeinfo.Float64, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float64, int32]), typeinfo.Float64, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, float64, uint32]), typeinfo.Float64, typeinfo.Uint32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, int32, float32]), typeinfo.Int32, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, int32, float64]), typeinfo.Int32, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.GPUDev, int32, int32]), typeinfo.Int32, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, int32, uint32]), typeinfo.Int32, typeinfo.Uint32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, uint32, float32]), typeinfo.Uint32, typeinfo.Float32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, uint32, float64]), typeinfo.Uint32, typeinfo.Float64).
			Set(dispatch.Func2(castGeneric[device.GPUDev, uint32, int32]), typeinfo.Uint32, typeinfo.Int32).
			Set(dispatch.Func2(castGeneric[device.GPUDev, uint32, uint32]), typeinfo.Uint32, typeinfo.Uint32).
			Validated()
	}),
}

type builtinEntry struct {
	name  string
	key   dispatch.Key
	entry dispatch.Entry
}

// builtinEntries lists the implementations of the library-known non-native types, registered by RegisterBuiltins.
var builtinEntries = []builtinEntry{
	{device.DispatchName(FillName, device.CPU), keyFor(typeinfo.Float16), dispatch.Func2(fillFloat16[device.CPUDev])},
	{device.DispatchName(FillName, device.CPU), keyFor(typeinfo.BFloat16), dispatch.Func2(fillBFloat16[device.CPUDev])},
	{device.DispatchName(FillName, device.CPU), keyFor(typeinfo.Int64), dispatch.Func2(fillGeneric[device.CPUDev, int64])},
	{device.DispatchName(FillName, device.GPU), keyFor(typeinfo.Float16), dispatch.Func2(fillFloat16[device.GPUDev])},
	{device.DispatchName(FillName, device.GPU), keyFor(typeinfo.BFloat16), dispatch.Func2(fillBFloat16[device.GPUDev])},
	{device.DispatchName(FillName, device.GPU), keyFor(typeinfo.Int64), dispatch.Func2(fillGeneric[device.GPUDev, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float32, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.CPUDev, float32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float32, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.CPUDev, float32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float32, typeinfo.Int64), dispatch.Func2(castGeneric[device.CPUDev, float32, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float64, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.CPUDev, float64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float64, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.CPUDev, float64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float64, typeinfo.Int64), dispatch.Func2(castGeneric[device.CPUDev, float64, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int32, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.CPUDev, int32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int32, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.CPUDev, int32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int32, typeinfo.Int64), dispatch.Func2(castGeneric[device.CPUDev, int32, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Uint32, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.CPUDev, uint32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Uint32, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.CPUDev, uint32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Uint32, typeinfo.Int64), dispatch.Func2(castGeneric[device.CPUDev, uint32, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.Float32), dispatch.Func2(castToFloat16[device.CPUDev, float32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.Float64), dispatch.Func2(castToFloat16[device.CPUDev, float64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.Int32), dispatch.Func2(castToFloat16[device.CPUDev, int32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.Uint32), dispatch.Func2(castToFloat16[device.CPUDev, uint32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.Float16), dispatch.Func2(castCopy[device.CPUDev, float16.Float16])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.BFloat16), dispatch.Func2(castBFloat16ToFloat16[device.CPUDev])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Float16, typeinfo.Int64), dispatch.Func2(castToFloat16[device.CPUDev, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.Float32), dispatch.Func2(castToBFloat16[device.CPUDev, float32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.Float64), dispatch.Func2(castToBFloat16[device.CPUDev, float64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.Int32), dispatch.Func2(castToBFloat16[device.CPUDev, int32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.Uint32), dispatch.Func2(castToBFloat16[device.CPUDev, uint32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.Float16), dispatch.Func2(castFloat16ToBFloat16[device.CPUDev])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.BFloat16), dispatch.Func2(castCopy[device.CPUDev, bfloat16.BFloat16])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.BFloat16, typeinfo.Int64), dispatch.Func2(castToBFloat16[device.CPUDev, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.Float32), dispatch.Func2(castGeneric[device.CPUDev, int64, float32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.Float64), dispatch.Func2(castGeneric[device.CPUDev, int64, float64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.Int32), dispatch.Func2(castGeneric[device.CPUDev, int64, int32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.Uint32), dispatch.Func2(castGeneric[device.CPUDev, int64, uint32])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.CPUDev, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.CPUDev, int64])},
	{device.DispatchName(CastName, device.CPU), keyFor(typeinfo.Int64, typeinfo.Int64), dispatch.Func2(castGeneric[device.CPUDev, int64, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float32, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.GPUDev, float32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float32, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.GPUDev, float32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float32, typeinfo.Int64), dispatch.Func2(castGeneric[device.GPUDev, float32, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float64, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.GPUDev, float64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float64, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.GPUDev, float64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float64, typeinfo.Int64), dispatch.Func2(castGeneric[device.GPUDev, float64, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int32, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.GPUDev, int32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int32, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.GPUDev, int32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int32, typeinfo.Int64), dispatch.Func2(castGeneric[device.GPUDev, int32, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Uint32, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.GPUDev, uint32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Uint32, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.GPUDev, uint32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Uint32, typeinfo.Int64), dispatch.Func2(castGeneric[device.GPUDev, uint32, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.Float32), dispatch.Func2(castToFloat16[device.GPUDev, float32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.Float64), dispatch.Func2(castToFloat16[device.GPUDev, float64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.Int32), dispatch.Func2(castToFloat16[device.GPUDev, int32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.Uint32), dispatch.Func2(castToFloat16[device.GPUDev, uint32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.Float16), dispatch.Func2(castCopy[device.GPUDev, float16.Float16])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.BFloat16), dispatch.Func2(castBFloat16ToFloat16[device.GPUDev])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Float16, typeinfo.Int64), dispatch.Func2(castToFloat16[device.GPUDev, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.Float32), dispatch.Func2(castToBFloat16[device.GPUDev, float32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.Float64), dispatch.Func2(castToBFloat16[device.GPUDev, float64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.Int32), dispatch.Func2(castToBFloat16[device.GPUDev, int32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.Uint32), dispatch.Func2(castToBFloat16[device.GPUDev, uint32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.Float16), dispatch.Func2(castFloat16ToBFloat16[device.GPUDev])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.BFloat16), dispatch.Func2(castCopy[device.GPUDev, bfloat16.BFloat16])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.BFloat16, typeinfo.Int64), dispatch.Func2(castToBFloat16[device.GPUDev, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.Float32), dispatch.Func2(castGeneric[device.GPUDev, int64, float32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.Float64), dispatch.Func2(castGeneric[device.GPUDev, int64, float64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.Int32), dispatch.Func2(castGeneric[device.GPUDev, int64, int32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.Uint32), dispatch.Func2(castGeneric[device.GPUDev, int64, uint32])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.Float16), dispatch.Func2(castFromFloat16[device.GPUDev, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.BFloat16), dispatch.Func2(castFromBFloat16[device.GPUDev, int64])},
	{device.DispatchName(CastName, device.GPU), keyFor(typeinfo.Int64, typeinfo.Int64), dispatch.Func2(castGeneric[device.GPUDev, int64, int64])},
}

func registerGeneratedBuiltins(registry *dispatch.Registry) error {
	for _, builtin := range builtinEntries {
		if err := registry.RegisterBuiltin(builtin.name, builtin.key, builtin.entry); err != nil {
			return err
		}
	}
	return nil
}
