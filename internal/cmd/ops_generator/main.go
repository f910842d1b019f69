// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// ops_generator writes pkg/ops/gen_tables.go: the dense dispatch tables of the operations for all combinations
// of native types, one table per device, and the builtin registry entries for the library-known non-native types.
//
// It is run from the pkg/ops directory with "go generate".
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"strings"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// TypeInfo describes an element type known at generation time.
type TypeInfo struct {
	// Name of the typeinfo variable, e.g. "Float32".
	Name string

	// GoType, e.g. "float32".
	GoType string

	// POD is whether the Go type converts directly to/from the other POD types.
	POD bool
}

var (
	nativeTypes = []TypeInfo{
		{"Float32", "float32", true},
		{"Float64", "float64", true},
		{"Int32", "int32", true},
		{"Uint32", "uint32", true},
	}
	libraryTypes = []TypeInfo{
		{"Float16", "float16.Float16", false},
		{"BFloat16", "bfloat16.BFloat16", false},
		{"Int64", "int64", true},
	}
	devices = []string{"CPU", "GPU"}
)

// Row is one entry: the kernel and the types it is registered for.
type Row struct {
	Kernel string
	Types  string
}

// DeviceRows are the entries for one device.
type DeviceRows struct {
	Device string
	Rows   []Row
}

// Op describes the table and builtin entries of one operation.
type Op struct {
	// Op is the name of the operation constant in package ops, e.g. "FillName".
	Op string

	// Var is the name of the variable holding the tables.
	Var   string
	Arity int

	Tables, Builtins []DeviceRows
}

// Data for the template.
type Data struct {
	Ops []Op
}

func typesList(types ...TypeInfo) string {
	parts := make([]string, len(types))
	for ii, t := range types {
		parts[ii] = "typeinfo." + t.Name
	}
	return strings.Join(parts, ", ")
}

func fillKernel(tag string, t TypeInfo) string {
	switch {
	case t.POD:
		return fmt.Sprintf("dispatch.Func2(fillGeneric[device.%s, %s])", tag, t.GoType)
	default:
		return fmt.Sprintf("dispatch.Func2(fill%s[device.%s])", t.Name, tag)
	}
}

func castKernel(tag string, to, from TypeInfo) string {
	var fn string
	switch {
	case to.POD && from.POD:
		fn = fmt.Sprintf("castGeneric[device.%s, %s, %s]", tag, to.GoType, from.GoType)
	case to == from:
		fn = fmt.Sprintf("castCopy[device.%s, %s]", tag, to.GoType)
	case from.POD:
		fn = fmt.Sprintf("castTo%s[device.%s, %s]", to.Name, tag, from.GoType)
	case to.POD:
		fn = fmt.Sprintf("castFrom%s[device.%s, %s]", from.Name, tag, to.GoType)
	default:
		fn = fmt.Sprintf("cast%sTo%s[device.%s]", from.Name, to.Name, tag)
	}
	return "dispatch.Func2(" + fn + ")"
}

func isNative(t TypeInfo) bool {
	for _, native := range nativeTypes {
		if t == native {
			return true
		}
	}
	return false
}

func makeData() Data {
	allTypes := append(append([]TypeInfo{}, nativeTypes...), libraryTypes...)
	fill := Op{Op: "FillName", Var: "fillTables", Arity: 1}
	cast := Op{Op: "CastName", Var: "castTables", Arity: 2}
	for _, dev := range devices {
		tag := dev + "Dev"
		fillTable, fillBuiltins := DeviceRows{Device: dev}, DeviceRows{Device: dev}
		for _, t := range allTypes {
			row := Row{Kernel: fillKernel(tag, t), Types: typesList(t)}
			if isNative(t) {
				fillTable.Rows = append(fillTable.Rows, row)
			} else {
				fillBuiltins.Rows = append(fillBuiltins.Rows, row)
			}
		}
		fill.Tables = append(fill.Tables, fillTable)
		fill.Builtins = append(fill.Builtins, fillBuiltins)

		castTable, castBuiltins := DeviceRows{Device: dev}, DeviceRows{Device: dev}
		for _, to := range allTypes {
			for _, from := range allTypes {
				row := Row{Kernel: castKernel(tag, to, from), Types: typesList(to, from)}
				if isNative(to) && isNative(from) {
					castTable.Rows = append(castTable.Rows, row)
				} else {
					castBuiltins.Rows = append(castBuiltins.Rows, row)
				}
			}
		}
		cast.Tables = append(cast.Tables, castTable)
		cast.Builtins = append(cast.Builtins, castBuiltins)
	}
	return Data{Ops: []Op{fill, cast}}
}

const fileName = "gen_tables.go"

var tablesTemplate = template.Must(template.New(fileName).Parse(
	`/***** File generated by ./internal/cmd/ops_generator. Don't edit it directly. *****/

package ops

import (
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/x448/float16"
)
{{range $op := .Ops}}
// {{$op.Var}} holds the dispatch tables for {{$op.Op}}, per device, for all combinations of native types.
var {{$op.Var}} = [device.NumDevices]func() *dispatch.Table{
{{- range $op.Tables}}
	device.{{.Device}}: dispatch.LazyTable(func() *dispatch.Table {
		return dispatch.NewTable(device.DispatchName({{$op.Op}}, device.{{.Device}}), {{$op.Arity}}).
{{- range .Rows}}
			Set({{.Kernel}}, {{.Types}}).
{{- end}}
			Validated()
	}),
{{- end}}
}
{{end}}
type builtinEntry struct {
	name  string
	key   dispatch.Key
	entry dispatch.Entry
}

// builtinEntries lists the implementations of the library-known non-native types, registered by RegisterBuiltins.
var builtinEntries = []builtinEntry{
{{- range $op := .Ops}}{{range $op.Builtins}}{{$dev := .Device}}{{range .Rows}}
	{device.DispatchName({{$op.Op}}, device.{{$dev}}), keyFor({{.Types}}), {{.Kernel}}},
{{- end}}{{end}}{{end}}
}

func registerGeneratedBuiltins(registry *dispatch.Registry) error {
	for _, builtin := range builtinEntries {
		if err := registry.RegisterBuiltin(builtin.name, builtin.key, builtin.entry); err != nil {
			return err
		}
	}
	return nil
}
`))

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(tablesTemplate.Execute(f, makeData()))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ ops_generator:\tsuccessfully generated %s\n", fullPath)
}
