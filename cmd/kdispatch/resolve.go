// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/gomlx/kdispatch/pkg/ops"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// resolution describes how a dispatch is resolved.
type resolution struct {
	Name      string
	Types     []typeinfo.TypeInfo
	On        dispatch.On
	Path      string
	NativeKey dispatch.NativeKey
	Entry     dispatch.Entry
	Err       error
}

// parseResolve parses "<op>:<type>,...", e.g. "cast:Float16,Float32".
func parseResolve(spec string) (op string, types []typeinfo.TypeInfo, err error) {
	op, typesList, found := strings.Cut(spec, ":")
	op = strings.TrimSpace(op)
	if !found || op == "" || strings.TrimSpace(typesList) == "" {
		return "", nil, errors.Errorf("invalid dispatch %q, expected \"<op>:<type>,...\"", spec)
	}
	for _, name := range strings.Split(typesList, ",") {
		dtype, found := typeinfo.ByName(strings.TrimSpace(name))
		if !found {
			return "", nil, errors.Errorf("unknown type %q in dispatch %q", name, spec)
		}
		types = append(types, dtype)
	}
	return op, types, nil
}

// resolve finds the entry that would be called for the op on the given device and types,
// without calling it.
func resolve(registry *dispatch.Registry, dev device.Device, op string, types []typeinfo.TypeInfo) resolution {
	r := resolution{Name: device.DispatchName(op, dev), Types: types}
	havers := make([]typeinfo.Haver, len(types))
	for ii, dtype := range types {
		havers[ii] = dtype
	}
	if len(havers) > dispatch.MaxDispatchTypes {
		r.Err = errors.Wrapf(dispatch.ErrArityOverflow, "%d types", len(havers))
		return r
	}
	r.On, r.Err = dispatch.DispatchOn(havers...)
	if r.Err != nil {
		return r
	}
	if r.On.AllNative() {
		tables, err := ops.Tables(dev)
		if err != nil {
			r.Err = err
			return r
		}
		for _, table := range tables {
			if table.Name() != r.Name || table.Arity() != r.On.Arity() {
				continue
			}
			r.Path = "table"
			r.NativeKey = r.On.NativeKey()
			r.Entry = table.Entry(r.NativeKey)
			if !r.Entry.IsValid() {
				r.Err = errors.Wrapf(dispatch.ErrNotFound, "table %q has no entry for %s", r.Name, r.On.Key())
			}
			return r
		}
	}
	r.Path = "registry"
	r.Entry, r.Err = registry.Get(r.Name, r.On.Key())
	return r
}

func resolveReport(registry *dispatch.Registry, dev device.Device, spec string) {
	op, types, err := parseResolve(spec)
	if err != nil {
		klog.Exitf("%+v", err)
	}
	r := resolve(registry, dev, op, types)
	fmt.Println(titleStyle.Render("Dispatch of " + spec))
	table := newReportTable()
	table.Add(false, "name", r.Name)
	table.Add(false, "types", fmt.Sprintf("%v", r.Types))
	if r.On.Arity() > 0 {
		key := r.On.Key()
		table.Add(false, "key", fmt.Sprintf("%s = %#016x", key, uint64(key)))
		table.Add(false, "all native", yesNo(r.On.AllNative()))
	}
	if r.Path != "" {
		table.Add(false, "path", r.Path)
	}
	if r.Path == "table" {
		table.Add(false, "native key", fmt.Sprintf("%d", r.NativeKey))
	}
	if r.Err != nil {
		table.Add(true, "error", r.Err.Error())
	} else {
		table.Add(false, "function", r.Entry.Signature())
	}
	fmt.Println(table.Render())
}
