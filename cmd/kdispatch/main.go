// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// kdispatch inspects the dispatch runtime: the known types, the registry entries, and how a dispatch is resolved.
//
// Usage:
//
//	kdispatch -types -registry -ops=cast_cpu -resolve=cast:Float16,Float32 -check
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/kdispatch/internal/sets"
	"github.com/gomlx/kdispatch/pkg/core/device"
	"github.com/gomlx/kdispatch/pkg/core/typeinfo"
	"github.com/gomlx/kdispatch/pkg/dispatch"
	"github.com/gomlx/kdispatch/pkg/ops"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagTypes    = flag.Bool("types", false, "Lists the types known to the catalog.")
	flagRegistry = flag.Bool("registry", false, "Lists the entries of the registry.")
	flagOps      = flag.String("ops", "", "Comma-separated list of operation names (e.g. \"cast_cpu\") to include in -registry.")
	flagResolve  = flag.String("resolve", "", "Resolves a dispatch, given as \"<op>:<type>,...\", e.g. \"cast:Float16,Float32\".")
	flagDevice   = flag.String("device", "cpu", "Device used by -resolve and -check: \"cpu\" or \"gpu\".")
	flagCheck    = flag.Bool("check", false, "Checks that the dispatch tables of the device have all their entries.")
	flagConfig   = flag.String("config", "", "Registry configuration, e.g. \"reregister=reject\". "+
		fmt.Sprintf("If empty, it is taken from $%s, $%s or the defaults.", dispatch.EnvConfig, dispatch.EnvConfigFile))
	flagPlain = flag.Bool("plain", false, "Disable colors in the output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'kdispatch -help'.", flag.Args())
		os.Exit(1)
	}

	registry := newRegistry()
	if !*flagTypes && !*flagRegistry && *flagResolve == "" && !*flagCheck {
		summary(registry)
		return
	}
	if *flagTypes {
		listTypes()
	}
	if *flagRegistry {
		listRegistry(registry)
	}
	dev := must.M1(parseDevice(*flagDevice))
	if *flagResolve != "" {
		resolveReport(registry, dev, *flagResolve)
	}
	if *flagCheck && !check(dev) {
		os.Exit(1)
	}
}

// newRegistry creates the registry to inspect, with the builtin operations.
func newRegistry() *dispatch.Registry {
	if *flagConfig == "" {
		return dispatch.Default()
	}
	config := must.M1(dispatch.ParseConfig(*flagConfig))
	registry := dispatch.NewRegistryWithConfig(config)
	must.M(ops.RegisterBuiltins(registry))
	return registry
}

func parseDevice(name string) (device.Device, error) {
	for dev := range device.NumDevices {
		if strings.EqualFold(name, dev.Suffix()) || strings.EqualFold(name, dev.String()) {
			return dev, nil
		}
	}
	return device.CPU, errors.Errorf("unknown device %q, valid values are \"cpu\" or \"gpu\"", name)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func summary(registry *dispatch.Registry) {
	fmt.Println(titleStyle.Render("Summary"))
	table := newReportTable()
	table.Add(false, "registry", registry.String())
	config := registry.Config()
	table.Add(false, "re-register policy", config.Reregister.String())
	table.Add(false, "strict unregister", yesNo(config.StrictUnregister))
	table.Add(false, "# types", humanize.Comma(int64(len(typeinfo.All()))))
	table.Add(false, "# native types", humanize.Comma(int64(typeinfo.NumNativeTypes)))
	table.Add(false, "# operations", humanize.Comma(int64(len(registry.Names()))))
	table.Add(false, "# registry entries", humanize.Comma(int64(registry.Len())))
	table.Add(false, "table operations", strings.Join(registry.NativeNames(), ", "))
	table.Add(false, "max dispatch types", fmt.Sprintf("%d (native tables: %d)", dispatch.MaxDispatchTypes, dispatch.MaxTableArity))
	for dev := range device.NumDevices {
		availability := "available"
		if !dev.IsAvailable() {
			availability = "not available (build with -tags kdispatch_gpu)"
		}
		table.Add(false, dev.String(), availability)
	}
	fmt.Println(table.Render())
}

func listTypes() {
	fmt.Println(titleStyle.Render("Types"))
	table := newReportTable("Token", "Name", "Go type", "DType", "Native", "Compute")
	for _, dtype := range typeinfo.All() {
		table.Add(false, fmt.Sprintf("%d", dtype.Token()), dtype.Name(), dtype.GoType().String(),
			dtype.DType().String(), yesNo(dtype.IsNative()), yesNo(dtype.IsCompute()))
	}
	fmt.Println(table.Render())
}

// registryFilter parses the -ops list and returns the title of the registry report.
// The filter is nil if opsList is empty.
func registryFilter(registry *dispatch.Registry, opsList string) (sets.Set[string], string) {
	title := "Registry " + registry.String()
	if opsList == "" {
		return nil, title
	}
	filter := sets.MakeWith(strings.Split(opsList, ",")...)
	return filter, title + " for " + strings.Join(sets.Sorted(filter), ", ")
}

func listRegistry(registry *dispatch.Registry) {
	opsFilter, title := registryFilter(registry, *flagOps)
	fmt.Println(titleStyle.Render(title))
	table := newReportTable("Operation", "Key", "Function", "Builtin")
	var count int
	for _, info := range registry.Entries() {
		if opsFilter != nil && !opsFilter.Has(info.Name) {
			continue
		}
		table.Add(false, info.Name, info.Key.String(), info.Entry.Signature(), yesNo(info.Builtin))
		count++
	}
	fmt.Println(table.Render())
	fmt.Printf("%s entries\n", humanize.Comma(int64(count)))
}

func check(dev device.Device) bool {
	fmt.Println(titleStyle.Render("Tables on " + dev.String()))
	tables, err := ops.Tables(dev)
	if err != nil {
		klog.Errorf("Failed to build tables: %+v", err)
		return false
	}
	ok := true
	table := newReportTable("Table", "Arity", "Entries", "Status")
	for _, t := range tables {
		status := "ok"
		err := t.Validate()
		if err != nil {
			status = err.Error()
			ok = false
		}
		table.Add(err != nil, t.Name(), fmt.Sprintf("%d", t.Arity()), humanize.Comma(int64(t.Len())), status)
	}
	fmt.Println(table.Render())
	return ok
}
