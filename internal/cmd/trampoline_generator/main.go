// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// trampoline_generator writes pkg/dispatch/gen_trampolines.go: one generic Entry constructor and one
// trampoline per number of parameters, for functions returning nothing (FuncN) or an error (FuncErrN).
//
// It is run from the pkg/dispatch directory with "go generate".
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

var flagMaxArgs = flag.Int("max_args", 6, "Generate constructors for functions from 1 up to max_args parameters.")

const fileName = "gen_trampolines.go"

// Arity describes the constructors generated for one number of parameters.
type Arity struct {
	N int

	// TypeParams is "A0, A1, ..., An-1".
	TypeParams string

	// Args is "a0, a1, ..., an-1".
	Args string

	// NamedArgs is "a0 A0, a1 A1, ..., an-1 An-1".
	NamedArgs string

	// Indices are 0, ..., n-1.
	Indices []int
}

func makeArities(maxArgs int) []Arity {
	arities := make([]Arity, 0, maxArgs)
	for n := 1; n <= maxArgs; n++ {
		typeParams := make([]string, n)
		args := make([]string, n)
		namedArgs := make([]string, n)
		indices := make([]int, n)
		for ii := range n {
			typeParams[ii] = fmt.Sprintf("A%d", ii)
			args[ii] = fmt.Sprintf("a%d", ii)
			namedArgs[ii] = fmt.Sprintf("a%d A%d", ii, ii)
			indices[ii] = ii
		}
		arities = append(arities, Arity{
			N:          n,
			TypeParams: strings.Join(typeParams, ", "),
			Args:       strings.Join(args, ", "),
			NamedArgs:  strings.Join(namedArgs, ", "),
			Indices:    indices,
		})
	}
	return arities
}

var trampolinesTemplate = template.Must(template.New(fileName).Parse(
	`/***** File generated by ./internal/cmd/trampoline_generator. Don't edit it directly. *****/

package dispatch
{{range .}}
// Func{{.N}} returns an Entry for a function with {{.N}} parameter(s).
func Func{{.N}}[{{.TypeParams}} any](fn func({{.TypeParams}})) Entry {
	return newEntry(fn, call{{.N}}[{{.TypeParams}}], {{.N}})
}

// FuncErr{{.N}} returns an Entry for a function with {{.N}} parameter(s) that returns an error.
func FuncErr{{.N}}[{{.TypeParams}} any](fn func({{.TypeParams}}) error) Entry {
	return newEntry(fn, callErr{{.N}}[{{.TypeParams}}], {{.N}})
}

func unpack{{.N}}[{{.TypeParams}} any](args []any) ({{.NamedArgs}}, err error) {
	if err = checkNumArgs(args, {{.N}}); err != nil {
		return
	}
{{- range .Indices}}
	if a{{.}}, err = argAs[A{{.}}](args, {{.}}); err != nil {
		return
	}
{{- end}}
	return
}

func call{{.N}}[{{.TypeParams}} any](fn any, args []any) error {
	{{.Args}}, err := unpack{{.N}}[{{.TypeParams}}](args)
	if err != nil {
		return err
	}
	fn.(func({{.TypeParams}}))({{.Args}})
	return nil
}

func callErr{{.N}}[{{.TypeParams}} any](fn any, args []any) error {
	{{.Args}}, err := unpack{{.N}}[{{.TypeParams}}](args)
	if err != nil {
		return err
	}
	return fn.(func({{.TypeParams}}) error)({{.Args}})
}
{{end}}`))

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(trampolinesTemplate.Execute(f, makeArities(*flagMaxArgs)))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ trampoline_generator:\tsuccessfully generated %s\n", fullPath)
}
