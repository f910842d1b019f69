// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

//go:generate go run ../../internal/cmd/trampoline_generator

// Caller is a trampoline: it calls fn, whose concrete signature it knows, with the type-erased args.
//
// Each Caller is an instance of a generic function, one per distinct signature, and it checks each
// argument before converting it back to the parameter type.
type Caller func(fn any, args []any) error

// Entry holds a type-erased function and the trampoline that knows how to call it.
// It is immutable once created. The zero value is not valid.
type Entry struct {
	fn        any
	caller    Caller
	numArgs   int
	signature string
}

// IsValid returns whether the entry holds a function to call.
func (e Entry) IsValid() bool { return e.fn != nil && e.caller != nil }

// NumArgs returns the number of arguments the function takes.
func (e Entry) NumArgs() int { return e.numArgs }

// Signature of the function, for debugging.
func (e Entry) Signature() string { return e.signature }

// String implements fmt.Stringer.
func (e Entry) String() string {
	if !e.IsValid() {
		return "Entry(invalid)"
	}
	return "Entry(" + e.signature + ")"
}

// Call the function with the args.
//
// It returns ErrArgumentMismatch (wrapped) if the args don't match the function's parameters, or the error
// returned by the function, if it returns one.
// Panics in the function are not intercepted.
func (e Entry) Call(args ...any) error {
	return e.call(args)
}

func (e Entry) call(args []any) error {
	if !e.IsValid() {
		return errors.Wrapf(ErrInvalidEntry, "calling an empty dispatch entry")
	}
	return e.caller(e.fn, args)
}

// newEntry is used by the generated constructors.
func newEntry(fn any, caller Caller, numArgs int) Entry {
	if reflect.ValueOf(fn).IsNil() {
		return Entry{}
	}
	return Entry{
		fn:        fn,
		caller:    caller,
		numArgs:   numArgs,
		signature: reflect.TypeOf(fn).String(),
	}
}

// checkNumArgs is used by the generated trampolines.
func checkNumArgs(args []any, numArgs int) error {
	if len(args) != numArgs {
		return errors.Wrapf(ErrArgumentMismatch, "%d arguments given, %d expected", len(args), numArgs)
	}
	return nil
}

// argAs converts back the erased argument args[idx] to the parameter type A.
//
// A nil argument is accepted for parameter types that can be nil. A concrete value is accepted for an interface
// parameter type it implements.
func argAs[A any](args []any, idx int) (A, error) {
	if value, ok := args[idx].(A); ok {
		return value, nil
	}
	var zero A
	paramType := reflect.TypeFor[A]()
	if args[idx] == nil && isNilable(paramType) {
		return zero, nil
	}
	return zero, errors.Wrapf(ErrArgumentMismatch, "argument #%d is %s, expected %s",
		idx, typeName(args[idx]), paramType)
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

var errorType = reflect.TypeFor[error]()

// FuncOf creates an Entry for any function, using reflection. The function must return nothing or an error.
//
// Prefer the generic constructors (Func1, FuncErr1, ...): they don't use reflection to call the function.
// FuncOf is for functions with more parameters than those support, or when the function is only known as an any.
func FuncOf(fn any) (Entry, error) {
	fnValue := reflect.ValueOf(fn)
	if fn == nil || fnValue.Kind() != reflect.Func || fnValue.IsNil() {
		return Entry{}, errors.Wrapf(ErrInvalidEntry, "FuncOf requires a function, got %s", typeName(fn))
	}
	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		return Entry{}, errors.Wrapf(ErrInvalidEntry, "FuncOf doesn't support variadic functions, got %s", fnType)
	}
	returnsError := false
	switch {
	case fnType.NumOut() == 0:
	case fnType.NumOut() == 1 && fnType.Out(0) == errorType:
		returnsError = true
	default:
		return Entry{}, errors.Wrapf(ErrInvalidEntry, "FuncOf requires a function returning nothing or an error, got %s", fnType)
	}
	numArgs := fnType.NumIn()
	caller := func(fn any, args []any) error {
		if err := checkNumArgs(args, numArgs); err != nil {
			return err
		}
		in := make([]reflect.Value, numArgs)
		for ii, arg := range args {
			paramType := fnType.In(ii)
			switch {
			case arg == nil && isNilable(paramType):
				in[ii] = reflect.Zero(paramType)
			case arg != nil && reflect.TypeOf(arg).AssignableTo(paramType):
				in[ii] = reflect.ValueOf(arg)
			default:
				return errors.Wrapf(ErrArgumentMismatch, "argument #%d is %s, expected %s", ii, typeName(arg), paramType)
			}
		}
		out := reflect.ValueOf(fn).Call(in)
		if returnsError && !out[0].IsNil() {
			return out[0].Interface().(error)
		}
		return nil
	}
	return Entry{fn: fn, caller: caller, numArgs: numArgs, signature: fnType.String()}, nil
}

// describeArgs is used in error messages.
func describeArgs(args []any) string {
	names := make([]string, len(args))
	for ii, arg := range args {
		names[ii] = typeName(arg)
	}
	return fmt.Sprintf("(%s)", strings.Join(names, ", "))
}
