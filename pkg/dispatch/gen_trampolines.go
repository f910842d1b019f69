/***** File generated by ./internal/cmd/trampoline_generator. Don't edit it directly. *****/

package dispatch

// Func1 returns an Entry for a function with 1 parameter(s).
func Func1[A0 any](fn func(A0)) Entry {
	return newEntry(fn, call1[A0], 1)
}

// FuncErr1 returns an Entry for a function with 1 parameter(s) that returns an error.
func FuncErr1[A0 any](fn func(A0) error) Entry {
	return newEntry(fn, callErr1[A0], 1)
}

func unpack1[A0 any](args []any) (a0 A0, err error) {
	if err = checkNumArgs(args, 1); err != nil {
		return
	}
	if a0, err = argAs[A0](args, 0); err != nil {
		return
	}
	return
}

func call1[A0 any](fn any, args []any) error {
	a0, err := unpack1[A0](args)
	if err != nil {
		return err
	}
	fn.(func(A0))(a0)
	return nil
}

func callErr1[A0 any](fn any, args []any) error {
	a0, err := unpack1[A0](args)
	if err != nil {
		return err
	}
	return fn.(func(A0) error)(a0)
}

// Func2 returns an Entry for a function with 2 parameter(s).
func Func2[A0, A1 any](fn func(A0, A1)) Entry {
	return newEntry(fn, call2[A0, A1], 2)
}

// FuncErr2 returns an Entry for a function with 2 parameter(s) that returns an error.
func FuncErr2[A0, A1 any](fn func(A0, A1) error) Entry {
	return newEntry(fn, callErr2[A0, A1], 2)
}

func unpack2[A0, A1 any](args []any) (a0 A0, a1 A1, err error) {
	if err = checkNumArgs(args, 2); err != nil {
		return
	}
	if a0, err = argAs[A0](args, 0); err != nil {
		return
	}
	if a1, err = argAs[A1](args, 1); err != nil {
		return
	}
	return
}

func call2[A0, A1 any](fn any, args []any) error {
	a0, a1, err := unpack2[A0, A1](args)
	if err != nil {
		return err
	}
	fn.(func(A0, A1))(a0, a1)
	return nil
}

func callErr2[A0, A1 any](fn any, args []any) error {
	a0, a1, err := unpack2[A0, A1](args)
	if err != nil {
		return err
	}
	return fn.(func(A0, A1) error)(a0, a1)
}

// Func3 returns an Entry for a function with 3 parameter(s).
func Func3[A0, A1, A2 any](fn func(A0, A1, A2)) Entry {
	return newEntry(fn, call3[A0, A1, A2], 3)
}

// FuncErr3 returns an Entry for a function with 3 parameter(s) that returns an error.
func FuncErr3[A0, A1, A2 any](fn func(A0, A1, A2) error) Entry {
	return newEntry(fn, callErr3[A0, A1, A2], 3)
}

func unpack3[A0, A1, A2 any](args []any) (a0 A0, a1 A1, a2 A2, err error) {
	if err = checkNumArgs(args, 3); err != nil {
		return
	}
	if a0, err = argAs[A0](args, 0); err != nil {
		return
	}
	if a1, err = argAs[A1](args, 1); err != nil {
		return
	}
	if a2, err = argAs[A2](args, 2); err != nil {
		return
	}
	return
}

func call3[A0, A1, A2 any](fn any, args []any) error {
	a0, a1, a2, err := unpack3[A0, A1, A2](args)
	if err != nil {
		return err
	}
	fn.(func(A0, A1, A2))(a0, a1, a2)
	return nil
}

func callErr3[A0, A1, A2 any](fn any, args []any) error {
	a0, a1, a2, err := unpack3[A0, A1, A2](args)
	if err != nil {
		return err
	}
	return fn.(func(A0, A1, A2) error)(a0, a1, a2)
}

// Func4 returns an Entry for a function with 4 parameter(s).
func Func4[A0, A1, A2, A3 any](fn func(A0, A1, A2, A3)) Entry {
	return newEntry(fn, call4[A0, A1, A2, A3], 4)
}

// FuncErr4 returns an Entry for a function with 4 parameter(s) that returns an error.
func FuncErr4[A0, A1, A2, A3 any](fn func(A0, A1, A2, A3) error) Entry {
	return newEntry(fn, callErr4[A0, A1, A2, A3], 4)
}

func unpack4[A0, A1, A2, A3 any](args []any) (a0 A0, a1 A1, a2 A2, a3 A3, err error) {
	if err = checkNumArgs(args, 4); err != nil {
		return
	}
	if a0, err = argAs[A0](args, 0); err != nil {
		return
	}
	if a1, err = argAs[A1](args, 1); err != nil {
		return
	}
	if a2, err = argAs[A2](args, 2); err != nil {
		return
	}
	if a3, err = argAs[A3](args, 3); err != nil {
		return
	}
	return
}

func call4[A0, A1, A2, A3 any](fn any, args []any) error {
	a0, a1, a2, a3, err := unpack4[A0, A1, A2, A3](args)
	if err != nil {
		return err
	}
	fn.(func(A0, A1, A2, A3))(a0, a1, a2, a3)
	return nil
}

func callErr4[A0, A1, A2, A3 any](fn any, args []any) error {
	a0, a1, a2, a3, err := unpack4[A0, A1, A2, A3](args)
	if err != nil {
		return err
	}
	return fn.(func(A0, A1, A2, A3) error)(a0, a1, a2, a3)
}

// Func5 returns an Entry for a function with 5 parameter(s).
func Func5[A0, A1, A2, A3, A4 any](fn func(A0, A1, A2, A3, A4)) Entry {
	return newEntry(fn, call5[A0, A1, A2, A3, A4], 5)
}

// FuncErr5 returns an Entry for a function with 5 parameter(s) that returns an error.
func FuncErr5[A0, A1, A2, A3, A4 any](fn func(A0, A1, A2, A3, A4) error) Entry {
	return newEntry(fn, callErr5[A0, A1, A2, A3, A4], 5)
}

func unpack5[A0, A1, A2, A3, A4 any](args []any) (a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, err error) {
	if err = checkNumArgs(args, 5); err != nil {
		return
	}
	if a0, err = argAs[A0](args, 0); err != nil {
		return
	}
	if a1, err = argAs[A1](args, 1); err != nil {
		return
	}
	if a2, err = argAs[A2](args, 2); err != nil {
		return
	}
	if a3, err = argAs[A3](args, 3); err != nil {
		return
	}
	if a4, err = argAs[A4](args, 4); err != nil {
		return
	}
	return
}

func call5[A0, A1, A2, A3, A4 any](fn any, args []any) error {
	a0, a1, a2, a3, a4, err := unpack5[A0, A1, A2, A3, A4](args)
	if err != nil {
		return err
	}
	fn.(func(A0, A1, A2, A3, A4))(a0, a1, a2, a3, a4)
	return nil
}

func callErr5[A0, A1, A2, A3, A4 any](fn any, args []any) error {
	a0, a1, a2, a3, a4, err := unpack5[A0, A1, A2, A3, A4](args)
	if err != nil {
		return err
	}
	return fn.(func(A0, A1, A2, A3, A4) error)(a0, a1, a2, a3, a4)
}

// Func6 returns an Entry for a function with 6 parameter(s).
func Func6[A0, A1, A2, A3, A4, A5 any](fn func(A0, A1, A2, A3, A4, A5)) Entry {
	return newEntry(fn, call6[A0, A1, A2, A3, A4, A5], 6)
}

// FuncErr6 returns an Entry for a function with 6 parameter(s) that returns an error.
func FuncErr6[A0, A1, A2, A3, A4, A5 any](fn func(A0, A1, A2, A3, A4, A5) error) Entry {
	return newEntry(fn, callErr6[A0, A1, A2, A3, A4, A5], 6)
}

func unpack6[A0, A1, A2, A3, A4, A5 any](args []any) (a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, err error) {
	if err = checkNumArgs(args, 6); err != nil {
		return
	}
	if a0, err = argAs[A0](args, 0); err != nil {
		return
	}
	if a1, err = argAs[A1](args, 1); err != nil {
		return
	}
	if a2, err = argAs[A2](args, 2); err != nil {
		return
	}
	if a3, err = argAs[A3](args, 3); err != nil {
		return
	}
	if a4, err = argAs[A4](args, 4); err != nil {
		return
	}
	if a5, err = argAs[A5](args, 5); err != nil {
		return
	}
	return
}

func call6[A0, A1, A2, A3, A4, A5 any](fn any, args []any) error {
	a0, a1, a2, a3, a4, a5, err := unpack6[A0, A1, A2, A3, A4, A5](args)
	if err != nil {
		return err
	}
	fn.(func(A0, A1, A2, A3, A4, A5))(a0, a1, a2, a3, a4, a5)
	return nil
}

func callErr6[A0, A1, A2, A3, A4, A5 any](fn any, args []any) error {
	a0, a1, a2, a3, a4, a5, err := unpack6[A0, A1, A2, A3, A4, A5](args)
	if err != nil {
		return err
	}
	return fn.(func(A0, A1, A2, A3, A4, A5) error)(a0, a1, a2, a3, a4, a5)
}
