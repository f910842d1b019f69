// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package typeinfo

import (
	"reflect"
	"sync"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

var (
	// ErrTokensExhausted is returned when there are no more tokens to assign to new types.
	ErrTokensExhausted = errors.New("type tokens exhausted")

	// ErrNameConflict is returned when registering a type whose name or Go type is already used by a different type.
	ErrNameConflict = errors.New("type name conflict")

	// ErrInvalidType is returned when registering a type that can't be used as an element type.
	ErrInvalidType = errors.New("invalid element type")
)

// Native compute types, in token order.
var (
	Float32 = builtin[float32](0, dtypes.Float32, true)
	Float64 = builtin[float64](1, dtypes.Float64, true)
	Int32   = builtin[int32](2, dtypes.Int32, true)
	Uint32  = builtin[uint32](3, dtypes.Uint32, true)
)

// Library-known types that are not native: compute types only reachable through a registry,
// and storage-only types.
var (
	Float16  = builtin[float16.Float16](4, dtypes.Float16, true)
	BFloat16 = builtin[bfloat16.BFloat16](5, dtypes.BFloat16, true)
	Int64    = builtin[int64](6, dtypes.Int64, true)
	Bool     = builtin[bool](7, dtypes.Bool, false)

	// Invalid is returned by the lookup functions for types unknown to the catalog.
	Invalid = TypeInfo{token: InvalidToken, name: "invalid", dtype: dtypes.InvalidDType}
)

// firstCustomToken is the first token assigned to types registered with Register.
const firstCustomToken Token = 8

func builtin[T any](token Token, dtype dtypes.DType, compute bool) TypeInfo {
	return TypeInfo{
		token:   token,
		name:    dtype.String(),
		goType:  reflect.TypeFor[T](),
		dtype:   dtype,
		compute: compute,
	}
}

// catalog holds all known types. Registration is rare, lookups are frequent.
type catalog struct {
	mu       sync.RWMutex
	byToken  []TypeInfo
	byGoType map[reflect.Type]TypeInfo
	byName   map[string]TypeInfo
	byDType  map[dtypes.DType]TypeInfo
}

var global = newCatalog(Float32, Float64, Int32, Uint32, Float16, BFloat16, Int64, Bool)

func newCatalog(builtins ...TypeInfo) *catalog {
	c := &catalog{
		byToken:  make([]TypeInfo, 0, int(MaxToken)+1),
		byGoType: make(map[reflect.Type]TypeInfo),
		byName:   make(map[string]TypeInfo),
		byDType:  make(map[dtypes.DType]TypeInfo),
	}
	for _, t := range builtins {
		if int(t.token) != len(c.byToken) {
			panic(errors.Errorf("typeinfo: builtin %s has token %d, expected %d", t, t.token, len(c.byToken)))
		}
		c.lockedInsert(t)
		c.byDType[t.dtype] = t
	}
	for len(c.byToken) < int(firstCustomToken) {
		c.byToken = append(c.byToken, Invalid)
	}
	return c
}

func (c *catalog) lockedInsert(t TypeInfo) {
	c.byToken = append(c.byToken, t)
	c.byGoType[t.goType] = t
	c.byName[t.name] = t
}

// Register a custom compute type T with the given name and returns its TypeInfo.
//
// Registering the same type with the same name again returns the original TypeInfo. It fails if the name or
// the Go type are already used for a different type, or if the token space is exhausted.
// Custom types are never native: dispatching on them always goes through a registry.
func Register[T any](name string) (TypeInfo, error) {
	goType := reflect.TypeFor[T]()
	if goType.Kind() == reflect.Interface {
		return Invalid, errors.Wrapf(ErrInvalidType, "cannot register interface type %s as %q", goType, name)
	}
	if name == "" || name == Invalid.name {
		return Invalid, errors.Wrapf(ErrInvalidType, "invalid name %q for type %s", name, goType)
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if t, found := global.byGoType[goType]; found {
		if t.name == name {
			return t, nil
		}
		return Invalid, errors.Wrapf(ErrNameConflict, "type %s already registered as %q", goType, t.name)
	}
	if t, found := global.byName[name]; found {
		return Invalid, errors.Wrapf(ErrNameConflict, "name %q already used by type %s", name, t.goType)
	}
	if len(global.byToken) > int(MaxToken) {
		return Invalid, errors.Wrapf(ErrTokensExhausted, "registering %q (%s)", name, goType)
	}
	t := TypeInfo{
		token:   Token(len(global.byToken)),
		name:    name,
		goType:  goType,
		dtype:   dtypes.InvalidDType,
		compute: true,
	}
	global.lockedInsert(t)
	klog.V(1).Infof("typeinfo: registered custom type %q (%s) with token %d", name, goType, t.token)
	return t, nil
}

// Of returns the TypeInfo for T, or Invalid if T is not known.
func Of[T any]() TypeInfo {
	return ForGoType(reflect.TypeFor[T]())
}

// ForGoType returns the TypeInfo for the given Go type, or Invalid if it is not known.
func ForGoType(goType reflect.Type) TypeInfo {
	global.mu.RLock()
	defer global.mu.RUnlock()
	if t, found := global.byGoType[goType]; found {
		return t
	}
	return Invalid
}

// ForValue returns the TypeInfo of the value's dynamic type, or Invalid if it is not known.
func ForValue(value any) TypeInfo {
	if value == nil {
		return Invalid
	}
	return ForGoType(reflect.TypeOf(value))
}

// FromDType returns the TypeInfo for one of the library-known dtypes, or Invalid.
func FromDType(dtype dtypes.DType) TypeInfo {
	// byDType is only written during package initialization.
	if t, found := global.byDType[dtype]; found {
		return t
	}
	return Invalid
}

// ForToken returns the TypeInfo associated with the token.
func ForToken(token Token) (TypeInfo, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	if int(token) >= len(global.byToken) || !global.byToken[token].IsValid() {
		return Invalid, false
	}
	return global.byToken[token], true
}

// ByName returns the TypeInfo registered with the given name.
func ByName(name string) (TypeInfo, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	t, found := global.byName[name]
	return t, found
}

// Natives returns the native compute types, in token order.
func Natives() []TypeInfo {
	return []TypeInfo{Float32, Float64, Int32, Uint32}
}

// All returns all known types, in token order.
func All() []TypeInfo {
	global.mu.RLock()
	defer global.mu.RUnlock()
	all := make([]TypeInfo, 0, len(global.byToken))
	for _, t := range global.byToken {
		if t.IsValid() {
			all = append(all, t)
		}
	}
	return all
}
