// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/kdispatch/internal/sets"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Registry maps (operation name, Key) to the Entry implementing the operation for the types in the Key.
//
// It is the extension point for custom types: users register implementations for operations of the library
// under the name of the operation and the Key of their types. Builtin entries (registered by the library with
// RegisterBuiltin) can't be overridden nor unregistered.
//
// Operations served by a native Table are reserved with ReserveNative: calls on all-native operand types never
// reach the registry for them, so Register rejects entries for those keys with ErrBuiltinOverride.
//
// Lookups don't lock: the entries are kept in an immutable snapshot, and registrations (rare) replace the
// snapshot under a mutex. So it is safe for concurrent use, and concurrent calls never block each other.
type Registry struct {
	id     string
	config Config

	// muWrite serializes registrations.
	muWrite sync.Mutex

	// snapshot is nil after Finalize.
	snapshot atomic.Pointer[registrySnapshot]

	lookups, misses atomic.Uint64
}

type registration struct {
	entry   Entry
	builtin bool
}

// registrySnapshot is never modified once published.
type registrySnapshot struct {
	entries map[string]map[Key]registration

	// native holds the names of the operations whose all-native keys are served by a Table.
	native sets.Set[string]
}

// clone makes a copy that can be modified before being published. Only the map of the given name
// is deep-copied, since it's the only one that will be changed.
func (s *registrySnapshot) clone(name string) *registrySnapshot {
	s2 := &registrySnapshot{entries: maps.Clone(s.entries), native: s.native}
	if s2.entries == nil {
		s2.entries = make(map[string]map[Key]registration)
	}
	s2.entries[name] = maps.Clone(s.entries[name])
	if s2.entries[name] == nil {
		s2.entries[name] = make(map[Key]registration)
	}
	return s2
}

// NewRegistry returns an empty Registry with the default configuration (NewConfig).
func NewRegistry() *Registry {
	return NewRegistryWithConfig(NewConfig())
}

// NewRegistryWithConfig returns an empty Registry with the given configuration.
func NewRegistryWithConfig(config Config) *Registry {
	r := &Registry{
		id:     uuid.NewString(),
		config: config,
	}
	r.snapshot.Store(&registrySnapshot{entries: make(map[string]map[Key]registration)})
	klog.V(1).Infof("dispatch: created registry %s", r)
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	config, err := ConfigFromEnv()
	if err != nil {
		exceptions.Panicf("failed to configure the default dispatch registry: %+v", err)
	}
	return NewRegistryWithConfig(config)
})

// Default returns the process-wide Registry, created on first use with ConfigFromEnv.
//
// It panics if the configuration from the environment is invalid.
func Default() *Registry {
	return defaultRegistry()
}

// ID uniquely identifies the registry instance.
func (r *Registry) ID() string { return r.id }

// Config returns the registry configuration.
func (r *Registry) Config() Config { return r.config }

// String implements fmt.Stringer.
func (r *Registry) String() string {
	return "Registry(" + r.config.Name + "/" + r.id + ")"
}

// Register an implementation of the named operation for the types in key.
//
// If there is already an entry, it is overwritten or ErrAlreadyRegistered is returned, depending on Config.Reregister.
// It returns ErrBuiltinOverride if the entry is a builtin one, or if the operation was reserved with
// ReserveNative and all the types in key are native.
// It returns ErrArityOverflow if the key is not valid (see Key.IsValid).
func (r *Registry) Register(name string, key Key, entry Entry) error {
	return r.add(name, key, entry, false)
}

// RegisterFunc registers fn using FuncOf to create the Entry. See Register.
func (r *Registry) RegisterFunc(name string, key Key, fn any) error {
	entry, err := FuncOf(fn)
	if err != nil {
		return errors.WithMessagef(err, "registering %q for %s", name, key)
	}
	return r.add(name, key, entry, false)
}

// ReserveNative marks the named operations as served by a native Table: Register and RegisterFunc
// reject user entries for them whose key has only native types, since those are never dispatched to
// the registry. Builtin entries are still accepted.
//
// It fails with ErrBuiltinOverride if there is already a user entry with an all-native key for one
// of the names.
func (r *Registry) ReserveNative(names ...string) error {
	r.muWrite.Lock()
	defer r.muWrite.Unlock()
	current := r.snapshot.Load()
	if current == nil {
		return errors.Wrapf(ErrFinalized, "reserving %q in %s", names, r)
	}
	for _, name := range names {
		for key, reg := range current.entries[name] {
			if !reg.builtin && key.AllNative() {
				return errors.Wrapf(ErrBuiltinOverride, "reserving %q: it has a user entry for native types %s", name, key)
			}
		}
	}
	next := &registrySnapshot{entries: current.entries, native: sets.MakeWith(names...)}
	next.native.Insert(sets.Sorted(current.native)...)
	r.snapshot.Store(next)
	klog.V(1).Infof("dispatch: reserved native operations %q in %s", names, r)
	return nil
}

// NativeNames returns the sorted names of the operations reserved with ReserveNative.
func (r *Registry) NativeNames() []string {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	return sets.Sorted(snapshot.native)
}

// RegisterBuiltin registers an implementation that is part of the library: it can't be overridden or unregistered
// by Register/Unregister. Registering a builtin again overwrites it.
//
// It is meant to be used by the library's own operations (see package ops) to provide implementations for
// non-native types.
func (r *Registry) RegisterBuiltin(name string, key Key, entry Entry) error {
	return r.add(name, key, entry, true)
}

func (r *Registry) add(name string, key Key, entry Entry, builtin bool) error {
	if !entry.IsValid() {
		return errors.Wrapf(ErrInvalidEntry, "registering %q for %s", name, key)
	}
	if !key.IsValid() {
		return errors.Wrapf(ErrArityOverflow, "registering %q with an invalid key %#x", name, uint64(key))
	}

	r.muWrite.Lock()
	defer r.muWrite.Unlock()
	current := r.snapshot.Load()
	if current == nil {
		return errors.Wrapf(ErrFinalized, "registering %q for %s in %s", name, key, r)
	}
	if !builtin && current.native.Has(name) && key.AllNative() {
		return errors.Wrapf(ErrBuiltinOverride, "registering %q for %s: native types are served by its dispatch table", name, key)
	}
	previous, found := current.entries[name][key]
	if found {
		switch {
		case previous.builtin && !builtin:
			return errors.Wrapf(ErrBuiltinOverride, "registering %q for %s", name, key)
		case !previous.builtin && builtin:
			klog.Warningf("dispatch: builtin %q for %s replaces a user entry %s in %s", name, key, previous.entry, r)
		case !builtin && r.config.Reregister == Reject:
			return errors.Wrapf(ErrAlreadyRegistered, "registering %q for %s (%s)", name, key, previous.entry)
		case !builtin:
			klog.Warningf("dispatch: overwriting %q for %s in %s: %s replaced by %s", name, key, r, previous.entry, entry)
		}
	}
	next := current.clone(name)
	next.entries[name][key] = registration{entry: entry, builtin: builtin}
	r.snapshot.Store(next)
	klog.V(1).Infof("dispatch: registered %q for %s in %s (builtin=%v)", name, key, r, builtin)
	return nil
}

// Unregister removes the entry for (name, key).
//
// It returns ErrBuiltinOverride for builtin entries. If there is no entry, it returns ErrNotFound if
// Config.StrictUnregister is set, otherwise it does nothing.
func (r *Registry) Unregister(name string, key Key) error {
	r.muWrite.Lock()
	defer r.muWrite.Unlock()
	current := r.snapshot.Load()
	if current == nil {
		return errors.Wrapf(ErrFinalized, "unregistering %q for %s in %s", name, key, r)
	}
	previous, found := current.entries[name][key]
	if !found {
		if r.config.StrictUnregister {
			return errors.Wrapf(ErrNotFound, "unregistering %q for %s in %s", name, key, r)
		}
		return nil
	}
	if previous.builtin {
		return errors.Wrapf(ErrBuiltinOverride, "unregistering %q for %s", name, key)
	}
	next := current.clone(name)
	delete(next.entries[name], key)
	if len(next.entries[name]) == 0 {
		delete(next.entries, name)
	}
	r.snapshot.Store(next)
	klog.V(1).Infof("dispatch: unregistered %q for %s in %s", name, key, r)
	return nil
}

// Has returns whether there is an entry for (name, key).
func (r *Registry) Has(name string, key Key) bool {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return false
	}
	_, found := snapshot.entries[name][key]
	return found
}

// IsBuiltin returns whether the entry for (name, key) exists and is a builtin.
func (r *Registry) IsBuiltin(name string, key Key) bool {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return false
	}
	return snapshot.entries[name][key].builtin
}

// Get returns the entry for (name, key), or ErrNotFound.
func (r *Registry) Get(name string, key Key) (Entry, error) {
	r.lookups.Add(1)
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return Entry{}, errors.Wrapf(ErrFinalized, "looking up %q for %s in %s", name, key, r)
	}
	reg, found := snapshot.entries[name][key]
	if !found {
		r.misses.Add(1)
		return Entry{}, errors.Wrapf(ErrNotFound, "no implementation of %q for %s in %s", name, key, r)
	}
	return reg.entry, nil
}

// Call looks up the entry for (name, key) and calls it with args.
//
// It returns ErrNotFound if there is no entry, ErrArgumentMismatch if the args don't match the entry's
// function, or the error returned by the function itself.
func (r *Registry) Call(name string, key Key, args ...any) error {
	return r.call(name, key, args)
}

func (r *Registry) call(name string, key Key, args []any) error {
	entry, err := r.Get(name, key)
	if err != nil {
		return err
	}
	if err = entry.call(args); err != nil && errors.Is(err, ErrArgumentMismatch) {
		return errors.WithMessagef(err, "calling %q for %s with %s", name, key, describeArgs(args))
	}
	return err
}

// Len returns the number of entries in the registry.
func (r *Registry) Len() int {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return 0
	}
	var n int
	for _, byKey := range snapshot.entries {
		n += len(byKey)
	}
	return n
}

// Names returns the sorted names of the operations with at least one entry.
func (r *Registry) Names() []string {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(snapshot.entries))
}

// EntryInfo describes one registry entry, see Registry.Entries.
type EntryInfo struct {
	Name    string
	Key     Key
	Entry   Entry
	Builtin bool
}

// Entries returns a snapshot of all entries, sorted by name and key.
func (r *Registry) Entries() []EntryInfo {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	var infos []EntryInfo
	for name, byKey := range snapshot.entries {
		for key, reg := range byKey {
			infos = append(infos, EntryInfo{Name: name, Key: key, Entry: reg.entry, Builtin: reg.builtin})
		}
	}
	slices.SortFunc(infos, func(a, b EntryInfo) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return infos
}

// RegistryStats are counters of the registry usage.
type RegistryStats struct {
	// Lookups counts calls to Get, including those done by Call.
	Lookups uint64

	// Misses counts lookups that failed with ErrNotFound.
	Misses uint64
}

// Stats returns the current usage counters.
func (r *Registry) Stats() RegistryStats {
	return RegistryStats{Lookups: r.lookups.Load(), Misses: r.misses.Load()}
}

// Finalize releases all entries. Any later use of the registry fails with ErrFinalized.
// It is safe to call it more than once.
func (r *Registry) Finalize() {
	r.muWrite.Lock()
	defer r.muWrite.Unlock()
	if r.snapshot.Swap(nil) != nil {
		klog.V(1).Infof("dispatch: finalized %s", r)
	}
}
