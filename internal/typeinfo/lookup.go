package typeinfo

import (
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Typed is implemented by values indexed by [Lookup].
type Typed interface {
	TypeInfo() Type
}

// Lookup indexes values by their types. Identical types share the same slot
// even if they are spelled differently, for example through an alias.
type Lookup[T Typed] struct {
	m *typeutil.Map
}

// NewLookup creates a new [Lookup].
func NewLookup[T Typed]() *Lookup[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Lookup[T]{m}
}

// Put adds a value to the registry. If there is already a value for the same
// type, it returns the old value and false without replacing it.
func (l *Lookup[T]) Put(v T) (T, bool) {
	t := v.TypeInfo().Type()
	if old, ok := l.m.At(t).(T); ok {
		return old, false
	}

	if old := l.m.Set(t, v); old != nil {
		panic("unexpected old value")
	}
	return *new(T), true
}

// Len returns the number of registered values.
func (l *Lookup[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.m.Len()
}

// Range iterates all registered values in no particular order.
func (l *Lookup[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, t := range l.m.Keys() {
			v, ok := l.m.At(t).(T)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
