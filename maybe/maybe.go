/*
Package maybe provides an option type in the spirit of Elm's `Maybe` or
ML's `option`: a value of type Maybe[T] either holds a value of type T
(`Just`) or holds nothing (`Nothing`). The zero value is Nothing.

Within this module it carries the cached minimum of heap variants, where
“no minimum” is a legitimate state of an empty heap and a zero-value
stand-in would corrupt subsequent comparisons.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe optionally wraps a value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is true for absent values.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Value unwraps m, with ok=false for Nothing.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a present value, possibly changing the value's type.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
