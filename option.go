// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mond

// Option represents a value that is either present (Some) or absent (None).
// The zero value is None.
//
// Absence is a value, not a failure: no Option operation panics, and
// transformation functions are never invoked on None.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates an Option holding the given value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// OptionOf lifts a pointer into an Option.
// A nil pointer is the absent sentinel and produces None; any other
// pointer produces Some of the pointed-to value.
func OptionOf[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// IsSome returns true if this Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if this Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value if present, or def otherwise.
func (o Option[A]) GetOrElse(def A) A {
	if o.present {
		return o.value
	}
	return def
}

// OrElse returns this Option if present, or alt otherwise.
func (o Option[A]) OrElse(alt Option[A]) Option[A] {
	if o.present {
		return o
	}
	return alt
}

// MapOption applies a function to the value, if present.
// None passes through; f is never invoked on None.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
// On Some(v) it returns f(v); on None it returns None without invoking f.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// FoldOption eliminates the Option to a plain value: f applied to the
// value if present, def otherwise.
func FoldOption[A, B any](o Option[A], def B, f func(A) B) B {
	if o.present {
		return f(o.value)
	}
	return def
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
