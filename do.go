// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mond

// Do-blocks let a chain of optional/fallible steps be written as a flat
// sequence of suspension points instead of nested binds, while keeping the
// container's exact short-circuit semantics.
//
// A program is a defunctionalized chain of tagged steps. Each Yield step
// carries a container value and a continuation that receives the unwrapped
// success payload; Return is an explicit early-return terminal; Last ends
// the program with a container expression as-is. The driver threads the
// steps through the container's Bind, so a None/Left container halts the
// run before any later step is built or evaluated. Early return is a
// tagged step, never a panic: the driver itself cannot fail, and all
// failure surfaces as the container's short-circuit branch.

// Erased represents a type-erased value inside a step chain.
// Intermediate payload types are heterogeneous, so steps carry Erased
// values through a homogeneous driver. Concrete types are recovered via
// type assertions at the typed boundaries (YieldOption, DoEither, ...).
type Erased = any

// Monad is the container capability the do-driver is parametrized over:
// a success constructor and a bind. Both container variants implement it
// over erased payloads.
type Monad interface {
	// Unit wraps a plain value in the container's success variant.
	Unit(v Erased) Erased

	// Bind chains a container with a function producing the next
	// container. On the short-circuit variant it returns the container
	// unchanged without invoking f.
	Bind(m Erased, f func(Erased) Erased) Erased
}

// Step is the interface for do-block program steps.
// Dispatch uses type switches, not tags — Step is a pure marker interface.
type Step interface {
	step() // unexported marker method
}

// yieldStep is a suspension point: a container value plus the
// continuation to resume with its unwrapped success payload.
type yieldStep struct {
	m Erased
	k func(Erased) Step
}

func (yieldStep) step() {}

// returnStep is the explicit early-return terminal.
type returnStep struct {
	v Erased
}

func (returnStep) step() {}

// lastStep ends the program with the container expression as-is.
type lastStep struct {
	m Erased
}

func (lastStep) step() {}

// Yield creates a suspension point on an erased container value.
// The typed wrappers YieldOption and YieldEither are the usual entry
// points; Yield is exported for embedders driving RunDo with their own
// Monad instance.
func Yield(m Erased, k func(Erased) Step) Step {
	return yieldStep{m: m, k: k}
}

// Return creates the early-return terminal. The driver wraps v in the
// container's success variant and halts; remaining steps never exist.
func Return(v Erased) Step {
	return returnStep{v: v}
}

// Last ends a program with a container expression. The driver returns
// the container exactly as produced.
func Last(m Erased) Step {
	return lastStep{m: m}
}

// RunDo drives a step chain with the given container capability.
// Each Yield is threaded through d.Bind with a continuation that resumes
// the program and drives the rest; Bind's propagation rule guarantees
// that steps after a short-circuit are never reached. Step chains hold
// no run state, so re-driving the same program is a fresh run.
func RunDo(d Monad, s Step) Erased {
	switch st := s.(type) {
	case yieldStep:
		return d.Bind(st.m, func(v Erased) Erased {
			return RunDo(d, st.k(v))
		})
	case returnStep:
		return d.Unit(st.v)
	default:
		return s.(lastStep).m
	}
}

// optionMonad is the Option instance of the Monad capability.
type optionMonad struct{}

func (optionMonad) Unit(v Erased) Erased {
	return Some(v)
}

func (optionMonad) Bind(m Erased, f func(Erased) Erased) Erased {
	o := m.(Option[Erased])
	v, ok := o.Get()
	if !ok {
		return o
	}
	return f(v)
}

// eitherMonad is the Either instance of the Monad capability.
// The left type is fixed per program; payloads are erased.
type eitherMonad[E any] struct{}

func (eitherMonad[E]) Unit(v Erased) Erased {
	return Right[E](v)
}

func (eitherMonad[E]) Bind(m Erased, f func(Erased) Erased) Erased {
	e := m.(Either[E, Erased])
	v, ok := e.GetRight()
	if !ok {
		return e
	}
	return f(v)
}

func eraseOption[A any](m Option[A]) Option[Erased] {
	return MapOption(m, func(a A) Erased { return a })
}

func eraseEither[E, A any](m Either[E, A]) Either[E, Erased] {
	return MapEither(m, func(a A) Erased { return a })
}

// YieldOption creates a suspension point on an Option value.
// The continuation receives the unwrapped payload; on None it is never
// invoked.
func YieldOption[A any](m Option[A], k func(A) Step) Step {
	return Yield(eraseOption(m), func(v Erased) Step {
		return k(v.(A))
	})
}

// YieldEither creates a suspension point on an Either value.
// The continuation receives the Right payload; on Left it is never
// invoked.
func YieldEither[E, A any](m Either[E, A], k func(A) Step) Step {
	return Yield(eraseEither(m), func(v Erased) Step {
		return k(v.(A))
	})
}

// LastOption ends a program with an Option expression.
func LastOption[A any](m Option[A]) Step {
	return Last(eraseOption(m))
}

// LastEither ends a program with an Either expression.
func LastEither[E, A any](m Either[E, A]) Step {
	return Last(eraseEither(m))
}

// DoOption runs a do-block over the Option container.
// A None yielded at any step makes the whole run None; Return(v) makes
// it Some(v). Each call is a brand-new run.
func DoOption[A any](s Step) Option[A] {
	r := RunDo(optionMonad{}, s).(Option[Erased])
	if v, ok := r.Get(); ok {
		return Some(v.(A))
	}
	return None[A]()
}

// DoEither runs a do-block over the Either container.
// A Left yielded at any step makes the whole run that Left; Return(v)
// makes it Right(v). Each call is a brand-new run.
func DoEither[E, A any](s Step) Either[E, A] {
	r := RunDo(eitherMonad[E]{}, s).(Either[E, Erased])
	if v, ok := r.GetRight(); ok {
		return Right[E](v.(A))
	}
	l, _ := r.GetLeft()
	return Left[E, A](l)
}
