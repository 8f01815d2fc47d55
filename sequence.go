// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mond

// Sequencing converts an ordered collection of containers into a single
// container of an ordered collection, short-circuiting at the first
// failure. Traverse is the general form; Sequence is Traverse of the
// already-built containers.

// TraverseEither applies f to each element in order, collecting the Right
// payloads. The scan stops at the first Left: f is not invoked on any
// later element, and that Left is returned as-is.
func TraverseEither[E, A, B any](xs []A, f func(A) Either[E, B]) Either[E, []B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		e := f(x)
		if l, ok := e.GetLeft(); ok {
			return Left[E, []B](l)
		}
		v, _ := e.GetRight()
		out = append(out, v)
	}
	return Right[E](out)
}

// SequenceEither converts an ordered slice of Either values into a single
// Either of a slice. The first Left encountered in input order is returned
// immediately; if every element is Right, the payloads are returned in
// input order. An empty input produces Right of an empty slice.
func SequenceEither[E, A any](xs []Either[E, A]) Either[E, []A] {
	return TraverseEither(xs, func(e Either[E, A]) Either[E, A] { return e })
}

// TraverseOption applies f to each element in order, collecting the
// present payloads. The scan stops at the first None without invoking f
// on any later element.
func TraverseOption[A, B any](xs []A, f func(A) Option[B]) Option[[]B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		v, ok := f(x).Get()
		if !ok {
			return None[[]B]()
		}
		out = append(out, v)
	}
	return Some(out)
}

// SequenceOption converts an ordered slice of Option values into a single
// Option of a slice, None if any element is None.
func SequenceOption[A any](xs []Option[A]) Option[[]A] {
	return TraverseOption(xs, func(o Option[A]) Option[A] { return o })
}
