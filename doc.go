// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mond provides algebraic containers with do-notation in Go.
//
// The two core types are [Option] (a value that may be absent) and
// [Either] (a computation that succeeded or failed, with a payload on
// each branch). Both are immutable value types: every transformation
// returns a new instance, so instances may be shared across goroutines
// without synchronization. All failure is data — no container operation
// panics, and transformation functions are never invoked on the
// absent/failure branch.
//
// # Containers
//
// Option:
//
//   - [Some], [None], [OptionOf]: Constructors (nil pointer is the absent sentinel)
//   - [Option.IsSome], [Option.IsNone], [Option.Get]: Inspection
//   - [Option.GetOrElse], [Option.OrElse], [FoldOption], [MatchOption]: Elimination
//   - [MapOption], [FlatMapOption]: Transformation
//
// Either:
//
//   - [Left], [Right]: Constructors — Right is the success/continuation channel
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft], [Either.GetRight]: Inspection
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither], [MapLeftEither]: Transformation
//   - [EitherToOption], [OptionToEither]: Bridges between the containers
//
// # Sequencing
//
// [SequenceEither] converts an ordered slice of Either values into a
// single Either of a slice, short-circuiting at the first Left in input
// order. [TraverseEither] is the general form: it produces the containers
// one element at a time, so elements after the first failure are never
// evaluated. [SequenceOption] and [TraverseOption] are the Option
// counterparts.
//
// # Do-Blocks
//
// Do-blocks let chained binds be written as a flat sequence of
// suspension points. A program is a chain of tagged steps; the driver
// threads each yielded container through Bind, preserving short-circuit
// semantics exactly, and converts the explicit early-return step into
// the container's success variant. The driver itself never fails.
//
//   - [Step]: Marker interface for program steps
//   - [YieldOption], [YieldEither]: Suspension points (typed)
//   - [Return]: Explicit early-return terminal
//   - [LastOption], [LastEither]: Final container expression
//   - [DoOption], [DoEither]: Run a program over a container
//   - [Monad], [Yield], [Last], [RunDo]: The generic layer — any type
//     offering a success constructor and a bind can drive a program
//
// Intermediate payloads inside a step chain are type-erased ([Erased]);
// concrete types are recovered via type assertions at the typed
// boundaries.
//
//	sum := func(m mond.Either[string, int]) mond.Either[string, int] {
//		return mond.DoEither[string, int](
//			mond.YieldEither(m, func(x int) mond.Step {
//				return mond.YieldEither(mond.Right[string](x*2), func(y int) mond.Step {
//					return mond.Return(x + y)
//				})
//			}),
//		)
//	}
//	sum(mond.Right[string](14)) // Right(42)
//	sum(mond.Left[string, int]("no input")) // Left("no input"), later steps never run
//
// # Mapping Combinators
//
// Pure combinators over ordinary Go maps; inputs are never mutated.
//
//   - [FilterWithKey], [FilterByKey]: Key/value filtering
//   - [Lookup]: Key lookup as an Option
//   - [GetByKeys]: Key-space validated lookup — Left of the first
//     missing key, or Right of the restricted sub-mapping
//   - [Delete], [Insert]: Non-mutating entry removal and insertion
//   - [Merge]: Curried one-level merge, second map wins
//   - [DeepMerge]: Recursive merge of nested maps — both-map conflicts
//     merge recursively, any other conflict takes the right operand
//   - [Unflatten]: Expand separator-joined keys into nested maps by
//     folding singleton paths with DeepMerge
//
// The conf subpackage layers environment, secret-file and YAML
// configuration sources on top of these combinators, surfacing every
// failure as an Either per the container contract.
package mond
