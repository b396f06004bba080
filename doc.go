// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coproduct provides a generic two-variant sum type and the algebra
// derived from eliminating it.
//
// A coproduct holds exactly one of two values: a Left of type L or a Right
// of type R. The package is built around one primitive, fold, and every
// other operation is written once in terms of it.
//
// # Design Philosophy
//
// coproduct provides:
//   - A single capability contract, [Foldable], with one method
//   - A canonical immutable implementation, [Coproduct]
//   - Derived operations as generic functions over [Foldable], so any type
//     that can fold gets the full algebra without further code
//
// Go methods cannot declare type parameters, so the contract's Fold takes
// handlers that return nothing. The result-typed elimination [Fold] is
// derived from it and is the form used everywhere else:
//
//	type Foldable[L, R any] interface {
//		Fold(onLeft func(L), onRight func(R))
//	}
//
// An implementation must call exactly one handler, exactly once.
//
// # Core Operations
//
// Construction:
//
//   - [Left]: Build a Left value
//   - [Right]: Build a Right value
//
// Elimination:
//
//   - [Fold]: Apply the handler matching the held variant and return its result
//
// # Projections
//
//   - [ToCoproduct]: Normalize any [Foldable] into a [Coproduct]
//   - [TryLeft], [TryRight]: Comma-ok access to one side
//   - [FoldToLeft], [FoldToRight]: Collapse to one side's type via a transform
//   - [Merged]: Collapse a [Foldable] whose sides share a type
//   - [IsLeft], [IsRight]: Tag queries
//
// Absence is reported through the boolean of the comma-ok form. No operation
// returns an error.
//
// # Bifunctor
//
//   - [Bimap]: Transform whichever side is held, keeping the variant
//   - [MapLeft]: Transform only a Left payload
//   - [MapRight]: Transform only a Right payload
//   - [Swap]: Exchange the sides
//
// Laws (checked by the property tests):
//
//	Bimap(v, id, id)                     ≡ v
//	Bimap(v, f2∘f1, g2∘g1)               ≡ Bimap(Bimap(v, f1, g1), f2, g2)
//	Swap(Swap(v))                        ≡ v
//
// # Equality
//
// [Equal] is only instantiable when both payload types are comparable.
// [EqualFunc] takes explicit relations for payloads that are not.
// Two values are equal iff they hold the same variant and their payloads
// are equal; Left(1) never equals Right(1).
//
// # Sequences
//
//   - [Lefts], [Rights]: Filter an [iter.Seq] of coproducts to one side
//   - [Partition]: Split a sequence by variant, preserving order
//
// # Concurrency
//
// Values are immutable after construction and safe to share between
// goroutines. Handlers run synchronously on the calling goroutine, and a
// panic raised by a handler propagates unchanged to the caller.
package coproduct
