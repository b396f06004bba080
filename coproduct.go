// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coproduct

// Foldable is the capability contract of a two-variant sum.
// A Foldable holds either a Left value of type L or a Right value of type R.
//
// Fold must call exactly one of onLeft or onRight, exactly once, with the
// held payload. Every derived operation in this package relies on that.
type Foldable[L, R any] interface {
	Fold(onLeft func(L), onRight func(R))
}

// Coproduct is the canonical Foldable: a value that is either Left (A) or
// Right (B). The zero value is Left holding the zero A.
type Coproduct[A, B any] struct {
	isRight bool
	left    A
	right   B
}

var _ Foldable[int, string] = Coproduct[int, string]{}

// Left creates a Left value.
func Left[A, B any](a A) Coproduct[A, B] {
	return Coproduct[A, B]{isRight: false, left: a}
}

// Right creates a Right value.
func Right[A, B any](b B) Coproduct[A, B] {
	return Coproduct[A, B]{isRight: true, right: b}
}

// IsLeft returns true if this is a Left value.
func (c Coproduct[A, B]) IsLeft() bool {
	return !c.isRight
}

// IsRight returns true if this is a Right value.
func (c Coproduct[A, B]) IsRight() bool {
	return c.isRight
}

// Fold implements Foldable.
func (c Coproduct[A, B]) Fold(onLeft func(A), onRight func(B)) {
	if c.isRight {
		onRight(c.right)
		return
	}
	onLeft(c.left)
}

// Fold eliminates c into a T by applying onLeft or onRight to the held payload.
// The handler for the other side is never called.
//
// Concrete Coproduct values branch directly; any other Foldable is driven
// through its Fold method with the result captured by the handlers.
func Fold[L, R, T any](c Foldable[L, R], onLeft func(L) T, onRight func(R) T) T {
	if v, ok := c.(Coproduct[L, R]); ok {
		if v.isRight {
			return onRight(v.right)
		}
		return onLeft(v.left)
	}
	var out T
	c.Fold(
		func(l L) { out = onLeft(l) },
		func(r R) { out = onRight(r) },
	)
	return out
}
