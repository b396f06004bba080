// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coproduct

// Bifunctor operations.
// Bimap is the only one that builds a result; MapLeft, MapRight and Swap
// are Bimap or Fold with one side fixed. The held variant never changes
// except under Swap, which exchanges it.

// Bimap transforms whichever side c holds and wraps the result in the
// matching variant of a new Coproduct.
func Bimap[L, R, T, U any](c Foldable[L, R], onLeft func(L) T, onRight func(R) U) Coproduct[T, U] {
	return Fold(c,
		func(l L) Coproduct[T, U] { return Left[T, U](onLeft(l)) },
		func(r R) Coproduct[T, U] { return Right[T](onRight(r)) },
	)
}

// MapLeft applies transform to a Left payload. A Right payload passes
// through untouched.
func MapLeft[L, R, T any](c Foldable[L, R], transform func(L) T) Coproduct[T, R] {
	return Bimap(c, transform, identity[R])
}

// MapRight applies transform to a Right payload. A Left payload passes
// through untouched.
func MapRight[L, R, U any](c Foldable[L, R], transform func(R) U) Coproduct[L, U] {
	return Bimap(c, identity[L], transform)
}

// Swap exchanges the sides: Left(a) becomes Right(a) and Right(b) becomes Left(b).
func Swap[L, R any](c Foldable[L, R]) Coproduct[R, L] {
	return Fold(c, Right[R, L], Left[R, L])
}
