// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coproduct

// Projections.
// Each is a single Fold; none of them fail. A missing side is reported
// through the boolean of the comma-ok form.

// ToCoproduct normalizes any Foldable into the canonical Coproduct.
func ToCoproduct[L, R any](c Foldable[L, R]) Coproduct[L, R] {
	return Fold(c, Left[L, R], Right[L, R])
}

// TryLeft returns the Left payload and true, or zero and false.
func TryLeft[L, R any](c Foldable[L, R]) (L, bool) {
	var out L
	ok := Fold(c,
		func(l L) bool { out = l; return true },
		func(R) bool { return false },
	)
	return out, ok
}

// TryRight returns the Right payload and true, or zero and false.
func TryRight[L, R any](c Foldable[L, R]) (R, bool) {
	var out R
	ok := Fold(c,
		func(L) bool { return false },
		func(r R) bool { out = r; return true },
	)
	return out, ok
}

// FoldToLeft returns the Left payload unchanged, or transform applied to the
// Right payload. transform is not called for a Left value.
func FoldToLeft[L, R any](c Foldable[L, R], transform func(R) L) L {
	return Fold(c, identity[L], transform)
}

// FoldToRight returns the Right payload unchanged, or transform applied to
// the Left payload. transform is not called for a Right value.
func FoldToRight[L, R any](c Foldable[L, R], transform func(L) R) R {
	return Fold(c, transform, identity[R])
}

// Merged returns the payload of a Foldable whose sides share one type.
func Merged[A any](c Foldable[A, A]) A {
	return Fold(c, identity[A], identity[A])
}

// IsLeft reports whether c holds a Left value.
func IsLeft[L, R any](c Foldable[L, R]) bool {
	return Fold(c, constant[L](true), constant[R](false))
}

// IsRight reports whether c holds a Right value.
func IsRight[L, R any](c Foldable[L, R]) bool {
	return Fold(c, constant[L](false), constant[R](true))
}

// identity is a named generic function so that each instantiation is a
// static funcval rather than a fresh closure.
func identity[A any](a A) A { return a }

func constant[A, T any](t T) func(A) T {
	return func(A) T { return t }
}
