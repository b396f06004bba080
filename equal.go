// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coproduct

// Equal reports whether x and y hold the same variant with equal payloads.
// Left(1) and Right(1) are never equal.
//
// Payloads are compared with ==, so an interface payload whose dynamic type
// is not comparable panics as it would in a plain comparison. Use EqualFunc
// for such payloads.
func Equal[L, R comparable](x, y Foldable[L, R]) bool {
	return EqualFunc(x, y, equal[L], equal[R])
}

// EqualFunc is like Equal but compares payloads with eqLeft and eqRight.
// Neither function is called when the variants differ.
func EqualFunc[L1, R1, L2, R2 any](x Foldable[L1, R1], y Foldable[L2, R2], eqLeft func(L1, L2) bool, eqRight func(R1, R2) bool) bool {
	return Fold(x,
		func(a L1) bool {
			return Fold(y, func(b L2) bool { return eqLeft(a, b) }, constant[R2](false))
		},
		func(a R1) bool {
			return Fold(y, constant[L2](false), func(b R2) bool { return eqRight(a, b) })
		},
	)
}

func equal[T comparable](a, b T) bool { return a == b }
