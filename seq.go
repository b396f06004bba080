// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coproduct

import "iter"

// Lefts yields the Left payloads of seq in order, skipping Right values.
func Lefts[L, R any](seq iter.Seq[Coproduct[L, R]]) iter.Seq[L] {
	return func(yield func(L) bool) {
		for c := range seq {
			if c.isRight {
				continue
			}
			if !yield(c.left) {
				return
			}
		}
	}
}

// Rights yields the Right payloads of seq in order, skipping Left values.
func Rights[L, R any](seq iter.Seq[Coproduct[L, R]]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for c := range seq {
			if !c.isRight {
				continue
			}
			if !yield(c.right) {
				return
			}
		}
	}
}

// Partition drains seq, splitting it by variant.
// Both slices keep the relative order of seq; either may be nil.
func Partition[L, R any](seq iter.Seq[Coproduct[L, R]]) (lefts []L, rights []R) {
	for c := range seq {
		if c.isRight {
			rights = append(rights, c.right)
		} else {
			lefts = append(lefts, c.left)
		}
	}
	return lefts, rights
}
