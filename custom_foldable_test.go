// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coproduct_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/coproduct"
)

// parseResult is a Foldable that is not a Coproduct: Left is the parsed
// number, Right the rejected input.
type parseResult struct {
	n      int
	input  string
	failed bool
}

func (p parseResult) Fold(onLeft func(int), onRight func(string)) {
	if p.failed {
		onRight(p.input)
		return
	}
	onLeft(p.n)
}

func okResult(n int) parseResult { return parseResult{n: n} }
func errResult(s string) parseResult { return parseResult{input: s, failed: true} }

func parse(s string) parseResult {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errResult(s)
	}
	return okResult(n)
}

func TestCustomFoldableGetsDerivedOperations(t *testing.T) {
	good, bad := parse("42"), parse("x")

	t.Run("ToCoproduct", func(t *testing.T) {
		assert.Equal(t, coproduct.Left[int, string](42), coproduct.ToCoproduct(good))
		assert.Equal(t, coproduct.Right[int]("x"), coproduct.ToCoproduct(bad))
	})

	t.Run("Try", func(t *testing.T) {
		n, ok := coproduct.TryLeft(good)
		assert.True(t, ok)
		assert.Equal(t, 42, n)
		s, ok := coproduct.TryRight(bad)
		assert.True(t, ok)
		assert.Equal(t, "x", s)
		_, ok = coproduct.TryRight(good)
		assert.False(t, ok)
	})

	t.Run("FoldToLeft", func(t *testing.T) {
		orZero := func(string) int { return 0 }
		assert.Equal(t, 42, coproduct.FoldToLeft(good, orZero))
		assert.Equal(t, 0, coproduct.FoldToLeft(bad, orZero))
	})

	t.Run("Bimap", func(t *testing.T) {
		got := coproduct.Bimap(bad, strconv.Itoa, func(s string) int { return len(s) })
		assert.Equal(t, coproduct.Right[string](1), got)
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, coproduct.Equal[int, string](good, coproduct.Left[int, string](42)))
		assert.True(t, coproduct.Equal[int, string](parse("x"), bad))
		assert.False(t, coproduct.Equal[int, string](good, bad))
	})

	t.Run("Tags", func(t *testing.T) {
		assert.True(t, coproduct.IsLeft(good))
		assert.True(t, coproduct.IsRight(bad))
	})
}

// TestCustomFoldableAgreesWithNormalized checks every derived operation gives
// the same answer on a custom Foldable as on its ToCoproduct form.
func TestCustomFoldableAgreesWithNormalized(t *testing.T) {
	for _, p := range []parseResult{parse("7"), parse("-3"), parse("seven"), parse("")} {
		c := coproduct.ToCoproduct(p)

		pl, pok := coproduct.TryLeft(p)
		cl, cok := coproduct.TryLeft(c)
		assert.Equal(t, cok, pok)
		assert.Equal(t, cl, pl)

		pr, pok := coproduct.TryRight(p)
		cr, cok := coproduct.TryRight(c)
		assert.Equal(t, cok, pok)
		assert.Equal(t, cr, pr)

		double := func(n int) int { return n * 2 }
		assert.Equal(t, coproduct.MapLeft(c, double), coproduct.MapLeft(p, double))
		assert.Equal(t, coproduct.Swap(c), coproduct.Swap(p))
		assert.True(t, coproduct.Equal[int, string](p, c))
	}
}
