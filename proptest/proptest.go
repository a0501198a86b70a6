// Package proptest is a small randomized-testing harness for the generic
// polynomial and monomial types in package groebner: seeded generators for
// monomials, rationals, and polynomials, plus a trial runner that reports a
// reproducible failing seed.
package proptest

import (
	"math/rand"
	"testing"

	groebner "github.com/gopolynomial/groebner"
)

// Rand is the source of randomness passed to every generator.
type Rand = rand.Rand

// New returns a new Rand seeded deterministically, so that a failing trial
// can be reproduced from the seed reported by Check.
func New(seed int64) *Rand { return rand.New(rand.NewSource(seed)) }

// Int returns a pseudo-random integer in [lo, hi].
func Int(r *Rand, lo, hi int) int { return lo + r.Intn(hi-lo+1) }

// Rat returns a pseudo-random rational with numerator in [-10,10] and
// denominator in [1,10].
func Rat(r *Rand) *groebner.Rat {
	return groebner.NewRat(int64(Int(r, -10, 10)), int64(Int(r, 1, 10)))
}

// Exponents returns a pseudo-random exponent vector over nvars variables,
// each exponent in [0, maxDeg].
func Exponents(r *Rand, nvars, maxDeg int) groebner.Exponents {
	e := make(groebner.Exponents, nvars)
	for i := range e {
		e[i] = Int(r, 0, maxDeg)
	}
	return e
}

// Monomial returns a pseudo-random monomial over nvars variables with each
// exponent at most maxDeg.
func Monomial[O groebner.Ordering](r *Rand, nvars, maxDeg int) groebner.Monomial[O] {
	return groebner.FromExponents[O](Exponents(r, nvars, maxDeg))
}

// Polynomial returns a pseudo-random polynomial over K with up to terms
// terms, each with a monomial from Monomial and a coefficient from coeff.
// Zero coefficients are skipped and colliding monomials are combined by
// AddTerm, so the result may have fewer than terms stored terms.
func Polynomial[O groebner.Ordering, K groebner.Field[K]](r *Rand, k K, coeff func(r *Rand) K, nvars, maxDeg, terms int) *groebner.Polynomial[O, K] {
	p := groebner.Zero[O, K](k)
	for i := 0; i < terms; i++ {
		c := coeff(r)
		if c.Equal(k.NewZero()) {
			continue
		}
		p.AddTerm(groebner.Term[O, K]{Monomial: Monomial[O](r, nvars, maxDeg), Coefficient: c})
	}
	return p
}

// Check runs property trials times, each against a fresh Rand derived from
// seed, and fails t reporting the seed of the first trial whose property
// returns false.
func Check(t *testing.T, trials int, seed int64, property func(r *Rand) bool) {
	t.Helper()
	for i := 0; i < trials; i++ {
		s := seed + int64(i)
		if !property(New(s)) {
			t.Fatalf("property failed on trial %d (seed %d)", i, s)
		}
	}
}
