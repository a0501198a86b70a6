// Package univariate implements a dense univariate polynomial ring over a
// field, satisfying the same polynomial contract as the multivariate ring
// (package groebner) with monomial = non-negative integer power. It is a
// collaborator used by package field and by tests; the Gröbner-basis
// engines do not depend on it.
package univariate

import (
	"fmt"
	"strings"

	"github.com/gopolynomial/groebner"
)

// A Polynomial is a dense coefficient list: coeffs[i] is the coefficient of
// x^i. Trailing zero coefficients are stripped after every operation.
type Polynomial[K groebner.Field[K]] struct {
	field  K
	coeffs []K
}

// Zero returns the zero polynomial over the field carried by k.
func Zero[K groebner.Field[K]](k K) *Polynomial[K] {
	return &Polynomial[K]{field: k}
}

// One returns the constant polynomial 1.
func One[K groebner.Field[K]](k K) *Polynomial[K] {
	return &Polynomial[K]{field: k, coeffs: []K{k.NewOne()}}
}

// FromCoefficients returns the polynomial with coeffs[i] the coefficient of
// x^i. The slice is copied.
func FromCoefficients[K groebner.Field[K]](k K, coeffs []K) *Polynomial[K] {
	c := make([]K, len(coeffs))
	copy(c, coeffs)
	p := &Polynomial[K]{field: k, coeffs: c}
	p.normalize()
	return p
}

// Monomial returns the single-term polynomial c*x^deg.
func Monomial[K groebner.Field[K]](k K, c K, deg int) *Polynomial[K] {
	coeffs := make([]K, deg+1)
	for i := range coeffs {
		coeffs[i] = k.NewZero()
	}
	coeffs[deg] = c
	return FromCoefficients(k, coeffs)
}

func (p *Polynomial[K]) normalize() {
	n := len(p.coeffs)
	zero := p.field.NewZero()
	for n > 0 && p.coeffs[n-1].Equal(zero) {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// Field returns the field of the coefficients in p.
func (p *Polynomial[K]) Field() K { return p.field }

// IsZero reports whether p has no non-zero coefficients.
func (p *Polynomial[K]) IsZero() bool { return len(p.coeffs) == 0 }

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *Polynomial[K]) Degree() int { return len(p.coeffs) - 1 }

// Coefficient returns the coefficient of x^i, or the zero element if i is
// out of range.
func (p *Polynomial[K]) Coefficient(i int) K {
	if i >= 0 && i < len(p.coeffs) {
		return p.coeffs[i]
	}
	return p.field.NewZero()
}

// LeadingCoefficient returns the coefficient of the highest-degree term. It
// panics if p is zero.
func (p *Polynomial[K]) LeadingCoefficient() K {
	if p.IsZero() {
		panic("univariate: leading coefficient of zero polynomial")
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Clone returns a copy of p.
func (p *Polynomial[K]) Clone() *Polynomial[K] {
	return FromCoefficients(p.field, p.coeffs)
}

// Equal reports whether p and q have the same coefficients.
func (p *Polynomial[K]) Equal(q *Polynomial[K]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p+q.
func (p *Polynomial[K]) Add(q *Polynomial[K]) *Polynomial[K] {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]K, n)
	for i := 0; i < n; i++ {
		out[i] = p.field.Add(p.Coefficient(i), q.Coefficient(i))
	}
	return FromCoefficients(p.field, out)
}

// Sub returns p-q.
func (p *Polynomial[K]) Sub(q *Polynomial[K]) *Polynomial[K] {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]K, n)
	for i := 0; i < n; i++ {
		out[i] = p.field.Sub(p.Coefficient(i), q.Coefficient(i))
	}
	return FromCoefficients(p.field, out)
}

// Neg returns -p.
func (p *Polynomial[K]) Neg() *Polynomial[K] {
	return Zero[K](p.field).Sub(p)
}

// ScalarMul returns c*p.
func (p *Polynomial[K]) ScalarMul(c K) *Polynomial[K] {
	out := make([]K, len(p.coeffs))
	for i, x := range p.coeffs {
		out[i] = p.field.Mul(c, x)
	}
	return FromCoefficients(p.field, out)
}

// Mul returns p*q, computed by the distributive convolution of coefficient
// lists.
func (p *Polynomial[K]) Mul(q *Polynomial[K]) *Polynomial[K] {
	if p.IsZero() || q.IsZero() {
		return Zero[K](p.field)
	}
	out := make([]K, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = p.field.NewZero()
	}
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] = p.field.Add(out[i+j], p.field.Mul(a, b))
		}
	}
	return FromCoefficients(p.field, out)
}

// Pow returns p^n for n >= 0.
func (p *Polynomial[K]) Pow(n int) *Polynomial[K] {
	z := One[K](p.field)
	for i := 0; i < n; i++ {
		z = z.Mul(p)
	}
	return z
}

// Eval evaluates p at x using Horner's method.
func (p *Polynomial[K]) Eval(x K) K {
	acc := p.field.NewZero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = p.field.Add(p.field.Mul(acc, x), p.coeffs[i])
	}
	return acc
}

// DivMod performs division with remainder: it returns (q, r) such that
// p = q*g + r and deg(r) < deg(g). g must be non-zero.
func (p *Polynomial[K]) DivMod(g *Polynomial[K]) (q, r *Polynomial[K]) {
	if g.IsZero() {
		panic("univariate: division by the zero polynomial")
	}
	field := p.field
	r = p.Clone()
	qCoeffs := make([]K, 0)
	gDeg := g.Degree()
	gLead := g.LeadingCoefficient()
	for !r.IsZero() && r.Degree() >= gDeg {
		shift := r.Degree() - gDeg
		c := field.Div(r.LeadingCoefficient(), gLead)
		for len(qCoeffs) <= shift {
			qCoeffs = append(qCoeffs, field.NewZero())
		}
		qCoeffs[shift] = c
		r = r.Sub(g.shiftMul(c, shift))
	}
	return FromCoefficients(field, qCoeffs), r
}

// shiftMul returns c*x^shift*p.
func (p *Polynomial[K]) shiftMul(c K, shift int) *Polynomial[K] {
	out := make([]K, len(p.coeffs)+shift)
	for i := range out {
		out[i] = p.field.NewZero()
	}
	for i, x := range p.coeffs {
		out[i+shift] = p.field.Mul(c, x)
	}
	return FromCoefficients(p.field, out)
}

// GCD returns the monic greatest common divisor of p and q via the
// Euclidean algorithm.
func GCD[K groebner.Field[K]](p, q *Polynomial[K]) *Polynomial[K] {
	a, b := p.Clone(), q.Clone()
	for !b.IsZero() {
		_, r := a.DivMod(b)
		a, b = b, r
	}
	if a.IsZero() {
		return a
	}
	return a.ScalarMul(a.field.Inv(a.LeadingCoefficient()))
}

// ExtendedGCD returns (g, s, t) such that g = s*p + t*q and g is the monic
// greatest common divisor of p and q.
func ExtendedGCD[K groebner.Field[K]](p, q *Polynomial[K]) (g, s, t *Polynomial[K]) {
	field := p.field
	r0, r1 := p.Clone(), q.Clone()
	s0, s1 := One[K](field), Zero[K](field)
	t0, t1 := Zero[K](field), One[K](field)

	for !r1.IsZero() {
		quot, rem := r0.DivMod(r1)
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(quot.Mul(s1))
		t0, t1 = t1, t0.Sub(quot.Mul(t1))
	}
	if r0.IsZero() {
		return r0, s0, t0
	}
	inv := field.Inv(r0.LeadingCoefficient())
	return r0.ScalarMul(inv), s0.ScalarMul(inv), t0.ScalarMul(inv)
}

// String renders p from highest to lowest degree.
func (p *Polynomial[K]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		zero := p.field.NewZero()
		if p.coeffs[i].Equal(zero) {
			continue
		}
		s := p.coeffs[i].String()
		if !first {
			if s[0] == '-' {
				fmt.Fprintf(&b, " - %s", s[1:])
			} else {
				fmt.Fprintf(&b, " + %s", s)
			}
		} else {
			fmt.Fprintf(&b, "%s", s)
			first = false
		}
		switch i {
		case 0:
		case 1:
			fmt.Fprintf(&b, "*x")
		default:
			fmt.Fprintf(&b, "*x^%d", i)
		}
	}
	return b.String()
}
