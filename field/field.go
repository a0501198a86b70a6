// Package field implements concrete coefficient fields beyond the
// arbitrary-precision rationals shipped in the root package: a fixed-width
// prime field, and the prime-field extension built from it via a
// univariate irreducible polynomial. Both are groebner.Field instances and
// can be used as the coefficient type of a multivariate polynomial ring.
package field

import (
	"fmt"

	"github.com/gopolynomial/groebner/univariate"
	"lukechampine.com/uint128"
)

// An Fp is an element of the prime field GF(p) for a prime p < 2^64. Modular
// multiplication widens through lukechampine.com/uint128 so that the
// intermediate product of two uint64 values never overflows before
// reduction.
type Fp struct {
	p uint64
	v uint64
}

// NewFp returns the element v mod p in GF(p).
func NewFp(p, v uint64) *Fp {
	return &Fp{p: p, v: v % p}
}

// NewZero returns the additive identity 0.
func (x *Fp) NewZero() *Fp { return &Fp{p: x.p, v: 0} }

// NewOne returns the multiplicative identity 1.
func (x *Fp) NewOne() *Fp { return &Fp{p: x.p, v: 1 % x.p} }

// Equal reports whether x and y are equal.
func (x *Fp) Equal(y *Fp) bool { return x.p == y.p && x.v == y.v }

// Add returns the sum x+y; z is not modified.
func (z *Fp) Add(x, y *Fp) *Fp {
	s := x.v + y.v
	if s < x.v || s >= x.p {
		s -= x.p
	}
	return &Fp{p: x.p, v: s}
}

// Sub returns the difference x-y; z is not modified.
func (z *Fp) Sub(x, y *Fp) *Fp {
	if x.v >= y.v {
		return &Fp{p: x.p, v: x.v - y.v}
	}
	return &Fp{p: x.p, v: x.p - (y.v - x.v)}
}

// Mul returns the product x*y; z is not modified.
func (z *Fp) Mul(x, y *Fp) *Fp {
	wide := uint128.From64(x.v).Mul(uint128.From64(y.v))
	return &Fp{p: x.p, v: wide.Mod64(x.p)}
}

// Div returns the quotient x/y; z is not modified. If y == 0, Div panics.
func (z *Fp) Div(x, y *Fp) *Fp { return z.Mul(x, z.NewZero().Inv(y)) }

// Inv returns 1/x, computed via Fermat's little theorem (x^(p-2) mod p);
// z is not modified. If x == 0, Inv panics.
func (z *Fp) Inv(x *Fp) *Fp {
	if x.v == 0 {
		panic("field: inverse of zero")
	}
	return &Fp{p: x.p, v: powMod(x.v, x.p-2, x.p)}
}

// String returns the integer representation of x.
func (x *Fp) String() string { return fmt.Sprintf("%d", x.v) }

// Characteristic returns p.
func (x *Fp) Characteristic() uint64 { return x.p }

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = uint128.From64(result).Mul(uint128.From64(base)).Mod64(m)
		}
		exp >>= 1
		base = uint128.From64(base).Mul(uint128.From64(base)).Mod64(m)
	}
	return result
}

// An Extension is an element of the finite field GF(p^d) built as
// Fp[x]/(irr) for a degree-d irreducible polynomial irr over GF(p). Every
// ring operation reduces its result by polynomial remainder modulo irr.
type Extension struct {
	irr  *univariate.Polynomial[*Fp]
	poly *univariate.Polynomial[*Fp]
}

// NewExtension returns the element of GF(p^d) represented by poly reduced
// modulo irr. irr must be irreducible over GF(p); this is not checked.
func NewExtension(irr, poly *univariate.Polynomial[*Fp]) *Extension {
	_, r := poly.DivMod(irr)
	return &Extension{irr: irr, poly: r}
}

// NewZero returns the additive identity 0.
func (x *Extension) NewZero() *Extension {
	return &Extension{irr: x.irr, poly: univariate.Zero[*Fp](x.irr.Field())}
}

// NewOne returns the multiplicative identity 1.
func (x *Extension) NewOne() *Extension {
	return &Extension{irr: x.irr, poly: univariate.One[*Fp](x.irr.Field())}
}

// Equal reports whether x and y are equal.
func (x *Extension) Equal(y *Extension) bool { return x.poly.Equal(y.poly) }

// Add returns the sum x+y; z is not modified.
func (z *Extension) Add(x, y *Extension) *Extension {
	return &Extension{irr: x.irr, poly: x.poly.Add(y.poly)}
}

// Sub sets z to the difference x-y and returns z.
func (z *Extension) Sub(x, y *Extension) *Extension {
	return &Extension{irr: x.irr, poly: x.poly.Sub(y.poly)}
}

// Mul returns the product x*y, reduced modulo irr; z is not modified.
func (z *Extension) Mul(x, y *Extension) *Extension {
	_, r := x.poly.Mul(y.poly).DivMod(x.irr)
	return &Extension{irr: x.irr, poly: r}
}

// Div returns the quotient x/y; z is not modified.
func (z *Extension) Div(x, y *Extension) *Extension {
	return z.Mul(x, z.NewZero().Inv(y))
}

// Inv returns 1/x via the extended Euclidean algorithm on univariate
// polynomials; z is not modified. If x == 0, Inv panics.
func (z *Extension) Inv(x *Extension) *Extension {
	if x.poly.IsZero() {
		panic("field: inverse of zero")
	}
	_, s, _ := univariate.ExtendedGCD[*Fp](x.poly, x.irr)
	return &Extension{irr: x.irr, poly: s}
}

// String returns the polynomial representation of x.
func (x *Extension) String() string { return x.poly.String() }
