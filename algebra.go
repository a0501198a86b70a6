// Package groebner implements a generic multivariate polynomial ring and
// two Gröbner-basis engines over it: a Buchberger engine with the sugar
// selection strategy plus the coprimality and syzygy criteria, and a
// signature-based F5 engine.
//
// [Gröbner basis]: https://en.wikipedia.org/wiki/Gr%C3%B6bner_basis
package groebner

import (
	"math/big"
)

// A Semiring is an element supporting addition and multiplication with
// identities, but neither subtraction nor division. The arithmetic methods
// return a new value and leave their receiver and operands unmodified.
type Semiring[T any] interface {
	// NewZero returns the additive identity.
	NewZero() T
	// NewOne returns the multiplicative identity.
	NewOne() T

	// Equal reports whether x and y are equal, where x is the method receiver.
	Equal(y T) bool
	// Add returns the sum x+y.
	Add(x, y T) T
	// Mul returns the product x*y.
	Mul(x, y T) T

	// String returns the string representation.
	String() string
}

// A Ring is a Semiring that additionally supports subtraction.
type Ring[T any] interface {
	Semiring[T]
	// Sub returns the difference x-y.
	Sub(x, y T) T
}

// A Field is a Ring in which every non-zero element has a multiplicative
// inverse. See the [field axioms].
//
// [field axioms]: https://en.wikipedia.org/wiki/Field_(mathematics)
type Field[T any] interface {
	Ring[T]
	// Div returns the quotient x/y.
	Div(x, y T) T
	// Inv returns 1/x.
	Inv(x T) T
}

// A Rat represents a quotient of arbitrary precision. It is a Field.
type Rat struct{ *big.Rat }

// NewRat creates a new Rat with numerator a and denominator b.
func NewRat(a, b int64) *Rat { return &Rat{big.NewRat(a, b)} }

// NewZero returns the additive identity 0.
func (x *Rat) NewZero() *Rat { return &Rat{big.NewRat(0, 1)} }

// NewOne returns the multiplicative identity 1.
func (x *Rat) NewOne() *Rat { return &Rat{big.NewRat(1, 1)} }

// Add returns the sum x+y; z is not modified.
func (z *Rat) Add(x, y *Rat) *Rat { return &Rat{new(big.Rat).Add(x.Rat, y.Rat)} }

// Sub returns the difference x-y; z is not modified.
func (z *Rat) Sub(x, y *Rat) *Rat { return &Rat{new(big.Rat).Sub(x.Rat, y.Rat)} }

// Mul returns the product x*y; z is not modified.
func (z *Rat) Mul(x, y *Rat) *Rat { return &Rat{new(big.Rat).Mul(x.Rat, y.Rat)} }

// Div returns the quotient x/y; z is not modified. If y == 0, Div panics.
func (z *Rat) Div(x, y *Rat) *Rat {
	if y.Sign() == 0 {
		panic("groebner: division by zero")
	}
	return &Rat{new(big.Rat).Quo(x.Rat, y.Rat)}
}

// Inv returns 1/x; z is not modified. If x == 0, Inv panics.
func (z *Rat) Inv(x *Rat) *Rat {
	if x.Sign() == 0 {
		panic("groebner: inverse of zero")
	}
	return &Rat{new(big.Rat).Inv(x.Rat)}
}

// Equal reports whether x and y are equal.
func (x *Rat) Equal(y *Rat) bool { return x.Rat.Cmp(y.Rat) == 0 }

// String returns a string representation of x in the form "a/b" if b != 1,
// and in the form "a" if b == 1.
func (x *Rat) String() string { return x.RatString() }

// An Int represents an arbitrary-precision integer. It is a Ring but not a
// Field: Div and Inv panic, since ℤ has no multiplicative inverses beyond
// ±1. Engines that require coefficient inversion (S-polynomials, monic
// normalization, and therefore Buchberger and F5) must not be run over Int;
// only ring operations (construction, Add, Sub, Mul) are safe.
type Int struct{ *big.Int }

// NewInt creates a new Int with value n.
func NewInt(n int64) *Int { return &Int{big.NewInt(n)} }

// NewZero returns the additive identity 0.
func (x *Int) NewZero() *Int { return &Int{big.NewInt(0)} }

// NewOne returns the multiplicative identity 1.
func (x *Int) NewOne() *Int { return &Int{big.NewInt(1)} }

// Add returns the sum x+y; z is not modified.
func (z *Int) Add(x, y *Int) *Int { return &Int{new(big.Int).Add(x.Int, y.Int)} }

// Sub returns the difference x-y; z is not modified.
func (z *Int) Sub(x, y *Int) *Int { return &Int{new(big.Int).Sub(x.Int, y.Int)} }

// Mul returns the product x*y; z is not modified.
func (z *Int) Mul(x, y *Int) *Int { return &Int{new(big.Int).Mul(x.Int, y.Int)} }

// Div panics: ℤ is not a field.
func (z *Int) Div(x, y *Int) *Int { panic("groebner: Int is a ring, not a field; Div is undefined") }

// Inv panics: ℤ is not a field.
func (z *Int) Inv(x *Int) *Int { panic("groebner: Int is a ring, not a field; Inv is undefined") }

// Equal reports whether x and y are equal.
func (x *Int) Equal(y *Int) bool { return x.Int.Cmp(y.Int) == 0 }

// String returns the decimal representation of x.
func (x *Int) String() string { return x.Int.String() }
