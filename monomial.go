package groebner

import (
	"fmt"
	"strings"
)

// A Monomial is a commutative product of variables, represented as a dense
// exponent vector, parameterized by its Ordering O. Parameterizing the
// ordering as a type parameter (rather than a runtime field) makes it a
// compile-time property: two Monomial[Lex] values always compare with Lex,
// and a Monomial[Grevlex] cannot be silently compared with Lex semantics.
type Monomial[O Ordering] struct {
	exp Exponents
}

// Identity returns the monomial 1, the all-zero exponent vector.
func Identity[O Ordering]() Monomial[O] {
	return Monomial[O]{}
}

// Variable returns the monomial consisting of the single variable v to the
// first power.
func Variable[O Ordering](v int) Monomial[O] {
	exp := make(Exponents, v+1)
	exp[v] = 1
	return Monomial[O]{exp}
}

// FromExponents returns the monomial with the given exponent vector. The
// slice is copied.
func FromExponents[O Ordering](e Exponents) Monomial[O] {
	c := make(Exponents, len(e))
	copy(c, e)
	return Monomial[O]{trim(c)}
}

// GetExponent returns the exponent of variable v in m, or 0 if v does not
// appear.
func (m Monomial[O]) GetExponent(v int) int {
	return ithExp(m.exp, v)
}

// NumVars returns one more than the highest-indexed variable with non-zero
// exponent in m (0 for the identity monomial).
func (m Monomial[O]) NumVars() int {
	return len(m.exp)
}

// Multiply returns the product m*n: component-wise addition of exponents.
func (m Monomial[O]) Multiply(n Monomial[O]) Monomial[O] {
	size := max(len(m.exp), len(n.exp))
	exp := make(Exponents, size)
	for i := range exp {
		exp[i] = ithExp(m.exp, i) + ithExp(n.exp, i)
	}
	return Monomial[O]{trim(exp)}
}

// Divide returns m/n and true if n divides m (every exponent of n is <= the
// matching exponent of m), subtracting exponents. It returns the zero value
// and false if division is undefined.
func (m Monomial[O]) Divide(n Monomial[O]) (Monomial[O], bool) {
	if !n.Divides(m) {
		return Monomial[O]{}, false
	}
	size := max(len(m.exp), len(n.exp))
	exp := make(Exponents, size)
	for i := range exp {
		exp[i] = ithExp(m.exp, i) - ithExp(n.exp, i)
	}
	return Monomial[O]{trim(exp)}, true
}

// Divides reports whether m divides n: every exponent of m is <= the
// matching exponent of n.
func (m Monomial[O]) Divides(n Monomial[O]) bool {
	size := max(len(m.exp), len(n.exp))
	for i := 0; i < size; i++ {
		if ithExp(m.exp, i) > ithExp(n.exp, i) {
			return false
		}
	}
	return true
}

// LCM returns the least common multiple of m and n: the component-wise
// maximum of their exponent vectors.
func (m Monomial[O]) LCM(n Monomial[O]) Monomial[O] {
	size := max(len(m.exp), len(n.exp))
	exp := make(Exponents, size)
	for i := range exp {
		exp[i] = max(ithExp(m.exp, i), ithExp(n.exp, i))
	}
	return Monomial[O]{trim(exp)}
}

// TotalDegree returns the sum of all exponents.
func (m Monomial[O]) TotalDegree() int {
	return totalDegree(m.exp)
}

// Compare compares m and n under the ordering O. The result follows
// cmp.Compare: negative if m < n, zero if equal, positive if m > n.
func (m Monomial[O]) Compare(n Monomial[O]) int {
	var ord O
	return ord.compare(m.exp, n.exp)
}

// Equal reports whether m and n are the same monomial.
func (m Monomial[O]) Equal(n Monomial[O]) bool {
	return m.Compare(n) == 0
}

// IsIdentity reports whether m is the monomial 1.
func (m Monomial[O]) IsIdentity() bool {
	return len(m.exp) == 0
}

// A VarExp is a (variable, exponent) pair, used by Monomial.Exponents to
// list the non-zero entries of a monomial.
type VarExp struct {
	Var      int
	Exponent int
}

// Exponents lists the (variable, exponent) pairs with non-zero exponent, in
// increasing variable order.
func (m Monomial[O]) Exponents() []VarExp {
	out := make([]VarExp, 0, len(m.exp))
	for v, e := range m.exp {
		if e != 0 {
			out = append(out, VarExp{Var: v, Exponent: e})
		}
	}
	return out
}

// String renders m using the default variable names x0, x1, ....
func (m Monomial[O]) String() string {
	if m.IsIdentity() {
		return "1"
	}
	var b strings.Builder
	for _, ve := range m.Exponents() {
		if b.Len() > 0 {
			b.WriteString("*")
		}
		if ve.Exponent == 1 {
			fmt.Fprintf(&b, "x%d", ve.Var)
		} else {
			fmt.Fprintf(&b, "x%d^%d", ve.Var, ve.Exponent)
		}
	}
	return b.String()
}
