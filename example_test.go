package groebner_test

import (
	"fmt"

	groebner "github.com/gopolynomial/groebner"
)

// Example shows the circle-and-hyperbola intersection x*y-1, y^2-1 under
// lex with x > y: eliminating x leaves a generator with leading monomial x
// and one with leading monomial y^2.
func Example() {
	k := groebner.NewRat(0, 1)
	term := func(c int64, e ...int) groebner.Term[groebner.Lex, *groebner.Rat] {
		return groebner.Term[groebner.Lex, *groebner.Rat]{
			Monomial:    groebner.FromExponents[groebner.Lex](groebner.Exponents(e)),
			Coefficient: groebner.NewRat(c, 1),
		}
	}
	xyMinus1 := groebner.NewPolynomial[groebner.Lex, *groebner.Rat](k, term(1, 1, 1), term(-1, 0, 0))
	y2Minus1 := groebner.NewPolynomial[groebner.Lex, *groebner.Rat](k, term(1, 0, 2), term(-1, 0, 0))

	basis := groebner.Buchberger[groebner.Lex, *groebner.Rat]([]*groebner.Polynomial[groebner.Lex, *groebner.Rat]{xyMinus1, y2Minus1})

	hasX, hasY2 := false, false
	for _, g := range basis {
		lm := g.LeadingMonomial()
		if lm.Equal(groebner.FromExponents[groebner.Lex](groebner.Exponents{1, 0})) {
			hasX = true
		}
		if lm.Equal(groebner.FromExponents[groebner.Lex](groebner.Exponents{0, 2})) {
			hasY2 = true
		}
	}
	fmt.Println("basis has a generator with leading monomial x:", hasX)
	fmt.Println("basis has a generator with leading monomial y^2:", hasY2)

	// Output:
	// basis has a generator with leading monomial x: true
	// basis has a generator with leading monomial y^2: true
}

// Example_sPolynomial checks scenario 4: S(x+y, x-y) = -2y for any ordering
// with x > y, since lcm(LM(x+y), LM(x-y)) = x.
func Example_sPolynomial() {
	k := groebner.NewRat(0, 1)
	xPlusY := groebner.NewPolynomial[groebner.Lex, *groebner.Rat](k,
		groebner.Term[groebner.Lex, *groebner.Rat]{Monomial: groebner.FromExponents[groebner.Lex](groebner.Exponents{1, 0}), Coefficient: groebner.NewRat(1, 1)},
		groebner.Term[groebner.Lex, *groebner.Rat]{Monomial: groebner.FromExponents[groebner.Lex](groebner.Exponents{0, 1}), Coefficient: groebner.NewRat(1, 1)},
	)
	xMinusY := groebner.NewPolynomial[groebner.Lex, *groebner.Rat](k,
		groebner.Term[groebner.Lex, *groebner.Rat]{Monomial: groebner.FromExponents[groebner.Lex](groebner.Exponents{1, 0}), Coefficient: groebner.NewRat(1, 1)},
		groebner.Term[groebner.Lex, *groebner.Rat]{Monomial: groebner.FromExponents[groebner.Lex](groebner.Exponents{0, 1}), Coefficient: groebner.NewRat(-1, 1)},
	)
	want := groebner.NewPolynomial[groebner.Lex, *groebner.Rat](k,
		groebner.Term[groebner.Lex, *groebner.Rat]{Monomial: groebner.FromExponents[groebner.Lex](groebner.Exponents{0, 1}), Coefficient: groebner.NewRat(-2, 1)},
	)

	got := groebner.SPolynomial(xPlusY, xMinusY)
	fmt.Println("S(x+y, x-y) == -2y:", got.Equal(want))

	// Output:
	// S(x+y, x-y) == -2y: true
}

// Example_twistedCubic computes a Gröbner basis of the twisted cubic
// curve's defining ideal under grevlex (scenario 3) and checks that
// y^3 + x*y - x = x*f1 - y*f2, an ideal member not present in the original
// generators, reduces to zero against it. It then checks that F5 over the same ideal (scenario 6)
// produces a basis generating the same ideal, by reducing each basis
// against the other.
func Example_twistedCubic() {
	k := groebner.NewRat(0, 1)
	term := func(c int64, e ...int) groebner.Term[groebner.Grevlex, *groebner.Rat] {
		return groebner.Term[groebner.Grevlex, *groebner.Rat]{
			Monomial:    groebner.FromExponents[groebner.Grevlex](groebner.Exponents(e)),
			Coefficient: groebner.NewRat(c, 1),
		}
	}
	f1 := groebner.NewPolynomial[groebner.Grevlex, *groebner.Rat](k, term(1, 2, 1), term(-1, 0, 0))
	f2 := groebner.NewPolynomial[groebner.Grevlex, *groebner.Rat](k, term(1, 3, 0), term(-1, 0, 2), term(-1, 1, 0))
	ideal := []*groebner.Polynomial[groebner.Grevlex, *groebner.Rat]{f1, f2}

	buch := groebner.Buchberger[groebner.Grevlex, *groebner.Rat](ideal)
	f5 := groebner.F5[groebner.Grevlex, *groebner.Rat](ideal)

	member := groebner.NewPolynomial[groebner.Grevlex, *groebner.Rat](k, term(1, 0, 3), term(1, 1, 1), term(-1, 1, 0))
	_, rem := groebner.DivList(member, buch)
	fmt.Println("y^3 + x*y - x reduces to zero modulo the Buchberger basis:", rem.IsZero())

	sameIdeal := true
	for _, g := range f5 {
		if _, r := groebner.DivList(g, buch); !r.IsZero() {
			sameIdeal = false
		}
	}
	for _, g := range buch {
		if _, r := groebner.DivList(g, f5); !r.IsZero() {
			sameIdeal = false
		}
	}
	fmt.Println("f5 and buchberger generate the same ideal:", sameIdeal)

	// Output:
	// y^3 + x*y - x reduces to zero modulo the Buchberger basis: true
	// f5 and buchberger generate the same ideal: true
}
