package groebner

import "testing"

func TestBuchbergerContainsInputIdeal(t *testing.T) {
	k := NewRat(0, 1)
	f1 := NewPolynomial[Lex, *Rat](k, rt(1, 1, 1), rt(-1, 0, 0))
	f2 := NewPolynomial[Lex, *Rat](k, rt(1, 0, 2), rt(-1, 0, 0))
	ideal := []*Polynomial[Lex, *Rat]{f1, f2}

	basis := Buchberger(ideal)
	for _, f := range ideal {
		if _, r := DivList(f, basis); !r.IsZero() {
			t.Errorf("input generator %v does not reduce to zero against the computed basis", f)
		}
	}
}

func TestBuchbergerSPolynomialsReduceToZero(t *testing.T) {
	k := NewRat(0, 1)
	f1 := NewPolynomial[Lex, *Rat](k, rt(1, 1, 1), rt(-1, 0, 0))
	f2 := NewPolynomial[Lex, *Rat](k, rt(1, 0, 2), rt(-1, 0, 0))
	basis := Buchberger([]*Polynomial[Lex, *Rat]{f1, f2})

	for i := range basis {
		for j := range basis {
			if i == j {
				continue
			}
			s := SPolynomial(basis[i], basis[j])
			if _, r := DivList(s, basis); !r.IsZero() {
				t.Errorf("S(basis[%d],basis[%d]) does not reduce to zero", i, j)
			}
		}
	}
}

func TestBuchbergerUnitCircleIntersection(t *testing.T) {
	k := NewRat(0, 1)
	f1 := NewPolynomial[Lex, *Rat](k, rt(1, 1, 1), rt(-1, 0, 0))
	f2 := NewPolynomial[Lex, *Rat](k, rt(1, 0, 2), rt(-1, 0, 0))
	basis := Buchberger([]*Polynomial[Lex, *Rat]{f1, f2})

	hasX, hasY2 := false, false
	for _, g := range basis {
		lm := g.LeadingMonomial()
		if lm.Equal(FromExponents[Lex](Exponents{1, 0})) {
			hasX = true
		}
		if lm.Equal(FromExponents[Lex](Exponents{0, 2})) {
			hasY2 = true
		}
	}
	if !hasX {
		t.Errorf("expected a basis element with leading monomial x")
	}
	if !hasY2 {
		t.Errorf("expected a basis element with leading monomial y^2")
	}
}

func TestCoprimalityCriterionUsesPoppedPair(t *testing.T) {
	// The first two generators have coprime leading monomials x^2 and y^2,
	// so a criterion that always consulted generators 0 and 1 instead of
	// the popped pair would skip every pair and return the input unchanged.
	// The pairs involving x*y-z are not coprime and must be processed.
	k := NewRat(0, 1)
	f0 := NewPolynomial[Lex, *Rat](k, rt(1, 2, 0, 0), rt(-1, 0, 0, 1)) // x^2 - z
	f1 := NewPolynomial[Lex, *Rat](k, rt(1, 0, 2, 0), rt(-1, 0, 0, 1)) // y^2 - z
	f2 := NewPolynomial[Lex, *Rat](k, rt(1, 1, 1, 0), rt(-1, 0, 0, 1)) // x*y - z

	basis := Buchberger([]*Polynomial[Lex, *Rat]{f0, f1, f2})
	if len(basis) == 3 {
		t.Fatalf("expected the basis to grow beyond the input generators")
	}
	for i := range basis {
		for j := range i {
			s := SPolynomial(basis[i], basis[j])
			if _, r := DivList(s, basis); !r.IsZero() {
				t.Errorf("S(basis[%d],basis[%d]) does not reduce to zero", i, j)
			}
		}
	}
}

func TestBuchbergerEmptyIdeal(t *testing.T) {
	if got := Buchberger[Lex, *Rat](nil); len(got) != 0 {
		t.Errorf("Buchberger(nil) = %v, want empty", got)
	}
}
