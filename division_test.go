package groebner

import "testing"

func TestDivIdentity(t *testing.T) {
	k := NewRat(0, 1)
	f := NewPolynomial[Lex, *Rat](k, rt(1, 3, 0), rt(1, 1, 1), rt(-1, 0, 0))
	g := NewPolynomial[Lex, *Rat](k, rt(1, 1, 0), rt(-1, 0, 1))

	q, r := Div(f, g)
	if !q.Mul(g).Add(r).Equal(f) {
		t.Fatalf("f != q*g+r: got %v want %v", q.Mul(g).Add(r), f)
	}
	lm := g.LeadingMonomial()
	for term := range r.Terms() {
		if lm.Divides(term.Monomial) {
			t.Errorf("remainder term %v divisible by divisor leading monomial %v", term.Monomial, lm)
		}
	}
}

func TestDivByConstant(t *testing.T) {
	k := NewRat(0, 1)
	f := NewPolynomial[Lex, *Rat](k, rt(2, 1, 0), rt(4, 0, 1))
	g := NewPolynomial[Lex, *Rat](k, rt(2, 0, 0))

	q, r := Div(f, g)
	if !r.IsZero() {
		t.Errorf("expected zero remainder dividing by a nonzero constant, got %v", r)
	}
	want := NewPolynomial[Lex, *Rat](k, rt(1, 1, 0), rt(2, 0, 1))
	if !q.Equal(want) {
		t.Errorf("q = %v, want %v", q, want)
	}
}

func TestDivZeroDividendGivesZeroQuotientAndRemainder(t *testing.T) {
	k := NewRat(0, 1)
	g := NewPolynomial[Lex, *Rat](k, rt(1, 1, 0))
	q, r := Div(Zero[Lex, *Rat](k), g)
	if !q.IsZero() || !r.IsZero() {
		t.Errorf("dividing zero should give zero quotient and remainder, got q=%v r=%v", q, r)
	}
}

func TestDivByZeroDivisorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Div by the zero polynomial to panic")
		}
	}()
	k := NewRat(0, 1)
	f := NewPolynomial[Lex, *Rat](k, rt(1, 1, 0))
	Div(f, Zero[Lex, *Rat](k))
}

func TestDivModByListScenario(t *testing.T) {
	// div_mod of x^2y + xy^2 + y^2 by [xy-1, y^2-1] under lex x>y returns
	// quotients (x+y, 1) and remainder x+y+1.
	k := NewRat(0, 1)
	f := NewPolynomial[Lex, *Rat](k, rt(1, 2, 1), rt(1, 1, 2), rt(1, 0, 2))
	xyMinus1 := NewPolynomial[Lex, *Rat](k, rt(1, 1, 1), rt(-1, 0, 0))
	y2Minus1 := NewPolynomial[Lex, *Rat](k, rt(1, 0, 2), rt(-1, 0, 0))

	q, r := DivList(f, []*Polynomial[Lex, *Rat]{xyMinus1, y2Minus1})

	wantQ0 := NewPolynomial[Lex, *Rat](k, rt(1, 1, 0), rt(1, 0, 1))
	wantQ1 := NewPolynomial[Lex, *Rat](k, rt(1, 0, 0))
	wantR := NewPolynomial[Lex, *Rat](k, rt(1, 1, 0), rt(1, 0, 1), rt(1, 0, 0))

	if !q[0].Equal(wantQ0) {
		t.Errorf("q0 = %v, want %v", q[0], wantQ0)
	}
	if !q[1].Equal(wantQ1) {
		t.Errorf("q1 = %v, want %v", q[1], wantQ1)
	}
	if !r.Equal(wantR) {
		t.Errorf("r = %v, want %v", r, wantR)
	}
}
