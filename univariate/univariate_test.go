package univariate

import (
	"testing"

	"github.com/gopolynomial/groebner"
)

func rat(a, b int64) *groebner.Rat { return groebner.NewRat(a, b) }

func TestMulScenario(t *testing.T) {
	// (x+1)*(x-1) = x^2-1, (x+1)^2 = x^2+2x+1.
	k := rat(0, 1)
	xPlus1 := FromCoefficients(k, []*groebner.Rat{rat(1, 1), rat(1, 1)})
	xMinus1 := FromCoefficients(k, []*groebner.Rat{rat(-1, 1), rat(1, 1)})

	got := xPlus1.Mul(xMinus1)
	want := FromCoefficients(k, []*groebner.Rat{rat(-1, 1), rat(0, 1), rat(1, 1)})
	if !got.Equal(want) {
		t.Errorf("(x+1)*(x-1) = %v, want %v", got, want)
	}

	sq := xPlus1.Mul(xPlus1)
	wantSq := FromCoefficients(k, []*groebner.Rat{rat(1, 1), rat(2, 1), rat(1, 1)})
	if !sq.Equal(wantSq) {
		t.Errorf("(x+1)^2 = %v, want %v", sq, wantSq)
	}
}

func TestDivModIdentity(t *testing.T) {
	k := rat(0, 1)
	p := FromCoefficients(k, []*groebner.Rat{rat(-1, 1), rat(0, 1), rat(0, 1), rat(1, 1)}) // x^3-1
	g := FromCoefficients(k, []*groebner.Rat{rat(-1, 1), rat(1, 1)})                       // x-1

	q, r := p.DivMod(g)
	if !q.Mul(g).Add(r).Equal(p) {
		t.Fatalf("p != q*g+r")
	}
	if r.Degree() >= g.Degree() {
		t.Errorf("remainder degree %d not below divisor degree %d", r.Degree(), g.Degree())
	}
}

func TestGCDDividesBoth(t *testing.T) {
	k := rat(0, 1)
	// p = (x-1)(x-2), q = (x-1)(x+3)
	p := FromCoefficients(k, []*groebner.Rat{rat(2, 1), rat(-3, 1), rat(1, 1)})
	q := FromCoefficients(k, []*groebner.Rat{rat(-3, 1), rat(2, 1), rat(1, 1)})

	g := GCD(p, q)
	if _, r := p.DivMod(g); !r.IsZero() {
		t.Errorf("gcd does not divide p")
	}
	if _, r := q.DivMod(g); !r.IsZero() {
		t.Errorf("gcd does not divide q")
	}
	if !g.LeadingCoefficient().Equal(rat(1, 1)) {
		t.Errorf("expected a monic gcd, got leading coefficient %v", g.LeadingCoefficient())
	}
}

func TestExtendedGCDBezoutIdentity(t *testing.T) {
	k := rat(0, 1)
	p := FromCoefficients(k, []*groebner.Rat{rat(2, 1), rat(-3, 1), rat(1, 1)})
	q := FromCoefficients(k, []*groebner.Rat{rat(-3, 1), rat(2, 1), rat(1, 1)})

	g, s, tt := ExtendedGCD(p, q)
	combo := s.Mul(p).Add(tt.Mul(q))
	if !combo.Equal(g) {
		t.Errorf("s*p+t*q = %v, want gcd %v", combo, g)
	}
}

func TestEvalHorner(t *testing.T) {
	k := rat(0, 1)
	p := FromCoefficients(k, []*groebner.Rat{rat(1, 1), rat(2, 1), rat(3, 1)}) // 1+2x+3x^2
	got := p.Eval(rat(2, 1))
	want := rat(1+2*2+3*4, 1)
	if !got.Equal(want) {
		t.Errorf("p(2) = %v, want %v", got, want)
	}
}
