package groebner

import (
	"fmt"
	"strings"

	"github.com/jba/omap"
)

// A Term is a (monomial, coefficient) pair.
type Term[O Ordering, K Field[K]] struct {
	Monomial    Monomial[O]
	Coefficient K
}

// A Polynomial is a finite sum of terms over the field K in the monomial
// ordering O: a map from distinct monomials to non-zero coefficients.
// Terms are stored in an ordered map keyed by O, so the greatest key is
// always the leading monomial.
type Polynomial[O Ordering, K Field[K]] struct {
	field K
	m     *omap.MapFunc[Monomial[O], K]
}

func monomialCmp[O Ordering](a, b Monomial[O]) int { return a.Compare(b) }

// Zero returns the zero polynomial over the field carried by k.
func Zero[O Ordering, K Field[K]](k K) *Polynomial[O, K] {
	return &Polynomial[O, K]{field: k, m: omap.NewMapFunc[Monomial[O], K](monomialCmp[O])}
}

// One returns the constant polynomial 1 over the field carried by k.
func One[O Ordering, K Field[K]](k K) *Polynomial[O, K] {
	p := Zero[O, K](k)
	p.addTerm(1, Term[O, K]{Monomial: Identity[O](), Coefficient: k.NewOne()})
	return p
}

// FromInteger returns the constant polynomial n, computed by repeated
// addition of k's multiplicative identity (the only portable way to reach
// an arbitrary integer multiple of 1 for a generic field).
func FromInteger[O Ordering, K Field[K]](k K, n int) *Polynomial[O, K] {
	if n == 0 {
		return Zero[O, K](k)
	}
	sign := 1
	if n < 0 {
		sign, n = -1, -n
	}
	c := k.NewZero()
	one := k.NewOne()
	for i := 0; i < n; i++ {
		c = c.Add(c, one)
	}
	if sign < 0 {
		c = k.NewZero().Sub(k.NewZero(), c)
	}
	p := Zero[O, K](k)
	p.addTerm(1, Term[O, K]{Monomial: Identity[O](), Coefficient: c})
	return p
}

// FromMonomial returns the polynomial 1*m.
func FromMonomial[O Ordering, K Field[K]](k K, m Monomial[O]) *Polynomial[O, K] {
	p := Zero[O, K](k)
	p.addTerm(1, Term[O, K]{Monomial: m, Coefficient: k.NewOne()})
	return p
}

// FromVariable returns the polynomial consisting of the single variable v.
func FromVariable[O Ordering, K Field[K]](k K, v int) *Polynomial[O, K] {
	return FromMonomial[O, K](k, Variable[O](v))
}

// NewPolynomial returns a new polynomial containing the given terms.
func NewPolynomial[O Ordering, K Field[K]](k K, terms ...Term[O, K]) *Polynomial[O, K] {
	p := Zero[O, K](k)
	for _, t := range terms {
		p.addTerm(1, t)
	}
	return p
}

// Field returns the field of the coefficients in p.
func (p *Polynomial[O, K]) Field() K { return p.field }

// Len reports the number of non-zero terms in p.
func (p *Polynomial[O, K]) Len() int { return p.m.Len() }

// IsZero reports whether p has no terms.
func (p *Polynomial[O, K]) IsZero() bool { return p.m.Len() == 0 }

// Terms iterates the terms of p from leading term to lowest.
func (p *Polynomial[O, K]) Terms() func(yield func(Term[O, K]) bool) {
	return func(yield func(Term[O, K]) bool) {
		for w, c := range p.m.Backward() {
			if !yield(Term[O, K]{Monomial: w, Coefficient: c}) {
				return
			}
		}
	}
}

// Equal reports whether p and q have the same terms.
func (p *Polynomial[O, K]) Equal(q *Polynomial[O, K]) bool {
	if p.m.Len() != q.m.Len() {
		return false
	}
	for i := 0; i < p.m.Len(); i++ {
		pw, pc := p.m.At(i)
		qw, qc := q.m.At(i)
		if !pw.Equal(qw) || !pc.Equal(qc) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p.
func (p *Polynomial[O, K]) Clone() *Polynomial[O, K] {
	z := Zero[O, K](p.field)
	for w, c := range p.m.All() {
		z.addTerm(1, Term[O, K]{Monomial: w, Coefficient: c})
	}
	return z
}

// Add returns p+q.
func (p *Polynomial[O, K]) Add(q *Polynomial[O, K]) *Polynomial[O, K] {
	z := p.Clone()
	for w, c := range q.m.All() {
		z.addTerm(1, Term[O, K]{Monomial: w, Coefficient: c})
	}
	return z
}

// Sub returns p-q.
func (p *Polynomial[O, K]) Sub(q *Polynomial[O, K]) *Polynomial[O, K] {
	z := p.Clone()
	for w, c := range q.m.All() {
		z.addTerm(-1, Term[O, K]{Monomial: w, Coefficient: c})
	}
	return z
}

// Neg returns -p.
func (p *Polynomial[O, K]) Neg() *Polynomial[O, K] {
	return Zero[O, K](p.field).Sub(p)
}

// ScalarMul returns c*p.
func (p *Polynomial[O, K]) ScalarMul(c K) *Polynomial[O, K] {
	z := Zero[O, K](p.field)
	if c.Equal(p.field.NewZero()) {
		return z
	}
	for w, xc := range p.m.All() {
		z.addTerm(1, Term[O, K]{Monomial: w, Coefficient: p.field.Mul(c, xc)})
	}
	return z
}

// Mul returns p*q: the bilinear extension over terms.
func (p *Polynomial[O, K]) Mul(q *Polynomial[O, K]) *Polynomial[O, K] {
	z := Zero[O, K](p.field)
	for pw, pc := range p.m.All() {
		for qw, qc := range q.m.All() {
			z.addTerm(1, Term[O, K]{Monomial: pw.Multiply(qw), Coefficient: p.field.Mul(pc, qc)})
		}
	}
	return z
}

// LeadingTerm returns the term whose monomial is greatest under O, and
// false if p is the zero polynomial.
func (p *Polynomial[O, K]) LeadingTerm() (Term[O, K], bool) {
	w, ok := p.m.Max()
	if !ok {
		return Term[O, K]{}, false
	}
	c, _ := p.m.Get(w)
	return Term[O, K]{Monomial: w, Coefficient: c}, true
}

// LeadingMonomial returns the leading monomial of p. It panics if p is zero.
func (p *Polynomial[O, K]) LeadingMonomial() Monomial[O] {
	t, ok := p.LeadingTerm()
	if !ok {
		panic("groebner: leading monomial of zero polynomial")
	}
	return t.Monomial
}

// LeadingCoefficient returns the leading coefficient of p. It panics if p is zero.
func (p *Polynomial[O, K]) LeadingCoefficient() K {
	t, ok := p.LeadingTerm()
	if !ok {
		panic("groebner: leading coefficient of zero polynomial")
	}
	return t.Coefficient
}

// PopLeadingTerm removes and returns the leading term of p, returning false
// if p is zero. p is mutated; PopLeadingTerm followed by re-insertion
// (AddTerm) is the identity.
func (p *Polynomial[O, K]) PopLeadingTerm() (Term[O, K], bool) {
	t, ok := p.LeadingTerm()
	if !ok {
		return Term[O, K]{}, false
	}
	p.m.Delete(t.Monomial)
	return t, true
}

// AddTerm adds a single term into p in place, dropping the entry if the
// resulting coefficient is zero.
func (p *Polynomial[O, K]) AddTerm(t Term[O, K]) {
	p.addTerm(1, t)
}

// SplitLeadingTerm returns the leading term of p (or false if zero) and the
// remainder polynomial with that term removed, without mutating p.
func (p *Polynomial[O, K]) SplitLeadingTerm() (Term[O, K], bool, *Polynomial[O, K]) {
	t, ok := p.LeadingTerm()
	rest := p.Clone()
	if ok {
		rest.m.Delete(t.Monomial)
	}
	return t, ok, rest
}

// TotalDegree returns the maximum total degree among the present monomials,
// or 0 for the zero polynomial.
func (p *Polynomial[O, K]) TotalDegree() int {
	d := 0
	for w := range p.m.All() {
		if td := w.TotalDegree(); td > d {
			d = td
		}
	}
	return d
}

// A RingAction is a ring T admitting multiplication by scalars from K, the
// capability set required by Lift. Like Field[T], it is self-referential so
// that Zero, One, Add, Mul and Scale all operate on, and return, the same
// concrete T.
type RingAction[K any, T any] interface {
	Zero() T
	One() T
	Add(x, y T) T
	Mul(x, y T) T
	Scale(c K, x T) T
}

// Lift evaluates p in the ring T by substituting each variable v with
// phi(v): term-by-term, it raises phi(v) to each exponent using T's own
// multiplication, scales by the term's coefficient, and sums. seed is any
// value of T, used only to reach its Zero/One/Add/Mul/Scale methods (the
// same factory-via-instance pattern Field[T] uses for NewZero/NewOne, since
// a concrete T such as a finite-field extension may carry configuration, a
// modulus, that a bare zero value of T would not have).
func Lift[O Ordering, K Field[K], T RingAction[K, T]](p *Polynomial[O, K], seed T, phi func(v int) T) T {
	acc := seed.Zero()
	for w, c := range p.m.All() {
		term := seed.One()
		for _, ve := range w.Exponents() {
			x := phi(ve.Var)
			for i := 0; i < ve.Exponent; i++ {
				term = seed.Mul(term, x)
			}
		}
		acc = seed.Add(acc, seed.Scale(c, term))
	}
	return acc
}

func (p *Polynomial[O, K]) addTerm(sign int, t Term[O, K]) {
	c, ok := p.m.Get(t.Monomial)
	if !ok {
		c = p.field.NewZero()
	}
	tc := t.Coefficient
	if sign < 0 {
		c = c.Sub(c, tc)
	} else {
		c = c.Add(c, tc)
	}
	if c.Equal(p.field.NewZero()) {
		p.m.Delete(t.Monomial)
	} else {
		p.m.Set(t.Monomial, c)
	}
}

// String renders p from leading term to lowest, using the default variable
// names x0, x1, ....
func (p *Polynomial[O, K]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for t := range p.Terms() {
		s := t.Coefficient.String()
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
		if !t.Monomial.IsIdentity() {
			fmt.Fprintf(&b, "*%s", t.Monomial.String())
		}
	}
	return b.String()
}
