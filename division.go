package groebner

// Div performs single-divisor multivariate division with remainder: given
// f and non-zero g, it returns (q, r) such that f = q*g + r and no monomial
// of r is divisible by LM(g). g must have a defined leading term (must be
// non-zero); passing a zero divisor is a programmer error.
func Div[O Ordering, K Field[K]](f, g *Polynomial[O, K]) (q, r *Polynomial[O, K]) {
	gLead, ok := g.LeadingTerm()
	if !ok {
		panic("groebner: division by the zero polynomial")
	}
	field := f.field
	q = Zero[O, K](field)
	rem := f.Clone()
	tail := Zero[O, K](field)

	for {
		lt, ok := rem.LeadingTerm()
		if !ok {
			break
		}
		quotMonomial, divides := lt.Monomial.Divide(gLead.Monomial)
		if !divides {
			tail.addTerm(1, lt)
			rem.m.Delete(lt.Monomial)
			continue
		}
		cFactor := field.Div(lt.Coefficient, gLead.Coefficient)
		q.addTerm(1, Term[O, K]{Monomial: quotMonomial, Coefficient: cFactor})
		rem = rem.Sub(g.ScalarMul(cFactor).shift(quotMonomial))
	}
	return q, tail.Add(rem)
}

// shift returns m*p: p with every monomial multiplied by m. It is the
// common case of Mul against a single-term polynomial, used heavily by
// division and S-polynomial construction.
func (p *Polynomial[O, K]) shift(m Monomial[O]) *Polynomial[O, K] {
	z := Zero[O, K](p.field)
	for w, c := range p.m.All() {
		z.addTerm(1, Term[O, K]{Monomial: w.Multiply(m), Coefficient: c})
	}
	return z
}

// DivList performs multi-divisor division: given f and an ordered tuple of
// non-zero divisors, it returns quotients q[i] and a remainder r such that
// f = sum(q[i]*g[i]) + r, and no monomial of r is divisible by any LM(g[i]).
// At each step the *first* divisor whose leading monomial divides the
// current leading monomial of the working remainder is chosen; this makes
// the result order-dependent by design.
func DivList[O Ordering, K Field[K]](f *Polynomial[O, K], g []*Polynomial[O, K]) (q []*Polynomial[O, K], r *Polynomial[O, K]) {
	field := f.field
	lead := make([]Term[O, K], len(g))
	for i, gi := range g {
		lt, ok := gi.LeadingTerm()
		if !ok {
			panic("groebner: division by the zero polynomial")
		}
		lead[i] = lt
	}

	q = make([]*Polynomial[O, K], len(g))
	for i := range q {
		q[i] = Zero[O, K](field)
	}
	rem := f.Clone()
	tail := Zero[O, K](field)

	for {
		lt, ok := rem.LeadingTerm()
		if !ok {
			break
		}
		divisor := -1
		var quotMonomial Monomial[O]
		for i, lg := range lead {
			if m, divides := lt.Monomial.Divide(lg.Monomial); divides {
				divisor, quotMonomial = i, m
				break
			}
		}
		if divisor == -1 {
			tail.addTerm(1, lt)
			rem.m.Delete(lt.Monomial)
			continue
		}
		cFactor := field.Div(lt.Coefficient, lead[divisor].Coefficient)
		q[divisor].addTerm(1, Term[O, K]{Monomial: quotMonomial, Coefficient: cFactor})
		rem = rem.Sub(g[divisor].ScalarMul(cFactor).shift(quotMonomial))
	}

	r = tail.Add(rem)
	return q, r
}
