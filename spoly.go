package groebner

// SPolynomial returns the S-polynomial of non-zero f and g:
//
//	S(f,g) = (1/c_f)*(L/m_f)*f - (1/c_g)*(L/m_g)*g
//
// where (m_f,c_f) and (m_g,c_g) are the leading terms of f and g and
// L = lcm(m_f, m_g). By construction its leading monomial, if any, is
// strictly below L under the ordering. This and monic normalization are the
// only places in the core that invert coefficients.
func SPolynomial[O Ordering, K Field[K]](f, g *Polynomial[O, K]) *Polynomial[O, K] {
	ltf, ok := f.LeadingTerm()
	if !ok {
		panic("groebner: S-polynomial of the zero polynomial")
	}
	ltg, ok := g.LeadingTerm()
	if !ok {
		panic("groebner: S-polynomial of the zero polynomial")
	}
	field := f.field

	l := ltf.Monomial.LCM(ltg.Monomial)
	mf, _ := l.Divide(ltf.Monomial)
	mg, _ := l.Divide(ltg.Monomial)

	left := f.shift(mf).ScalarMul(field.Inv(ltf.Coefficient))
	right := g.shift(mg).ScalarMul(field.Inv(ltg.Coefficient))
	return left.Sub(right)
}
