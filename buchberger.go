package groebner

import "container/heap"

// A WeightFunc assigns a selection weight to the critical pair (i, j) of the
// growing basis g; the pair with the smallest weight is processed first.
// Sugar is the default; the Buchberger engine accepts any WeightFunc so
// that alternative strategies (normal selection, degree selection) can be
// plugged in without touching the pair-elimination logic.
type WeightFunc[O Ordering, K Field[K]] func(g []*Polynomial[O, K], i, j int) int

// SugarWeight is the default pair-selection weight:
//
//	sugar(f,g) = max(deg(f)-deg(LM(f)), deg(g)-deg(LM(g))) + deg(lcm(LM(f),LM(g)))
func SugarWeight[O Ordering, K Field[K]](g []*Polynomial[O, K], i, j int) int {
	f, h := g[i], g[j]
	lmf, lmh := f.LeadingMonomial(), h.LeadingMonomial()
	excessF := f.TotalDegree() - lmf.TotalDegree()
	excessH := h.TotalDegree() - lmh.TotalDegree()
	excess := excessF
	if excessH > excess {
		excess = excessH
	}
	return excess + lmf.LCM(lmh).TotalDegree()
}

type pairKey struct{ i, j int }

func normPair(a, b int) pairKey {
	if a < b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type bpair struct {
	i, j   int
	weight int
	seq    int
}

// a pairQueue is a min-heap over weight, ties broken by insertion order.
type pairQueue []bpair

func (q pairQueue) Len() int { return len(q) }
func (q pairQueue) Less(a, b int) bool {
	if q[a].weight != q[b].weight {
		return q[a].weight < q[b].weight
	}
	return q[a].seq < q[b].seq
}
func (q pairQueue) Swap(a, b int)      { q[a], q[b] = q[b], q[a] }
func (q *pairQueue) Push(x any)        { *q = append(*q, x.(bpair)) }
func (q *pairQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// Buchberger computes a Gröbner basis of the ideal generated by the non-zero
// polynomials in ideal, using the Buchberger algorithm with the sugar
// selection strategy and the coprimality (product) and syzygy (chain)
// criteria.
func Buchberger[O Ordering, K Field[K]](ideal []*Polynomial[O, K]) []*Polynomial[O, K] {
	return BuchbergerWith(SugarWeight[O, K], ideal)
}

// BuchbergerWith is Buchberger parameterized by an explicit pair-selection
// weight function.
func BuchbergerWith[O Ordering, K Field[K]](weight WeightFunc[O, K], ideal []*Polynomial[O, K]) []*Polynomial[O, K] {
	g := make([]*Polynomial[O, K], 0, len(ideal))
	for _, f := range ideal {
		if !f.IsZero() {
			g = append(g, f.Clone())
		}
	}
	if len(g) == 0 {
		return g
	}

	pending := make(map[pairKey]bool)
	q := &pairQueue{}
	heap.Init(q)
	seq := 0
	enqueue := func(i, j int) {
		key := normPair(i, j)
		pending[key] = true
		heap.Push(q, bpair{i: key.i, j: key.j, weight: weight(g, key.i, key.j), seq: seq})
		seq++
	}
	for i := 0; i < len(g); i++ {
		for j := 0; j < i; j++ {
			enqueue(i, j)
		}
	}

	for q.Len() > 0 {
		p := heap.Pop(q).(bpair)
		key := pairKey{p.i, p.j}
		if !pending[key] {
			continue
		}
		pending[key] = false

		lmi, lmj := g[p.i].LeadingMonomial(), g[p.j].LeadingMonomial()

		// Coprimality (product) criterion: LM(fi) and LM(fj) are coprime.
		if lmi.Multiply(lmj).Equal(lmi.LCM(lmj)) {
			continue
		}

		// Syzygy (chain) criterion.
		lcm := lmi.LCM(lmj)
		skip := false
		for l := 0; l < len(g); l++ {
			if l == p.i || l == p.j {
				continue
			}
			if !g[l].LeadingMonomial().Divides(lcm) {
				continue
			}
			if pending[normPair(p.i, l)] || pending[normPair(p.j, l)] {
				continue
			}
			skip = true
			break
		}
		if skip {
			continue
		}

		s := SPolynomial(g[p.i], g[p.j])
		_, r := DivList(s, g)
		if r.IsZero() {
			continue
		}
		k := len(g)
		g = append(g, r)
		for l := 0; l < k; l++ {
			enqueue(k, l)
		}
	}

	return g
}
