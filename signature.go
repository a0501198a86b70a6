package groebner

import "container/heap"

// A Signature is a position-tagged monomial attached to a module element: a
// pair (i, m) with i the position in the free module K[V]^n and m a
// monomial. It carries no coefficient. Ordering compares position first
// (higher index greater), then monomial under O.
type Signature[O Ordering] struct {
	Position int
	Monomial Monomial[O]
}

// Compare follows cmp.Compare: negative if s < t, zero if equal, positive
// if s > t.
func (s Signature[O]) Compare(t Signature[O]) int {
	if s.Position != t.Position {
		if s.Position < t.Position {
			return -1
		}
		return 1
	}
	return s.Monomial.Compare(t.Monomial)
}

// Equal reports whether s and t are the same signature.
func (s Signature[O]) Equal(t Signature[O]) bool { return s.Compare(t) == 0 }

// Divides reports whether s divides t: same position, and s's monomial
// divides t's monomial.
func (s Signature[O]) Divides(t Signature[O]) bool {
	return s.Position == t.Position && s.Monomial.Divides(t.Monomial)
}

// Scale returns s with its monomial multiplied by m.
func (s Signature[O]) Scale(m Monomial[O]) Signature[O] {
	return Signature[O]{Position: s.Position, Monomial: s.Monomial.Multiply(m)}
}

// A Vector is a (sparse) representation vector v in the free module
// K[V]^n: for generators f_1, ..., f_n, v represents the polynomial
// sum(v[i]*f[i]). Entries not present are the zero polynomial.
type Vector[O Ordering, K Field[K]] struct {
	field   K
	entries map[int]*Polynomial[O, K]
}

// ZeroVector returns the zero representation vector over the field carried
// by k.
func ZeroVector[O Ordering, K Field[K]](k K) Vector[O, K] {
	return Vector[O, K]{field: k, entries: make(map[int]*Polynomial[O, K])}
}

// UnitVector returns the canonical basis vector e_i.
func UnitVector[O Ordering, K Field[K]](k K, i int) Vector[O, K] {
	v := ZeroVector[O, K](k)
	v.entries[i] = One[O, K](k)
	return v
}

// Get returns entry i of v, or the zero polynomial if absent.
func (v Vector[O, K]) Get(i int) *Polynomial[O, K] {
	if p, ok := v.entries[i]; ok {
		return p
	}
	return Zero[O, K](v.field)
}

// Clone returns a deep copy of v.
func (v Vector[O, K]) Clone() Vector[O, K] {
	z := ZeroVector[O, K](v.field)
	for i, p := range v.entries {
		z.entries[i] = p.Clone()
	}
	return z
}

func (v Vector[O, K]) set(i int, p *Polynomial[O, K]) {
	if p.IsZero() {
		delete(v.entries, i)
	} else {
		v.entries[i] = p
	}
}

// Scale returns m*v: every entry of v multiplied by the monomial m.
func (v Vector[O, K]) Scale(m Monomial[O]) Vector[O, K] {
	z := ZeroVector[O, K](v.field)
	for i, p := range v.entries {
		z.set(i, p.shift(m))
	}
	return z
}

// ScalarMul returns c*v: every entry of v multiplied by the coefficient c.
func (v Vector[O, K]) ScalarMul(c K) Vector[O, K] {
	z := ZeroVector[O, K](v.field)
	for i, p := range v.entries {
		z.set(i, p.ScalarMul(c))
	}
	return z
}

// Sub returns v-w.
func (v Vector[O, K]) Sub(w Vector[O, K]) Vector[O, K] {
	z := v.Clone()
	for i, p := range w.entries {
		z.set(i, z.Get(i).Sub(p))
	}
	return z
}

// IsZero reports whether every entry of v is the zero polynomial.
func (v Vector[O, K]) IsZero() bool {
	for _, p := range v.entries {
		if !p.IsZero() {
			return false
		}
	}
	return true
}

// Signature returns the signature of v: the position-over-term leading
// module term, i.e. the highest position with a non-zero entry, and the
// leading monomial of that entry. The second result is false for the zero
// vector.
func (v Vector[O, K]) Signature() (Signature[O], bool) {
	maxPos, found := -1, false
	for i, p := range v.entries {
		if p.IsZero() {
			continue
		}
		if !found || i > maxPos {
			maxPos, found = i, true
		}
	}
	if !found {
		return Signature[O]{}, false
	}
	return Signature[O]{Position: maxPos, Monomial: v.entries[maxPos].LeadingMonomial()}, true
}

// Evaluate returns sum(v[i]*inputs[i]), the polynomial v represents.
func (v Vector[O, K]) Evaluate(inputs []*Polynomial[O, K]) *Polynomial[O, K] {
	acc := Zero[O, K](v.field)
	for i, p := range v.entries {
		acc = acc.Add(p.Mul(inputs[i]))
	}
	return acc
}

// A SignatureBasisEntry is a basis element produced by SignatureGB: the
// polynomial together with the representation vector that produced it.
type SignatureBasisEntry[O Ordering, K Field[K]] struct {
	Representation Vector[O, K]
	Polynomial     *Polynomial[O, K]
}

type f5Entry[O Ordering, K Field[K]] struct {
	poly *Polynomial[O, K]
	sig  Signature[O]
	vec  Vector[O, K]
}

type sigQueueItem[O Ordering, K Field[K]] struct {
	sig Signature[O]
	vec Vector[O, K]
	seq int
}

// sigQueue is a min-heap over signature, ties broken by insertion order, so
// that the smallest pending signature is always processed next -- the
// standard F5 processing order (the state description's "max-heap keyed by
// signature" is implemented the same way SugarWeight's pair queue is: as a
// heap that always surfaces the smallest key, see buchberger.go).
type sigQueue[O Ordering, K Field[K]] []sigQueueItem[O, K]

func (q sigQueue[O, K]) Len() int { return len(q) }
func (q sigQueue[O, K]) Less(a, b int) bool {
	if c := q[a].sig.Compare(q[b].sig); c != 0 {
		return c < 0
	}
	return q[a].seq < q[b].seq
}
func (q sigQueue[O, K]) Swap(a, b int) { q[a], q[b] = q[b], q[a] }
func (q *sigQueue[O, K]) Push(x any)   { *q = append(*q, x.(sigQueueItem[O, K])) }
func (q *sigQueue[O, K]) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// F5 computes a Gröbner basis of the ideal generated by ideal using the
// signature-based F5 algorithm, returning only the polynomial
// components. Use SignatureGB for the full signature/representation
// variant.
func F5[O Ordering, K Field[K]](ideal []*Polynomial[O, K]) []*Polynomial[O, K] {
	full := SignatureGB(ideal)
	out := make([]*Polynomial[O, K], len(full))
	for i, e := range full {
		out[i] = e.Polynomial
	}
	return out
}

// SignatureGB computes a Gröbner basis using the signature-based F5
// algorithm, returning each basis element together with the module
// representation vector that produced it.
func SignatureGB[O Ordering, K Field[K]](ideal []*Polynomial[O, K]) []SignatureBasisEntry[O, K] {
	inputs := make([]*Polynomial[O, K], 0, len(ideal))
	for _, f := range ideal {
		if !f.IsZero() {
			inputs = append(inputs, f.Clone())
		}
	}
	if len(inputs) == 0 {
		return nil
	}
	field := inputs[0].field
	n := len(inputs)

	var syz []Signature[O]
	q := &sigQueue[O, K]{}
	heap.Init(q)
	seq := 0
	push := func(v Vector[O, K]) {
		sig, ok := v.Signature()
		if !ok {
			return
		}
		heap.Push(q, sigQueueItem[O, K]{sig: sig, vec: v, seq: seq})
		seq++
	}

	for i := 0; i < n; i++ {
		push(UnitVector[O, K](field, i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v := ZeroVector[O, K](field)
			v.set(i, inputs[j].Clone())
			v.set(j, inputs[i].Clone().Neg())
			if sig, ok := v.Signature(); ok {
				syz = append(syz, sig)
			}
		}
	}

	var g []f5Entry[O, K]

	for q.Len() > 0 {
		item := heap.Pop(q).(sigQueueItem[O, K])
		sigG, vG := item.sig, item.vec

		standardReject := false
		for _, s := range syz {
			if s.Divides(sigG) {
				standardReject = true
				break
			}
		}
		if standardReject {
			continue
		}
		duplicate := false
		for _, e := range g {
			if e.sig.Equal(sigG) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		rem := vG.Evaluate(inputs)
		vecRem := vG.Clone()
		tail := Zero[O, K](field)

		for {
			lt, ok := rem.LeadingTerm()
			if !ok {
				break
			}
			reducer := -1
			var quotM Monomial[O]
			for idx, e := range g {
				m, divides := lt.Monomial.Divide(e.poly.LeadingMonomial())
				if !divides {
					continue
				}
				if e.sig.Scale(m).Compare(sigG) < 0 {
					reducer, quotM = idx, m
					break
				}
			}
			if reducer == -1 {
				tail.addTerm(1, lt)
				rem.m.Delete(lt.Monomial)
				continue
			}
			e := g[reducer]
			cFactor := field.Div(lt.Coefficient, e.poly.LeadingCoefficient())
			rem = rem.Sub(e.poly.shift(quotM).ScalarMul(cFactor))
			vecRem = vecRem.Sub(e.vec.Scale(quotM).ScalarMul(cFactor))
		}
		reduced := tail.Add(rem)

		if reduced.IsZero() {
			if sig, ok := vecRem.Signature(); ok {
				syz = append(syz, sig)
			}
			continue
		}

		lc := reduced.LeadingCoefficient()
		invLC := field.Inv(lc)
		newPoly := reduced.ScalarMul(invLC)
		newVec := vecRem.ScalarMul(invLC)

		prev := make([]f5Entry[O, K], len(g))
		copy(prev, g)
		newEntry := f5Entry[O, K]{poly: newPoly, sig: sigG, vec: newVec}
		g = append(g, newEntry)

		newLM := newPoly.LeadingMonomial()
		for _, h := range prev {
			hLM := h.poly.LeadingMonomial()
			lcmM := hLM.LCM(newLM)
			uH, _ := lcmM.Divide(hLM)
			uNew, _ := lcmM.Divide(newLM)

			sigNewScaled := sigG.Scale(uNew)
			sigHScaled := h.sig.Scale(uH)
			if sigNewScaled.Equal(sigHScaled) {
				continue // not a regular pair
			}
			candidate := newVec.Scale(uNew).Sub(h.vec.Scale(uH))
			push(candidate)
		}
	}

	out := make([]SignatureBasisEntry[O, K], len(g))
	for i, e := range g {
		out[i] = SignatureBasisEntry[O, K]{Representation: e.vec, Polynomial: e.poly}
	}
	return out
}
