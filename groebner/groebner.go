// Package groebner implements the standard-basis engine the assemblers
// depend on: Gröbner bases of submodules of free modules over a polynomial
// ring, normal forms, syzygy computation, ideal dimension, minimal
// generating sets and minimal free resolution lengths.
//
// Vectors of the free module R^rank are compared position-over-term: a
// lower component index dominates, with graded reverse lexicographic order
// inside each component. For syzygy computation this order doubles as an
// elimination order between the original coordinates and the bookkeeping
// coordinates appended behind them.
package groebner

import (
	"math/big"
	"sort"

	"github.com/njchilds90/logforms/ring"
)

// vec is an element of a free module R^rank.
type vec []ring.Poly

func zeroVec(r *ring.Ring, rank int) vec {
	v := make(vec, rank)
	for i := range v {
		v[i] = r.Zero()
	}
	return v
}

func (v vec) clone() vec {
	out := make(vec, len(v))
	copy(out, v)
	return out
}

func (v vec) isZero() bool {
	for _, p := range v {
		if !p.IsZero() {
			return false
		}
	}
	return true
}

// lead returns the leading component and term under the position-over-term
// order. ok is false for the zero vector.
func (v vec) lead() (int, ring.Term, bool) {
	for c, p := range v {
		if t, ok := p.Lead(); ok {
			return c, t, true
		}
	}
	return 0, ring.Term{}, false
}

// subTerm returns v - t*g.
func (v vec) subTerm(g vec, t ring.Term) vec {
	out := make(vec, len(v))
	for i := range v {
		if g[i].IsZero() {
			out[i] = v[i]
		} else {
			out[i] = v[i].Sub(g[i].MulTerm(t))
		}
	}
	return out
}

func (v vec) scale(c *big.Rat) vec {
	out := make(vec, len(v))
	for i := range v {
		out[i] = v[i].ScaleRat(c)
	}
	return out
}

func (v vec) monic() vec {
	_, t, ok := v.lead()
	if !ok {
		return v
	}
	return v.scale(new(big.Rat).Inv(t.Coef))
}

// mulTerm returns t*v.
func (v vec) mulTerm(t ring.Term) vec {
	out := make(vec, len(v))
	for i := range v {
		out[i] = v[i].MulTerm(t)
	}
	return out
}

func addVec(a, b vec) vec {
	out := make(vec, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func subVec(a, b vec) vec {
	out := make(vec, len(a))
	for i := range a {
		out[i] = a[i].Sub(b[i])
	}
	return out
}

// reduce computes the full normal form of f with respect to G: every term
// of the result lies outside the leading-term module of G.
func reduce(r *ring.Ring, f vec, G []vec) vec {
	rem := zeroVec(r, len(f))
	work := f.clone()
	for {
		c, lt, ok := work.lead()
		if !ok {
			return rem
		}
		reduced := false
		for _, g := range G {
			gc, glt, gok := g.lead()
			if !gok || gc != c || !ring.ExpDivides(glt.Exp, lt.Exp) {
				continue
			}
			q := ring.Term{
				Coef: new(big.Rat).Quo(lt.Coef, glt.Coef),
				Exp:  ring.ExpSub(lt.Exp, glt.Exp),
			}
			work = work.subTerm(g, q)
			reduced = true
			break
		}
		if !reduced {
			// Move the irreducible leading term over to the remainder.
			m := r.Monomial(lt.Coef, lt.Exp)
			rem[c] = rem[c].Add(m)
			work[c] = work[c].Sub(m)
		}
	}
}

type sPair struct {
	i, j int
	deg  int
}

// buchberger completes the generating set to a Gröbner basis under the
// position-over-term order. Basis elements are kept monic; S-pairs are
// processed by ascending lcm degree (normal selection strategy).
func buchberger(r *ring.Ring, gens []vec) []vec {
	var G []vec
	for _, g := range gens {
		if !g.isZero() {
			G = append(G, g.monic())
		}
	}
	var pairs []sPair
	addPairs := func(n int) {
		nc, nt, _ := G[n].lead()
		for i := 0; i < n; i++ {
			ic, it, _ := G[i].lead()
			if ic != nc {
				continue
			}
			lcm := ring.ExpLCM(it.Exp, nt.Exp)
			deg := 0
			for _, e := range lcm {
				deg += e
			}
			pairs = append(pairs, sPair{i: i, j: n, deg: deg})
		}
	}
	for n := range G {
		addPairs(n)
	}
	one := big.NewRat(1, 1)
	for len(pairs) > 0 {
		sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].deg < pairs[b].deg })
		p := pairs[0]
		pairs = pairs[1:]
		_, it, _ := G[p.i].lead()
		_, jt, _ := G[p.j].lead()
		lcm := ring.ExpLCM(it.Exp, jt.Exp)
		s := G[p.i].mulTerm(ring.Term{Coef: one, Exp: ring.ExpSub(lcm, it.Exp)})
		t := G[p.j].mulTerm(ring.Term{Coef: one, Exp: ring.ExpSub(lcm, jt.Exp)})
		h := reduce(r, subVec(s, t), G)
		if h.isZero() {
			continue
		}
		G = append(G, h.monic())
		addPairs(len(G) - 1)
	}
	return G
}

// interreduce drops elements whose leading term another element's leading
// term divides, then tail-reduces the survivors against each other.
func interreduce(r *ring.Ring, G []vec) []vec {
	var kept []vec
	for i, g := range G {
		gc, gt, ok := g.lead()
		if !ok {
			continue
		}
		redundant := false
		for j, h := range G {
			if i == j {
				continue
			}
			hc, ht, hok := h.lead()
			if !hok || hc != gc || !ring.ExpDivides(ht.Exp, gt.Exp) {
				continue
			}
			if ring.CmpGrevlex(ht.Exp, gt.Exp) == 0 && j > i {
				// Equal leading terms: the earlier element wins.
				continue
			}
			redundant = true
			break
		}
		if !redundant {
			kept = append(kept, g)
		}
	}
	out := make([]vec, len(kept))
	for i, g := range kept {
		others := make([]vec, 0, len(kept)-1)
		others = append(others, kept[:i]...)
		others = append(others, kept[i+1:]...)
		c, lt, _ := g.lead()
		head := zeroVec(r, len(g))
		head[c] = r.Monomial(lt.Coef, lt.Exp)
		out[i] = addVec(head, reduce(r, subVec(g, head), others))
	}
	return out
}

func matrixColumns(m *ring.Matrix) []vec {
	out := make([]vec, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		out[j] = vec(m.Column(j))
	}
	return out
}

func columnsToMatrix(r *ring.Ring, rank int, cols []vec) *ring.Matrix {
	out := ring.NewMatrix(r, rank, len(cols))
	for j, v := range cols {
		for i := 0; i < rank; i++ {
			out.Set(i, j, v[i])
		}
	}
	return out
}
