// Package exterior implements the exterior algebra of differential forms
// with polynomial coefficients over a polynomial ring: wedge-monomial bases
// per degree, the wedge product, the universal derivative, and coefficient
// extraction against the ordered basis.
package exterior

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/njchilds90/logforms/ring"
)

// Algebra binds the exterior algebra to an ambient ring. The variable index
// i corresponds to the basis one-form dx_i.
type Algebra struct {
	r *ring.Ring
}

// New constructs the exterior algebra over r. Panics beyond 64 variables
// (wedge monomials are indexed by bitmask).
func New(r *ring.Ring) *Algebra {
	if r.Nvars() > 64 {
		panic("exterior: more than 64 variables")
	}
	return &Algebra{r: r}
}

func (a *Algebra) Ring() *ring.Ring { return a.r }

// Form is a homogeneous differential form of a fixed degree: a mapping from
// basis wedge-monomials (bitmasks over variable indices) to polynomial
// coefficients. Zero coefficients are never stored.
type Form struct {
	r    *ring.Ring
	q    int
	coef map[uint64]ring.Poly
}

// Zero returns the zero form of degree q.
func (a *Algebra) Zero(q int) Form {
	return Form{r: a.r, q: q, coef: map[uint64]ring.Poly{}}
}

// Monomial returns c * dx_{i1} ^ ... ^ dx_{iq} for ascending indices.
func (a *Algebra) Monomial(c ring.Poly, indices []int) Form {
	f := a.Zero(len(indices))
	var mask uint64
	for i, idx := range indices {
		if idx < 0 || idx >= a.r.Nvars() {
			panic(fmt.Sprintf("exterior: variable index %d out of range", idx))
		}
		if i > 0 && indices[i-1] >= idx {
			panic("exterior: wedge indices must be strictly ascending")
		}
		mask |= 1 << uint(idx)
	}
	if !c.IsZero() {
		f.coef[mask] = c
	}
	return f
}

// Basis returns the ordered wedge-monomial basis of degree q: index subsets
// in lexicographic order, C(n, q) elements. Degree 0 yields {1}; degrees
// above n yield an empty basis.
func (a *Algebra) Basis(q int) []Form {
	if q < 0 {
		return nil
	}
	subsets := ring.Subsets(a.r.Nvars(), q)
	out := make([]Form, 0, len(subsets))
	for _, s := range subsets {
		out = append(out, a.Monomial(a.r.One(), s))
	}
	return out
}

// D returns the universal derivative of a polynomial as a one-form.
func (a *Algebra) D(p ring.Poly) Form {
	f := a.Zero(1)
	for i := 0; i < a.r.Nvars(); i++ {
		d := p.Deriv(i)
		if !d.IsZero() {
			f.coef[1<<uint(i)] = d
		}
	}
	return f
}

func (f Form) Degree() int { return f.q }

func (f Form) IsZero() bool { return len(f.coef) == 0 }

// Add returns f + g. Degrees must match.
func (f Form) Add(g Form) Form {
	if f.q != g.q {
		panic(fmt.Sprintf("exterior: cannot add forms of degree %d and %d", f.q, g.q))
	}
	out := Form{r: f.r, q: f.q, coef: map[uint64]ring.Poly{}}
	for m, p := range f.coef {
		out.coef[m] = p
	}
	for m, p := range g.coef {
		sum := p
		if prev, ok := out.coef[m]; ok {
			sum = prev.Add(p)
		}
		if sum.IsZero() {
			delete(out.coef, m)
		} else {
			out.coef[m] = sum
		}
	}
	return out
}

// Scale returns p * f.
func (f Form) Scale(p ring.Poly) Form {
	out := Form{r: f.r, q: f.q, coef: map[uint64]ring.Poly{}}
	if p.IsZero() {
		return out
	}
	for m, c := range f.coef {
		prod := c.Mul(p)
		if !prod.IsZero() {
			out.coef[m] = prod
		}
	}
	return out
}

// Wedge returns f ^ g, of degree f.Degree()+g.Degree().
func (f Form) Wedge(g Form) Form {
	out := Form{r: f.r, q: f.q + g.q, coef: map[uint64]ring.Poly{}}
	for ma, pa := range f.coef {
		for mb, pb := range g.coef {
			if ma&mb != 0 {
				continue
			}
			prod := pa.Mul(pb)
			if wedgeSign(ma, mb) < 0 {
				prod = prod.Neg()
			}
			m := ma | mb
			sum := prod
			if prev, ok := out.coef[m]; ok {
				sum = prev.Add(prod)
			}
			if sum.IsZero() {
				delete(out.coef, m)
			} else {
				out.coef[m] = sum
			}
		}
	}
	return out
}

// wedgeSign is the sign of sorting the concatenation of the two ascending
// index tuples: for each index in b, count the indices of a above it.
func wedgeSign(a, b uint64) int {
	inversions := 0
	for m := b; m != 0; m &= m - 1 {
		j := uint(bits.TrailingZeros64(m))
		higher := a >> (j + 1)
		inversions += bits.OnesCount64(higher)
	}
	if inversions%2 == 1 {
		return -1
	}
	return 1
}

// Coefficient returns the coefficient on the wedge monomial with the given
// ascending indices (zero if absent).
func (f Form) Coefficient(indices []int) ring.Poly {
	var mask uint64
	for _, idx := range indices {
		mask |= 1 << uint(idx)
	}
	if p, ok := f.coef[mask]; ok {
		return p
	}
	return f.r.Zero()
}

// Coefficients returns the coefficients against the ordered degree-q basis,
// in the same order Basis(q) enumerates it.
func (f Form) Coefficients() []ring.Poly {
	subsets := ring.Subsets(f.r.Nvars(), f.q)
	out := make([]ring.Poly, len(subsets))
	for i, s := range subsets {
		out[i] = f.Coefficient(s)
	}
	return out
}

// Equal reports equality of degree and all coefficients.
func (f Form) Equal(g Form) bool {
	if f.q != g.q || len(f.coef) != len(g.coef) {
		return false
	}
	for m, p := range f.coef {
		gp, ok := g.coef[m]
		if !ok || !p.Equal(gp) {
			return false
		}
	}
	return true
}

// Combine returns the linear combination sum coeffs[i] * basis[i].
func Combine(basis []Form, coeffs []ring.Poly) Form {
	if len(basis) != len(coeffs) {
		panic(fmt.Sprintf("exterior: %d basis forms with %d coefficients", len(basis), len(coeffs)))
	}
	if len(basis) == 0 {
		panic("exterior: Combine needs at least one basis form")
	}
	acc := basis[0].Scale(coeffs[0])
	for i := 1; i < len(basis); i++ {
		acc = acc.Add(basis[i].Scale(coeffs[i]))
	}
	return acc
}

func (f Form) String() string {
	subsets := ring.Subsets(f.r.Nvars(), f.q)
	var parts []string
	for _, s := range subsets {
		p := f.Coefficient(s)
		if p.IsZero() {
			continue
		}
		wedge := make([]string, len(s))
		for i, idx := range s {
			wedge[i] = "d" + f.r.VarName(idx)
		}
		c := p.String()
		if p.NumTerms() > 1 {
			c = "(" + c + ")"
		}
		if len(wedge) == 0 {
			parts = append(parts, c)
		} else {
			parts = append(parts, c+"*"+strings.Join(wedge, "^"))
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}
