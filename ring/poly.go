package ring

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// term is one monomial with its coefficient. Invariants: coef != 0, exp has
// length Nvars. Terms are never mutated after a polynomial is built.
type term struct {
	coef *big.Rat
	exp  []int
}

// Poly is a multivariate polynomial over Q in canonical form: terms sorted
// descending in graded reverse lexicographic order with no zero coefficients.
// The zero value is the zero polynomial of an unknown ring; it is a valid
// operand wherever the other operand carries a ring.
type Poly struct {
	r     *Ring
	terms []term
}

// Term is an exported (coefficient, exponent vector) pair, used by the
// Gröbner engine for leading-term arithmetic. Both fields are copies.
type Term struct {
	Coef *big.Rat
	Exp  []int
}

// Ring returns the ring the polynomial belongs to (nil for the zero value).
func (p Poly) Ring() *Ring { return p.r }

func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// NumTerms reports the number of monomials.
func (p Poly) NumTerms() int { return len(p.terms) }

// Lead returns the leading term under grevlex. ok is false for zero.
func (p Poly) Lead() (Term, bool) {
	if len(p.terms) == 0 {
		return Term{}, false
	}
	t := p.terms[0]
	return Term{Coef: new(big.Rat).Set(t.coef), Exp: append([]int(nil), t.exp...)}, true
}

// TotalDegree returns the total degree, or -1 for the zero polynomial.
func (p Poly) TotalDegree() int {
	max := -1
	for _, t := range p.terms {
		d := expDeg(t.exp)
		if d > max {
			max = d
		}
	}
	return max
}

func (p Poly) ring(q Poly) *Ring {
	if p.r != nil {
		return p.r
	}
	return q.r
}

func sameRing(a, b Poly) {
	if a.r != nil && b.r != nil && a.r != b.r {
		panic("ring: mixed rings in polynomial operation")
	}
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	sameRing(p, q)
	merged := make([]term, 0, len(p.terms)+len(q.terms))
	merged = append(merged, p.terms...)
	merged = append(merged, q.terms...)
	return normalize(p.ring(q), merged)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]term, len(p.terms))
	for i, t := range p.terms {
		out[i] = term{coef: new(big.Rat).Neg(t.coef), exp: t.exp}
	}
	return Poly{r: p.r, terms: out}
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	sameRing(p, q)
	if len(p.terms) == 0 || len(q.terms) == 0 {
		return Poly{r: p.ring(q)}
	}
	prod := make([]term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			exp := make([]int, len(a.exp))
			for i := range exp {
				exp[i] = a.exp[i] + b.exp[i]
			}
			prod = append(prod, term{coef: new(big.Rat).Mul(a.coef, b.coef), exp: exp})
		}
	}
	return normalize(p.ring(q), prod)
}

// ScaleRat returns c * p.
func (p Poly) ScaleRat(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return Poly{r: p.r}
	}
	out := make([]term, len(p.terms))
	for i, t := range p.terms {
		out[i] = term{coef: new(big.Rat).Mul(t.coef, c), exp: t.exp}
	}
	return Poly{r: p.r, terms: out}
}

// ScaleInt64 returns n * p.
func (p Poly) ScaleInt64(n int64) Poly { return p.ScaleRat(big.NewRat(n, 1)) }

// MulTerm returns t * p for a single term t.
func (p Poly) MulTerm(t Term) Poly {
	if t.Coef.Sign() == 0 || len(p.terms) == 0 {
		return Poly{r: p.r}
	}
	out := make([]term, len(p.terms))
	for i, a := range p.terms {
		exp := make([]int, len(a.exp))
		for j := range exp {
			exp[j] = a.exp[j] + t.Exp[j]
		}
		out[i] = term{coef: new(big.Rat).Mul(a.coef, t.Coef), exp: exp}
	}
	return Poly{r: p.r, terms: out}
}

// Monic divides p by its leading coefficient. Zero stays zero.
func (p Poly) Monic() Poly {
	if len(p.terms) == 0 {
		return p
	}
	inv := new(big.Rat).Inv(p.terms[0].coef)
	return p.ScaleRat(inv)
}

// Deriv returns the partial derivative with respect to the i-th variable.
func (p Poly) Deriv(i int) Poly {
	out := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		if t.exp[i] == 0 {
			continue
		}
		exp := append([]int(nil), t.exp...)
		exp[i]--
		c := new(big.Rat).Mul(t.coef, big.NewRat(int64(t.exp[i]), 1))
		out = append(out, term{coef: c, exp: exp})
	}
	return Poly{r: p.r, terms: out}
}

// Equal reports exact equality of canonical forms.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].coef.Cmp(q.terms[i].coef) != 0 {
			return false
		}
		for j := range p.terms[i].exp {
			if p.terms[i].exp[j] != q.terms[i].exp[j] {
				return false
			}
		}
	}
	return true
}

// normalize sorts terms descending in grevlex, merges equal monomials and
// drops zeros. It takes ownership of the slice.
func normalize(r *Ring, ts []term) Poly {
	if len(ts) == 0 {
		return Poly{r: r}
	}
	sort.SliceStable(ts, func(i, j int) bool { return CmpGrevlex(ts[i].exp, ts[j].exp) > 0 })
	out := ts[:0]
	for _, t := range ts {
		if n := len(out); n > 0 && CmpGrevlex(out[n-1].exp, t.exp) == 0 {
			out[n-1] = term{coef: new(big.Rat).Add(out[n-1].coef, t.coef), exp: out[n-1].exp}
			continue
		}
		out = append(out, t)
	}
	kept := make([]term, 0, len(out))
	for _, t := range out {
		if t.coef.Sign() != 0 {
			kept = append(kept, t)
		}
	}
	return Poly{r: r, terms: kept}
}

func expDeg(e []int) int {
	d := 0
	for _, x := range e {
		d += x
	}
	return d
}

// CmpGrevlex compares two exponent vectors in graded reverse lexicographic
// order: higher total degree wins; on equal degree the monomial whose last
// differing exponent is smaller wins.
func CmpGrevlex(a, b []int) int {
	da, db := expDeg(a), expDeg(b)
	if da != db {
		if da > db {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// ExpDivides reports whether x^d divides x^e.
func ExpDivides(d, e []int) bool {
	for i := range d {
		if d[i] > e[i] {
			return false
		}
	}
	return true
}

// ExpSub returns e - d componentwise.
func ExpSub(e, d []int) []int {
	out := make([]int, len(e))
	for i := range e {
		out[i] = e[i] - d[i]
	}
	return out
}

// ExpLCM returns the componentwise maximum.
func ExpLCM(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		if a[i] >= b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// String renders the polynomial in canonical term order, e.g. "x^2*y - 2*z + 1/3".
func (p Poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		c := t.coef
		neg := c.Sign() < 0
		abs := new(big.Rat).Abs(c)
		if i == 0 {
			if neg {
				sb.WriteString("-")
			}
		} else {
			if neg {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(monomialString(p.r, abs, t.exp))
	}
	return sb.String()
}

func monomialString(r *Ring, abs *big.Rat, exp []int) string {
	var parts []string
	if abs.Cmp(big.NewRat(1, 1)) != 0 || expDeg(exp) == 0 {
		parts = append(parts, abs.RatString())
	}
	for i, e := range exp {
		if e == 0 {
			continue
		}
		name := fmt.Sprintf("v%d", i)
		if r != nil {
			name = r.VarName(i)
		}
		if e == 1 {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", name, e))
		}
	}
	return strings.Join(parts, "*")
}
