// Package ring provides exact multivariate polynomial arithmetic over the
// rationals, together with the polynomial matrices and ideals the rest of
// the module computes with.
//
// Design goals:
//   - Exact rational coefficients (math/big.Rat)
//   - Canonical term order (graded reverse lexicographic), deterministic output
//   - Immutable value semantics: every operation returns a fresh polynomial
package ring

import (
	"fmt"
	"math/big"
)

// Ring is an ambient commutative polynomial ring Q[x_1,...,x_n], identified
// by its ordered variable names. A Ring is immutable and shared read-only by
// every polynomial, matrix and form defined over it.
type Ring struct {
	vars  []string
	index map[string]int
}

// New constructs a polynomial ring with the given variable names.
// Panics on an empty or duplicate name.
func New(vars ...string) *Ring {
	idx := make(map[string]int, len(vars))
	for i, v := range vars {
		if v == "" {
			panic("ring: empty variable name")
		}
		if _, dup := idx[v]; dup {
			panic(fmt.Sprintf("ring: duplicate variable name %q", v))
		}
		idx[v] = i
	}
	return &Ring{vars: append([]string(nil), vars...), index: idx}
}

func (r *Ring) Nvars() int          { return len(r.vars) }
func (r *Ring) VarName(i int) string { return r.vars[i] }

// Var returns the i-th variable as a polynomial.
func (r *Ring) Var(i int) Poly {
	if i < 0 || i >= len(r.vars) {
		panic(fmt.Sprintf("ring: variable index %d out of range for %d variables", i, len(r.vars)))
	}
	exp := make([]int, len(r.vars))
	exp[i] = 1
	return Poly{r: r, terms: []term{{coef: big.NewRat(1, 1), exp: exp}}}
}

// VarByName returns the named variable, if it exists in the ring.
func (r *Ring) VarByName(name string) (Poly, bool) {
	i, ok := r.index[name]
	if !ok {
		return Poly{}, false
	}
	return r.Var(i), true
}

func (r *Ring) Zero() Poly { return Poly{r: r} }

func (r *Ring) One() Poly { return r.FromInt64(1) }

// FromInt64 returns the constant polynomial n.
func (r *Ring) FromInt64(n int64) Poly {
	if n == 0 {
		return r.Zero()
	}
	return Poly{r: r, terms: []term{{coef: big.NewRat(n, 1), exp: make([]int, len(r.vars))}}}
}

// Const returns the constant polynomial c. The argument is copied.
func (r *Ring) Const(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return r.Zero()
	}
	return Poly{r: r, terms: []term{{coef: new(big.Rat).Set(c), exp: make([]int, len(r.vars))}}}
}

// Monomial returns c * x^exp. The coefficient and exponent vector are copied.
func (r *Ring) Monomial(c *big.Rat, exp []int) Poly {
	if len(exp) != len(r.vars) {
		panic(fmt.Sprintf("ring: exponent vector length %d for %d variables", len(exp), len(r.vars)))
	}
	if c.Sign() == 0 {
		return r.Zero()
	}
	e := append([]int(nil), exp...)
	return Poly{r: r, terms: []term{{coef: new(big.Rat).Set(c), exp: e}}}
}

// Binomial returns C(n, k), or 0 when the arguments are out of range.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}
	return res
}

// Subsets enumerates all k-element subsets of {0,...,n-1} in lexicographic
// order of the ascending index tuples. k = 0 yields the single empty subset;
// k > n yields none.
func Subsets(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	cur := make([]int, k)
	var rec func(start, pos int)
	rec = func(start, pos int) {
		if pos == k {
			out = append(out, append([]int{}, cur...))
			return
		}
		for i := start; i <= n-(k-pos); i++ {
			cur[pos] = i
			rec(i+1, pos+1)
		}
	}
	rec(0, 0)
	return out
}
