package ring_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/logforms/ring"
)

// ============================================================
// Ring construction
// ============================================================

func TestNew_DuplicateName(t *testing.T) {
	require.Panics(t, func() { ring.New("x", "y", "x") })
}

func TestNew_EmptyName(t *testing.T) {
	require.Panics(t, func() { ring.New("x", "") })
}

func TestRing_Vars(t *testing.T) {
	r := ring.New("x", "y", "z")
	require.Equal(t, 3, r.Nvars())
	require.Equal(t, "y", r.VarName(1))

	v, ok := r.VarByName("z")
	require.True(t, ok)
	require.True(t, v.Equal(r.Var(2)))

	_, ok = r.VarByName("w")
	require.False(t, ok)
}

// ============================================================
// Polynomial arithmetic
// ============================================================

func TestPoly_AddMul(t *testing.T) {
	r := ring.New("x", "y")
	x, y := r.Var(0), r.Var(1)

	sum := x.Add(y)
	diff := x.Sub(y)
	prod := sum.Mul(diff)
	want := ring.MustParse(r, "x^2 - y^2")
	if !prod.Equal(want) {
		t.Errorf("want %s, got %s", want, prod)
	}
}

func TestPoly_CancelToZero(t *testing.T) {
	r := ring.New("x")
	p := ring.MustParse(r, "1/2*x + 1/2*x - x")
	require.True(t, p.IsZero())
	require.Equal(t, -1, p.TotalDegree())
}

func TestPoly_Deriv(t *testing.T) {
	r := ring.New("x", "y", "z")
	p := ring.MustParse(r, "x^2*y + z")
	if got := p.Deriv(0).String(); got != "2*x*y" {
		t.Errorf("d/dx: want 2*x*y, got %s", got)
	}
	if got := p.Deriv(2).String(); got != "1" {
		t.Errorf("d/dz: want 1, got %s", got)
	}
	require.True(t, r.One().Deriv(1).IsZero())
}

func TestPoly_Monic(t *testing.T) {
	r := ring.New("x", "y")
	p := ring.MustParse(r, "2*x + 4*y")
	require.Equal(t, "x + 2*y", p.Monic().String())
	require.True(t, r.Zero().Monic().IsZero())
}

func TestPoly_GrevlexOrder(t *testing.T) {
	r := ring.New("x", "y", "z")

	// Graded first: the degree-3 term leads.
	p := ring.MustParse(r, "z + x^2*y")
	lt, ok := p.Lead()
	require.True(t, ok)
	require.Equal(t, []int{2, 1, 0}, lt.Exp)

	// On equal degree the last differing exponent decides: x*y > z^2.
	q := ring.MustParse(r, "z^2 + x*y")
	require.Equal(t, "x*y + z^2", q.String())
}

func TestPoly_String(t *testing.T) {
	r := ring.New("x", "y", "z")
	p := ring.MustParse(r, "x^2*y - 2*z + 1/3")
	require.Equal(t, "x^2*y - 2*z + 1/3", p.String())
	require.Equal(t, "0", r.Zero().String())
	require.Equal(t, "-x", r.Var(0).Neg().String())
}

func TestPoly_MulTerm(t *testing.T) {
	r := ring.New("x", "y")
	p := ring.MustParse(r, "x + y")
	got := p.MulTerm(ring.Term{Coef: big.NewRat(3, 1), Exp: []int{1, 0}})
	require.True(t, got.Equal(ring.MustParse(r, "3*x^2 + 3*x*y")))
}

func TestPoly_MixedRings(t *testing.T) {
	a := ring.New("x").Var(0)
	b := ring.New("y").Var(0)
	require.Panics(t, func() { a.Add(b) })
}

// ============================================================
// Exponent-order helpers
// ============================================================

func TestCmpGrevlex(t *testing.T) {
	require.Equal(t, 1, ring.CmpGrevlex([]int{2, 0}, []int{0, 1}))  // degree
	require.Equal(t, 1, ring.CmpGrevlex([]int{1, 1, 0}, []int{0, 0, 2}))
	require.Equal(t, 0, ring.CmpGrevlex([]int{1, 2}, []int{1, 2}))
}

func TestExpHelpers(t *testing.T) {
	require.True(t, ring.ExpDivides([]int{1, 0}, []int{2, 3}))
	require.False(t, ring.ExpDivides([]int{1, 4}, []int{2, 3}))
	require.Equal(t, []int{1, 3}, ring.ExpSub([]int{2, 3}, []int{1, 0}))
	require.Equal(t, []int{2, 3}, ring.ExpLCM([]int{2, 1}, []int{0, 3}))
}

// ============================================================
// Combinatorics
// ============================================================

func TestBinomial(t *testing.T) {
	require.Equal(t, 6, ring.Binomial(4, 2))
	require.Equal(t, 1, ring.Binomial(4, 0))
	require.Equal(t, 0, ring.Binomial(3, 5))
	require.Equal(t, 0, ring.Binomial(3, -1))
}

func TestSubsets(t *testing.T) {
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if diff := cmp.Diff(want, ring.Subsets(4, 2)); diff != "" {
		t.Errorf("Subsets(4,2) mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, [][]int{{}}, ring.Subsets(3, 0))
	require.Nil(t, ring.Subsets(3, 4))
}

// ============================================================
// Parsing
// ============================================================

func TestParse_Rationals(t *testing.T) {
	r := ring.New("x")
	p, err := ring.Parse(r, "3/4*x^2 - 1/4")
	require.NoError(t, err)
	require.Equal(t, "3/4*x^2 - 1/4", p.String())
}

func TestParse_Parens(t *testing.T) {
	r := ring.New("x", "y")
	p := ring.MustParse(r, "(x + y)*(x - y)")
	require.True(t, p.Equal(ring.MustParse(r, "x^2 - y^2")))
}

func TestParse_Errors(t *testing.T) {
	r := ring.New("x")
	for _, src := range []string{"x +", "w", "x^", "(x", "x y"} {
		if _, err := ring.Parse(r, src); err == nil {
			t.Errorf("Parse(%q): want error, got none", src)
		}
	}
}

func TestParseIdeal(t *testing.T) {
	r := ring.New("x", "y", "z", "t")
	I, err := ring.ParseIdeal(r, "x*y, z*t")
	require.NoError(t, err)
	require.Len(t, I, 2)
	require.Equal(t, "x*y", I[0].String())
	require.Same(t, r, I.Ring())
}
