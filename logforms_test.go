package logforms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/logforms"
	"github.com/njchilds90/logforms/exterior"
	"github.com/njchilds90/logforms/groebner"
	"github.com/njchilds90/logforms/ring"
)

// normalCrossing returns Q[x,y,z,t] with the codimension-2 normal crossing
// ideal (x*y, z*t), the standing example throughout these tests.
func normalCrossing(t *testing.T) (*ring.Ring, ring.Ideal) {
	t.Helper()
	r := ring.New("x", "y", "z", "t")
	I, err := ring.ParseIdeal(r, "x*y, z*t")
	require.NoError(t, err)
	return r, I
}

func polyStrings(ps []ring.Poly) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestOmegalogC_ContainsProductForm(t *testing.T) {
	r, IC := normalCrossing(t)

	res, err := logforms.OmegalogC(2, IC, logforms.Options{})
	require.NoError(t, err)
	om := res.Module
	require.Equal(t, 6, om.Rows())
	require.Nil(t, res.Forms)
	require.Nil(t, res.Complement)

	// d(f1)^d(f2) is a multi-logarithmic 2-form along a complete
	// intersection (f1, f2), so its coefficient vector lies in the module.
	alg := exterior.New(r)
	target := alg.D(IC[0]).Wedge(alg.D(IC[1])).Coefficients()
	require.True(t, groebner.Contains(om, target))

	// Membership forms: f1 times any basis 2-form is multi-logarithmic.
	mem := make([]ring.Poly, 6)
	for i := range mem {
		mem[i] = r.Zero()
	}
	mem[0] = IC[0]
	require.True(t, groebner.Contains(om, mem))
}

func TestOmegalog_DispatchesToCompleteIntersection(t *testing.T) {
	_, IC := normalCrossing(t)

	direct, err := logforms.OmegalogC(2, IC, logforms.Options{})
	require.NoError(t, err)
	dispatched, err := logforms.Omegalog(2, IC, logforms.Options{})
	require.NoError(t, err)

	require.True(t, direct.Module.Equal(dispatched.Module))
	require.Nil(t, dispatched.Complement)
}

func TestOmegalog_Forms_RoundTrip(t *testing.T) {
	_, IC := normalCrossing(t)

	res, err := logforms.OmegalogC(2, IC, logforms.Options{Forms: true})
	require.NoError(t, err)
	require.Equal(t, res.Module.Cols(), len(res.Forms))
	require.Greater(t, len(res.Forms), 0)

	// Each form is the combination of the wedge basis with the matching
	// generator column, so expanding it back must reproduce the column.
	for j, w := range res.Forms {
		require.Equal(t, 2, w.Degree())
		got := polyStrings(w.Coefficients())
		want := polyStrings(res.Module.Column(j))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("form %d does not match its column (-want +got):\n%s", j, diff)
		}
	}
}

func TestOmegalogXC_Forms_RoundTrip(t *testing.T) {
	r, IC := normalCrossing(t)
	IX, err := ring.ParseIdeal(r, "x*y, z*t, x*z")
	require.NoError(t, err)

	res, err := logforms.OmegalogXC(0, IX, IC, logforms.Options{Forms: true})
	require.NoError(t, err)
	require.Equal(t, res.Module.Cols(), len(res.Forms))
	require.Greater(t, len(res.Forms), 0)

	for j, w := range res.Forms {
		require.Equal(t, 0, w.Degree())
		got := polyStrings(w.Coefficients())
		want := polyStrings(res.Module.Column(j))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("form %d does not match its column (-want +got):\n%s", j, diff)
		}
	}
}

func TestOmegalogXC_RelativeToComplement(t *testing.T) {
	r, IC := normalCrossing(t)
	IX, err := ring.ParseIdeal(r, "x*y, z*t, x*z")
	require.NoError(t, err)

	res, err := logforms.OmegalogXC(0, IX, IC, logforms.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Module.Rows())

	// x*y satisfies both conditions: f_i*(x*y) lies in IC and
	// (x*y)*df_i lies in IC*Omega^1 for every generator f_i of IX.
	require.True(t, groebner.Contains(res.Module, []ring.Poly{IC[0]}))
	// The constant 1 satisfies neither.
	require.False(t, groebner.Contains(res.Module, []ring.Poly{r.One()}))
}

func TestOmegalog_ConstructsComplement(t *testing.T) {
	r, _ := normalCrossing(t)
	IX, err := ring.ParseIdeal(r, "x*y, z*t, x*z")
	require.NoError(t, err)

	res, err := logforms.Omegalog(0, IX, logforms.Options{})
	require.NoError(t, err)
	require.Len(t, res.Complement, 2)
	require.Equal(t, 2, r.Nvars()-groebner.Dim(res.Complement))

	// Whatever complete intersection was drawn, its generators are
	// themselves multi-logarithmic 0-forms.
	require.Equal(t, 1, res.Module.Rows())
	require.True(t, groebner.Contains(res.Module, []ring.Poly{res.Complement[0]}))
}

func TestOmegalog_SuppliedComplement(t *testing.T) {
	r, IC := normalCrossing(t)
	IX, err := ring.ParseIdeal(r, "x*y, z*t, x*z")
	require.NoError(t, err)

	res, err := logforms.Omegalog(0, IX, logforms.Options{Complement: IC})
	require.NoError(t, err)
	require.Nil(t, res.Complement)
	require.Equal(t, 1, res.Module.Rows())
	require.True(t, groebner.Contains(res.Module, []ring.Poly{IC[0]}))
	require.False(t, groebner.Contains(res.Module, []ring.Poly{r.One()}))
}

func TestOmegalog_DegreeBounds(t *testing.T) {
	r, IC := normalCrossing(t)

	// Above the variable count the module is zero.
	res, err := logforms.OmegalogC(5, IC, logforms.Options{})
	require.NoError(t, err)
	require.Equal(t, 0, res.Module.Rows())
	require.Equal(t, 0, res.Module.Cols())

	// At the top degree every 4-form is multi-logarithmic.
	res, err = logforms.OmegalogC(4, IC, logforms.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Module.Rows())
	require.True(t, groebner.Contains(res.Module, []ring.Poly{r.One()}))

	// Degree 0: x*y qualifies, the constant 1 does not.
	res, err = logforms.OmegalogC(0, IC, logforms.Options{})
	require.NoError(t, err)
	require.True(t, groebner.Contains(res.Module, []ring.Poly{IC[0]}))
	require.False(t, groebner.Contains(res.Module, []ring.Poly{r.One()}))
}

func TestOmegalog_Errors(t *testing.T) {
	_, IC := normalCrossing(t)

	_, err := logforms.Omegalog(-1, IC, logforms.Options{})
	require.Error(t, err)
	_, err = logforms.OmegalogC(-1, IC, logforms.Options{})
	require.Error(t, err)
	_, err = logforms.Omegalog(1, ring.Ideal{}, logforms.Options{})
	require.Error(t, err)
	_, err = logforms.OmegalogXC(1, ring.Ideal{}, ring.Ideal{}, logforms.Options{})
	require.Error(t, err)
}

func TestCleanup_Idempotent(t *testing.T) {
	r := ring.New("x", "y")
	m := ring.NewMatrix(r, 3, 3)
	m.Set(0, 1, r.Var(0))
	m.Set(2, 1, r.Var(1))

	once := logforms.Cleanup(m)
	twice := logforms.Cleanup(once)
	require.True(t, once.Equal(twice))
	require.Equal(t, 2, once.Rows())
	require.Equal(t, 1, once.Cols())
}
