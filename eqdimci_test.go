package logforms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njchilds90/logforms"
	"github.com/njchilds90/logforms/groebner"
	"github.com/njchilds90/logforms/ring"
)

// generatorMatrix lays the ideal out as a 1-row module for membership tests.
func generatorMatrix(r *ring.Ring, I ring.Ideal) *ring.Matrix {
	m := ring.NewMatrix(r, 1, len(I))
	for j, g := range I {
		m.Set(0, j, g)
	}
	return m
}

func TestEqdimCI_Explicit(t *testing.T) {
	r, _ := normalCrossing(t)
	IX, err := ring.ParseIdeal(r, "x*y, z*t, x*z")
	require.NoError(t, err)

	C, err := logforms.EqdimCI(IX, 2)
	require.NoError(t, err)
	require.Len(t, C, 2)
	require.Equal(t, 2, r.Nvars()-groebner.Dim(C))

	// Every generator of the complete intersection lies in IX.
	M := generatorMatrix(r, IX)
	for i, g := range C {
		if !groebner.Contains(M, []ring.Poly{g}) {
			t.Errorf("generator %d = %s does not lie in the input ideal", i, g)
		}
	}
}

func TestEqdimCI_InfersCodimension(t *testing.T) {
	r, _ := normalCrossing(t)
	IX, err := ring.ParseIdeal(r, "x*y, z*t, x*z")
	require.NoError(t, err)

	C, err := logforms.EqdimCI(IX, 0)
	require.NoError(t, err)
	require.Len(t, C, 2)
	require.Equal(t, 2, r.Nvars()-groebner.Dim(C))
}

func TestEqdimCI_AlreadyCompleteIntersection(t *testing.T) {
	r, IC := normalCrossing(t)

	C, err := logforms.EqdimCI(IC, 2)
	require.NoError(t, err)
	require.Len(t, C, 2)
	require.Equal(t, 2, r.Nvars()-groebner.Dim(C))
}

func TestEqdimCI_Errors(t *testing.T) {
	r, IC := normalCrossing(t)

	_, err := logforms.EqdimCI(ring.Ideal{}, 2)
	require.Error(t, err)
	_, err = logforms.EqdimCI(IC, r.Nvars()+1)
	require.Error(t, err)
}
