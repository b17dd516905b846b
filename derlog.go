package logforms

import (
	"fmt"

	"github.com/njchilds90/logforms/groebner"
	"github.com/njchilds90/logforms/ring"
)

// Derlog computes the module of multi-logarithmic vector fields of
// codimension k along the variety of IX: the kernel, truncated onto the
// block of order-k Jacobian minors, of the presentation that lets each
// relation absorb arbitrary multiples of IX's generators.
//
// k <= 0 means infer the codimension as Nvars - Dim(IX).
func Derlog(IX ring.Ideal, k int) (*ring.Matrix, error) {
	r := IX.Ring()
	if r == nil {
		return nil, fmt.Errorf("logforms: ideal has no nonzero generator")
	}
	u := len(IX)
	n := r.Nvars()
	if k <= 0 {
		k = n - groebner.Dim(IX)
	}
	if k < 0 || k > n {
		return nil, fmt.Errorf("logforms: codimension %d out of range for %d variables", k, n)
	}

	J := ring.Jacobian(r, IX)
	minors := J.Minors(k) // c blocks of b minors, one block per choice of k rows
	b := ring.Binomial(n, k)
	c := ring.Binomial(u, k)

	bm := newBlockMatrix(r)
	bm.addRowBlock("rel", c)
	bm.addColBlock("primary", b)
	bm.addColBlock("mem", c*u)
	bm.finish()
	for i := 0; i < c; i++ {
		for j := 0; j < b; j++ {
			if mn := minors[i*b+j]; !mn.IsZero() {
				bm.set("rel", i, "primary", j, mn)
			}
		}
		for l, g := range IX {
			bm.set("rel", i, "mem", i*u+l, g)
		}
	}

	K := groebner.Syzygy(bm.matrix())
	return Cleanup(K.FirstRows(b)), nil
}

// IsFreeSingularity reports whether the variety of IX, of assumed
// codimension k, is a free singularity: the minimal free resolution of its
// multi-logarithmic vector field module has exactly k free modules.
// k <= 0 means infer the codimension as Nvars - Dim(IX).
func IsFreeSingularity(IX ring.Ideal, k int) (bool, error) {
	if k <= 0 {
		r := IX.Ring()
		if r == nil {
			return false, fmt.Errorf("logforms: ideal has no nonzero generator")
		}
		k = r.Nvars() - groebner.Dim(IX)
	}
	DD, err := Derlog(IX, k)
	if err != nil {
		return false, err
	}
	return groebner.ResolutionLength(DD) == k, nil
}
