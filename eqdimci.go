package logforms

import (
	"fmt"
	"math/rand"

	"github.com/njchilds90/logforms/groebner"
	"github.com/njchilds90/logforms/ring"
)

const (
	// eqdimCoeffBound bounds the random integer coefficients drawn for the
	// generic linear combinations: each lies in [-20, 20].
	eqdimCoeffBound = 20
	// eqdimMaxDraws bounds the resampling attempts when a draw misses the
	// requested codimension.
	eqdimMaxDraws = 8
)

// EqdimCI builds a complete intersection of codimension k containing the
// variety of IX, as k random integer linear combinations of IX's
// generators. k <= 0 means infer the codimension as Nvars - Dim(IX).
//
// Containment holds by construction (every generator of the result lies in
// IX); the codimension is only generically right, so each draw is verified
// and resampled a bounded number of times. The process-wide math/rand
// source is used: reruns may return different, equally valid results.
func EqdimCI(IX ring.Ideal, k int) (ring.Ideal, error) {
	r := IX.Ring()
	if r == nil {
		return nil, fmt.Errorf("logforms: ideal has no nonzero generator")
	}
	if k <= 0 {
		k = r.Nvars() - groebner.Dim(IX)
	}
	if k <= 0 || k > r.Nvars() {
		return nil, fmt.Errorf("logforms: codimension %d out of range for %d variables", k, r.Nvars())
	}
	for attempt := 0; attempt < eqdimMaxDraws; attempt++ {
		C := make(ring.Ideal, k)
		for i := 0; i < k; i++ {
			sum := r.Zero()
			for _, g := range IX {
				coeff := int64(rand.Intn(2*eqdimCoeffBound+1) - eqdimCoeffBound)
				sum = sum.Add(g.ScaleInt64(coeff))
			}
			C[i] = sum
		}
		if C.Ring() == nil {
			continue // all-zero draw
		}
		if r.Nvars()-groebner.Dim(C) == k {
			return C, nil
		}
	}
	return nil, fmt.Errorf("logforms: no random combination of %d generators reached codimension %d in %d draws",
		len(IX), k, eqdimMaxDraws)
}
