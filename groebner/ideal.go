package groebner

import "github.com/njchilds90/logforms/ring"

// Std returns a reduced Gröbner basis of the ideal under graded reverse
// lexicographic order: monic elements, no leading term dividing another,
// tails in normal form.
func Std(I ring.Ideal) ring.Ideal {
	r := I.Ring()
	if r == nil {
		return nil
	}
	gens := make([]vec, 0, len(I))
	for _, g := range I {
		gens = append(gens, vec{g})
	}
	gb := interreduce(r, buchberger(r, gens))
	out := make(ring.Ideal, 0, len(gb))
	for _, v := range gb {
		out = append(out, v[0])
	}
	return out
}

// Dim returns the Krull dimension of R/I, read off the leading-term
// staircase of an internally computed Gröbner basis: the largest number of
// variables no leading monomial lives entirely on. The zero ideal has
// dimension Nvars; the unit ideal has dimension -1.
func Dim(I ring.Ideal) int {
	r := I.Ring()
	if r == nil {
		panic("groebner: Dim of an ideal with no ring")
	}
	gb := Std(I)
	n := r.Nvars()
	supports := make([][]int, 0, len(gb))
	for _, g := range gb {
		t, ok := g.Lead()
		if !ok {
			continue
		}
		var sup []int
		for i, e := range t.Exp {
			if e > 0 {
				sup = append(sup, i)
			}
		}
		if len(sup) == 0 {
			return -1 // unit ideal
		}
		supports = append(supports, sup)
	}
	best := -1
	for mask := 0; mask < 1<<uint(n); mask++ {
		size := 0
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				size++
			}
		}
		if size <= best {
			continue
		}
		ok := true
		for _, sup := range supports {
			inside := true
			for _, i := range sup {
				if mask&(1<<uint(i)) == 0 {
					inside = false
					break
				}
			}
			if inside {
				ok = false
				break
			}
		}
		if ok {
			best = size
		}
	}
	return best
}
