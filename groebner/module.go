package groebner

import (
	"sort"

	"github.com/njchilds90/logforms/ring"
)

// Syzygy returns a generator matrix for the kernel of the map R^cols -> R^rows
// defined by A's columns. Each returned column c satisfies A*c = 0.
//
// The computation augments each column a_j to (a_j, e_j) in R^(rows+cols)
// and completes the set to a Gröbner basis under the position-over-term
// order; basis elements whose first rows coordinates vanish are exactly a
// generating set of the syzygy module, read off the bookkeeping part.
func Syzygy(A *ring.Matrix) *ring.Matrix {
	r := A.Ring()
	rows, cols := A.Rows(), A.Cols()
	if cols == 0 {
		return ring.NewMatrix(r, 0, 0)
	}
	if rows == 0 {
		// No relations to satisfy: the kernel is the whole free module.
		id := ring.NewMatrix(r, cols, cols)
		for j := 0; j < cols; j++ {
			id.Set(j, j, r.One())
		}
		return id
	}
	gens := make([]vec, cols)
	for j := 0; j < cols; j++ {
		v := zeroVec(r, rows+cols)
		copy(v, A.Column(j))
		v[rows+j] = r.One()
		gens[j] = v
	}
	gb := buchberger(r, gens)
	var syz []vec
	for _, g := range gb {
		pure := true
		for i := 0; i < rows; i++ {
			if !g[i].IsZero() {
				pure = false
				break
			}
		}
		if pure {
			syz = append(syz, g[rows:].clone())
		}
	}
	return columnsToMatrix(r, cols, syz)
}

// Contains reports whether v lies in the submodule generated by M's columns.
func Contains(M *ring.Matrix, v []ring.Poly) bool {
	r := M.Ring()
	if len(v) != M.Rows() {
		panic("groebner: vector length does not match module rank")
	}
	gb := buchberger(r, matrixColumns(M))
	return reduce(r, vec(v), gb).isZero()
}

// MinimalGenerators returns a minimal generating set of the submodule
// generated by M's columns, assuming graded input: columns are processed by
// ascending degree and kept only when they are not already generated by the
// columns kept so far.
func MinimalGenerators(M *ring.Matrix) *ring.Matrix {
	r := M.Ring()
	cols := matrixColumns(M)
	type degCol struct {
		deg int
		v   vec
	}
	ordered := make([]degCol, 0, len(cols))
	for _, v := range cols {
		if v.isZero() {
			continue
		}
		deg := -1
		for _, p := range v {
			if d := p.TotalDegree(); d > deg {
				deg = d
			}
		}
		ordered = append(ordered, degCol{deg: deg, v: v})
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].deg < ordered[j].deg })
	var kept []vec
	var keptGB []vec
	for _, dc := range ordered {
		if len(kept) > 0 && reduce(r, dc.v, keptGB).isZero() {
			continue
		}
		kept = append(kept, dc.v)
		keptGB = buchberger(r, kept)
	}
	return columnsToMatrix(r, M.Rows(), kept)
}

// ResolutionLength returns the number of free modules in a minimal free
// resolution of the submodule generated by M's columns: 0 for the zero
// module, 1 for a free module, pd+1 in general. Hilbert's syzygy theorem
// caps the iteration at Nvars+1 steps.
func ResolutionLength(M *ring.Matrix) int {
	r := M.Ring()
	G := MinimalGenerators(M.DropZeroColumns())
	if G.Cols() == 0 {
		return 0
	}
	length := 1
	for length <= r.Nvars()+1 {
		S := Syzygy(G).DropZeroColumns()
		if S.Cols() == 0 {
			return length
		}
		G = MinimalGenerators(S)
		length++
	}
	return length
}
