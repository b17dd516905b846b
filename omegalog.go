// Package logforms computes modules of multi-logarithmic differential
// forms and multi-logarithmic vector fields attached to an equidimensional
// reduced variety, and uses them to decide whether the variety defines a
// free singularity.
//
// The heart of the package is a family of block-matrix encodings: each
// logarithmic condition is turned into the kernel of a structured
// presentation matrix over the polynomial ring, computed by the groebner
// package and truncated back onto the block of unknowns of interest.
//
// Correctness preconditions (not validated here): the input ideal is
// equidimensional, reduced and radical where the operation assumes so, and
// a supplied complement really is a radical complete intersection whose
// variety contains the input's. Violations yield mathematically
// meaningless, but well-formed, results.
package logforms

import (
	"fmt"

	"github.com/njchilds90/logforms/exterior"
	"github.com/njchilds90/logforms/groebner"
	"github.com/njchilds90/logforms/ring"
)

// Options carries the optional inputs of the form computations.
type Options struct {
	// Complement, when set, is a complete intersection of the same
	// codimension whose variety contains the input variety. Omegalog then
	// uses it instead of constructing one.
	Complement ring.Ideal
	// Forms requests explicit differential forms spanning the module
	// instead of the generator matrix alone.
	Forms bool
}

// Result is the outcome of a form computation. Module is always set: the
// generator matrix of the multi-logarithmic module (columns = generators,
// rows = coefficients against the degree-q wedge basis). Forms is set when
// requested. Complement is set only when the dispatcher had to construct a
// complete intersection itself.
type Result struct {
	Module     *ring.Matrix
	Forms      []exterior.Form
	Complement ring.Ideal
}

// Omegalog computes the module of multi-logarithmic q-forms along the
// variety of IX, choosing among three strategies: a caller-supplied
// complement (Options.Complement), IX itself already being a complete
// intersection, or a complement constructed by EqdimCI (reported in
// Result.Complement).
func Omegalog(q int, IX ring.Ideal, opts Options) (Result, error) {
	if q < 0 {
		return Result{}, fmt.Errorf("logforms: negative form degree %d", q)
	}
	if opts.Complement != nil {
		return OmegalogXC(q, IX, opts.Complement, opts)
	}
	r := IX.Ring()
	if r == nil {
		return Result{}, fmt.Errorf("logforms: ideal has no nonzero generator")
	}
	codim := r.Nvars() - groebner.Dim(IX)
	if len(IX) == codim {
		return OmegalogC(q, IX, opts)
	}
	IC, err := EqdimCI(IX, codim)
	if err != nil {
		return Result{}, err
	}
	res, err := OmegalogXC(q, IX, IC, opts)
	if err != nil {
		return Result{}, err
	}
	res.Complement = IC
	return res, nil
}

// OmegalogC computes the module of multi-logarithmic q-forms along a
// radical complete intersection IC = (f_1,...,f_k): all polynomial q-forms
// w with df_i ^ w in IC*Omega^(q+1) for every i.
//
// The presentation matrix has one row block of height t per generator
// (t = dim Omega^(q+1)) and columns split into the primary block of size
// s = dim Omega^q and one membership block of size k*t per generator,
// letting each relation absorb arbitrary multiples of the f_j.
func OmegalogC(q int, IC ring.Ideal, opts Options) (Result, error) {
	r := IC.Ring()
	if r == nil {
		return Result{}, fmt.Errorf("logforms: ideal has no nonzero generator")
	}
	if q < 0 {
		return Result{}, fmt.Errorf("logforms: negative form degree %d", q)
	}
	alg := exterior.New(r)
	V := alg.Basis(q)
	W := alg.Basis(q + 1)
	s, t := len(V), len(W)
	k := len(IC)

	b := newBlockMatrix(r)
	for i := range IC {
		b.addRowBlock(relBlock(i), t)
	}
	b.addColBlock("primary", s)
	for i := range IC {
		b.addColBlock(memBlock(i), k*t)
	}
	b.finish()

	for i, f := range IC {
		df := alg.D(f)
		for a := 0; a < s; a++ {
			cs := df.Wedge(V[a]).Coefficients()
			for c := 0; c < t; c++ {
				if !cs[c].IsZero() {
					b.set(relBlock(i), c, "primary", a, cs[c])
				}
			}
		}
		for a := 0; a < t; a++ {
			for j, g := range IC {
				b.set(relBlock(i), a, memBlock(i), a*k+j, g)
			}
		}
	}
	return finishModule(V, b.matrix(), s, opts)
}

// OmegalogXC computes the module of multi-logarithmic q-forms along the
// variety of IX = (f_1,...,f_m) relative to a complete intersection
// IC = (g_1,...,g_k) containing it: all polynomial q-forms w with
// df_i ^ w in IC*Omega^(q+1) and f_i*w in IC*Omega^q for every i.
//
// Compared to OmegalogC the presentation matrix gains a second row group
// enforcing IX-membership coordinatewise, with its own membership columns.
func OmegalogXC(q int, IX, IC ring.Ideal, opts Options) (Result, error) {
	r := IX.Ring()
	if r == nil {
		r = IC.Ring()
	}
	if r == nil {
		return Result{}, fmt.Errorf("logforms: ideal has no nonzero generator")
	}
	if q < 0 {
		return Result{}, fmt.Errorf("logforms: negative form degree %d", q)
	}
	alg := exterior.New(r)
	V := alg.Basis(q)
	W := alg.Basis(q + 1)
	s, t := len(V), len(W)
	k := len(IC)

	b := newBlockMatrix(r)
	for i := range IX {
		b.addRowBlock(relBlock(i), t)
	}
	for i := range IX {
		b.addRowBlock(directBlock(i), s)
	}
	b.addColBlock("primary", s)
	for i := range IX {
		b.addColBlock(memBlock(i), k*t)
	}
	for i := range IX {
		b.addColBlock(directMemBlock(i), k*s)
	}
	b.finish()

	for i, f := range IX {
		df := alg.D(f)
		for a := 0; a < s; a++ {
			cs := df.Wedge(V[a]).Coefficients()
			for c := 0; c < t; c++ {
				if !cs[c].IsZero() {
					b.set(relBlock(i), c, "primary", a, cs[c])
				}
			}
		}
		for a := 0; a < t; a++ {
			for j, g := range IC {
				b.set(relBlock(i), a, memBlock(i), a*k+j, g)
			}
		}
		for a := 0; a < s; a++ {
			b.set(directBlock(i), a, "primary", a, f)
			for j, g := range IC {
				b.set(directBlock(i), a, directMemBlock(i), a*k+j, g)
			}
		}
	}
	return finishModule(V, b.matrix(), s, opts)
}

func relBlock(i int) string       { return fmt.Sprintf("rel%d", i) }
func memBlock(i int) string       { return fmt.Sprintf("mem%d", i) }
func directBlock(i int) string    { return fmt.Sprintf("direct%d", i) }
func directMemBlock(i int) string { return fmt.Sprintf("directmem%d", i) }

// finishModule runs the shared back end of the form assemblers: syzygy
// kernel, truncation onto the primary block, and either cleanup or
// reconstruction of explicit forms from a minimal generating set.
func finishModule(V []exterior.Form, A *ring.Matrix, s int, opts Options) (Result, error) {
	K := groebner.Syzygy(A)
	Om := K.FirstRows(s)
	if !opts.Forms {
		return Result{Module: Cleanup(Om)}, nil
	}
	min := groebner.MinimalGenerators(Om.DropZeroColumns())
	forms := make([]exterior.Form, min.Cols())
	for j := range forms {
		forms[j] = exterior.Combine(V, min.Column(j))
	}
	return Result{Module: min, Forms: forms}, nil
}

// Cleanup drops zero generators and zero coordinate rows from a generator
// matrix. Applying it twice yields the same matrix as applying it once.
func Cleanup(M *ring.Matrix) *ring.Matrix {
	return M.DropZeroColumns().DropZeroRows()
}
