package ring

import "strings"

// Ideal is an ordered, finite generator sequence. The sequence is never
// canonicalized: two ideals with different generators may be equal as sets.
type Ideal []Poly

// Ring returns the ring of the first generator that carries one, or nil.
func (I Ideal) Ring() *Ring {
	for _, g := range I {
		if g.Ring() != nil {
			return g.Ring()
		}
	}
	return nil
}

func (I Ideal) String() string {
	parts := make([]string, len(I))
	for i, g := range I {
		parts[i] = g.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
