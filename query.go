package strata

import (
	"math"

	"github.com/akmonengine/strata/geom"
	"github.com/akmonengine/strata/linalg"
	"github.com/dhconnelly/rtreego"
)

// EnergyAt interpolates the lower hull's energy at the given spatial
// coordinates. It returns NaN when the point lies outside every facet's
// spatial projection, i.e. out of the valid compositional domain, which is
// deliberately distinct from 0, the value of a point exactly on the hull.
//
// Candidate facets come from the R-tree; each one is confirmed with a
// barycentric solve, and the minimum energy across matches wins, which
// absorbs numerical overlap along shared facet boundaries.
func (h *Hull) EnergyAt(spatial []float64) float64 {
	if h.index == nil || len(spatial) != h.dim-1 {
		return math.NaN()
	}

	query := rtreego.Point(append([]float64(nil), spatial...)).ToRect(boundsPad)

	best := math.NaN()
	for _, candidate := range h.index.SearchIntersect(query) {
		facet := candidate.(*Facet)
		energy, ok := h.interpolate(facet, spatial)
		if !ok {
			continue
		}
		if math.IsNaN(best) || energy < best {
			best = energy
		}
	}
	return best
}

// AboveHull returns the energy-axis distance from point to the lower hull at
// the point's spatial coordinates: positive above the envelope, zero on it,
// negative below (a point more stable than the current hull). NaN marks an
// out-of-domain query.
func (h *Hull) AboveHull(point []float64) float64 {
	if len(point) != h.dim {
		return math.NaN()
	}
	return point[h.dim-1] - h.EnergyAt(point[:h.dim-1])
}

// interpolate solves for the barycentric coordinates of spatial inside
// facet and returns the weighted vertex energy. ok is false when the facet
// does not contain the point or its edge system is singular (a degenerate
// facet is treated as claiming nothing).
func (h *Hull) interpolate(f *Facet, spatial []float64) (float64, bool) {
	s := h.dim - 1
	v0 := h.points[f.Vertices[0]]

	// Edge-vector columns: coeffs[k] weights vertex k+1.
	a := make([][]float64, s)
	rhs := make([]float64, s)
	for row := 0; row < s; row++ {
		a[row] = make([]float64, s)
		for k := 1; k <= s; k++ {
			a[row][k-1] = h.points[f.Vertices[k]][row] - v0[row]
		}
		rhs[row] = spatial[row] - v0[row]
	}

	coeffs := linalg.Solve(a, rhs)
	if coeffs == nil {
		return 0, false
	}

	w0 := 1.0
	for _, c := range coeffs {
		if c < -geom.Eps {
			return 0, false
		}
		w0 -= c
	}
	if w0 < -geom.Eps {
		return 0, false
	}

	energy := w0 * v0[s]
	for k, c := range coeffs {
		energy += c * h.points[f.Vertices[k+1]][s]
	}
	return energy, true
}
