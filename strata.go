// Package strata computes lower convex hulls of compositional point clouds
// and answers energy-above-hull queries against them.
//
// Input points are fixed-length vectors whose first D-1 coordinates are
// spatial (composition) coordinates and whose last coordinate is a formation
// energy. Build constructs the full D-dimensional convex hull, keeps the
// facets whose outward normal points toward decreasing energy (the
// thermodynamically stable envelope) and indexes them for interpolation
// queries. What the coordinates mean (compositions, entry ids, reference
// corners) is entirely the caller's concern.
//
// Every Build call owns its working copies; a *Hull is immutable once built
// and safe for concurrent queries.
package strata

import (
	"github.com/akmonengine/strata/geom"
	"github.com/akmonengine/strata/hull"
	"github.com/dhconnelly/rtreego"
)

// Eps is the geometric tolerance of the engine, re-exported for callers that
// need to reason about on-hull versus above-hull.
const Eps = geom.Eps

// boundsPad keeps facet bounding boxes strictly positive in every dimension
// so flat facets still index correctly.
const boundsPad = 1e-9

// Facet is one lower-hull simplex: D vertex indices into the hull's point
// slice, the outward unit normal of its supporting hyperplane, and its
// centroid.
type Facet struct {
	Vertices []int
	Normal   []float64
	Centroid []float64

	bounds rtreego.Rect
}

// Bounds returns the facet's spatial bounding box, satisfying
// rtreego.Spatial.
func (f *Facet) Bounds() rtreego.Rect { return f.bounds }

// Hull is the lower envelope of one point cloud plus its query index.
type Hull struct {
	points [][]float64
	dim    int

	// Facets is the stable-envelope subset of the hull boundary. It is
	// empty when the input was degenerate; see Degenerate.
	Facets []*Facet

	index *rtreego.Rtree
}

// Build constructs the convex hull of points and retains its lower envelope.
//
// Degenerate input (fewer than D+1 points, or affinely dependent within
// tolerance) yields a hull with no facets rather than an error; callers
// should treat that as "hull undefined" (typically by assuming a flat energy
// plane), not as a valid empty envelope.
func Build(points [][]float64) *Hull {
	h := &Hull{points: clonePoints(points)}
	if len(h.points) == 0 {
		return h
	}
	h.dim = len(h.points[0])

	for _, face := range hull.Build(h.points) {
		// Lower-hull filter: keep faces whose normal's energy component
		// points down beyond tolerance.
		if face.Plane.Normal[h.dim-1] >= -geom.Eps {
			continue
		}
		facet := &Facet{
			Vertices: face.Vertices,
			Normal:   face.Plane.Normal,
			Centroid: face.Centroid,
		}
		facet.bounds = h.facetBounds(facet)
		h.Facets = append(h.Facets, facet)
	}

	if len(h.Facets) > 0 {
		h.index = rtreego.NewTree(h.dim-1, 2, 8)
		for _, f := range h.Facets {
			h.index.Insert(f)
		}
	}
	return h
}

// Degenerate reports whether construction produced no lower-hull facets, the
// recoverable failure mode of degenerate input (coplanar clouds, too few
// points).
func (h *Hull) Degenerate() bool { return len(h.Facets) == 0 }

// Dim returns the full point dimension (spatial coordinates plus energy),
// or 0 for an empty hull.
func (h *Hull) Dim() int { return h.dim }

// Point returns the coordinates of input point i.
func (h *Hull) Point(i int) []float64 { return h.points[i] }

// facetBounds computes the axis-aligned spatial bounding box of a facet,
// padded so every extent is positive.
func (h *Hull) facetBounds(f *Facet) rtreego.Rect {
	s := h.dim - 1
	lo := make([]float64, s)
	hi := make([]float64, s)
	copy(lo, h.points[f.Vertices[0]][:s])
	copy(hi, lo)

	for _, v := range f.Vertices[1:] {
		for i, c := range h.points[v][:s] {
			if c < lo[i] {
				lo[i] = c
			}
			if c > hi[i] {
				hi[i] = c
			}
		}
	}

	lengths := make([]float64, s)
	for i := range lo {
		lo[i] -= boundsPad
		lengths[i] = hi[i] - lo[i] + 2*boundsPad
	}

	rect, err := rtreego.NewRect(rtreego.Point(lo), lengths)
	if err != nil {
		// Padded lengths are always positive; this only fires on a
		// dimension mismatch, which would be a construction bug.
		return rtreego.Point(lo).ToRect(boundsPad)
	}
	return rect
}

func clonePoints(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = append([]float64(nil), p...)
	}
	return out
}
