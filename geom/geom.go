// Package geom provides the geometric primitives of the hull engine:
// hyperplanes through D points of D-space, signed point-to-plane distances,
// centroids, and distances to affine subspaces (used for simplex seeding).
package geom

import (
	"github.com/akmonengine/strata/linalg"
	"github.com/go-gl/mathgl/mgl64"
)

// Eps is the geometric tolerance shared across the engine. Distances within
// Eps of a hyperplane count as "on" it.
const Eps = 1e-9

// Hyperplane is a unit normal plus scalar offset satisfying
// normal·x + offset = 0 for points on the plane. The normal points away from
// the interior reference it was oriented against, so a positive Distance
// means "outside".
type Hyperplane struct {
	Normal []float64
	Offset float64
}

// Distance returns the signed distance from x to the plane.
func (h Hyperplane) Distance(x []float64) float64 {
	return linalg.Dot(h.Normal, x) + h.Offset
}

// Centroid returns the arithmetic mean of the given points.
func Centroid(pts [][]float64) []float64 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]float64, len(pts[0]))
	for _, p := range pts {
		for i, v := range p {
			out[i] += v
		}
	}
	inv := 1 / float64(len(pts))
	for i := range out {
		out[i] *= inv
	}
	return out
}

// PlaneThrough builds the hyperplane containing the D given points of
// D-space, with its unit normal oriented away from the interior reference
// point. ok is false when the points are affinely dependent within Eps, in
// which case the returned plane carries a zero normal.
//
// The normal comes from cofactor expansion of the (D-1)×D edge matrix: each
// column's minor with alternating sign is a normal component. D=3 skips the
// minors and uses a plain cross product.
func PlaneThrough(pts [][]float64, interior []float64) (Hyperplane, bool) {
	dim := len(pts[0])
	if len(pts) != dim {
		return Hyperplane{Normal: make([]float64, dim)}, false
	}

	var raw []float64
	if dim == 3 {
		raw = cross3(pts)
	} else {
		raw = cofactorNormal(pts, dim)
	}

	normal, ok := linalg.Normalize(raw)
	if !ok || linalg.Norm(raw) < Eps {
		return Hyperplane{Normal: make([]float64, dim)}, false
	}

	plane := Hyperplane{Normal: normal, Offset: -linalg.Dot(normal, pts[0])}
	if plane.Distance(interior) > 0 {
		for i := range plane.Normal {
			plane.Normal[i] = -plane.Normal[i]
		}
		plane.Offset = -plane.Offset
	}
	return plane, true
}

// cross3 is the 3-D fast path: edge1 × edge2.
func cross3(pts [][]float64) []float64 {
	p0 := mgl64.Vec3{pts[0][0], pts[0][1], pts[0][2]}
	p1 := mgl64.Vec3{pts[1][0], pts[1][1], pts[1][2]}
	p2 := mgl64.Vec3{pts[2][0], pts[2][1], pts[2][2]}
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	return []float64{n[0], n[1], n[2]}
}

// cofactorNormal computes the generic null-space normal of the (dim-1)×dim
// edge matrix via alternating-sign minors.
func cofactorNormal(pts [][]float64, dim int) []float64 {
	edges := make([][]float64, dim-1)
	for i := 1; i < dim; i++ {
		edges[i-1] = linalg.Sub(pts[i], pts[0])
	}

	normal := make([]float64, dim)
	minor := make([][]float64, dim-1)
	for col := 0; col < dim; col++ {
		for r, edge := range edges {
			row := make([]float64, 0, dim-1)
			row = append(row, edge[:col]...)
			row = append(row, edge[col+1:]...)
			minor[r] = row
		}
		d := linalg.Det(minor)
		if col%2 == 1 {
			d = -d
		}
		normal[col] = d
	}
	return normal
}
