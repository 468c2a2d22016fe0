package hull

import (
	"sort"

	"github.com/akmonengine/strata/geom"
)

// build2D is the planar shortcut: Andrew's monotone chain over points sorted
// by (x, y), emitting the closed hull polygon as 2-vertex faces with outward
// unit normals. Collinear interior points are dropped by the strict-turn
// test, so D+1 collinear inputs degenerate to an empty result like every
// other dimension.
func build2D(points [][]float64) []Face {
	n := len(points)
	if n < 3 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}
		return pa[1] < pb[1]
	})

	push := func(chain []int, idx int) []int {
		for len(chain) >= 2 {
			o, a := points[chain[len(chain)-2]], points[chain[len(chain)-1]]
			b := points[idx]
			cross := (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
			if cross > geom.Eps {
				break // strict counter-clockwise turn, keep
			}
			chain = chain[:len(chain)-1]
		}
		return append(chain, idx)
	}

	var lower []int
	for _, idx := range order {
		lower = push(lower, idx)
	}
	var upper []int
	for i := n - 1; i >= 0; i-- {
		upper = push(upper, order[i])
	}

	// Chain endpoints coincide; drop each chain's last entry to close the cycle.
	cycle := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(cycle) < 3 {
		return nil // all points collinear within tolerance
	}

	hullPts := make([][]float64, len(cycle))
	for i, idx := range cycle {
		hullPts[i] = points[idx]
	}
	interior := geom.Centroid(hullPts)

	faces := make([]Face, 0, len(cycle))
	for i, idx := range cycle {
		next := cycle[(i+1)%len(cycle)]
		segment := [][]float64{points[idx], points[next]}
		plane, ok := geom.PlaneThrough(segment, interior)
		if !ok {
			continue
		}
		faces = append(faces, Face{
			Vertices: []int{idx, next},
			Plane:    plane,
			Centroid: geom.Centroid(segment),
			farIdx:   -1,
		})
	}
	return faces
}
