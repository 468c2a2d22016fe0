// Package hull builds N-dimensional convex hulls with an incremental
// quickhull: grow a closed simplicial boundary from an initial simplex by
// repeatedly absorbing the farthest outside point of any face, excising the
// faces it can see and stitching new faces along the visibility horizon.
//
// The loop is dimension-generic; a 2-D input takes a monotone-chain shortcut
// since single-edge facets make the horizon machinery pointless overhead.
//
// References:
//   - Barber, Dobkin, Huhdanpaa: "The Quickhull Algorithm for Convex Hulls"
//     (ACM TOMS, 1996)
package hull

import (
	"sort"
	"strconv"

	"github.com/akmonengine/strata/geom"
)

// Face is one (D-1)-simplex of the hull boundary: D vertex indices into the
// input point slice, the supporting hyperplane with outward unit normal, and
// the face centroid. The outside bookkeeping is only meaningful during
// construction.
type Face struct {
	Vertices []int
	Plane    geom.Hyperplane
	Centroid []float64

	outside []int // input indices beyond this face, not yet absorbed
	farIdx  int   // cached farthest outside point, -1 when none
	farDist float64
}

// Build returns the complete simplicial boundary of the convex hull of
// points. The result is empty, never an error, when the input is
// degenerate: fewer than D+1 points, or no affinely independent initial
// simplex within tolerance.
func Build(points [][]float64) []Face {
	if len(points) == 0 {
		return nil
	}
	dim := len(points[0])
	if dim < 2 {
		return nil
	}
	if dim == 2 {
		return build2D(points)
	}
	if len(points) < dim+1 {
		return nil
	}

	seeds, ok := initialSimplex(points, dim)
	if !ok {
		return nil
	}

	b := newBuilder(points, dim, seeds)
	if b == nil {
		return nil
	}
	b.run()

	out := make([]Face, len(b.faces))
	for i, f := range b.faces {
		out[i] = *f
	}
	return out
}

// builder owns one construction run: the working face arena and the fixed
// interior reference every face normal is oriented against.
type builder struct {
	points   [][]float64
	dim      int
	interior []float64
	faces    []*Face
}

// newBuilder creates the D+1 facets of the initial simplex and distributes
// every non-seed point to the outside set of each face it lies beyond.
// Returns nil when any initial facet is degenerate.
func newBuilder(points [][]float64, dim int, seeds []int) *builder {
	seedPts := make([][]float64, len(seeds))
	for i, s := range seeds {
		seedPts[i] = points[s]
	}

	b := &builder{
		points:   points,
		dim:      dim,
		interior: geom.Centroid(seedPts),
	}

	// Leave-one-out: each facet of the simplex omits one of the D+1 seeds.
	for skip := range seeds {
		verts := make([]int, 0, dim)
		for i, s := range seeds {
			if i != skip {
				verts = append(verts, s)
			}
		}
		f := b.newFace(verts)
		if f == nil {
			return nil // co-hyperplanar seeds slipped through seeding
		}
		b.faces = append(b.faces, f)
	}

	isSeed := make(map[int]bool, len(seeds))
	for _, s := range seeds {
		isSeed[s] = true
	}
	for i := range points {
		if isSeed[i] {
			continue
		}
		for _, f := range b.faces {
			if d := f.Plane.Distance(points[i]); d > geom.Eps {
				f.addOutside(i, d)
			}
		}
	}

	return b
}

// newFace builds an outward-oriented face over the given vertex indices, or
// nil when the vertices are affinely dependent.
func (b *builder) newFace(verts []int) *Face {
	pts := make([][]float64, len(verts))
	for i, v := range verts {
		pts[i] = b.points[v]
	}
	plane, ok := geom.PlaneThrough(pts, b.interior)
	if !ok {
		return nil
	}
	return &Face{
		Vertices: verts,
		Plane:    plane,
		Centroid: geom.Centroid(pts),
		farIdx:   -1,
	}
}

func (f *Face) addOutside(idx int, dist float64) {
	f.outside = append(f.outside, idx)
	if f.farIdx < 0 || dist > f.farDist {
		f.farIdx, f.farDist = idx, dist
	}
}

// run drives the absorb/excise/stitch loop until no face has outside points.
// The cap is a safety net: every productive iteration absorbs one point, so
// the loop is bounded by the input size.
func (b *builder) run() {
	maxIterations := len(b.points) + 16

	for iter := 0; iter < maxIterations; iter++ {
		fi := b.farthestFace()
		if fi < 0 {
			return // hull closed: nothing lies outside any face
		}
		p := b.faces[fi].farIdx

		visible := b.visibleFaces(p)
		horizon := b.horizonRidges(visible)
		if len(horizon) == 0 {
			// Every face sees p, which means the interior reference
			// failed numerically. Drop p rather than tearing the hull open.
			b.dropPoint(visible, p)
			continue
		}

		orphans := b.collectOutside(visible, p)
		b.removeFaces(visible)

		newFaces := make([]*Face, 0, len(horizon))
		for _, ridge := range horizon {
			verts := append(append(make([]int, 0, b.dim), ridge...), p)
			if f := b.newFace(verts); f != nil {
				newFaces = append(newFaces, f)
				b.faces = append(b.faces, f)
			}
		}

		b.assignOrphans(orphans, newFaces)
	}
}

// farthestFace returns the index of the face holding the globally farthest
// outside point, or -1 when every outside set is empty. Selecting the global
// maximum (not a per-face one) keeps numerical error bounded over many
// iterations.
func (b *builder) farthestFace() int {
	best, bestDist := -1, 0.0
	for i, f := range b.faces {
		if f.farIdx >= 0 && f.farDist > bestDist {
			best, bestDist = i, f.farDist
		}
	}
	return best
}

// visibleFaces returns the indices of every face whose plane puts point p
// strictly outside.
func (b *builder) visibleFaces(p int) []int {
	var visible []int
	for i, f := range b.faces {
		if f.Plane.Distance(b.points[p]) > geom.Eps {
			visible = append(visible, i)
		}
	}
	return visible
}

// horizonRidges returns the (D-1)-vertex ridges that belong to exactly one
// visible face. Ridges shared by two visible faces are interior to the
// visible region and vanish with it.
func (b *builder) horizonRidges(visible []int) [][]int {
	type entry struct {
		verts []int
		count int
	}
	ridges := make(map[string]*entry)

	for _, fi := range visible {
		f := b.faces[fi]
		for skip := range f.Vertices {
			ridge := make([]int, 0, len(f.Vertices)-1)
			for i, v := range f.Vertices {
				if i != skip {
					ridge = append(ridge, v)
				}
			}
			key := ridgeKey(ridge)
			if e, ok := ridges[key]; ok {
				e.count++
			} else {
				ridges[key] = &entry{verts: ridge, count: 1}
			}
		}
	}

	var horizon [][]int
	for _, e := range ridges {
		if e.count == 1 {
			horizon = append(horizon, e.verts)
		}
	}
	return horizon
}

// ridgeKey builds a canonical map key from a ridge's sorted vertex indices.
func ridgeKey(verts []int) string {
	sorted := append([]int(nil), verts...)
	sort.Ints(sorted)

	buf := make([]byte, 0, 4*len(sorted))
	for _, v := range sorted {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ':')
	}
	return string(buf)
}

// collectOutside gathers the union of the visible faces' outside sets,
// deduplicated and with the absorbed point excluded.
func (b *builder) collectOutside(visible []int, absorbed int) []int {
	seen := map[int]bool{absorbed: true}
	var orphans []int
	for _, fi := range visible {
		for _, q := range b.faces[fi].outside {
			if !seen[q] {
				seen[q] = true
				orphans = append(orphans, q)
			}
		}
	}
	return orphans
}

// removeFaces deletes the given face indices with swap-with-last, highest
// index first so earlier removals cannot invalidate later ones.
func (b *builder) removeFaces(indices []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, idx := range indices {
		last := len(b.faces) - 1
		b.faces[idx] = b.faces[last]
		b.faces = b.faces[:last]
	}
}

// assignOrphans reassigns each orphaned point to the single new face it lies
// outside of with the largest margin; points inside all new faces are now
// interior and dropped.
func (b *builder) assignOrphans(orphans []int, newFaces []*Face) {
	for _, q := range orphans {
		var best *Face
		bestDist := geom.Eps
		for _, f := range newFaces {
			if d := f.Plane.Distance(b.points[q]); d > bestDist {
				best, bestDist = f, d
			}
		}
		if best != nil {
			best.addOutside(q, bestDist)
		}
	}
}

// dropPoint erases p from the given faces' outside sets, refreshing the
// cached farthest entries.
func (b *builder) dropPoint(faceIndices []int, p int) {
	for _, fi := range faceIndices {
		f := b.faces[fi]
		kept := f.outside[:0]
		for _, q := range f.outside {
			if q != p {
				kept = append(kept, q)
			}
		}
		f.outside = kept

		f.farIdx, f.farDist = -1, 0
		for _, q := range f.outside {
			if d := f.Plane.Distance(b.points[q]); f.farIdx < 0 || d > f.farDist {
				f.farIdx, f.farDist = q, d
			}
		}
	}
}

// Closed reports whether the face set forms a watertight boundary: every
// (D-2)-ridge shared by exactly two faces. An empty face set is not closed.
func Closed(faces []Face) bool {
	counts := make(map[string]int)
	for _, f := range faces {
		for skip := range f.Vertices {
			ridge := make([]int, 0, len(f.Vertices)-1)
			for i, v := range f.Vertices {
				if i != skip {
					ridge = append(ridge, v)
				}
			}
			counts[ridgeKey(ridge)]++
		}
	}
	if len(counts) == 0 {
		return false
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}
