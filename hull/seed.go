package hull

import (
	"github.com/akmonengine/strata/geom"
	"github.com/akmonengine/strata/linalg"
)

// seedSampleSize caps the quadratic farthest-pair scan for the first two
// simplex picks; the remaining picks are linear scans over all points.
const seedSampleSize = 100

// initialSimplex greedily picks dim+1 affinely independent point indices:
// the farthest pair among a bounded sample first, then whichever point lies
// farthest from the affine hull of the picks so far. ok is false when fewer
// than dim+1 points exist or every candidate is affinely dependent within
// tolerance.
func initialSimplex(points [][]float64, dim int) ([]int, bool) {
	n := len(points)
	if n < dim+1 {
		return nil, false
	}

	a, b, dist := farthestSampledPair(points)
	if dist < geom.Eps {
		// The sample collapsed to a single location; fall back to two
		// greedy full passes before giving up.
		a, b, dist = farthestGreedyPair(points)
		if dist < geom.Eps {
			return nil, false
		}
	}

	seeds := []int{a, b}
	used := map[int]bool{a: true, b: true}

	for len(seeds) < dim+1 {
		refs := make([][]float64, len(seeds))
		for i, s := range seeds {
			refs[i] = points[s]
		}

		bestIdx, bestDist := -1, geom.Eps
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			if d := geom.AffineDistance(points[i], refs); d > bestDist {
				bestIdx, bestDist = i, d
			}
		}
		if bestIdx < 0 {
			return nil, false // every remaining point is affinely dependent
		}
		seeds = append(seeds, bestIdx)
		used[bestIdx] = true
	}

	return seeds, true
}

// farthestSampledPair scans all pairs among the first seedSampleSize points.
func farthestSampledPair(points [][]float64) (int, int, float64) {
	sample := len(points)
	if sample > seedSampleSize {
		sample = seedSampleSize
	}

	a, b, best := 0, 0, -1.0
	for i := 0; i < sample; i++ {
		for j := i + 1; j < sample; j++ {
			if d := linalg.Norm(linalg.Sub(points[i], points[j])); d > best {
				a, b, best = i, j, d
			}
		}
	}
	return a, b, best
}

// farthestGreedyPair approximates the diameter in two linear passes: the
// point farthest from points[0], then the point farthest from that one.
func farthestGreedyPair(points [][]float64) (int, int, float64) {
	a := farthestFrom(points, 0)
	b := farthestFrom(points, a)
	return a, b, linalg.Norm(linalg.Sub(points[a], points[b]))
}

func farthestFrom(points [][]float64, from int) int {
	best, bestDist := from, -1.0
	for i := range points {
		if i == from {
			continue
		}
		if d := linalg.Norm(linalg.Sub(points[i], points[from])); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
