package geom

import "github.com/akmonengine/strata/linalg"

// AffineDistance returns the Euclidean distance from p to the affine hull of
// the reference points: the point itself for one reference, the line through
// two, or the span of the edge directions for three or more (Gram-matrix
// projection). When the Gram system is singular (linearly dependent edge
// directions) it falls back to Gram-Schmidt orthogonalization.
//
// Only the initial-simplex seeding uses this; it does not need to be fast,
// it needs to be well conditioned.
func AffineDistance(p []float64, refs [][]float64) float64 {
	switch len(refs) {
	case 0:
		return 0
	case 1:
		return linalg.Norm(linalg.Sub(p, refs[0]))
	case 2:
		return lineDistance(p, refs[0], refs[1])
	}

	dirs := make([][]float64, len(refs)-1)
	for i := 1; i < len(refs); i++ {
		dirs[i-1] = linalg.Sub(refs[i], refs[0])
	}
	w := linalg.Sub(p, refs[0])

	// Solve the normal equations G·c = rhs with G the Gram matrix of the
	// edge directions; the residual w - Σ cᵢ·dirsᵢ is perpendicular to the
	// span, so its length is the distance.
	k := len(dirs)
	gram := make([][]float64, k)
	rhs := make([]float64, k)
	for i := 0; i < k; i++ {
		gram[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			gram[i][j] = linalg.Dot(dirs[i], dirs[j])
		}
		rhs[i] = linalg.Dot(dirs[i], w)
	}

	coeffs := linalg.Solve(gram, rhs)
	if coeffs == nil {
		return orthogonalDistance(w, dirs)
	}

	residual := append([]float64(nil), w...)
	for i, c := range coeffs {
		for j := range residual {
			residual[j] -= c * dirs[i][j]
		}
	}
	return linalg.Norm(residual)
}

// lineDistance is the two-reference case: reject w = p-a onto the direction
// a→b and measure what is left.
func lineDistance(p, a, b []float64) float64 {
	u, ok := linalg.Normalize(linalg.Sub(b, a))
	if !ok {
		return linalg.Norm(linalg.Sub(p, a)) // a and b coincide
	}
	w := linalg.Sub(p, a)
	proj := linalg.Dot(w, u)
	for i := range w {
		w[i] -= proj * u[i]
	}
	return linalg.Norm(w)
}

// orthogonalDistance is the singular-Gram fallback: orthonormalize the edge
// directions with Gram-Schmidt, dropping dependent ones, then strip the
// projection of w onto each surviving basis vector.
func orthogonalDistance(w []float64, dirs [][]float64) float64 {
	var basis [][]float64
	for _, d := range dirs {
		v := append([]float64(nil), d...)
		for _, b := range basis {
			proj := linalg.Dot(v, b)
			for i := range v {
				v[i] -= proj * b[i]
			}
		}
		if u, ok := linalg.Normalize(v); ok && linalg.Norm(v) > Eps {
			basis = append(basis, u)
		}
	}

	r := append([]float64(nil), w...)
	for _, b := range basis {
		proj := linalg.Dot(r, b)
		for i := range r {
			r[i] -= proj * b[i]
		}
	}
	return linalg.Norm(r)
}
