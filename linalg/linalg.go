// Package linalg is the dense linear-algebra kernel behind the hull engine:
// determinants, linear solves and small []float64 vector helpers, all
// dimension-generic.
//
// Systems of size 2 to 4 go through closed forms (hand-written 2×2,
// mgl64 for 3×3 and 4×4); anything larger falls back to elimination with
// partial pivoting. All functions copy their inputs before eliminating in
// place, so callers never observe mutation.
package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// PivotEps is the pivot magnitude below which elimination treats the matrix
// as singular.
const PivotEps = 1e-10

// Det computes the determinant of the square matrix m (rows of columns).
//
// Sizes up to 4 use closed forms; larger matrices use LU decomposition with
// partial pivoting and return exactly 0 when a pivot magnitude drops below
// PivotEps, which is the singularity signal the hull code keys on.
func Det(m [][]float64) float64 {
	switch len(m) {
	case 0:
		return 0
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	case 3:
		// det(Aᵀ) = det(A), so the row/column packing order is irrelevant.
		return mgl64.Mat3{
			m[0][0], m[0][1], m[0][2],
			m[1][0], m[1][1], m[1][2],
			m[2][0], m[2][1], m[2][2],
		}.Det()
	case 4:
		return mgl64.Mat4{
			m[0][0], m[0][1], m[0][2], m[0][3],
			m[1][0], m[1][1], m[1][2], m[1][3],
			m[2][0], m[2][1], m[2][2], m[2][3],
			m[3][0], m[3][1], m[3][2], m[3][3],
		}.Det()
	}
	return detLU(m)
}

// detLU is the generic determinant path: Doolittle elimination with partial
// pivoting over a working copy of m.
func detLU(m [][]float64) float64 {
	n := len(m)
	a := cloneMatrix(m)

	det := 1.0
	for col := 0; col < n; col++ {
		// Partial pivoting: bring the largest remaining entry of this
		// column onto the diagonal.
		pivotRow := col
		pivotMag := math.Abs(a[col][col])
		for row := col + 1; row < n; row++ {
			if mag := math.Abs(a[row][col]); mag > pivotMag {
				pivotRow = row
				pivotMag = mag
			}
		}

		if pivotMag < PivotEps {
			return 0 // singular or numerically degenerate
		}

		if pivotRow != col {
			a[pivotRow], a[col] = a[col], a[pivotRow]
			det = -det // a row swap flips the sign
		}

		det *= a[col][col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for k := col + 1; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}

	return det
}

// Solve solves the linear system a·x = b and returns x, or nil when the
// system is singular within tolerance.
//
// Fast paths: 1×1 (binary-system barycentrics reduce to this), 2×2 Cramer,
// 3×3 explicit inverse. The general path delegates to gonum's dense solver
// (LU with partial pivoting); any solver error maps to nil.
func Solve(a [][]float64, b []float64) []float64 {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil
	}

	switch n {
	case 1:
		if math.Abs(a[0][0]) < PivotEps {
			return nil
		}
		return []float64{b[0] / a[0][0]}
	case 2:
		det := a[0][0]*a[1][1] - a[0][1]*a[1][0]
		if math.Abs(det) < PivotEps {
			return nil
		}
		return []float64{
			(b[0]*a[1][1] - b[1]*a[0][1]) / det,
			(b[1]*a[0][0] - b[0]*a[1][0]) / det,
		}
	case 3:
		return solve3(a, b)
	}

	return solveDense(a, b)
}

// solve3 solves a 3×3 system through the explicit inverse.
func solve3(a [][]float64, b []float64) []float64 {
	// mgl64 matrices are column-major: pack a's columns in order.
	m := mgl64.Mat3{
		a[0][0], a[1][0], a[2][0],
		a[0][1], a[1][1], a[2][1],
		a[0][2], a[1][2], a[2][2],
	}
	if math.Abs(m.Det()) < PivotEps {
		return nil
	}
	x := m.Inv().Mul3x1(mgl64.Vec3{b[0], b[1], b[2]})
	return []float64{x[0], x[1], x[2]}
}

// solveDense is the generic N×N path.
func solveDense(a [][]float64, b []float64) []float64 {
	n := len(a)
	flat := make([]float64, 0, n*n)
	for _, row := range a {
		if len(row) != n {
			return nil
		}
		flat = append(flat, row...)
	}

	rhs := mat.NewVecDense(n, append([]float64(nil), b...))
	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(n, n, flat), rhs); err != nil {
		return nil // singular or hopelessly ill-conditioned
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out
}

// Dot returns the inner product of a and b.
func Dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Sub returns a - b as a new slice.
func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// Scale returns s·a as a new slice.
func Scale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * s
	}
	return out
}

// Norm returns the Euclidean length of a.
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Normalize returns a unit-length copy of a. ok is false when a is too short
// to normalize, in which case the zero vector is returned.
func Normalize(a []float64) ([]float64, bool) {
	n := Norm(a)
	if n < PivotEps {
		return make([]float64, len(a)), false
	}
	return Scale(a, 1/n), true
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
