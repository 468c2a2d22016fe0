package linalg

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestDet(t *testing.T) {
	t.Run("identity has determinant one in every size", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			m := make([][]float64, n)
			for i := range m {
				m[i] = make([]float64, n)
				m[i][i] = 1
			}
			if d := Det(m); !almostEqual(d, 1) {
				t.Errorf("Expected det(I%d) = 1, got %v", n, d)
			}
		}
	})

	t.Run("2x2 closed form", func(t *testing.T) {
		m := [][]float64{{3, 1}, {2, 4}}
		if d := Det(m); !almostEqual(d, 10) {
			t.Errorf("Expected det = 10, got %v", d)
		}
	})

	t.Run("3x3 closed form", func(t *testing.T) {
		m := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
		if d := Det(m); !almostEqual(d, -3) {
			t.Errorf("Expected det = -3, got %v", d)
		}
	})

	t.Run("closed forms agree with the LU path", func(t *testing.T) {
		matrices := [][][]float64{
			{{2, -1, 0}, {1, 3, 2}, {0, 5, -2}},
			{{1, 2, 0, 1}, {0, 3, 1, 2}, {2, 1, 4, 0}, {1, 0, 2, 5}},
		}
		for _, m := range matrices {
			closed, lu := Det(m), detLU(m)
			if math.Abs(closed-lu) > 1e-8 {
				t.Errorf("Closed-form det %v disagrees with LU det %v", closed, lu)
			}
		}
	})

	t.Run("row swap keeps the sign convention", func(t *testing.T) {
		// Leading zero forces a pivot swap in the LU path.
		m := [][]float64{
			{0, 1, 0, 0, 0},
			{1, 0, 0, 0, 0},
			{0, 0, 1, 0, 0},
			{0, 0, 0, 1, 0},
			{0, 0, 0, 0, 1},
		}
		if d := Det(m); !almostEqual(d, -1) {
			t.Errorf("Expected det = -1 for a single transposition, got %v", d)
		}
	})

	t.Run("singular matrix reports zero", func(t *testing.T) {
		m := [][]float64{
			{1, 2, 3, 4, 5},
			{2, 4, 6, 8, 10}, // multiple of row 0
			{0, 1, 0, 1, 0},
			{1, 0, 1, 0, 1},
			{3, 1, 4, 1, 5},
		}
		if d := Det(m); d != 0 {
			t.Errorf("Expected exactly 0 for a singular matrix, got %v", d)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		m := [][]float64{
			{0, 1, 2, 3, 4},
			{1, 2, 0, 1, 1},
			{2, 0, 3, 0, 2},
			{3, 1, 0, 4, 0},
			{4, 1, 2, 0, 5},
		}
		before := make([][]float64, len(m))
		for i, row := range m {
			before[i] = append([]float64(nil), row...)
		}
		Det(m)
		for i := range m {
			for j := range m[i] {
				if m[i][j] != before[i][j] {
					t.Fatalf("Det mutated its input at (%d,%d)", i, j)
				}
			}
		}
	})
}

func TestSolve(t *testing.T) {
	t.Run("1x1 system", func(t *testing.T) {
		x := Solve([][]float64{{4}}, []float64{2})
		if x == nil || !almostEqual(x[0], 0.5) {
			t.Errorf("Expected [0.5], got %v", x)
		}
	})

	t.Run("2x2 Cramer", func(t *testing.T) {
		x := Solve([][]float64{{2, 1}, {1, 3}}, []float64{5, 10})
		if x == nil || !almostEqual(x[0], 1) || !almostEqual(x[1], 3) {
			t.Errorf("Expected [1 3], got %v", x)
		}
	})

	t.Run("3x3 explicit inverse", func(t *testing.T) {
		a := [][]float64{{1, 0, 2}, {0, 3, 0}, {1, 1, 1}}
		want := []float64{2, -1, 1}
		b := mulVec(a, want)
		x := Solve(a, b)
		if x == nil {
			t.Fatal("Expected a solution, got nil")
		}
		for i := range want {
			if !almostEqual(x[i], want[i]) {
				t.Errorf("Component %d: expected %v, got %v", i, want[i], x[i])
			}
		}
	})

	t.Run("general dense path round-trips", func(t *testing.T) {
		a := [][]float64{
			{4, 1, 0, 0, 1},
			{1, 5, 1, 0, 0},
			{0, 1, 6, 1, 0},
			{0, 0, 1, 7, 1},
			{1, 0, 0, 1, 8},
		}
		want := []float64{1, -2, 0.5, 3, -1}
		x := Solve(a, mulVec(a, want))
		if x == nil {
			t.Fatal("Expected a solution, got nil")
		}
		for i := range want {
			if math.Abs(x[i]-want[i]) > 1e-8 {
				t.Errorf("Component %d: expected %v, got %v", i, want[i], x[i])
			}
		}
	})

	t.Run("singular systems return nil", func(t *testing.T) {
		cases := []struct {
			name string
			a    [][]float64
			b    []float64
		}{
			{"1x1 zero", [][]float64{{0}}, []float64{1}},
			{"2x2 dependent rows", [][]float64{{1, 2}, {2, 4}}, []float64{1, 2}},
			{"3x3 dependent rows", [][]float64{{1, 1, 1}, {2, 2, 2}, {0, 1, 0}}, []float64{1, 2, 3}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if x := Solve(tc.a, tc.b); x != nil {
					t.Errorf("Expected nil for singular system, got %v", x)
				}
			})
		}
	})

	t.Run("dimension mismatch returns nil", func(t *testing.T) {
		if x := Solve([][]float64{{1, 0}, {0, 1}}, []float64{1}); x != nil {
			t.Errorf("Expected nil on mismatched b, got %v", x)
		}
	})
}

func TestVectorHelpers(t *testing.T) {
	t.Run("dot and norm", func(t *testing.T) {
		a := []float64{3, 4}
		if d := Dot(a, a); !almostEqual(d, 25) {
			t.Errorf("Expected 25, got %v", d)
		}
		if n := Norm(a); !almostEqual(n, 5) {
			t.Errorf("Expected 5, got %v", n)
		}
	})

	t.Run("sub and scale allocate new slices", func(t *testing.T) {
		a, b := []float64{1, 2, 3}, []float64{0, 1, 1}
		diff := Sub(a, b)
		if !almostEqual(diff[0], 1) || !almostEqual(diff[1], 1) || !almostEqual(diff[2], 2) {
			t.Errorf("Unexpected difference %v", diff)
		}
		diff[0] = 99
		if a[0] != 1 {
			t.Error("Sub aliased its input")
		}

		scaled := Scale(a, 2)
		if !almostEqual(scaled[2], 6) || a[2] != 3 {
			t.Errorf("Scale misbehaved: %v (input now %v)", scaled, a)
		}
	})

	t.Run("normalize", func(t *testing.T) {
		u, ok := Normalize([]float64{0, 3, 4})
		if !ok {
			t.Fatal("Expected normalization to succeed")
		}
		if !almostEqual(Norm(u), 1) {
			t.Errorf("Expected unit length, got %v", Norm(u))
		}

		zero, ok := Normalize([]float64{0, 0, 0})
		if ok {
			t.Error("Expected failure for the zero vector")
		}
		for _, v := range zero {
			if v != 0 {
				t.Errorf("Expected zero vector fallback, got %v", zero)
			}
		}
	})
}

func mulVec(a [][]float64, x []float64) []float64 {
	out := make([]float64, len(a))
	for i, row := range a {
		for j, v := range row {
			out[i] += v * x[j]
		}
	}
	return out
}
