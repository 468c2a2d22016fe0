// Command ternary builds the lower hull of a synthetic A-B-C phase diagram
// and reports energy-above-hull statistics for its entries.
//
// Compositions are parameterized by the independent fractions of B and C
// (the A fraction is implied), so points are (xB, xC, energy) and the valid
// domain is the triangle xB, xC >= 0, xB+xC <= 1. The three one-hot corner
// references at zero energy are supplied explicitly, per the engine's caller
// contract.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/akmonengine/strata"
	"github.com/pkg/profile"
)

func main() {
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	entries := flag.Int("entries", 400, "number of synthetic entries")
	seed := flag.Int64("seed", 1, "random seed")
	workers := flag.Int("workers", 4, "batch query workers")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	rng := rand.New(rand.NewSource(*seed))
	points := syntheticTernary(rng, *entries)

	h := strata.Build(points)
	if h.Degenerate() {
		fmt.Println("hull undefined for this input; falling back to a flat energy plane")
		return
	}
	fmt.Printf("lower hull: %d facets over %d entries\n", len(h.Facets), len(points))

	distances := h.AboveHullBatch(points, *workers)
	stable, maxAbove := 0, 0.0
	for _, d := range distances {
		if math.IsNaN(d) {
			continue
		}
		if d <= strata.Eps {
			stable++
		} else if d > maxAbove {
			maxAbove = d
		}
	}
	fmt.Printf("stable entries: %d\n", stable)
	fmt.Printf("largest energy above hull: %.4f eV/atom\n", maxAbove)

	// A few spot queries across the composition triangle.
	for _, q := range [][]float64{{0.25, 0.25}, {0.5, 0.25}, {0.1, 0.8}, {0.7, 0.7}} {
		e := h.EnergyAt(q)
		if math.IsNaN(e) {
			fmt.Printf("xB=%.2f xC=%.2f: outside the compositional domain\n", q[0], q[1])
			continue
		}
		fmt.Printf("xB=%.2f xC=%.2f: hull energy %.4f eV/atom\n", q[0], q[1], e)
	}
}

// syntheticTernary generates the three corner references plus randomly
// composed entries with a mixing-style energy: a smooth negative bowl with
// noise on top, so some entries land on the hull and the rest float above it.
func syntheticTernary(rng *rand.Rand, n int) [][]float64 {
	points := [][]float64{
		{0, 0, 0}, // pure A
		{1, 0, 0}, // pure B
		{0, 1, 0}, // pure C
	}

	for i := 0; i < n; i++ {
		xB := rng.Float64()
		xC := rng.Float64() * (1 - xB)
		xA := 1 - xB - xC

		mixing := -4 * (xA*xB + xB*xC + xA*xC)
		noise := rng.Float64() * 0.5
		points = append(points, []float64{xB, xC, mixing + noise})
	}
	return points
}
