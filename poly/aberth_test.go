package poly

import (
	"math"
	"testing"
)

func TestConvexHullTopKeepsOnlyUpperChain(t *testing.T) {
	set := []hullPoint{
		{k: 0, x: 0, y: 0},
		{k: 1, x: 1, y: -5},
		{k: 2, x: 2, y: 0},
	}
	hull := convexHullTop(set)
	if len(hull) != 2 || hull[0].k != 0 || hull[1].k != 2 {
		t.Errorf("expected hull {0, 2}, got %v", hull)
	}
}

func TestConvexHullTopKeepsPeaks(t *testing.T) {
	set := []hullPoint{
		{k: 0, x: 0, y: 0},
		{k: 1, x: 1, y: 3},
		{k: 2, x: 2, y: 0},
	}
	hull := convexHullTop(set)
	if len(hull) != 3 {
		t.Errorf("expected all points on the hull, got %v", hull)
	}
}

func TestInitialGuessCountMatchesDegree(t *testing.T) {
	p := FromRoots([]float64{1, -2, 3, -4, 5})
	guesses := initialGuesses(p)
	if len(guesses) != 5 {
		t.Errorf("expected one guess per root, got %d", len(guesses))
	}
}

func TestInitialGuessRadiiScale(t *testing.T) {
	// Roots at 1 and 100: the hull should yield guesses on circles whose
	// radii straddle the true magnitudes.
	p := FromRoots([]float64{1, 100})

	// Degree 2 is closed form in the public API; exercise the generator
	// with a padded cubic instead.
	cubic := p.Mul(FromCoeffs([]float64{10, 1}))
	guesses := initialGuesses(cubic)
	if len(guesses) != 3 {
		t.Fatalf("expected 3 guesses, got %d", len(guesses))
	}
	minR, maxR := math.Inf(1), 0.0
	for _, g := range guesses {
		r := cmplxAbs(g)
		minR = math.Min(minR, r)
		maxR = math.Max(maxR, r)
	}
	if minR < 0.05 || maxR > 2000 {
		t.Errorf("guess radii badly scaled: min %v, max %v", minR, maxR)
	}
}

func TestRootsFinderHandlesManyRoots(t *testing.T) {
	roots := []float64{10, 10.0 / 323.4, 1, -2, 3}
	p := FromRoots(roots)
	rf := newRootsFinder(p)
	got := rf.find()
	if len(got) != len(roots) {
		t.Errorf("expected %d roots, got %d", len(roots), len(got))
	}
}

func TestPolishRootsRefinesSeededApproximations(t *testing.T) {
	p := FromRoots([]float64{1, 2, 3, 4})

	// One seed sits exactly on a root and one is duplicated; both cases
	// arise when the vector comes from an eigenvalue decomposition.
	seeds := []complex128{1, 2.3, 2.3, 4.4}
	got := polishRoots(p, seeds)
	if len(got) != 4 {
		t.Fatalf("expected 4 roots, got %d", len(got))
	}
	if got[0] != 1 {
		t.Errorf("seed on an exact root must stay put, got %v", got[0])
	}

	res := make([]float64, len(got))
	for i, r := range got {
		if imag(r) != 0 {
			t.Errorf("real seeds must stay real, got %v", r)
		}
		res[i] = real(r)
	}
	matchClosest(t, res, []float64{1, 2, 3, 4}, 1e-4)
}

func TestRootsFinderDefaultBudget(t *testing.T) {
	p := FromRoots([]float64{1, 2, 3, 4})
	rf := newRootsFinder(p)
	if rf.iterations != DefaultRootIterations {
		t.Errorf("expected default budget %d, got %d", DefaultRootIterations, rf.iterations)
	}
}
