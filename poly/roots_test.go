package poly

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// matchClosest verifies that every expected value has a distinct computed
// value within the relative tolerance, in any order.
func matchClosest(t *testing.T, got, want []float64, reltol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d roots, got %d (%v)", len(want), len(got), got)
	}
	used := make([]bool, len(got))
	for _, w := range want {
		best := -1
		bestDist := math.Inf(1)
		for i, g := range got {
			if used[i] {
				continue
			}
			if d := math.Abs(g - w); d < bestDist {
				bestDist = d
				best = i
			}
		}
		scale := math.Max(1, math.Abs(w))
		if best < 0 || bestDist > reltol*scale {
			t.Errorf("no root close to %v in %v (closest off by %v)", w, got, bestDist)
			return
		}
		used[best] = true
	}
}

func TestRealQuadraticRoots(t *testing.T) {
	r1, r2, ok := RealQuadraticRoots(-2.0, 1.0)
	if !ok || r1 != 1 || r2 != 1 {
		t.Errorf("expected double root 1, got (%v, %v, ok=%v)", r1, r2, ok)
	}

	if _, _, ok := RealQuadraticRoots(-6.0, 10.0); ok {
		t.Error("negative discriminant must report no real roots")
	}

	r1, r2, ok = RealQuadraticRoots(3.0, 2.0)
	if !ok {
		t.Fatal("expected real roots")
	}
	matchClosest(t, []float64{r1, r2}, []float64{-1, -2}, 1e-12)

	r1, r2, ok = RealQuadraticRoots(-6.0, 9.0)
	if !ok || r1 != 3 || r2 != 3 {
		t.Errorf("expected double root 3, got (%v, %v, ok=%v)", r1, r2, ok)
	}

	// x^2 - 4: a zero linear term takes the positive sign, so the
	// positive root comes first.
	r1, r2, ok = RealQuadraticRoots(0.0, -4.0)
	if !ok || r1 != 2 || r2 != -2 {
		t.Errorf("expected (2, -2), got (%v, %v, ok=%v)", r1, r2, ok)
	}
}

func TestComplexQuadraticRoots(t *testing.T) {
	r1, r2 := ComplexQuadraticRoots(0.0, 1.0)
	if r1 != complex(0, -1) || r2 != complex(0, 1) {
		t.Errorf("expected conjugate pair (-i, i), got (%v, %v)", r1, r2)
	}

	r1, r2 = ComplexQuadraticRoots(-6.0, 10.0)
	if r1 != complex(3, -1) || r2 != complex(3, 1) {
		t.Errorf("expected (3-i, 3+i), got (%v, %v)", r1, r2)
	}

	r1, r2 = ComplexQuadraticRoots(-6.0, 9.0)
	if r1 != complex(3, 0) || r2 != complex(3, 0) {
		t.Errorf("expected repeated real root 3, got (%v, %v)", r1, r2)
	}

	r1, r2 = ComplexQuadraticRoots(3.0, 2.0)
	if r1 != complex(-1, 0) || r2 != complex(-2, 0) {
		t.Errorf("expected (-1, -2), got (%v, %v)", r1, r2)
	}

	r1, r2 = ComplexQuadraticRoots(0.0, -4.0)
	if r1 != complex(2, 0) || r2 != complex(-2, 0) {
		t.Errorf("expected (2, -2), got (%v, %v)", r1, r2)
	}
}

func TestFindZeroRoots(t *testing.T) {
	p := FromCoeffs([]int{0, 0, 1, 0, 2})
	z, cropped := FindZeroRoots(p)
	if z != 2 {
		t.Errorf("expected multiplicity 2 at the origin, got %d", z)
	}
	if want := FromCoeffs([]int{1, 0, 2}); !cropped.Equal(want) {
		t.Errorf("expected cropped polynomial %v, got %v", want, cropped)
	}
}

func TestFindZeroRootsZeroPolynomial(t *testing.T) {
	z, cropped := FindZeroRoots(Zero[float64]())
	if z != 0 || !cropped.IsZero() {
		t.Errorf("zero polynomial must strip to (0, zero), got (%d, %v)", z, cropped)
	}
}

func TestRealRootsDegree1(t *testing.T) {
	p := FromCoeffs([]float64{10, -2})
	roots, ok := RealRoots(p)
	if !ok || len(roots) != 1 {
		t.Fatalf("expected a single root, got %v (ok=%v)", roots, ok)
	}
	if math.Abs(roots[0]-5) > 1e-12 {
		t.Errorf("expected root 5, got %v", roots[0])
	}
}

func TestRealRootsAppendsZerosLast(t *testing.T) {
	p := FromRoots([]float64{-1, 1, 0})
	roots, ok := RealRoots(p)
	if !ok || len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %v (ok=%v)", roots, ok)
	}
	if roots[2] != 0 {
		t.Errorf("stripped zero root must come last, got %v", roots)
	}
	matchClosest(t, roots, []float64{-1, 1, 0}, 1e-9)
}

func TestRealRootsDegenerate(t *testing.T) {
	if _, ok := RealRoots(Zero[float64]()); ok {
		t.Error("zero polynomial must have absent real roots")
	}
	if _, ok := RealRoots(FromCoeffs([]float64{5.3})); ok {
		t.Error("nonzero constant must have absent real roots")
	}
}

func TestRealRootsReconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	want := make([]float64, 5)
	for i := range want {
		want[i] = -8 + 3.5*float64(i) + rng.Float64()
	}

	p := FromRoots(want)
	got, ok := RealRoots(p)
	if !ok {
		t.Fatal("expected real roots from a real-rooted polynomial")
	}
	matchClosest(t, got, want, 1e-4)
}

func TestRealRootsComplexPairAbsent(t *testing.T) {
	// (x^2 + 1)(x + 2) has one real and two complex roots.
	p := FromCoeffs([]float64{1, 0, 1}).Mul(FromCoeffs([]float64{2, 1}))
	if _, ok := RealRoots(p); ok {
		t.Error("complex eigenvalues must report absent real roots")
	}
}

func TestComplexRootsConjugatePair(t *testing.T) {
	p := FromCoeffs([]float64{1, 0, 1})
	roots := ComplexRoots(p)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %v", roots)
	}
	if roots[0] != complex(0, -1) || roots[1] != complex(0, 1) {
		t.Errorf("expected (-i, i), got %v", roots)
	}
}

func TestComplexRootsDegreeThree(t *testing.T) {
	p := FromCoeffs([]float64{1, 0, 1}).Mul(FromCoeffs([]float64{2, 1}))
	roots := ComplexRoots(p)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}

	real2 := false
	pair := 0
	for _, r := range roots {
		if math.Abs(imag(r)) < 1e-9 && math.Abs(real(r)+2) < 1e-9 {
			real2 = true
		}
		if math.Abs(imag(r)*imag(r)-1) < 1e-9 {
			pair++
		}
	}
	if !real2 || pair != 2 {
		t.Errorf("expected roots {-2, -i, i}, got %v", roots)
	}
}

func TestComplexRootsDegenerate(t *testing.T) {
	if roots := ComplexRoots(Zero[float64]()); len(roots) != 0 {
		t.Errorf("zero polynomial must have no complex roots, got %v", roots)
	}
	if roots := ComplexRoots(FromCoeffs([]float64{5.3})); len(roots) != 0 {
		t.Errorf("constant polynomial must have no complex roots, got %v", roots)
	}
}

func TestComplexRootsPureZeroRoot(t *testing.T) {
	p := FromCoeffs([]float64{0, 1})
	roots := ComplexRoots(p)
	if len(roots) != 1 || roots[0] != 0 {
		t.Errorf("expected the single root 0, got %v", roots)
	}
}

func TestIterativeRootsDegenerate(t *testing.T) {
	if roots := IterativeRoots(Zero[float64]()); len(roots) != 0 {
		t.Errorf("zero polynomial: expected no roots, got %v", roots)
	}
	if roots := IterativeRoots(FromCoeffs([]float64{5.3})); len(roots) != 0 {
		t.Errorf("constant: expected no roots, got %v", roots)
	}
	if roots := IterativeRootsWithMax(Zero[float64](), 5); len(roots) != 0 {
		t.Errorf("zero polynomial: expected no roots, got %v", roots)
	}
}

func TestIterativeRootsDegree1(t *testing.T) {
	root := -12.4
	p := FromCoeffs([]float64{3 * root, 3})
	roots := IterativeRoots(p)
	if len(roots) != 1 {
		t.Fatalf("expected a single root, got %v", roots)
	}
	if math.Abs(real(roots[0])-(-root)) > 1e-12 || imag(roots[0]) != 0 {
		t.Errorf("expected %v, got %v", -root, roots[0])
	}
}

func TestIterativeRootsQuadraticLiteral(t *testing.T) {
	// 6 + 5s + s^2 = (s+2)(s+3), served by the closed form even through
	// the iterative API.
	p := FromCoeffs([]float64{6, 5, 1})
	roots := IterativeRoots(p)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %v", roots)
	}
	if roots[0] != complex(-2, 0) || roots[1] != complex(-3, 0) {
		t.Errorf("expected (-2, -3), got %v", roots)
	}
}

func TestIterativeRootsCubic(t *testing.T) {
	want := []float64{-1, -2, -4}
	p := FromRoots(want)
	roots := IterativeRoots(p)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}
	res := make([]float64, len(roots))
	for i, r := range roots {
		if math.Abs(imag(r)) > 1e-6 {
			t.Errorf("expected real root, got %v", r)
		}
		res[i] = real(r)
	}
	matchClosest(t, res, want, 1e-4)
}

func TestIterativeRootsAppendsZerosLast(t *testing.T) {
	// s^2 * (s + 2): two stripped roots at the origin.
	p := FromCoeffs([]float64{0, 0, 1}).Mul(FromCoeffs([]float64{2, 1}))
	roots := IterativeRoots(p)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %v", roots)
	}
	if roots[1] != 0 || roots[2] != 0 {
		t.Errorf("stripped zero roots must come last, got %v", roots)
	}
}

func TestIterativeRootsBudgetIdempotence(t *testing.T) {
	p := FromRoots([]float64{-1, -2, -4})
	a := IterativeRootsWithMax(p, 100)
	b := IterativeRootsWithMax(p, 500)
	if len(a) != len(b) {
		t.Fatalf("root count changed with budget: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("root %d changed with larger budget: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWilkinsonConsistency(t *testing.T) {
	roots := make([]float64, 20)
	for i := range roots {
		roots[i] = float64(i + 1)
	}
	wp := FromRoots(roots)

	iterative := IterativeRoots(wp)
	eigen := ComplexRoots(wp)
	if len(iterative) != 20 || len(eigen) != 20 {
		t.Fatalf("expected 20 roots, got %d iterative and %d eigen", len(iterative), len(eigen))
	}

	byReal := func(s []complex128) {
		sort.Slice(s, func(i, j int) bool {
			if real(s[i]) != real(s[j]) {
				return real(s[i]) < real(s[j])
			}
			return imag(s[i]) < imag(s[j])
		})
	}
	byReal(iterative)
	byReal(eigen)

	for i := range iterative {
		diff := cmplxAbs(iterative[i] - eigen[i])
		scale := math.Max(1, cmplxAbs(eigen[i]))
		if diff > 1e-2*scale {
			t.Errorf("root %d disagrees: iterative %v, eigen %v", i, iterative[i], eigen[i])
		}
	}

	// The eigen path must also land on the known roots 1..20 without
	// turning any real pair into a spurious complex one.
	for i, r := range eigen {
		want := float64(i + 1)
		if math.Abs(real(r)-want) > 1e-2*want {
			t.Errorf("eigen root %d: expected near %v, got %v", i, want, r)
		}
		if math.Abs(imag(r)) > 1e-2 {
			t.Errorf("eigen root %d: expected a real root, got %v", i, r)
		}
	}
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func TestDerivativeRootsLocateExtrema(t *testing.T) {
	cubic := FromRoots([]float64{-1, 0, 1})
	slope := cubic.Derive()
	stationary, ok := RealRoots(slope)
	if !ok {
		t.Fatal("expected real stationary points")
	}
	sort.Float64s(stationary)
	matchClosest(t, stationary, []float64{-0.57735, 0.57735}, 1e-4)

	curvature := slope.Derive()
	if curvature.Eval(stationary[0]) >= 0 {
		t.Error("expected a local maximum at the negative stationary point")
	}
	if curvature.Eval(stationary[1]) <= 0 {
		t.Error("expected a local minimum at the positive stationary point")
	}
}
