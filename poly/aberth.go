package poly

import (
	"math"
	"math/cmplx"
)

// rootsFinder is the per-call working set of the Aberth-Ehrlich method:
// the target polynomial, its derivative, the current simultaneous
// approximations and the iteration budget. It carries no state between
// calls.
//
// References:
// O. Aberth, Iteration Methods for Finding all Zeros of a Polynomial
// Simultaneously, Math. Comput. 27 (1973).
// D. A. Bini, Numerical computation of polynomial zeros by means of
// Aberth's method, Numerical Algorithms 13 (1996).
type rootsFinder[T Float] struct {
	poly       Poly[T]
	der        Poly[T]
	solution   []complex128
	iterations int
}

// newRootsFinder seeds the approximation vector with the convex hull
// initial guesses, one per root of the zero-stripped polynomial.
func newRootsFinder[T Float](p Poly[T]) *rootsFinder[T] {
	return &rootsFinder[T]{
		poly:       p,
		der:        p.Derive(),
		solution:   initialGuesses(p),
		iterations: DefaultRootIterations,
	}
}

// find runs Aberth-Ehrlich sweeps until every approximation repeats itself
// exactly or the iteration budget runs out. Within a sweep the updates are
// sequential: the correction for root i sees the positions already updated
// earlier in the same sweep, which converges faster than a frozen
// snapshot. An approximation sitting exactly on a root counts as
// converged, and a position coinciding with another contributes no
// repulsion term; both cases arise when the vector is seeded from outside
// initialGuesses.
func (rf *rootsFinder[T]) find() []complex128 {
	done := make([]bool, len(rf.solution))
	for k := 0; k < rf.iterations; k++ {
		converged := true
		for _, d := range done {
			if !d {
				converged = false
				break
			}
		}
		if converged {
			break
		}

		for i := range rf.solution {
			if done[i] {
				continue
			}
			x := rf.solution[i]
			pv := rf.poly.EvalC(x)
			if pv == 0 {
				done[i] = true
				continue
			}
			newton := pv / rf.der.EvalC(x)
			var aberth complex128
			for j, s := range rf.solution {
				if j != i && s != x {
					aberth += 1 / (x - s)
				}
			}
			next := x - newton/(1-newton*aberth)
			if next == x {
				done[i] = true
			} else {
				rf.solution[i] = next
			}
		}
	}
	return rf.solution
}

// hullPoint is a coefficient viewed as the point (k, ln|c_k|).
type hullPoint struct {
	k int
	x float64
	y float64
}

// initialGuesses produces one starting approximation per root following
// Bini's generalization of the Newton polygon: the upper convex hull of
// the (index, log magnitude) coefficient points fixes the guess radii, and
// each hull segment contributes its span worth of guesses evenly spaced on
// that circle.
func initialGuesses[T Float](p Poly[T]) []complex128 {
	set := make([]hullPoint, len(p.coeffs))
	for k, c := range p.coeffs {
		set[k] = hullPoint{
			k: k,
			x: float64(k),
			y: math.Log(math.Abs(float64(c))),
		}
	}

	hull := convexHullTop(set)

	var initial []complex128
	for w := 1; w < len(hull); w++ {
		lo, hi := hull[w-1], hull[w]
		n := hi.k - lo.k
		ratio := math.Abs(float64(p.coeffs[lo.k]) / float64(p.coeffs[hi.k]))
		radius := math.Pow(ratio, 1/(hi.x-lo.x))
		for m := 0; m < n; m++ {
			arg := 2 * math.Pi * float64(m) / float64(n)
			initial = append(initial, cmplx.Exp(complex(0, arg))*complex(radius, 0))
		}
	}
	return initial
}

// convexHullTop computes the upper convex hull of the points, which arrive
// sorted by ascending index, with a monotone chain scan: the top of the
// stack is popped while the last three points do not make a strict right
// turn.
func convexHullTop(set []hullPoint) []hullPoint {
	stack := make([]hullPoint, 0, len(set))
	stack = append(stack, set[0], set[1])

	for _, p := range set[2:] {
		for len(stack) >= 2 {
			nextToTop := stack[len(stack)-2]
			top := stack[len(stack)-1]
			if crossProduct(nextToTop, top, p) < 0 {
				break
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack
}

// crossProduct computes the cross product of (p1 - p0) and (p2 - p0).
func crossProduct(p0, p1, p2 hullPoint) float64 {
	return (p1.x-p0.x)*(p2.y-p0.y) - (p2.x-p0.x)*(p1.y-p0.y)
}
