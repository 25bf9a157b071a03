package quad

import (
	"errors"
	"fmt"
	"math"

	gquad "gonum.org/v1/gonum/integrate/quad"
)

// ErrNoConvergence indicates that a quadrature or root finding routine did
// not reach the requested tolerance within its fixed refinement budget.
var ErrNoConvergence = errors.New("quad: no convergence within refinement budget")

const (
	// DefaultTol is the relative tolerance used by callers that do not
	// configure their own.
	DefaultTol = 1e-8

	periodicStartNodes = 32
	periodicMaxRefine  = 16

	sphereStartNodes = 8
	sphereMaxRefine  = 10

	newtonMaxIter = 50
)

// converged reports whether two successive refinements agree to the mixed
// absolute/relative tolerance.
func converged(cur, prev, tol float64) bool {
	return math.Abs(cur-prev) <= tol*(math.Abs(cur)+1)
}

// Periodic integrates f over [a, b] assuming f is periodic with period
// b-a. It uses the trapezoidal rule with doubling refinement, which
// converges spectrally for smooth periodic integrands.
func Periodic(f func(x float64) float64, a, b, tol float64) (float64, error) {
	n := periodicStartNodes
	prev := trapezoidPeriodic(f, a, b, n)
	for range periodicMaxRefine {
		n *= 2
		cur := trapezoidPeriodic(f, a, b, n)
		if converged(cur, prev, tol) {
			return cur, nil
		}
		prev = cur
	}
	return 0, fmt.Errorf("%w: periodic integral with %d nodes", ErrNoConvergence, n)
}

func trapezoidPeriodic(f func(float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := 0.0
	for i := range n {
		sum += f(a + float64(i)*h)
	}
	return sum * h
}

// Sphere integrates f(theta, phi) over the unit sphere including the
// solid angle element sin(theta) d(theta) d(phi). It combines
// Gauss-Legendre nodes in the polar angle with the periodic trapezoidal
// rule in the azimuthal angle and refines by doubling the polar order.
func Sphere(f func(theta, phi float64) float64, tol float64) (float64, error) {
	n := sphereStartNodes
	prev := sphereFixed(f, n)
	for range sphereMaxRefine {
		n *= 2
		cur := sphereFixed(f, n)
		if converged(cur, prev, tol) {
			return cur, nil
		}
		prev = cur
	}
	return 0, fmt.Errorf("%w: sphere integral with %d polar nodes", ErrNoConvergence, n)
}

func sphereFixed(f func(theta, phi float64) float64, n int) float64 {
	theta := make([]float64, n)
	weight := make([]float64, n)
	gquad.Legendre{}.FixedLocations(theta, weight, 0, math.Pi)

	nPhi := 2 * n
	h := 2 * math.Pi / float64(nPhi)
	sum := 0.0
	for i := range n {
		sinT := math.Sin(theta[i])
		ring := 0.0
		for j := range nPhi {
			ring += f(theta[i], float64(j)*h)
		}
		sum += weight[i] * sinT * ring * h
	}
	return sum
}

// FindRoot solves f(x) = 0 with Newton iteration starting from x0. It
// stops when |f(x)| <= tol and fails with [ErrNoConvergence] when the
// iteration budget is exhausted or the derivative vanishes.
func FindRoot(f, df func(x float64) float64, x0, tol float64) (float64, error) {
	x := x0
	for range newtonMaxIter {
		fx := f(x)
		if math.Abs(fx) <= tol {
			return x, nil
		}
		d := df(x)
		if d == 0 || math.IsNaN(d) {
			break
		}
		x -= fx / d
	}
	return 0, fmt.Errorf("%w: newton iteration from %g", ErrNoConvergence, x0)
}
