package spherical

import (
	"fmt"
	"math"
)

// IndexK returns the linear index of the real spherical harmonic with
// degree l and order m. Indices are ordered by increasing degree and, within
// one degree, by increasing order from -l to l, so k = l*(l+1) + m.
func IndexK(l, m int) (int, error) {
	if l < 0 || m < -l || m > l {
		return 0, fmt.Errorf("%w: degree %d, order %d", ErrIndex, l, m)
	}
	return l*(l+1) + m, nil
}

// IndexLM returns the degree l and order m of the linear index k. It is
// the inverse of [IndexK]. Negative k yields (0, 0).
func IndexLM(k int) (l, m int) {
	if k <= 0 {
		return 0, 0
	}
	l = int(math.Sqrt(float64(k)))
	// guard against floating point truncation at perfect squares
	if (l+1)*(l+1) <= k {
		l++
	}
	return l, k - l*(l+1)
}

// IndexCount returns the number of linear indices with degree at most l,
// which is (l+1)^2.
func IndexCount(l int) int {
	return (l + 1) * (l + 1)
}

// IndexCountOptimal reports whether a set of n consecutive indices starting
// at zero covers complete degrees, i.e. whether the last index has m = l.
func IndexCountOptimal(n int) bool {
	if n < 1 {
		return false
	}
	l := int(math.Sqrt(float64(n)))
	return l*l == n || (l+1)*(l+1) == n
}

// legendreNorm returns the fully normalized associated Legendre function
// evaluated at cos(theta), without the Condon-Shortley phase. The
// normalization includes the 1/sqrt(4*pi) factor, so the real spherical
// harmonics follow directly by multiplying with the azimuthal factor.
func legendreNorm(l, m int, theta float64) float64 {
	sinT, cosT := math.Sincos(theta)

	// diagonal term P_m^m
	pmm := 1 / math.Sqrt(4*math.Pi)
	for i := 1; i <= m; i++ {
		pmm *= sinT * math.Sqrt(float64(2*i+1)/float64(2*i))
	}
	if l == m {
		return pmm
	}

	pmm1 := pmm * cosT * math.Sqrt(float64(2*m+3))
	if l == m+1 {
		return pmm1
	}

	// upward recurrence in the degree
	for ll := m + 2; ll <= l; ll++ {
		a := math.Sqrt(float64(4*ll*ll-1) / float64(ll*ll-m*m))
		b := math.Sqrt(float64((ll-1)*(ll-1)-m*m) / float64(4*(ll-1)*(ll-1)-1))
		pmm, pmm1 = pmm1, a*(cosT*pmm1-b*pmm)
	}
	return pmm1
}

// HarmonicReal evaluates the real spherical harmonic Y_l^m at the polar
// angle theta and azimuthal angle phi. The harmonics are orthonormal over
// the unit sphere and use the convention without Condon-Shortley phase, so
// Y_1^-1 = sqrt(3/(4*pi)) * sin(theta) * sin(phi).
func HarmonicReal(l, m int, theta, phi float64) (float64, error) {
	if l < 0 || m < -l || m > l {
		return 0, fmt.Errorf("%w: degree %d, order %d", ErrIndex, l, m)
	}
	switch {
	case m == 0:
		return legendreNorm(l, 0, theta), nil
	case m > 0:
		return math.Sqrt2 * legendreNorm(l, m, theta) * math.Cos(float64(m)*phi), nil
	default:
		return math.Sqrt2 * legendreNorm(l, -m, theta) * math.Sin(float64(-m)*phi), nil
	}
}

// HarmonicRealK evaluates the real spherical harmonic with linear index k.
// k must be non-negative.
func HarmonicRealK(k int, theta, phi float64) float64 {
	l, m := IndexLM(k)
	y, _ := HarmonicReal(l, m, theta, phi)
	return y
}

// HarmonicSymmetric evaluates the axisymmetric harmonic Y_l^0, which does
// not depend on the azimuthal angle.
func HarmonicSymmetric(l int, theta float64) (float64, error) {
	if l < 0 {
		return 0, fmt.Errorf("%w: degree %d", ErrIndex, l)
	}
	return legendreNorm(l, 0, theta), nil
}
