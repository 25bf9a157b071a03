package spherical

import (
	"fmt"
	"math"
)

// PointCartesianToSpherical converts a 3d point (x, y, z) to spherical
// coordinates (r, theta, phi) with r >= 0, theta in [0, pi], and phi in
// [0, 2*pi).
func PointCartesianToSpherical(p [3]float64) [3]float64 {
	x, y, z := p[0], p[1], p[2]
	r := math.Sqrt(x*x + y*y + z*z)
	var theta float64
	if r > 0 {
		theta = math.Acos(z / r)
	}
	phi := math.Atan2(y, x)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return [3]float64{r, theta, phi}
}

// PointSphericalToCartesian converts spherical coordinates (r, theta, phi)
// to a Cartesian point (x, y, z).
func PointSphericalToCartesian(p [3]float64) [3]float64 {
	r, theta, phi := p[0], p[1], p[2]
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return [3]float64{
		r * sinT * cosP,
		r * sinT * sinP,
		r * cosT,
	}
}

// PointsCartesianToSpherical converts a batch of 3d points in place.
// Every point must have exactly three components.
func PointsCartesianToSpherical(points [][]float64) error {
	for i, p := range points {
		if len(p) != 3 {
			return fmt.Errorf("%w: point %d has %d components, want 3", ErrShape, i, len(p))
		}
		s := PointCartesianToSpherical([3]float64{p[0], p[1], p[2]})
		p[0], p[1], p[2] = s[0], s[1], s[2]
	}
	return nil
}

// PointsSphericalToCartesian converts a batch of spherical points in place.
func PointsSphericalToCartesian(points [][]float64) error {
	for i, p := range points {
		if len(p) != 3 {
			return fmt.Errorf("%w: point %d has %d components, want 3", ErrShape, i, len(p))
		}
		c := PointSphericalToCartesian([3]float64{p[0], p[1], p[2]})
		p[0], p[1], p[2] = c[0], c[1], c[2]
	}
	return nil
}
