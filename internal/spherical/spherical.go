package spherical

import (
	"fmt"
	"math"
)

// VolumeFromRadius returns the volume of a ball with the given radius in
// 1, 2, or 3 dimensions: 2r, pi*r^2, and 4/3*pi*r^3.
func VolumeFromRadius(radius float64, dim int) (float64, error) {
	if radius < 0 {
		return 0, fmt.Errorf("%w: radius %g is negative", ErrDomain, radius)
	}
	switch dim {
	case 1:
		return 2 * radius, nil
	case 2:
		return math.Pi * radius * radius, nil
	case 3:
		return 4 * math.Pi / 3 * radius * radius * radius, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrDimension, dim)
}

// RadiusFromVolume returns the radius of a ball with the given volume.
// It is the exact algebraic inverse of [VolumeFromRadius].
func RadiusFromVolume(volume float64, dim int) (float64, error) {
	if volume <= 0 {
		return 0, fmt.Errorf("%w: volume %g is not positive", ErrDomain, volume)
	}
	switch dim {
	case 1:
		return volume / 2, nil
	case 2:
		return math.Sqrt(volume / math.Pi), nil
	case 3:
		return math.Cbrt(3 * volume / (4 * math.Pi)), nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrDimension, dim)
}

// SurfaceFromRadius returns the surface area of a sphere with the given
// radius. It is the derivative of [VolumeFromRadius] with respect to the
// radius; in one dimension the interface consists of two points, so the
// surface is the constant 2.
func SurfaceFromRadius(radius float64, dim int) (float64, error) {
	if radius < 0 {
		return 0, fmt.Errorf("%w: radius %g is negative", ErrDomain, radius)
	}
	switch dim {
	case 1:
		return 2, nil
	case 2:
		return 2 * math.Pi * radius, nil
	case 3:
		return 4 * math.Pi * radius * radius, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrDimension, dim)
}

// RadiusFromSurface returns the radius of a sphere with the given surface
// area. In one dimension the surface does not depend on the radius and the
// conversion fails with [ErrNotInvertible].
func RadiusFromSurface(surface float64, dim int) (float64, error) {
	if surface <= 0 {
		return 0, fmt.Errorf("%w: surface %g is not positive", ErrDomain, surface)
	}
	switch dim {
	case 1:
		return 0, fmt.Errorf("%w: 1d surface is constant", ErrNotInvertible)
	case 2:
		return surface / (2 * math.Pi), nil
	case 3:
		return math.Sqrt(surface / (4 * math.Pi)), nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrDimension, dim)
}
