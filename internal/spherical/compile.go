package spherical

import (
	"fmt"
	"math"
	"sync"
)

// The Make* factories return closures with all dimension- or
// index-dependent constants folded in. They exist as a fast path for hot
// loops; results are identical to the general functions. Compiled kernels
// are memoized so repeated requests share one closure. A race may compile
// the same key twice, but only fully constructed closures are published.
var kernelCache sync.Map // kernelKey -> interface{}

type kernelKey struct {
	op  string
	dim int
}

func cachedKernel(op string, dim int, build func() any) any {
	key := kernelKey{op, dim}
	if f, ok := kernelCache.Load(key); ok {
		return f
	}
	f, _ := kernelCache.LoadOrStore(key, build())
	return f
}

// MakeVolumeFromRadius returns a compiled version of [VolumeFromRadius]
// for a fixed dimension.
func MakeVolumeFromRadius(dim int) (func(radius float64) float64, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dim)
	}
	f := cachedKernel("volume", dim, func() any {
		switch dim {
		case 1:
			return func(r float64) float64 { return 2 * r }
		case 2:
			return func(r float64) float64 { return math.Pi * r * r }
		default:
			return func(r float64) float64 { return 4 * math.Pi / 3 * r * r * r }
		}
	})
	return f.(func(float64) float64), nil
}

// MakeRadiusFromVolume returns a compiled version of [RadiusFromVolume]
// for a fixed dimension.
func MakeRadiusFromVolume(dim int) (func(volume float64) float64, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dim)
	}
	f := cachedKernel("radius", dim, func() any {
		switch dim {
		case 1:
			return func(v float64) float64 { return v / 2 }
		case 2:
			return func(v float64) float64 { return math.Sqrt(v / math.Pi) }
		default:
			return func(v float64) float64 { return math.Cbrt(3 * v / (4 * math.Pi)) }
		}
	})
	return f.(func(float64) float64), nil
}

// MakeSurfaceFromRadius returns a compiled version of [SurfaceFromRadius]
// for a fixed dimension.
func MakeSurfaceFromRadius(dim int) (func(radius float64) float64, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dim)
	}
	f := cachedKernel("surface", dim, func() any {
		switch dim {
		case 1:
			return func(float64) float64 { return 2 }
		case 2:
			return func(r float64) float64 { return 2 * math.Pi * r }
		default:
			return func(r float64) float64 { return 4 * math.Pi * r * r }
		}
	})
	return f.(func(float64) float64), nil
}

// MakeSphericalHarmonic returns a compiled real spherical harmonic for a
// fixed linear index k.
func MakeSphericalHarmonic(k int) (func(theta, phi float64) float64, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: linear index %d is negative", ErrIndex, k)
	}
	f := cachedKernel("harmonic", k, func() any {
		l, m := IndexLM(k)
		return func(theta, phi float64) float64 {
			y, _ := HarmonicReal(l, m, theta, phi)
			return y
		}
	})
	return f.(func(theta, phi float64) float64), nil
}
