package droplets

import (
	"errors"
	"math"
)

// Validation errors for droplet construction and mutation.
var (
	// ErrDimension indicates a position vector with an unsupported number
	// of components.
	ErrDimension = errors.New("droplets: position dimension out of range")

	// ErrRadius indicates a non-positive base radius.
	ErrRadius = errors.New("droplets: radius must be positive")

	// ErrVolume indicates a volume that no positive base radius can
	// produce with the current perturbation amplitudes.
	ErrVolume = errors.New("droplets: volume out of range for current amplitudes")

	// ErrAngles indicates the wrong number of angular arguments for the
	// droplet's dimension.
	ErrAngles = errors.New("droplets: wrong number of angles")

	// ErrTolerance indicates a non-positive quadrature tolerance.
	ErrTolerance = errors.New("droplets: quadrature tolerance must be positive")
)

// Droplet is the capability set shared by all droplet variants.
type Droplet interface {
	Dim() int
	Position() []float64
	Radius() float64
	Volume() float64
	SetVolume(volume float64) error
	SurfaceArea() (float64, error)
}

// Equality tolerances, chosen to match the elementwise closeness test of
// the surrounding framework.
const (
	equalRelTol = 1e-5
	equalAbsTol = 1e-8
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= equalAbsTol+equalRelTol*math.Abs(b)
}

func closeToSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !closeTo(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return append([]float64(nil), s...)
}
