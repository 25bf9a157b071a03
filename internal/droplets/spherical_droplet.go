package droplets

import (
	"fmt"
	"math"

	"github.com/phasekit/droplets/internal/spherical"
)

// SphericalDroplet is a droplet with a perfectly spherical interface,
// described by its center position and radius. One to three spatial
// dimensions are supported.
type SphericalDroplet struct {
	position []float64
	radius   float64
}

var _ Droplet = (*SphericalDroplet)(nil)

// NewSphericalDroplet returns a droplet centered at position with the
// given radius. The dimension is fixed by the length of position.
func NewSphericalDroplet(position []float64, radius float64) (*SphericalDroplet, error) {
	if len(position) < 1 || len(position) > 3 {
		return nil, fmt.Errorf("%w: got %d components", ErrDimension, len(position))
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrRadius, radius)
	}
	return &SphericalDroplet{
		position: cloneFloats(position),
		radius:   radius,
	}, nil
}

// Dim returns the spatial dimension.
func (d *SphericalDroplet) Dim() int { return len(d.position) }

// Position returns a copy of the center position.
func (d *SphericalDroplet) Position() []float64 { return cloneFloats(d.position) }

// SetPosition moves the droplet center. The dimension cannot change.
func (d *SphericalDroplet) SetPosition(position []float64) error {
	if len(position) != d.Dim() {
		return fmt.Errorf("%w: got %d components, want %d", ErrDimension, len(position), d.Dim())
	}
	copy(d.position, position)
	return nil
}

// Radius returns the droplet radius.
func (d *SphericalDroplet) Radius() float64 { return d.radius }

// SetRadius changes the droplet radius.
func (d *SphericalDroplet) SetRadius(radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("%w: got %g", ErrRadius, radius)
	}
	d.radius = radius
	return nil
}

// Volume returns the droplet volume.
func (d *SphericalDroplet) Volume() float64 {
	v, _ := spherical.VolumeFromRadius(d.radius, d.Dim())
	return v
}

// SetVolume adjusts the radius so the droplet has the given volume.
func (d *SphericalDroplet) SetVolume(volume float64) error {
	r, err := spherical.RadiusFromVolume(volume, d.Dim())
	if err != nil {
		return err
	}
	d.radius = r
	return nil
}

// SurfaceArea returns the surface area of the droplet interface.
func (d *SphericalDroplet) SurfaceArea() (float64, error) {
	return spherical.SurfaceFromRadius(d.radius, d.Dim())
}

// InterfaceCurvature returns the curvature of the interface, which is the
// same everywhere on a sphere.
func (d *SphericalDroplet) InterfaceCurvature() float64 {
	return 1 / d.radius
}

// InterfacePosition returns the Cartesian position of the interface point
// in the direction given by the angles: none for one dimension (the point
// on the positive side), the azimuthal angle for two, and (theta, phi)
// for three.
func (d *SphericalDroplet) InterfacePosition(angles ...float64) ([]float64, error) {
	p := cloneFloats(d.position)
	switch d.Dim() {
	case 1:
		p[0] += d.radius
	case 2:
		if len(angles) != 1 {
			return nil, fmt.Errorf("%w: got %d, want 1", ErrAngles, len(angles))
		}
		sin, cos := math.Sincos(angles[0])
		p[0] += d.radius * cos
		p[1] += d.radius * sin
	case 3:
		if len(angles) != 2 {
			return nil, fmt.Errorf("%w: got %d, want 2", ErrAngles, len(angles))
		}
		c := spherical.PointSphericalToCartesian([3]float64{d.radius, angles[0], angles[1]})
		p[0] += c[0]
		p[1] += c[1]
		p[2] += c[2]
	}
	return p, nil
}

// InterfacePositions evaluates [SphericalDroplet.InterfacePosition] for a
// sequence of angle tuples.
func (d *SphericalDroplet) InterfacePositions(angles [][]float64) ([][]float64, error) {
	out := make([][]float64, len(angles))
	for i, a := range angles {
		p, err := d.InterfacePosition(a...)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Copy returns an independent droplet with the same position and radius.
func (d *SphericalDroplet) Copy() *SphericalDroplet {
	return &SphericalDroplet{
		position: cloneFloats(d.position),
		radius:   d.radius,
	}
}

// Equal reports whether both droplets have the same dimension and agree
// in position and radius within floating tolerance.
func (d *SphericalDroplet) Equal(other *SphericalDroplet) bool {
	return closeToSlice(d.position, other.position) && closeTo(d.radius, other.radius)
}
