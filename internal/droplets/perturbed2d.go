package droplets

import (
	"fmt"
	"math"

	"github.com/phasekit/droplets/internal/quad"
)

// PerturbedDroplet2D is a droplet in two dimensions whose interface
// distance from the center is a circular base radius plus a finite
// Fourier series,
//
//	r(phi) = R0 + sum_k a_k * trig_k(phi - rotation)
//
// Amplitudes alternate between the cosine and sine coefficient of each
// harmonic: a[0] and a[1] belong to cos(phi) and sin(phi), a[2] and a[3]
// to cos(2*phi) and sin(2*phi), and so on. The interface distance must
// stay positive for the shape to be physically meaningful; the formulas
// assume it, they do not enforce it.
type PerturbedDroplet2D struct {
	position   []float64
	radius     float64
	rotation   float64
	amplitudes []float64
	quadTol    float64
}

var _ Droplet = (*PerturbedDroplet2D)(nil)

// NewPerturbedDroplet2D returns a perturbed droplet with the given base
// radius, orientation angle, and Fourier amplitudes. A nil amplitude
// slice describes an unperturbed circle.
func NewPerturbedDroplet2D(position []float64, radius, rotation float64, amplitudes []float64) (*PerturbedDroplet2D, error) {
	if len(position) != 2 {
		return nil, fmt.Errorf("%w: got %d components, want 2", ErrDimension, len(position))
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrRadius, radius)
	}
	return &PerturbedDroplet2D{
		position:   cloneFloats(position),
		radius:     radius,
		rotation:   rotation,
		amplitudes: cloneFloats(amplitudes),
		quadTol:    quad.DefaultTol,
	}, nil
}

// Dim returns 2.
func (d *PerturbedDroplet2D) Dim() int { return 2 }

// Position returns a copy of the center position.
func (d *PerturbedDroplet2D) Position() []float64 { return cloneFloats(d.position) }

// Radius returns the base radius R0 of the unperturbed circle.
func (d *PerturbedDroplet2D) Radius() float64 { return d.radius }

// Rotation returns the orientation angle of the perturbation.
func (d *PerturbedDroplet2D) Rotation() float64 { return d.rotation }

// Amplitudes returns a copy of the Fourier amplitudes.
func (d *PerturbedDroplet2D) Amplitudes() []float64 { return cloneFloats(d.amplitudes) }

// SetAmplitudes replaces the Fourier amplitudes in place.
func (d *PerturbedDroplet2D) SetAmplitudes(amplitudes []float64) {
	d.amplitudes = cloneFloats(amplitudes)
}

// SetQuadTol sets the relative tolerance of the quadrature behind
// [PerturbedDroplet2D.SurfaceArea]. The default is [quad.DefaultTol].
func (d *PerturbedDroplet2D) SetQuadTol(tol float64) error {
	if tol <= 0 {
		return fmt.Errorf("%w: got %g", ErrTolerance, tol)
	}
	d.quadTol = tol
	return nil
}

// terms evaluates the interface distance and its first two derivatives
// with respect to phi. Even amplitude indices are cosine terms, odd ones
// sine terms.
func (d *PerturbedDroplet2D) terms(phi float64) (r, dr, ddr float64) {
	r = d.radius
	for k, a := range d.amplitudes {
		n := float64(k/2 + 1)
		sin, cos := math.Sincos(n * (phi - d.rotation))
		if k%2 == 0 {
			r += a * cos
			dr -= a * n * sin
			ddr -= a * n * n * cos
		} else {
			r += a * sin
			dr += a * n * cos
			ddr -= a * n * n * sin
		}
	}
	return r, dr, ddr
}

// InterfaceDistance returns the distance of the interface from the center
// at the azimuthal angle phi.
func (d *PerturbedDroplet2D) InterfaceDistance(phi float64) float64 {
	r, _, _ := d.terms(phi)
	return r
}

// InterfaceDistances evaluates the interface distance for a sequence of
// angles.
func (d *PerturbedDroplet2D) InterfaceDistances(phis []float64) []float64 {
	out := make([]float64, len(phis))
	for i, phi := range phis {
		out[i] = d.InterfaceDistance(phi)
	}
	return out
}

// InterfacePosition returns the Cartesian position of the interface at
// the azimuthal angle phi.
func (d *PerturbedDroplet2D) InterfacePosition(phi float64) []float64 {
	r := d.InterfaceDistance(phi)
	sin, cos := math.Sincos(phi)
	return []float64{d.position[0] + r*cos, d.position[1] + r*sin}
}

// Volume returns the enclosed area. Integrating r(phi)^2/2 and using the
// orthogonality of the Fourier modes gives the closed form
// pi*R0^2 + pi/2 * sum a_k^2; the linear terms vanish.
func (d *PerturbedDroplet2D) Volume() float64 {
	v := math.Pi * d.radius * d.radius
	for _, a := range d.amplitudes {
		v += math.Pi / 2 * a * a
	}
	return v
}

// SetVolume adjusts the base radius, holding the amplitudes fixed, so
// the droplet encloses the given area. The perturbation contributes
// pi/2 * sum a_k^2 independently of R0, so the volume must exceed that.
func (d *PerturbedDroplet2D) SetVolume(volume float64) error {
	rest := volume
	for _, a := range d.amplitudes {
		rest -= math.Pi / 2 * a * a
	}
	if rest <= 0 {
		return fmt.Errorf("%w: volume %g", ErrVolume, volume)
	}
	d.radius = math.Sqrt(rest / math.Pi)
	return nil
}

// SurfaceArea returns the length of the interface, the arclength integral
// of sqrt(r^2 + r'^2) over one period. The integral has no general closed
// form and is evaluated by periodic quadrature; for zero amplitudes it is
// exactly 2*pi*R0.
func (d *PerturbedDroplet2D) SurfaceArea() (float64, error) {
	return quad.Periodic(func(phi float64) float64 {
		r, dr, _ := d.terms(phi)
		return math.Sqrt(r*r + dr*dr)
	}, 0, 2*math.Pi, d.quadTol)
}

// SurfaceAreaApprox returns the interface length expanded to second order
// in the amplitudes, 2*pi*R0 + pi/(2*R0) * sum n_k^2 a_k^2. It agrees
// with [PerturbedDroplet2D.SurfaceArea] for small perturbations and is
// exact for zero amplitudes.
func (d *PerturbedDroplet2D) SurfaceAreaApprox() float64 {
	s := 2 * math.Pi * d.radius
	for k, a := range d.amplitudes {
		n := float64(k/2 + 1)
		s += math.Pi / (2 * d.radius) * n * n * a * a
	}
	return s
}

// InterfaceCurvature returns the local curvature of the interface at the
// azimuthal angle phi, using the curvature of a polar curve
//
//	kappa = (r^2 + 2 r'^2 - r r'') / (r^2 + r'^2)^(3/2)
//
// which reduces to 1/R0 for an unperturbed circle.
func (d *PerturbedDroplet2D) InterfaceCurvature(phi float64) float64 {
	r, dr, ddr := d.terms(phi)
	den := math.Pow(r*r+dr*dr, 1.5)
	return (r*r + 2*dr*dr - r*ddr) / den
}

// InterfaceCurvatures evaluates the curvature for a sequence of angles.
func (d *PerturbedDroplet2D) InterfaceCurvatures(phis []float64) []float64 {
	out := make([]float64, len(phis))
	for i, phi := range phis {
		out[i] = d.InterfaceCurvature(phi)
	}
	return out
}

// Spherical returns the unperturbed droplet with the same center and base
// radius.
func (d *PerturbedDroplet2D) Spherical() *SphericalDroplet {
	s, _ := NewSphericalDroplet(d.position, d.radius)
	return s
}

// Copy returns an independent droplet with the same parameters.
func (d *PerturbedDroplet2D) Copy() *PerturbedDroplet2D {
	c := *d
	c.position = cloneFloats(d.position)
	c.amplitudes = cloneFloats(d.amplitudes)
	return &c
}

// Equal reports whether both droplets agree in position, base radius,
// rotation, and amplitudes within floating tolerance.
func (d *PerturbedDroplet2D) Equal(other *PerturbedDroplet2D) bool {
	return closeToSlice(d.position, other.position) &&
		closeTo(d.radius, other.radius) &&
		closeTo(d.rotation, other.rotation) &&
		closeToSlice(d.amplitudes, other.amplitudes)
}
