package droplets

import (
	"fmt"
	"math"

	"github.com/phasekit/droplets/internal/quad"
	"github.com/phasekit/droplets/internal/spherical"
)

// DefaultMinDegree is the lowest spherical harmonics degree carried by a
// 3d perturbation. Degree 0 is absorbed into the base radius and degree 1
// is a pure translation of the center, so perturbations usually start at
// degree 2.
const DefaultMinDegree = 2

// derivStep is the central difference step for the angular partial
// derivatives in the surface integral.
const derivStep = 1e-5

// PerturbedDroplet3D is a droplet in three dimensions whose interface
// distance from the center is a spherical base radius plus a finite
// series of real spherical harmonics,
//
//	r(theta, phi) = R0 + sum_k a_k * Y_{k+offset}(theta, phi)
//
// where the linear index follows [spherical.IndexK] and the offset skips
// all degrees below the minimal degree.
type PerturbedDroplet3D struct {
	position   []float64
	radius     float64
	amplitudes []float64
	minDegree  int
	kOffset    int
	quadTol    float64
}

var _ Droplet = (*PerturbedDroplet3D)(nil)

// Option3D configures a PerturbedDroplet3D.
type Option3D func(*PerturbedDroplet3D) error

// WithMinDegree sets the lowest harmonic degree of the perturbation
// series. The default is [DefaultMinDegree].
func WithMinDegree(l int) Option3D {
	return func(d *PerturbedDroplet3D) error {
		if l < 0 {
			return fmt.Errorf("%w: minimal degree %d", ErrDimension, l)
		}
		d.minDegree = l
		return nil
	}
}

// NewPerturbedDroplet3D returns a perturbed droplet with the given base
// radius and harmonic amplitudes. A nil amplitude slice describes an
// unperturbed sphere.
func NewPerturbedDroplet3D(position []float64, radius float64, amplitudes []float64, opts ...Option3D) (*PerturbedDroplet3D, error) {
	if len(position) != 3 {
		return nil, fmt.Errorf("%w: got %d components, want 3", ErrDimension, len(position))
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrRadius, radius)
	}
	d := &PerturbedDroplet3D{
		position:   cloneFloats(position),
		radius:     radius,
		amplitudes: cloneFloats(amplitudes),
		minDegree:  DefaultMinDegree,
		quadTol:    quad.DefaultTol,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.minDegree > 0 {
		d.kOffset = spherical.IndexCount(d.minDegree - 1)
	}
	return d, nil
}

// Dim returns 3.
func (d *PerturbedDroplet3D) Dim() int { return 3 }

// Position returns a copy of the center position.
func (d *PerturbedDroplet3D) Position() []float64 { return cloneFloats(d.position) }

// Radius returns the base radius R0 of the unperturbed sphere.
func (d *PerturbedDroplet3D) Radius() float64 { return d.radius }

// MinDegree returns the lowest harmonic degree of the perturbation.
func (d *PerturbedDroplet3D) MinDegree() int { return d.minDegree }

// Amplitudes returns a copy of the harmonic amplitudes.
func (d *PerturbedDroplet3D) Amplitudes() []float64 { return cloneFloats(d.amplitudes) }

// SetAmplitudes replaces the harmonic amplitudes in place.
func (d *PerturbedDroplet3D) SetAmplitudes(amplitudes []float64) {
	d.amplitudes = cloneFloats(amplitudes)
}

// SetQuadTol sets the relative tolerance of the quadrature behind
// [PerturbedDroplet3D.SurfaceArea]. The default is [quad.DefaultTol].
func (d *PerturbedDroplet3D) SetQuadTol(tol float64) error {
	if tol <= 0 {
		return fmt.Errorf("%w: got %g", ErrTolerance, tol)
	}
	d.quadTol = tol
	return nil
}

// InterfaceDistance returns the distance of the interface from the center
// in the direction of the polar angle theta and azimuthal angle phi.
func (d *PerturbedDroplet3D) InterfaceDistance(theta, phi float64) float64 {
	r := d.radius
	for k, a := range d.amplitudes {
		if a != 0 {
			r += a * spherical.HarmonicRealK(d.kOffset+k, theta, phi)
		}
	}
	return r
}

// InterfaceDistances evaluates the interface distance for paired
// sequences of polar and azimuthal angles.
func (d *PerturbedDroplet3D) InterfaceDistances(thetas, phis []float64) ([]float64, error) {
	if len(thetas) != len(phis) {
		return nil, fmt.Errorf("%w: %d polar, %d azimuthal", ErrAngles, len(thetas), len(phis))
	}
	out := make([]float64, len(thetas))
	for i := range thetas {
		out[i] = d.InterfaceDistance(thetas[i], phis[i])
	}
	return out, nil
}

// InterfacePosition returns the Cartesian position of the interface in
// the direction (theta, phi).
func (d *PerturbedDroplet3D) InterfacePosition(theta, phi float64) []float64 {
	r := d.InterfaceDistance(theta, phi)
	c := spherical.PointSphericalToCartesian([3]float64{r, theta, phi})
	return []float64{d.position[0] + c[0], d.position[1] + c[1], d.position[2] + c[2]}
}

// volumeTerms returns the quadratic and linear coefficients of the
// enclosed volume as a polynomial in the base radius: integrating
// r^3/3 over the solid angle and truncating after the quadratic order in
// the amplitudes gives
//
//	V(R0) = 4/3*pi*R0^3 + c2*R0^2 + c1*R0
//
// with c1 = sum a_k^2 by orthonormality. The quadratic coefficient c2 is
// nonzero only when the series includes the degree 0 mode.
func (d *PerturbedDroplet3D) volumeTerms() (c2, c1 float64) {
	for k, a := range d.amplitudes {
		c1 += a * a
		if d.kOffset+k == 0 {
			c2 = math.Sqrt(4*math.Pi) * a
		}
	}
	return c2, c1
}

// Volume returns the enclosed volume in the quadratic small-amplitude
// truncation; for zero amplitudes it is exactly 4/3*pi*R0^3.
func (d *PerturbedDroplet3D) Volume() float64 {
	c2, c1 := d.volumeTerms()
	r := d.radius
	return 4*math.Pi/3*r*r*r + c2*r*r + c1*r
}

// SetVolume adjusts the base radius, holding the amplitudes fixed, so the
// droplet encloses the given volume. The cubic is solved by Newton
// iteration starting from the radius of the unperturbed sphere.
func (d *PerturbedDroplet3D) SetVolume(volume float64) error {
	r0, err := spherical.RadiusFromVolume(volume, 3)
	if err != nil {
		return err
	}
	c2, c1 := d.volumeTerms()
	if c2 == 0 && c1 == 0 {
		d.radius = r0
		return nil
	}
	root, err := quad.FindRoot(
		func(r float64) float64 { return 4*math.Pi/3*r*r*r + c2*r*r + c1*r - volume },
		func(r float64) float64 { return 4*math.Pi*r*r + 2*c2*r + c1 },
		r0, 1e-12*volume,
	)
	if err != nil {
		return err
	}
	if root <= 0 {
		return fmt.Errorf("%w: volume %g", ErrVolume, volume)
	}
	d.radius = root
	return nil
}

// SurfaceArea returns the area of the interface by numerical integration
// of the first fundamental form of the radial surface,
//
//	dA = r * sqrt(r^2 + r_theta^2 + (r_phi/sin theta)^2) dOmega
//
// with the angular partials taken by central differences. For zero
// amplitudes this reduces to 4*pi*R0^2.
func (d *PerturbedDroplet3D) SurfaceArea() (float64, error) {
	return quad.Sphere(func(theta, phi float64) float64 {
		r := d.InterfaceDistance(theta, phi)
		rt := (d.InterfaceDistance(theta+derivStep, phi) - d.InterfaceDistance(theta-derivStep, phi)) / (2 * derivStep)
		rp := (d.InterfaceDistance(theta, phi+derivStep) - d.InterfaceDistance(theta, phi-derivStep)) / (2 * derivStep)
		sinT := math.Sin(theta)
		return r * math.Sqrt(r*r+rt*rt+(rp/sinT)*(rp/sinT))
	}, d.quadTol)
}

// InterfaceCurvature returns the mean curvature of the interface in the
// direction (theta, phi), linearized in the amplitudes:
//
//	kappa = 1/R0 + sum_k a_k * (l_k^2 + l_k - 2) / (2*R0^2) * Y_k
//
// For zero amplitudes the curvature is exactly 1/R0 everywhere.
func (d *PerturbedDroplet3D) InterfaceCurvature(theta, phi float64) float64 {
	kappa := 1 / d.radius
	for k, a := range d.amplitudes {
		if a == 0 {
			continue
		}
		l, _ := spherical.IndexLM(d.kOffset + k)
		h := float64(l*l+l-2) / (2 * d.radius * d.radius)
		kappa += a * h * spherical.HarmonicRealK(d.kOffset+k, theta, phi)
	}
	return kappa
}

// InterfaceCurvatures evaluates the curvature for paired sequences of
// polar and azimuthal angles.
func (d *PerturbedDroplet3D) InterfaceCurvatures(thetas, phis []float64) ([]float64, error) {
	if len(thetas) != len(phis) {
		return nil, fmt.Errorf("%w: %d polar, %d azimuthal", ErrAngles, len(thetas), len(phis))
	}
	out := make([]float64, len(thetas))
	for i := range thetas {
		out[i] = d.InterfaceCurvature(thetas[i], phis[i])
	}
	return out, nil
}

// Spherical returns the unperturbed droplet with the same center and base
// radius.
func (d *PerturbedDroplet3D) Spherical() *SphericalDroplet {
	s, _ := NewSphericalDroplet(d.position, d.radius)
	return s
}

// Copy returns an independent droplet with the same parameters.
func (d *PerturbedDroplet3D) Copy() *PerturbedDroplet3D {
	c := *d
	c.position = cloneFloats(d.position)
	c.amplitudes = cloneFloats(d.amplitudes)
	return &c
}

// Equal reports whether both droplets agree in position, base radius,
// minimal degree, and amplitudes within floating tolerance.
func (d *PerturbedDroplet3D) Equal(other *PerturbedDroplet3D) bool {
	return d.minDegree == other.minDegree &&
		closeToSlice(d.position, other.position) &&
		closeTo(d.radius, other.radius) &&
		closeToSlice(d.amplitudes, other.amplitudes)
}
