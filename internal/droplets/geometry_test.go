package droplets

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/phasekit/droplets/internal/quad"
)

var _ = Describe("SphericalDroplet", func() {
	It("computes the geometry of a simple droplet", func() {
		d, err := NewSphericalDroplet([]float64{1, 2}, 1)
		Expect(err).NotTo(HaveOccurred())

		surface, err := d.SurfaceArea()
		Expect(err).NotTo(HaveOccurred())
		Expect(surface).To(BeNumerically("~", 2*math.Pi, 1e-12))

		p, err := d.InterfacePosition(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(p[0]).To(BeNumerically("~", 2, 1e-12))
		Expect(p[1]).To(BeNumerically("~", 2, 1e-12))

		Expect(d.SetVolume(3)).To(Succeed())
		Expect(d.Volume()).To(BeNumerically("~", 3, 1e-12))

		// setting the current volume again is a no-op
		r := d.Radius()
		Expect(d.SetVolume(d.Volume())).To(Succeed())
		Expect(d.Radius()).To(BeNumerically("~", r, 1e-14))
	})

	It("behaves consistently in every dimension", func() {
		rng := rand.New(rand.NewSource(11))
		for dim := 1; dim <= 3; dim++ {
			pos := make([]float64, dim)
			for i := range pos {
				pos[i] = rng.NormFloat64()
			}
			radius := 1 + rng.Float64()

			d1, err := NewSphericalDroplet(pos, radius)
			Expect(err).NotTo(HaveOccurred())
			Expect(d1.Dim()).To(Equal(dim))
			Expect(d1.Volume()).To(BeNumerically(">", 0))

			surface, err := d1.SurfaceArea()
			Expect(err).NotTo(HaveOccurred())
			Expect(surface).To(BeNumerically(">", 0))

			zeros := make([]float64, dim)
			d2, err := NewSphericalDroplet(zeros, radius)
			Expect(err).NotTo(HaveOccurred())
			Expect(d2.SetPosition(pos)).To(Succeed())
			Expect(d1.Equal(d2)).To(BeTrue())

			vol := rng.Float64() + 0.1
			Expect(d1.SetVolume(vol)).To(Succeed())
			Expect(d1.Volume()).To(BeNumerically("~", vol, 1e-12))
		}
	})

	It("has uniform curvature 1/R", func() {
		for dim := 1; dim <= 3; dim++ {
			pos := make([]float64, dim)
			d, err := NewSphericalDroplet(pos, 2.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.InterfaceCurvature()).To(BeNumerically("~", 1/2.5, 1e-14))
		}
	})

	It("copies into an independent value-equal droplet", func() {
		d, err := NewSphericalDroplet([]float64{1, -2, 0.5}, 1.5)
		Expect(err).NotTo(HaveOccurred())

		c := d.Copy()
		Expect(d.Equal(c)).To(BeTrue())
		Expect(c).NotTo(BeIdenticalTo(d))

		Expect(c.SetPosition([]float64{9, 9, 9})).To(Succeed())
		Expect(d.Position()).To(Equal([]float64{1, -2, 0.5}))
		Expect(d.Equal(c)).To(BeFalse())
	})

	It("rejects invalid parameters", func() {
		_, err := NewSphericalDroplet([]float64{0, 0}, 0)
		Expect(err).To(MatchError(ErrRadius))

		_, err = NewSphericalDroplet(nil, 1)
		Expect(err).To(MatchError(ErrDimension))

		_, err = NewSphericalDroplet([]float64{0, 0, 0, 0}, 1)
		Expect(err).To(MatchError(ErrDimension))

		d, err := NewSphericalDroplet([]float64{0}, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.SetVolume(-1)).To(HaveOccurred())
		Expect(d.SetPosition([]float64{1, 2})).To(MatchError(ErrDimension))
	})
})

var _ = Describe("PerturbedDroplet2D", func() {
	It("matches direct integration of the enclosed area", func() {
		rng := rand.New(rand.NewSource(12))
		pos := []float64{rng.NormFloat64(), rng.NormFloat64()}
		radius := 1 + rng.Float64()
		amps := make([]float64, 6)
		for i := range amps {
			amps[i] = -0.2 + 0.4*rng.Float64()
		}

		d, err := NewPerturbedDroplet2D(pos, radius, 0, amps)
		Expect(err).NotTo(HaveOccurred())

		vol, err := quad.Periodic(func(phi float64) float64 {
			r := d.InterfaceDistance(phi)
			return 0.5 * r * r
		}, 0, 2*math.Pi, quad.DefaultTol)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Volume()).To(BeNumerically("~", vol, 1e-8))
	})

	It("solves for the base radius when the volume is set", func() {
		d, err := NewPerturbedDroplet2D([]float64{0, 0}, 2, 0.3, []float64{0.1, -0.05, 0.02})
		Expect(err).NotTo(HaveOccurred())

		Expect(d.SetVolume(1.7)).To(Succeed())
		Expect(d.Volume()).To(BeNumerically("~", 1.7, 1e-12))

		// amplitudes are held fixed
		Expect(d.Amplitudes()).To(Equal([]float64{0.1, -0.05, 0.02}))

		// a volume below the perturbation contribution has no solution
		Expect(d.SetVolume(0.01)).To(MatchError(ErrVolume))
	})

	It("has exact surface area for zero amplitudes", func() {
		const r0 = 3.0
		d, err := NewPerturbedDroplet2D([]float64{0, 0}, r0, 0, nil)
		Expect(err).NotTo(HaveOccurred())

		surface, err := d.SurfaceArea()
		Expect(err).NotTo(HaveOccurred())
		Expect(surface).To(Equal(2 * math.Pi * r0))
		Expect(d.SurfaceAreaApprox()).To(Equal(2 * math.Pi * r0))
	})

	It("agrees with the small-amplitude expansion of the surface area", func() {
		rng := rand.New(rand.NewSource(13))
		const r0 = 3.0
		amps := make([]float64, 6)
		for i := range amps {
			amps[i] = -0.01 + 0.02*rng.Float64()
		}

		d, err := NewPerturbedDroplet2D([]float64{0, 0}, r0, 0, amps)
		Expect(err).NotTo(HaveOccurred())

		surface, err := d.SurfaceArea()
		Expect(err).NotTo(HaveOccurred())
		Expect(surface).To(BeNumerically("~", d.SurfaceAreaApprox(), 1e-4*surface))
		Expect(surface).NotTo(BeNumerically("~", 2*math.Pi*r0, 1e-12))
	})

	It("honors a configured quadrature tolerance", func() {
		d, err := NewPerturbedDroplet2D([]float64{0, 0}, 2, 0, []float64{0.5})
		Expect(err).NotTo(HaveOccurred())

		Expect(d.SetQuadTol(0)).To(MatchError(ErrTolerance))
		Expect(d.SetQuadTol(-1e-8)).To(MatchError(ErrTolerance))

		// a tolerance below rounding noise cannot be met and must be
		// reported, not swallowed
		Expect(d.SetQuadTol(1e-30)).To(Succeed())
		_, err = d.SurfaceArea()
		Expect(err).To(MatchError(quad.ErrNoConvergence))
	})

	It("reduces to circle curvature for zero amplitudes", func() {
		const r0 = 3.0
		d, err := NewPerturbedDroplet2D([]float64{0, 0}, r0, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		for _, phi := range []float64{0, 0.7, math.Pi, 5.1} {
			Expect(d.InterfaceCurvature(phi)).To(BeNumerically("~", 1/r0, 1e-14))
		}
	})

	It("computes the curvature of a limacon", func() {
		// r(phi) = b + a*cos(phi); kappa(0) = (b+2a)/(b+a)^2 and
		// kappa(pi) = (b-2a)/(b-a)^2
		const b, a = 2.0, 0.5
		d, err := NewPerturbedDroplet2D([]float64{0, 0}, b, 0, []float64{a})
		Expect(err).NotTo(HaveOccurred())

		Expect(d.InterfaceCurvature(0)).To(BeNumerically("~", (b+2*a)/((b+a)*(b+a)), 1e-12))
		Expect(d.InterfaceCurvature(math.Pi)).To(BeNumerically("~", (b-2*a)/((b-a)*(b-a)), 1e-12))
	})

	It("rotates the perturbation with the orientation angle", func() {
		const a = 0.3
		d1, err := NewPerturbedDroplet2D([]float64{0, 0}, 2, 0, []float64{a})
		Expect(err).NotTo(HaveOccurred())
		d2, err := NewPerturbedDroplet2D([]float64{0, 0}, 2, 0.5, []float64{a})
		Expect(err).NotTo(HaveOccurred())

		Expect(d2.InterfaceDistance(0.5)).To(BeNumerically("~", d1.InterfaceDistance(0), 1e-14))
	})

	It("copies independently mutable amplitudes", func() {
		d, err := NewPerturbedDroplet2D([]float64{1, 1}, 2, 0, []float64{0.1, 0.2})
		Expect(err).NotTo(HaveOccurred())

		c := d.Copy()
		Expect(d.Equal(c)).To(BeTrue())

		c.SetAmplitudes([]float64{0.5, 0.5})
		Expect(d.Amplitudes()).To(Equal([]float64{0.1, 0.2}))
		Expect(d.Equal(c)).To(BeFalse())
	})

	It("is recovered from sampled interface distances", func() {
		orig, err := NewPerturbedDroplet2D([]float64{0, 0}, 3, 0, []float64{0.1, 0.05, -0.02, 0.03})
		Expect(err).NotTo(HaveOccurred())

		const n = 128
		samples := make([]float64, n)
		for j := range samples {
			samples[j] = orig.InterfaceDistance(2 * math.Pi * float64(j) / n)
		}

		fitted, err := FitPerturbed2D([]float64{0, 0}, samples, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(fitted.Radius()).To(BeNumerically("~", 3, 1e-10))
		for i, a := range orig.Amplitudes() {
			Expect(fitted.Amplitudes()[i]).To(BeNumerically("~", a, 1e-10))
		}
	})
})

var _ = Describe("PerturbedDroplet3D", func() {
	It("has the exact sphere volume for zero amplitudes", func() {
		radius := 1.75
		d, err := NewPerturbedDroplet3D([]float64{0.3, -1, 2}, radius, make([]float64, 7))
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Volume()).To(BeNumerically("~", 4*math.Pi/3*radius*radius*radius, 1e-12))
	})

	It("reduces to sphere surface and curvature for zero amplitudes", func() {
		const r0 = 2.0
		d, err := NewPerturbedDroplet3D([]float64{0, 0, 0}, r0, nil)
		Expect(err).NotTo(HaveOccurred())

		surface, err := d.SurfaceArea()
		Expect(err).NotTo(HaveOccurred())
		Expect(surface).To(BeNumerically("~", 4*math.Pi*r0*r0, 1e-6))

		for _, angles := range [][2]float64{{0.1, 0}, {math.Pi / 2, 1}, {2.5, 4}} {
			Expect(d.InterfaceCurvature(angles[0], angles[1])).To(BeNumerically("~", 1/r0, 1e-14))
		}
	})

	It("adds harmonics on top of the base radius", func() {
		const r0, a = 2.0, 0.1
		// single l=2, m=0 mode
		d, err := NewPerturbedDroplet3D([]float64{0, 0, 0}, r0, []float64{0, 0, a, 0, 0})
		Expect(err).NotTo(HaveOccurred())

		theta, phi := 0.3, 0.4
		y20 := 0.25 * math.Sqrt(5/math.Pi) * (3*math.Cos(theta)*math.Cos(theta) - 1)
		Expect(d.InterfaceDistance(theta, phi)).To(BeNumerically("~", r0+a*y20, 1e-12))
	})

	It("evaluates batches of angle pairs", func() {
		d, err := NewPerturbedDroplet3D([]float64{0, 0, 0}, 2, []float64{0.1, -0.05, 0.2, 0, 0.07})
		Expect(err).NotTo(HaveOccurred())

		thetas := []float64{0.1, math.Pi / 2, 2.5}
		phis := []float64{0, 1.2, 4}

		dists, err := d.InterfaceDistances(thetas, phis)
		Expect(err).NotTo(HaveOccurred())
		curvs, err := d.InterfaceCurvatures(thetas, phis)
		Expect(err).NotTo(HaveOccurred())
		for i := range thetas {
			Expect(dists[i]).To(Equal(d.InterfaceDistance(thetas[i], phis[i])))
			Expect(curvs[i]).To(Equal(d.InterfaceCurvature(thetas[i], phis[i])))
		}

		_, err = d.InterfaceDistances(thetas, phis[:2])
		Expect(err).To(MatchError(ErrAngles))
		_, err = d.InterfaceCurvatures(thetas[:1], phis)
		Expect(err).To(MatchError(ErrAngles))
	})

	It("uses the quadratic amplitude correction of the volume", func() {
		const r0 = 2.0
		amps := []float64{0.1, -0.05, 0.2, 0, 0.07}
		d, err := NewPerturbedDroplet3D([]float64{0, 0, 0}, r0, amps)
		Expect(err).NotTo(HaveOccurred())

		sum := 0.0
		for _, a := range amps {
			sum += a * a
		}
		Expect(d.Volume()).To(BeNumerically("~", 4*math.Pi/3*r0*r0*r0+r0*sum, 1e-12))
	})

	It("solves for the base radius when the volume is set", func() {
		amps := []float64{0.1, -0.05, 0.2, 0, 0.07}
		d, err := NewPerturbedDroplet3D([]float64{0, 0, 0}, 2, amps)
		Expect(err).NotTo(HaveOccurred())

		Expect(d.SetVolume(30)).To(Succeed())
		Expect(d.Volume()).To(BeNumerically("~", 30, 1e-9))

		// setting the current volume again keeps the radius
		r := d.Radius()
		Expect(d.SetVolume(d.Volume())).To(Succeed())
		Expect(d.Radius()).To(BeNumerically("~", r, 1e-10))
	})

	It("supports a configurable minimal degree", func() {
		const r0, a = 2.0, 0.1
		d, err := NewPerturbedDroplet3D([]float64{0, 0, 0}, r0, []float64{a}, WithMinDegree(0))
		Expect(err).NotTo(HaveOccurred())

		// a pure l=0 amplitude shifts the distance uniformly
		y00 := 0.5 * math.Sqrt(1/math.Pi)
		Expect(d.InterfaceDistance(1, 2)).To(BeNumerically("~", r0+a*y00, 1e-13))

		// and contributes a linear term to the volume
		want := 4*math.Pi/3*r0*r0*r0 + math.Sqrt(4*math.Pi)*a*r0*r0 + a*a*r0
		Expect(d.Volume()).To(BeNumerically("~", want, 1e-12))

		_, err = NewPerturbedDroplet3D([]float64{0, 0, 0}, r0, nil, WithMinDegree(-1))
		Expect(err).To(HaveOccurred())
	})

	It("copies independently and compares by value", func() {
		d, err := NewPerturbedDroplet3D([]float64{1, 2, 3}, 2, []float64{0.1, 0, 0, 0, 0.2})
		Expect(err).NotTo(HaveOccurred())

		c := d.Copy()
		Expect(d.Equal(c)).To(BeTrue())

		c.SetAmplitudes(make([]float64, 5))
		Expect(d.Equal(c)).To(BeFalse())
		Expect(d.Amplitudes()[0]).To(Equal(0.1))
	})

	It("rejects invalid parameters", func() {
		_, err := NewPerturbedDroplet3D([]float64{0, 0}, 1, nil)
		Expect(err).To(MatchError(ErrDimension))

		_, err = NewPerturbedDroplet3D([]float64{0, 0, 0}, -1, nil)
		Expect(err).To(MatchError(ErrRadius))
	})
})
