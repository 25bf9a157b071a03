package droplets

import (
	"github.com/phasekit/droplets/internal/analysis"
)

// FitPerturbed2D reconstructs a perturbed droplet from interface
// distances sampled at the uniform angles 2*pi*j/N around the given
// center. The base radius is the mean sampled distance and the first
// modes harmonics become the amplitudes; the rotation is zero, since any
// orientation is already encoded in the cos/sin split.
func FitPerturbed2D(position []float64, samples []float64, modes int) (*PerturbedDroplet2D, error) {
	mean, amplitudes, err := analysis.FourierModes(samples, modes)
	if err != nil {
		return nil, err
	}
	return NewPerturbedDroplet2D(position, mean, 0, amplitudes)
}
