package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrLength indicates a sample count that is not a power of two or is too
// small for the requested number of modes.
var ErrLength = errors.New("analysis: invalid sample length")

// FFT computes the discrete Fourier transform of real samples. It panics
// unless the length is a power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n&(n-1) != 0 {
		panic("analysis: fft requires power of 2 length")
	}
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of the positive-frequency half of
// the spectrum.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// FourierModes projects interface distances, sampled at the uniform
// angles 2*pi*j/N for j = 0..N-1, onto the first harmonics. It returns
// the mean distance and the amplitudes in the droplet convention: index
// 2*(n-1) holds the cosine coefficient of harmonic n, index 2*(n-1)+1
// the sine coefficient. The sample count must be a power of two and
// larger than twice the number of modes.
func FourierModes(samples []float64, modes int) (mean float64, amplitudes []float64, err error) {
	n := len(samples)
	if n < 2 || n&(n-1) != 0 {
		return 0, nil, fmt.Errorf("%w: %d samples, want a power of two", ErrLength, n)
	}
	if modes < 0 || 2*modes >= n {
		return 0, nil, fmt.Errorf("%w: %d samples for %d modes", ErrLength, n, modes)
	}

	spectrum := FFT(samples)
	mean = real(spectrum[0]) / float64(n)

	amplitudes = make([]float64, 2*modes)
	for h := 1; h <= modes; h++ {
		amplitudes[2*(h-1)] = 2 * real(spectrum[h]) / float64(n)
		amplitudes[2*(h-1)+1] = -2 * imag(spectrum[h]) / float64(n)
	}
	return mean, amplitudes, nil
}
