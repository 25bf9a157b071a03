// Package analysis provides spectral analysis of sampled droplet
// interfaces.
//
// The main entry point is [FourierModes], which projects uniformly
// sampled interface distances onto the Fourier amplitude convention of
// the droplet types:
//
//	mean, amps, err := analysis.FourierModes(samples, modes)
//
// The mean is the base radius of the sampled shape and amps alternates
// between the cosine and sine coefficient of each harmonic.
package analysis
