// Package droplets models single droplets as geometric value objects.
//
// Three variants share the [Droplet] capability set:
//
//   - [SphericalDroplet]: center position and scalar radius in 1-3
//     dimensions
//   - [PerturbedDroplet2D]: circular base radius plus a finite Fourier
//     perturbation of the interface
//   - [PerturbedDroplet3D]: spherical base radius plus a finite real
//     spherical harmonics perturbation
//
// Volume and radius are two views of the same stored scalar: setting the
// volume solves for the base radius while the perturbation amplitudes
// stay fixed. All other operations are pure functions of the current
// attributes.
package droplets
