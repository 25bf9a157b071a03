// Package spherical provides geometric conversions for spheres in one to
// three dimensions, real spherical harmonics, and the coordinate
// conventions shared by the droplet types and the grid frontend:
//
//   - [VolumeFromRadius] / [RadiusFromVolume]: ball volume in dim 1..3
//   - [SurfaceFromRadius] / [RadiusFromSurface]: sphere surface in dim 1..3
//   - [PointCartesianToSpherical] / [PointSphericalToCartesian]: point
//     conversion with r >= 0, theta in [0, pi], phi in [0, 2*pi)
//   - [HarmonicReal]: real spherical harmonics, orthonormal over the sphere
//   - [IndexK] / [IndexLM]: bijection between (degree, order) pairs and a
//     single linear index, ordered by degree, then order
//   - [PolarCoordinates]: spherical coordinates of every cell of a grid
//
// All functions are pure; the Make* factories return precompiled closures
// for a fixed dimension or index and are backed by a concurrency-safe
// cache.
package spherical
