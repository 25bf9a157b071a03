package spherical

import "errors"

// Errors reported by the toolkit.
var (
	// ErrDimension indicates a spatial dimension outside 1..3.
	ErrDimension = errors.New("spherical: dimension must be 1, 2, or 3")

	// ErrDomain indicates an input outside the valid domain, such as a
	// negative radius or a non-positive volume.
	ErrDomain = errors.New("spherical: value outside valid domain")

	// ErrNotInvertible indicates a conversion that has no inverse. The
	// surface of a one-dimensional droplet is the constant 2, so no
	// radius can be recovered from it.
	ErrNotInvertible = errors.New("spherical: conversion not invertible in this dimension")

	// ErrIndex indicates an invalid spherical harmonics degree or order.
	ErrIndex = errors.New("spherical: invalid spherical harmonics index")

	// ErrShape indicates a point or coordinate array of the wrong length.
	ErrShape = errors.New("spherical: coordinate array has wrong shape")
)
