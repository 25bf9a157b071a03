// Package quad provides deterministic numerical quadrature and root
// finding for the droplet geometry calculations.
//
// All routines refine with a fixed schedule and report
// [ErrNoConvergence] when the tolerance is not reached within the budget
// instead of silently returning an inaccurate result. Identical inputs
// always produce identical outputs.
package quad
