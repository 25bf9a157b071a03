// Package grids describes the Cartesian grids on which the surrounding
// PDE framework discretizes its fields. Only the cell geometry is modeled
// here; boundary conditions and field data live upstream.
package grids

import (
	"errors"
	"fmt"
)

// ErrShape indicates an invalid or inconsistent grid description.
var ErrShape = errors.New("grids: invalid grid shape")

// Grid is a regular Cartesian grid. Cell centers sit at
// (i + 0.5) * spacing along each axis, with the grid corner at the origin
// of the coordinate system.
type Grid struct {
	Shape   []int
	Spacing []float64
}

// New returns a grid with the given number of cells and cell spacing per
// axis. Between one and three axes are supported.
func New(shape []int, spacing []float64) (*Grid, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, fmt.Errorf("%w: %d axes", ErrShape, len(shape))
	}
	if len(spacing) != len(shape) {
		return nil, fmt.Errorf("%w: %d axes but %d spacings", ErrShape, len(shape), len(spacing))
	}
	for i, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("%w: axis %d has %d cells", ErrShape, i, n)
		}
		if spacing[i] <= 0 {
			return nil, fmt.Errorf("%w: axis %d has spacing %g", ErrShape, i, spacing[i])
		}
	}
	g := &Grid{
		Shape:   append([]int(nil), shape...),
		Spacing: append([]float64(nil), spacing...),
	}
	return g, nil
}

// NewUnit returns a grid with unit cell spacing, matching the unit grids
// of the PDE framework.
func NewUnit(shape ...int) (*Grid, error) {
	spacing := make([]float64, len(shape))
	for i := range spacing {
		spacing[i] = 1
	}
	return New(shape, spacing)
}

// Dim returns the number of spatial dimensions.
func (g *Grid) Dim() int { return len(g.Shape) }

// NumCells returns the total number of grid cells.
func (g *Grid) NumCells() int {
	n := 1
	for _, s := range g.Shape {
		n *= s
	}
	return n
}

// CellCoords returns the Cartesian coordinates of all cell centers, one
// row per cell in row-major order.
func (g *Grid) CellCoords() [][]float64 {
	dim := g.Dim()
	coords := make([][]float64, g.NumCells())
	idx := make([]int, dim)
	for c := range coords {
		p := make([]float64, dim)
		for d := range dim {
			p[d] = (float64(idx[d]) + 0.5) * g.Spacing[d]
		}
		coords[c] = p

		for d := dim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < g.Shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return coords
}
