package spherical

import (
	"fmt"
	"math"

	"github.com/phasekit/droplets/internal/grids"
)

// PolarCoordinates returns the radial distance of every cell of the grid
// from the given origin. A nil origin defaults to the coordinate origin.
// When retAngle is set, the angular coordinates are returned as well: a
// constant 1 per cell for one dimension, the azimuthal angle for two, and
// the pair (theta, phi) for three, following the toolkit's angle ranges.
func PolarCoordinates(g *grids.Grid, origin []float64, retAngle bool) (dist []float64, angles [][]float64, err error) {
	dim := g.Dim()
	if origin == nil {
		origin = make([]float64, dim)
	}
	if len(origin) != dim {
		return nil, nil, fmt.Errorf("%w: origin has %d components for a %dd grid", ErrShape, len(origin), dim)
	}

	coords := g.CellCoords()
	dist = make([]float64, len(coords))
	if retAngle {
		nAngles := dim - 1
		if dim == 1 {
			nAngles = 1
		}
		angles = make([][]float64, nAngles)
		for i := range angles {
			angles[i] = make([]float64, len(coords))
		}
	}

	for c, p := range coords {
		switch dim {
		case 1:
			dist[c] = math.Abs(p[0] - origin[0])
			if retAngle {
				angles[0][c] = 1
			}
		case 2:
			dx := p[0] - origin[0]
			dy := p[1] - origin[1]
			dist[c] = math.Hypot(dx, dy)
			if retAngle {
				phi := math.Atan2(dy, dx)
				if phi < 0 {
					phi += 2 * math.Pi
				}
				angles[0][c] = phi
			}
		case 3:
			s := PointCartesianToSpherical([3]float64{
				p[0] - origin[0],
				p[1] - origin[1],
				p[2] - origin[2],
			})
			dist[c] = s[0]
			if retAngle {
				angles[0][c] = s[1]
				angles[1][c] = s[2]
			}
		}
	}
	return dist, angles, nil
}
