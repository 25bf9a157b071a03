package spherical

import (
	"math"
	"math/rand"
	"testing"
)

func TestCartesianSphericalRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 64; i++ {
		p := [3]float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		back := PointSphericalToCartesian(PointCartesianToSpherical(p))
		for d := 0; d < 3; d++ {
			if math.Abs(back[d]-p[d]) > 1e-12 {
				t.Fatalf("point %v round trips to %v", p, back)
			}
		}
	}
}

func TestSphericalCartesianRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 64; i++ {
		// angles pre-normalized into the canonical ranges
		p := [3]float64{
			math.Abs(rng.NormFloat64()) + 0.1,
			math.Mod(math.Abs(rng.NormFloat64()), math.Pi),
			math.Mod(math.Abs(rng.NormFloat64()), 2*math.Pi),
		}
		back := PointCartesianToSpherical(PointSphericalToCartesian(p))
		for d := 0; d < 3; d++ {
			if math.Abs(back[d]-p[d]) > 1e-6*(math.Abs(p[d])+1) {
				t.Fatalf("spherical point %v round trips to %v", p, back)
			}
		}
	}
}

func TestAngleRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 64; i++ {
		p := [3]float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		s := PointCartesianToSpherical(p)
		if s[0] < 0 {
			t.Errorf("negative radius %g", s[0])
		}
		if s[1] < 0 || s[1] > math.Pi {
			t.Errorf("theta %g outside [0, pi]", s[1])
		}
		if s[2] < 0 || s[2] >= 2*math.Pi {
			t.Errorf("phi %g outside [0, 2*pi)", s[2])
		}
	}
}

func TestPointsBatchConversion(t *testing.T) {
	pts := [][]float64{{1, 0, 0}, {0, 0, 2}}
	if err := PointsCartesianToSpherical(pts); err != nil {
		t.Fatal(err)
	}
	if math.Abs(pts[0][0]-1) > 1e-14 || math.Abs(pts[0][1]-math.Pi/2) > 1e-14 {
		t.Errorf("unit x converts to %v", pts[0])
	}
	if math.Abs(pts[1][0]-2) > 1e-14 || math.Abs(pts[1][1]) > 1e-14 {
		t.Errorf("z axis point converts to %v", pts[1])
	}

	if err := PointsSphericalToCartesian(pts); err != nil {
		t.Fatal(err)
	}
	if math.Abs(pts[0][0]-1) > 1e-12 {
		t.Errorf("round trip gives %v", pts[0])
	}

	if err := PointsCartesianToSpherical([][]float64{{1, 2}}); err == nil {
		t.Error("expected shape error for 2-component point")
	}
}
