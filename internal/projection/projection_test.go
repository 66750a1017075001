package projection

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestSphToCylCylToSphRoundTrip(t *testing.T) {
	// Inverse law: CylToSph(SphToCyl(theta, phi, d), d) == (theta, phi) for
	// angles strictly inside (-pi/2, pi/2).
	const eps = 1e-3
	angles := make([]float64, 25)
	floats.Span(angles, -math.Pi/2+eps, math.Pi/2-eps)

	for _, d := range []float64{0.5, 1, 2.5, 10} {
		for _, theta := range angles {
			for _, phi := range angles {
				x, y := SphToCyl(theta, phi, d)
				gotTheta, gotPhi := CylToSph(x, y, d)
				if !scalar.EqualWithinAbs(gotTheta, theta, tol) {
					t.Fatalf("round trip theta: d=%v theta=%v phi=%v got %v", d, theta, phi, gotTheta)
				}
				if !scalar.EqualWithinAbs(gotPhi, phi, tol) {
					t.Fatalf("round trip phi: d=%v theta=%v phi=%v got %v", d, theta, phi, gotPhi)
				}
			}
		}
	}
}

func TestCylToSphKnownValues(t *testing.T) {
	theta, phi := CylToSph(0, 0, 1)
	if theta != 0 || phi != 0 {
		t.Errorf("CylToSph(0,0,1) = (%v, %v), want (0, 0)", theta, phi)
	}

	// x = d/2 of arc gives half a radian of azimuth; flat y stays flat.
	theta, phi = CylToSph(1, 0, 2)
	if !scalar.EqualWithinAbs(theta, 0.5, tol) {
		t.Errorf("CylToSph(1,0,2) theta = %v, want 0.5", theta)
	}
	if phi != 0 {
		t.Errorf("CylToSph(1,0,2) phi = %v, want 0", phi)
	}

	// On the fovea column, phi is just atan(y/d).
	_, phi = CylToSph(0, 2, 2)
	if !scalar.EqualWithinAbs(phi, math.Pi/4, tol) {
		t.Errorf("CylToSph(0,2,2) phi = %v, want pi/4", phi)
	}
}

func TestSphToCylKnownValues(t *testing.T) {
	x, y := SphToCyl(0, 0, 3)
	if x != 0 || y != 0 {
		t.Errorf("SphToCyl(0,0,3) = (%v, %v), want (0, 0)", x, y)
	}

	// 45 degrees of elevation at the fovea column lands one diameter up.
	x, y = SphToCyl(0, math.Pi/4, 2)
	if x != 0 {
		t.Errorf("SphToCyl(0,pi/4,2) x = %v, want 0", x)
	}
	if !scalar.EqualWithinAbs(y, 2, tol) {
		t.Errorf("SphToCyl(0,pi/4,2) y = %v, want 2", y)
	}

	x, _ = SphToCyl(1, 0, 2.5)
	if !scalar.EqualWithinAbs(x, 2.5, tol) {
		t.Errorf("SphToCyl(1,0,2.5) x = %v, want 2.5", x)
	}
}

func TestSingularitiesPropagate(t *testing.T) {
	// phi = pi/2 blows tan up; the result is huge, not clamped.
	_, y := SphToCyl(0, math.Pi/2, 1)
	if math.Abs(y) < 1e12 {
		t.Errorf("SphToCyl at phi=pi/2: y = %v, expected tan blow-up", y)
	}

	// theta = pi/2 drives cos to (floating-point) zero and phi to the rail.
	_, phi := CylToSph(math.Pi/2, 1, 1)
	if math.Abs(phi-math.Pi/2) > 1e-9 {
		t.Errorf("CylToSph at theta=pi/2: phi = %v, expected ~pi/2", phi)
	}
}
