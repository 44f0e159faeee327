package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

// jacobianCheck compares the analytic Jacobian against central differences.
func jacobianCheck(t *testing.T, field dynsys.VectorField, x dynsys.State) {
	t.Helper()
	n := field.Dim()
	jac := field.Jacobian(x, nil)
	h := 1e-6

	for j := 0; j < n; j++ {
		xp := x.Clone()
		xm := x.Clone()
		xp[j] += h
		xm[j] -= h
		fp := field.Derive(xp, nil)
		fm := field.Derive(xm, nil)
		for i := 0; i < n; i++ {
			fd := (fp[i] - fm[i]) / (2 * h)
			if math.Abs(jac.At(i, j)-fd) > 1e-5 {
				t.Errorf("jacobian (%d,%d): analytic %v, finite-diff %v", i, j, jac.At(i, j), fd)
			}
		}
	}
}

func TestHopfCycleJacobian(t *testing.T) {
	jacobianCheck(t, NewHopfCycle(), dynsys.State{0.8, -0.4})
}

func TestVanDerPolJacobian(t *testing.T) {
	jacobianCheck(t, NewVanDerPol(), dynsys.State{1.3, -0.7})
}

func TestDuffingJacobian(t *testing.T) {
	jacobianCheck(t, NewDuffing(), dynsys.State{0.5, -0.2, 1.1})
}

func TestHopfCycleOrbitOnUnitCircle(t *testing.T) {
	sys := NewHopfCycle()
	m := 5
	buf := sys.Orbit(m)

	if len(buf) != 2*m+1 {
		t.Fatalf("buffer length %d, want %d", len(buf), 2*m+1)
	}
	for i := 0; i < m; i++ {
		r := math.Hypot(buf[2*i], buf[2*i+1])
		if math.Abs(r-1) > 1e-14 {
			t.Errorf("slice %d off the unit circle: r=%v", i, r)
		}
	}
	if math.Abs(buf[2*m]-2*math.Pi) > 1e-14 {
		t.Errorf("period %v, want 2π", buf[2*m])
	}
}

func TestHopfCycleClosedOrbit(t *testing.T) {
	sys := NewHopfCycle()
	m := 7
	buf := sys.ClosedOrbit(m)

	if len(buf) != 2*m+1 {
		t.Fatalf("buffer length %d, want %d", len(buf), 2*m+1)
	}
	if math.Abs(buf[0]-buf[2*(m-1)]) > 1e-14 || math.Abs(buf[1]-buf[2*(m-1)+1]) > 1e-14 {
		t.Error("closed orbit must repeat the first slice at the end")
	}
}

func TestHopfCycleVanishingRadialDrift(t *testing.T) {
	// On the unit circle the radial component of the field vanishes.
	sys := NewHopfCycle()
	x := dynsys.State{math.Cos(0.9), math.Sin(0.9)}
	dx := sys.Derive(x, nil)

	radial := x[0]*dx[0] + x[1]*dx[1]
	if math.Abs(radial) > 1e-14 {
		t.Errorf("radial drift on the cycle: %v", radial)
	}
}

func TestParamVectorOverride(t *testing.T) {
	sys := NewHopfCycle()
	x := dynsys.State{0.5, 0.5}

	base := sys.Derive(x, nil)
	override := sys.Derive(x, dynsys.Params{2.0, 1.0})
	if base[0] == override[0] {
		t.Error("parameter vector should override struct defaults")
	}

	var jac *mat.Dense = sys.Jacobian(x, dynsys.Params{2.0, 1.0})
	if jac.At(0, 1) == sys.Jacobian(x, nil).At(0, 1) {
		t.Error("jacobian should honor the parameter vector")
	}
}

func TestConfigurable(t *testing.T) {
	sys := NewVanDerPol()
	if err := sys.SetParam("mu", 3.5); err != nil {
		t.Fatal(err)
	}
	if sys.GetParams()["mu"] != 3.5 {
		t.Errorf("mu not set: %v", sys.GetParams())
	}
	if err := sys.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
