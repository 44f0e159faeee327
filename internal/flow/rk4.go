package flow

import (
	"math"

	"github.com/san-kum/floq/internal/dynsys"
)

// RK4Flow integrates the variational system
//
//	dx/dt = f(x, p)
//	dv/dt = J(x, p)·v
//
// with the classic fourth-order Runge-Kutta scheme, advancing the base
// trajectory and the tangent vector together.
type RK4Flow struct {
	Field dynsys.VectorField
	Dt    float64

	k1, k2, k3, k4 dynsys.State
	scratch        dynsys.State
}

func NewRK4Flow(field dynsys.VectorField, dt float64) *RK4Flow {
	return &RK4Flow{Field: field, Dt: dt}
}

func (r *RK4Flow) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dynsys.State, n)
		r.k2 = make(dynsys.State, n)
		r.k3 = make(dynsys.State, n)
		r.k4 = make(dynsys.State, n)
		r.scratch = make(dynsys.State, n)
	}
}

// derive evaluates the right-hand side of the coupled system. The first n
// entries of y hold the base state, the last n the tangent.
func (r *RK4Flow) derive(y dynsys.State, p dynsys.Params) dynsys.State {
	n := r.Field.Dim()
	x := y[:n]
	v := y[n:]

	out := make(dynsys.State, 2*n)
	copy(out, r.Field.Derive(x, p))

	jac := r.Field.Jacobian(x, p)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += jac.At(i, j) * v[j]
		}
		out[n+i] = sum
	}
	return out
}

func (r *RK4Flow) step(y dynsys.State, p dynsys.Params, dt float64) dynsys.State {
	n := len(y)
	r.ensureScratch(n)

	copy(r.k1, r.derive(y, p))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, r.derive(r.scratch, p))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, r.derive(r.scratch, p))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*r.k3[i]
	}
	copy(r.k4, r.derive(r.scratch, p))

	result := make(dynsys.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = y[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return result
}

// DifferentialFlow implements Flow. The final partial step clips Dt so the
// integration lands exactly on tspan.
func (r *RK4Flow) DifferentialFlow(x dynsys.State, p dynsys.Params, v dynsys.State, tspan float64) (dynsys.State, error) {
	n := r.Field.Dim()
	if len(x) != n || len(v) != n {
		return nil, dynsys.ErrDimensionMismatch
	}

	y := make(dynsys.State, 2*n)
	copy(y[:n], x)
	copy(y[n:], v)

	dt := r.Dt
	if dt <= 0 {
		dt = 1e-3
	}
	sign := 1.0
	if tspan < 0 {
		sign = -1.0
	}
	remaining := math.Abs(tspan)
	for remaining > 0 {
		h := dt
		if h > remaining {
			h = remaining
		}
		y = r.step(y, p, sign*h)
		remaining -= h
	}

	out := make(dynsys.State, n)
	copy(out, y[n:])
	if !out.IsValid() {
		return nil, dynsys.ErrUnstable
	}
	return out, nil
}

// Integrate advances the base trajectory alone, without a tangent.
func (r *RK4Flow) Integrate(x dynsys.State, p dynsys.Params, tspan float64) (dynsys.State, error) {
	n := r.Field.Dim()
	if len(x) != n {
		return nil, dynsys.ErrDimensionMismatch
	}

	dt := r.Dt
	if dt <= 0 {
		dt = 1e-3
	}
	cur := x.Clone()
	scratch := make(dynsys.State, n)
	remaining := tspan
	for remaining > 0 {
		h := dt
		if h > remaining {
			h = remaining
		}

		k1 := r.Field.Derive(cur, p)
		for i := 0; i < n; i++ {
			scratch[i] = cur[i] + h*0.5*k1[i]
		}
		k2 := r.Field.Derive(scratch, p)
		for i := 0; i < n; i++ {
			scratch[i] = cur[i] + h*0.5*k2[i]
		}
		k3 := r.Field.Derive(scratch, p)
		for i := 0; i < n; i++ {
			scratch[i] = cur[i] + h*k3[i]
		}
		k4 := r.Field.Derive(scratch, p)

		h6 := h / 6.0
		for i := 0; i < n; i++ {
			cur[i] += h6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
		}
		remaining -= h
	}

	if !cur.IsValid() {
		return nil, dynsys.ErrUnstable
	}
	return cur, nil
}
