package dynsys

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Add returns s + other elementwise. Operands must have equal length.
func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + other[i]
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Sub returns s - other elementwise. Operands must have equal length.
func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] - other[i]
	}
	return result
}

type Params []float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	copy(c, p)
	return c
}

// VectorField is an autonomous ODE system dx/dt = f(x, p) together with
// its state-space Jacobian df/dx.
type VectorField interface {
	Derive(x State, p Params) State
	Jacobian(x State, p Params) *mat.Dense
	Dim() int
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
