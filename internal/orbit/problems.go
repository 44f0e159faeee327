package orbit

import (
	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/flow"
	"github.com/san-kum/floq/internal/linsolve"
	"github.com/san-kum/floq/internal/monodromy"
)

// ShootingProblem discretizes a periodic orbit as M time slices of
// dimension N linked by flow integration. The solution buffer holds the
// concatenated slices followed by the period: length M·N+1.
type ShootingProblem struct {
	Flow flow.Flow
	M, N int
	// Fractions are the per-slice step fractions of the period; nil means
	// uniform slices.
	Fractions []float64
}

func (p *ShootingProblem) StepFraction(i int) float64 {
	if p.Fractions == nil {
		return 1 / float64(p.M)
	}
	return p.Fractions[i]
}

func (p *ShootingProblem) fractions() []float64 {
	if p.Fractions == nil {
		return uniform(p.M)
	}
	return p.Fractions
}

func (p *ShootingProblem) Monodromy(w Wrapper) (monodromy.Operator, error) {
	if err := checkLen(w.Orbit, p.M*p.N+1, "shooting"); err != nil {
		return nil, err
	}
	return &monodromy.Shooting{
		Flow:      p.Flow,
		Slices:    slices(w.Orbit, p.M, p.N),
		Period:    w.Orbit[p.M*p.N],
		Fractions: p.fractions(),
		Params:    w.Params,
		Jac:       w.Jac,
	}, nil
}

// PoincareProblem discretizes a periodic orbit as M points on transversal
// sections, each of reduced dimension N-1. The solution buffer has length
// M·(N-1); the period is implicit in the section return times.
type PoincareProblem struct {
	Map      flow.ReturnMap
	Sections flow.Sections
	M        int
}

func (p *PoincareProblem) Monodromy(w Wrapper) (monodromy.Operator, error) {
	nr := p.Sections.ReducedDim()
	if err := checkLen(w.Orbit, p.M*nr, "poincaré-shooting"); err != nil {
		return nil, err
	}
	return &monodromy.Poincare{
		Map:      p.Map,
		Sections: p.Sections,
		Points:   slices(w.Orbit, p.M, nr),
		Params:   w.Params,
	}, nil
}

// TrapezoidProblem discretizes a periodic orbit as M time slices linked by
// the implicit trapezoid rule. The solution buffer has length M·N+1, the
// last slice being identified with the first.
type TrapezoidProblem struct {
	Field dynsys.VectorField
	Lin   linsolve.Solver
	M     int
	// Fractions are the per-interval step fractions; Fractions[i] is the
	// fraction of the period between slice i-1 and slice i. Nil means
	// uniform steps.
	Fractions []float64
}

func (p *TrapezoidProblem) StepFraction(i int) float64 {
	if p.Fractions == nil {
		return 1 / float64(p.M-1)
	}
	return p.Fractions[i]
}

func (p *TrapezoidProblem) fractions() []float64 {
	if p.Fractions == nil {
		fr := make([]float64, p.M)
		for i := range fr {
			fr[i] = 1 / float64(p.M-1)
		}
		return fr
	}
	return p.Fractions
}

func (p *TrapezoidProblem) Monodromy(w Wrapper) (monodromy.Operator, error) {
	n := p.Field.Dim()
	if err := checkLen(w.Orbit, p.M*n+1, "trapezoid"); err != nil {
		return nil, err
	}
	lin := p.Lin
	if lin == nil {
		lin = linsolve.Dense{}
	}
	return &monodromy.Trapezoid{
		Field:     p.Field,
		Lin:       lin,
		Slices:    slices(w.Orbit, p.M, n),
		Period:    w.Orbit[p.M*n],
		Fractions: p.fractions(),
		Params:    w.Params,
	}, nil
}
