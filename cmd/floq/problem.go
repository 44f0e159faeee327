package main

import (
	"fmt"
	"math"

	"github.com/san-kum/floq/internal/config"
	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/flow"
	"github.com/san-kum/floq/internal/orbit"
	"github.com/san-kum/floq/internal/systems"
)

// buildProblem assembles the demo orbit and discretization for a config.
// The CLI ships shooting and trapezoid discretizations; Poincaré shooting
// needs section collaborators a demo cannot fabricate.
func buildProblem(cfg *config.Config) (orbit.Wrapper, error) {
	field, startOnCycle, period, err := buildField(cfg)
	if err != nil {
		return orbit.Wrapper{}, err
	}

	m := cfg.Slices
	if m < 1 {
		m = 1
	}
	fl := flow.NewRK4Flow(field, cfg.Dt)

	var (
		buf  dynsys.State
		prob orbit.Problem
	)
	switch cfg.Method {
	case "shooting":
		buf, err = sampleOrbit(fl, startOnCycle, period, m, false)
		if err != nil {
			return orbit.Wrapper{}, err
		}
		prob = &orbit.ShootingProblem{Flow: fl, M: m, N: field.Dim()}
	case "trapezoid":
		if m < 3 {
			m = 3
		}
		buf, err = sampleOrbit(fl, startOnCycle, period, m, true)
		if err != nil {
			return orbit.Wrapper{}, err
		}
		prob = &orbit.TrapezoidProblem{Field: field, M: m}
	default:
		return orbit.Wrapper{}, fmt.Errorf("unknown method: %s (want shooting or trapezoid)", cfg.Method)
	}

	return orbit.NewWrapper(prob, buf, nil), nil
}

// buildField constructs the vector field and locates a point on its
// periodic orbit together with the period.
func buildField(cfg *config.Config) (dynsys.VectorField, dynsys.State, float64, error) {
	switch cfg.System {
	case "hopf":
		sys := systems.NewHopfCycle()
		applyParams(sys, cfg.Params)
		return sys, dynsys.State{1, 0}, sys.Period(), nil

	case "vanderpol":
		sys := systems.NewVanDerPol()
		applyParams(sys, cfg.Params)
		fl := flow.NewRK4Flow(sys, cfg.Dt)
		start, period, err := findCycle(fl, sys.DefaultState())
		if err != nil {
			return nil, nil, 0, err
		}
		return sys, start, period, nil

	case "duffing":
		sys := systems.NewDuffing()
		applyParams(sys, cfg.Params)
		fl := flow.NewRK4Flow(sys, cfg.Dt)
		tf := sys.ForcingPeriod()
		start, err := fl.Integrate(dynsys.State{1, 0, 0}, nil, 50*tf)
		if err != nil {
			return nil, nil, 0, err
		}
		start[2] = math.Mod(start[2], 2*math.Pi)
		return sys, start, tf, nil

	default:
		return nil, nil, 0, fmt.Errorf("unknown system: %s (want hopf, vanderpol or duffing)", cfg.System)
	}
}

func applyParams(sys dynsys.Configurable, params map[string]float64) {
	for name, value := range params {
		// Unknown names are a config mistake, not a fatal one.
		_ = sys.SetParam(name, value)
	}
}

// sampleOrbit integrates from a point on the cycle and collects m slices,
// appending the period. In closed layout the last slice repeats the first
// and the m slices span the full period.
func sampleOrbit(fl *flow.RK4Flow, start dynsys.State, period float64, m int, closed bool) (dynsys.State, error) {
	n := len(start)
	buf := make(dynsys.State, m*n+1)

	intervals := m
	if closed {
		intervals = m - 1
	}
	h := period / float64(intervals)

	cur := start.Clone()
	for i := 0; i < m; i++ {
		if closed && i == m-1 {
			copy(buf[i*n:(i+1)*n], start)
			break
		}
		copy(buf[i*n:(i+1)*n], cur)
		next, err := fl.Integrate(cur, nil, h)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	buf[m*n] = period
	return buf, nil
}

// findCycle settles onto an attracting limit cycle and measures its period
// via successive upward crossings of the first coordinate through zero.
func findCycle(fl *flow.RK4Flow, x0 dynsys.State) (dynsys.State, float64, error) {
	cur, err := fl.Integrate(x0, nil, 200)
	if err != nil {
		return nil, 0, err
	}

	h := fl.Dt
	if h <= 0 {
		h = 1e-3
	}

	var (
		start     dynsys.State
		crossings int
		t, tFirst float64
	)
	prev := cur.Clone()
	maxT := 200.0
	for t < maxT {
		next, err := fl.Integrate(prev, nil, h)
		if err != nil {
			return nil, 0, err
		}
		t += h

		if prev[0] < 0 && next[0] >= 0 && next[1] > 0 {
			// Linear interpolation of the crossing instant and state.
			s := -prev[0] / (next[0] - prev[0])
			tc := t - h + s*h
			if crossings == 0 {
				tFirst = tc
				start = prev.Add(next.Sub(prev).Scale(s))
			} else {
				return start, tc - tFirst, nil
			}
			crossings++
		}
		prev = next
	}
	return nil, 0, fmt.Errorf("no limit cycle found within t=%.0f", maxT)
}
