package flow

import "github.com/san-kum/floq/internal/dynsys"

// Flow propagates tangent vectors through the differential of the time-t
// flow map of a vector field. Implementations may integrate trajectory
// segments concurrently internally; callers treat DifferentialFlow as an
// opaque blocking call.
type Flow interface {
	// DifferentialFlow returns Dφ_tspan(x)·v, the tangent v transported
	// along the trajectory starting at x for duration tspan.
	DifferentialFlow(x dynsys.State, p dynsys.Params, v dynsys.State, tspan float64) (dynsys.State, error)
}

// ReturnMap propagates tangent vectors through the differential of the
// Poincaré return map from section i to section i+1.
type ReturnMap interface {
	Differential(section int, x dynsys.State, p dynsys.Params, v dynsys.State) (dynsys.State, error)
}

// Sections maps between the reduced coordinates of a Poincaré section and
// the ambient state space.
type Sections interface {
	Embed(reduced dynsys.State, section int) dynsys.State
	EmbedTangent(reduced dynsys.State, section int) dynsys.State
	RetractTangent(ambient dynsys.State, section int) dynsys.State
	ReducedDim() int
}
