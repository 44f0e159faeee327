package monodromy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/flow"
)

// Poincare computes monodromy for a Poincaré-shooting orbit: reduced
// tangents are embedded into ambient space, transported through the
// differential return map of each section, and retracted back.
type Poincare struct {
	Map      flow.ReturnMap
	Sections flow.Sections
	Points   []dynsys.State
	Params   dynsys.Params
}

func (p *Poincare) Dim() int {
	return p.Sections.ReducedDim()
}

func (p *Poincare) Apply(v []float64) ([]float64, error) {
	nr := p.Dim()
	if len(v) != nr {
		return nil, fmt.Errorf("%w: reduced tangent has dim %d, sections have reduced dim %d", dynsys.ErrDimensionMismatch, len(v), nr)
	}

	cur := dynsys.State(v).Clone()
	for ii := 0; ii < len(p.Points); ii++ {
		ambient := p.Sections.Embed(p.Points[ii], ii)
		tangent := p.Sections.EmbedTangent(cur, ii)
		propagated, err := p.Map.Differential(ii, ambient, p.Params, tangent)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", ii, err)
		}
		cur = p.Sections.RetractTangent(propagated, ii)
	}
	return cur, nil
}

// Dense always fails: the return-map composition is only available as an
// action. Use an iterative eigensolver with this variant.
func (p *Poincare) Dense() (*mat.Dense, error) {
	return nil, fmt.Errorf("%w: poincaré-shooting monodromy cannot be materialized; use an iterative eigensolver", dynsys.ErrNotImplemented)
}
