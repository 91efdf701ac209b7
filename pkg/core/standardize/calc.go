package standardize

import "xbrl_fundamentals/pkg/models"

// CalcGraph indexes the raw calculation relations of one statement role.
// A child contributes to at most one roll-up parent within a role; when a
// filing declares more than one, the first declaration wins so resolution
// stays deterministic.
type CalcGraph struct {
	parents map[models.Tag]models.Tag
	weights map[models.Tag]float64
}

// NewCalcGraph builds the child->parent index from raw calculation arcs.
// Self-referencing arcs are ignored; weights default to +1 when a filing
// omits them.
func NewCalcGraph(relations []models.CalcRelation) *CalcGraph {
	g := &CalcGraph{
		parents: make(map[models.Tag]models.Tag, len(relations)),
		weights: make(map[models.Tag]float64, len(relations)),
	}
	for _, rel := range relations {
		if rel.Parent == rel.Child || rel.Child == "" {
			continue
		}
		if _, seen := g.parents[rel.Child]; seen {
			continue
		}
		g.parents[rel.Child] = rel.Parent
		w := rel.Weight
		if w == 0 {
			w = 1
		}
		g.weights[rel.Child] = w
	}
	return g
}

// Parent returns the calculation-tree parent of a tag, or "" if none.
func (g *CalcGraph) Parent(tag models.Tag) models.Tag {
	if g == nil {
		return ""
	}
	return g.parents[tag]
}

// Weight returns the contribution sign of a tag toward its parent,
// defaulting to +1 for tags outside the calculation tree.
func (g *CalcGraph) Weight(tag models.Tag) float64 {
	if g == nil {
		return 1
	}
	if w, ok := g.weights[tag]; ok {
		return w
	}
	return 1
}
