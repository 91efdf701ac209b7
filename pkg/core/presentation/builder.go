package presentation

import (
	"sort"

	"xbrl_fundamentals/pkg/models"
)

// Builder assembles presentation trees from raw relation lists.
// Excluded, when set, suppresses arcs touching excluded tags so they never
// surface as nodes.
type Builder struct {
	Excluded func(models.Tag) bool
}

// NewBuilder creates a builder with no exclusion filter.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build constructs the tree for one statement role.
//
// Rules, matching filer amendment convention:
//   - duplicate arcs between the same parent/child pair collapse,
//     later-declared order/label values win;
//   - a child keeps its first linked parent, later conflicting arcs drop;
//   - arcs that would close a cycle drop; the rest of the tree still builds;
//   - sibling order is ascending by declared order, first-seen wins ties.
//
// Construction is fully deterministic for identical input.
func (b *Builder) Build(role string, relations []Relation) *Tree {
	t := &Tree{
		Role:  role,
		index: make(map[models.Tag]int),
	}

	// Collapse duplicate parent/child arcs, last declaration wins.
	type arcKey struct{ parent, child models.Tag }
	collapsed := make([]Relation, 0, len(relations))
	byKey := make(map[arcKey]int)
	for _, rel := range relations {
		if b.Excluded != nil && (b.Excluded(rel.Parent) || b.Excluded(rel.Child)) {
			t.dropped = append(t.dropped, DroppedArc{Relation: rel, Reason: DropExcludedTag})
			continue
		}
		key := arcKey{rel.Parent, rel.Child}
		if i, seen := byKey[key]; seen {
			collapsed[i] = rel // keep first-seen position, take later values
			continue
		}
		byKey[key] = len(collapsed)
		collapsed = append(collapsed, rel)
	}

	// Materialize nodes in first-appearance order so sequence numbers are
	// stable across runs.
	intern := func(tag models.Tag) int {
		if i, ok := t.index[tag]; ok {
			return i
		}
		i := len(t.nodes)
		t.nodes = append(t.nodes, Node{
			Tag:         tag,
			Parent:      noParent,
			Dimensional: dimensionalTag(tag),
			seq:         i,
		})
		t.index[tag] = i
		return i
	}

	for _, rel := range collapsed {
		pi := intern(rel.Parent)
		ci := intern(rel.Child)

		if pi == ci {
			t.dropped = append(t.dropped, DroppedArc{Relation: rel, Reason: DropSelfReference})
			continue
		}
		child := &t.nodes[ci]
		if child.Parent != noParent {
			t.dropped = append(t.dropped, DroppedArc{Relation: rel, Reason: DropDuplicateParent})
			continue
		}
		if t.isAncestor(ci, pi) {
			t.dropped = append(t.dropped, DroppedArc{Relation: rel, Reason: DropCycle})
			continue
		}

		// A dropped arc must leave the node exactly as it was; attributes
		// come only from the arc that actually links it.
		child.Order = rel.Order
		child.Label = rel.Label
		child.PreferredLabel = rel.PreferredLabel
		child.Abstract = rel.Abstract
		child.Total = isTotalRow(rel.PreferredLabel, rel.Label)
		child.Parent = pi
		t.nodes[pi].Children = append(t.nodes[pi].Children, ci)
	}

	t.finish()
	return t
}

// isAncestor reports whether candidate is an ancestor of node (linking
// node -> child would then close a cycle).
func (t *Tree) isAncestor(candidate, node int) bool {
	for cur := node; cur != noParent; cur = t.nodes[cur].Parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// finish collects roots, sorts siblings and assigns depths.
func (t *Tree) finish() {
	for i := range t.nodes {
		if t.nodes[i].Parent == noParent {
			t.roots = append(t.roots, i)
		}
		children := t.nodes[i].Children
		sort.SliceStable(children, func(a, b int) bool {
			na, nb := &t.nodes[children[a]], &t.nodes[children[b]]
			if na.Order != nb.Order {
				return na.Order < nb.Order
			}
			return na.seq < nb.seq
		})
	}
	sort.SliceStable(t.roots, func(a, b int) bool {
		return t.nodes[t.roots[a]].seq < t.nodes[t.roots[b]].seq
	})

	var assign func(i, depth int)
	assign = func(i, depth int) {
		t.nodes[i].Depth = depth
		for _, c := range t.nodes[i].Children {
			assign(c, depth+1)
		}
	}
	for _, r := range t.roots {
		assign(r, 0)
	}
}
