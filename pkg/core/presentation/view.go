package presentation

// View selects which nodes of a built tree are visible at read time.
// Views filter; they never rebuild or mutate the tree.
type View int

const (
	// ViewStandard keeps face-level dimensional rows but hides deeper
	// dimensional breakdowns, matching conventional viewer display.
	ViewStandard View = iota
	// ViewDetailed retains every node, including all breakdowns.
	ViewDetailed
	// ViewSummary drops every node that carries a dimensional qualifier,
	// leaving non-dimensional totals only.
	ViewSummary
)

func (v View) String() string {
	switch v {
	case ViewDetailed:
		return "detailed"
	case ViewSummary:
		return "summary"
	default:
		return "standard"
	}
}

// Visible reports whether the node at arena index i is visible in view v.
func (t *Tree) Visible(i int, v View) bool {
	n := &t.nodes[i]
	switch v {
	case ViewDetailed:
		return true
	case ViewSummary:
		return !n.Dimensional
	default: // ViewStandard
		if !n.Dimensional {
			return true
		}
		// Face-level breakdown: a dimensional node hanging directly off
		// non-dimensional structure stays; nested breakdowns hide.
		return n.Parent != noParent && !t.nodes[n.Parent].Dimensional
	}
}

// Rows returns the visible nodes in presentation order for a view.
func (t *Tree) Rows(v View) []*Node {
	var rows []*Node
	t.Walk(func(i int, n *Node) {
		if t.Visible(i, v) {
			rows = append(rows, n)
		}
	})
	return rows
}

// Leaves returns the visible non-abstract nodes in presentation order.
func (t *Tree) Leaves(v View) []*Node {
	var leaves []*Node
	for _, n := range t.Rows(v) {
		if !n.Abstract {
			leaves = append(leaves, n)
		}
	}
	return leaves
}
