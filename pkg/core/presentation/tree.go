// Package presentation reconstructs the hierarchical, ordered structure of
// a statement from the raw parent/child relations declared in a filing.
//
// Nodes live in a flat arena slice and reference each other by index, so
// cycle detection is a visited-set walk and a whole tree is released by
// dropping the Tree value.
package presentation

import (
	"fmt"
	"strings"

	"xbrl_fundamentals/pkg/models"
)

// Relation is one raw presentation arc as declared in the filing's
// structural metadata. Abstract describes the child node.
type Relation struct {
	Parent         models.Tag `json:"parent"`
	Child          models.Tag `json:"child"`
	Order          float64    `json:"order"`
	Label          string     `json:"label,omitempty"` // filer's label text for the child
	PreferredLabel string     `json:"preferred_label,omitempty"`
	Abstract       bool       `json:"abstract,omitempty"`
}

// DropReason explains why an arc was excluded from the built tree.
type DropReason string

const (
	DropCycle           DropReason = "cycle"
	DropSelfReference   DropReason = "self_reference"
	DropDuplicateParent DropReason = "duplicate_parent"
	DropExcludedTag     DropReason = "excluded_tag"
)

// DroppedArc records a relation that could not be applied. Trees degrade
// gracefully; the diagnostics keep the degradation visible.
type DroppedArc struct {
	Relation Relation   `json:"relation"`
	Reason   DropReason `json:"reason"`
}

const noParent = -1

// Node is one entry in a statement hierarchy.
type Node struct {
	Tag            models.Tag     `json:"tag"`
	Concept        models.Concept `json:"concept,omitempty"`
	Parent         int            `json:"parent"` // arena index, -1 for roots
	Children       []int          `json:"children,omitempty"`
	Depth          int            `json:"depth"`
	Order          float64        `json:"order"`
	Label          string         `json:"label,omitempty"`
	PreferredLabel string         `json:"preferred_label,omitempty"`
	Abstract       bool           `json:"abstract,omitempty"`
	Total          bool           `json:"total,omitempty"`
	Dimensional    bool           `json:"dimensional,omitempty"`

	seq int // first-seen document order, tie-break for equal Order values
}

// Tree is the forest of nodes for one statement role within one filing.
type Tree struct {
	Role    string
	nodes   []Node
	roots   []int
	index   map[models.Tag]int
	dropped []DroppedArc
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Roots returns the arena indices of the root nodes, in document order.
func (t *Tree) Roots() []int { return t.roots }

// Node returns the node at arena index i.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// Find returns the arena index for a tag, or -1 if absent.
func (t *Tree) Find(tag models.Tag) int {
	if i, ok := t.index[tag]; ok {
		return i
	}
	return -1
}

// ParentOf returns the parent node of the given tag, or nil for roots and
// unknown tags.
func (t *Tree) ParentOf(tag models.Tag) *Node {
	i := t.Find(tag)
	if i < 0 || t.nodes[i].Parent == noParent {
		return nil
	}
	return &t.nodes[t.nodes[i].Parent]
}

// Dropped returns the arcs excluded during construction.
func (t *Tree) Dropped() []DroppedArc { return t.dropped }

// Walk visits every node in presentation order (pre-order, siblings sorted
// by declared order). The callback receives the arena index.
func (t *Tree) Walk(fn func(i int, n *Node)) {
	var visit func(i int)
	visit = func(i int) {
		fn(i, &t.nodes[i])
		for _, c := range t.nodes[i].Children {
			visit(c)
		}
	}
	for _, r := range t.roots {
		visit(r)
	}
}

// Flatten returns the arena indices in presentation order.
func (t *Tree) Flatten() []int {
	out := make([]int, 0, len(t.nodes))
	t.Walk(func(i int, _ *Node) { out = append(out, i) })
	return out
}

// Position returns the 0-based presentation-order position of a tag,
// or -1 if the tag is not in the tree.
func (t *Tree) Position(tag models.Tag) int {
	target := t.Find(tag)
	if target < 0 {
		return -1
	}
	pos := -1
	for order, i := range t.Flatten() {
		if i == target {
			pos = order
			break
		}
	}
	return pos
}

// CheckAcyclic verifies the forest invariant by traversal from every root:
// no node may be visited twice and every node must be reached exactly once.
func (t *Tree) CheckAcyclic() error {
	seen := make([]bool, len(t.nodes))
	var visit func(i int, path []int) error
	visit = func(i int, path []int) error {
		if seen[i] {
			return fmt.Errorf("node %q reached twice (path %v)", t.nodes[i].Tag, path)
		}
		seen[i] = true
		for _, c := range t.nodes[i].Children {
			if err := visit(c, append(path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range t.roots {
		if err := visit(r, nil); err != nil {
			return err
		}
	}
	for i := range seen {
		if !seen[i] {
			return fmt.Errorf("node %q unreachable from any root", t.nodes[i].Tag)
		}
	}
	return nil
}

// isTotalRow marks subtotal rows: either the preferred label variant is a
// total role (".../role/totalLabel") or the filer's label text starts with
// "Total".
func isTotalRow(preferred, label string) bool {
	if strings.Contains(strings.ToLower(preferred), "total") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), "total")
}

// dimensionalTag reports whether a tag is dimensional machinery or a
// member breakdown rather than a face line item.
func dimensionalTag(tag models.Tag) bool {
	s := string(tag)
	for _, suffix := range []string{"Axis", "Member", "Domain", "Table", "LineItems"} {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
