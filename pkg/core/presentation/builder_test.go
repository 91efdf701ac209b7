package presentation

import (
	"reflect"
	"testing"

	"xbrl_fundamentals/pkg/models"
)

// balanceSheetRelations is a small but realistic arc set: an abstract root,
// two sections, ordered leaves and a subtotal.
func balanceSheetRelations() []Relation {
	return []Relation{
		{Parent: "us-gaap:AssetsAbstract", Child: "us-gaap:AssetsCurrentAbstract", Order: 1, Abstract: true},
		{Parent: "us-gaap:AssetsCurrentAbstract", Child: "us-gaap:CashAndCashEquivalentsAtCarryingValue", Order: 1, Label: "Cash and cash equivalents"},
		{Parent: "us-gaap:AssetsCurrentAbstract", Child: "us-gaap:AccountsReceivableNetCurrent", Order: 2, Label: "Accounts receivable"},
		{Parent: "us-gaap:AssetsCurrentAbstract", Child: "us-gaap:AssetsCurrent", Order: 3, Label: "Total current assets", PreferredLabel: "http://www.xbrl.org/2003/role/totalLabel"},
		{Parent: "us-gaap:AssetsAbstract", Child: "us-gaap:Assets", Order: 2, Label: "Total assets", PreferredLabel: "http://www.xbrl.org/2003/role/totalLabel"},
	}
}

func tagsOf(t *Tree, indices []int) []models.Tag {
	out := make([]models.Tag, len(indices))
	for i, idx := range indices {
		out[i] = t.Node(idx).Tag
	}
	return out
}

func TestBuildBasicTree(t *testing.T) {
	tree := NewBuilder().Build(models.RoleBalanceSheet, balanceSheetRelations())

	if err := tree.CheckAcyclic(); err != nil {
		t.Fatalf("tree not a forest: %v", err)
	}
	if len(tree.Dropped()) != 0 {
		t.Fatalf("unexpected drops: %v", tree.Dropped())
	}

	want := []models.Tag{
		"us-gaap:AssetsAbstract",
		"us-gaap:AssetsCurrentAbstract",
		"us-gaap:CashAndCashEquivalentsAtCarryingValue",
		"us-gaap:AccountsReceivableNetCurrent",
		"us-gaap:AssetsCurrent",
		"us-gaap:Assets",
	}
	if got := tagsOf(tree, tree.Flatten()); !reflect.DeepEqual(got, want) {
		t.Errorf("presentation order = %v, want %v", got, want)
	}

	if d := tree.Node(tree.Find("us-gaap:CashAndCashEquivalentsAtCarryingValue")).Depth; d != 2 {
		t.Errorf("cash depth = %d, want 2", d)
	}
	if !tree.Node(tree.Find("us-gaap:AssetsCurrent")).Total {
		t.Error("totalLabel row not marked as total")
	}
	if p := tree.ParentOf("us-gaap:AssetsCurrent"); p == nil || p.Tag != "us-gaap:AssetsCurrentAbstract" {
		t.Errorf("ParentOf(AssetsCurrent) = %v", p)
	}
}

func TestBuildLabelTextMarksTotals(t *testing.T) {
	rels := []Relation{
		{Parent: "p:Root", Child: "p:Liabilities", Order: 1, Label: "Total Current Liabilities"},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)
	if !tree.Node(tree.Find("p:Liabilities")).Total {
		t.Error("label starting with Total not marked as total row")
	}
}

func TestBuildDuplicateArcLastValueWins(t *testing.T) {
	rels := []Relation{
		{Parent: "p:Root", Child: "p:A", Order: 1, Label: "first"},
		{Parent: "p:Root", Child: "p:B", Order: 2},
		// Amended arc for the same pair: later order and label win, but the
		// node keeps its first-seen position among siblings of equal order.
		{Parent: "p:Root", Child: "p:A", Order: 5, Label: "second"},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)

	n := tree.Node(tree.Find("p:A"))
	if n.Order != 5 || n.Label != "second" {
		t.Errorf("collapsed arc = order %v label %q, want 5 %q", n.Order, n.Label, "second")
	}
	if len(tree.Dropped()) != 0 {
		t.Errorf("duplicate arc should collapse, not drop: %v", tree.Dropped())
	}
	// With order 5 > 2, A now sorts after B.
	want := []models.Tag{"p:Root", "p:B", "p:A"}
	if got := tagsOf(tree, tree.Flatten()); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuildDuplicateParentKeepsFirst(t *testing.T) {
	rels := []Relation{
		{Parent: "p:First", Child: "p:Shared", Order: 1},
		{Parent: "p:Second", Child: "p:Shared", Order: 1},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)

	if p := tree.ParentOf("p:Shared"); p == nil || p.Tag != "p:First" {
		t.Errorf("ParentOf(Shared) = %v, want p:First", p)
	}
	drops := tree.Dropped()
	if len(drops) != 1 || drops[0].Reason != DropDuplicateParent {
		t.Errorf("dropped = %v, want one duplicate_parent", drops)
	}
}

func TestBuildDroppedArcLeavesNodeUntouched(t *testing.T) {
	rels := []Relation{
		{Parent: "p:Root", Child: "p:Alpha", Order: 1, Label: "Alpha"},
		{Parent: "p:Root", Child: "p:Beta", Order: 2, Label: "Beta"},
		// Second parent for Beta drops, so its order and label must not
		// leak onto the kept node.
		{Parent: "p:Other", Child: "p:Beta", Order: 0, Label: "Bogus", PreferredLabel: "http://www.xbrl.org/2003/role/totalLabel"},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)

	drops := tree.Dropped()
	if len(drops) != 1 || drops[0].Reason != DropDuplicateParent {
		t.Fatalf("dropped = %v, want one duplicate_parent", drops)
	}
	n := tree.Node(tree.Find("p:Beta"))
	if n.Order != 2 || n.Label != "Beta" || n.Total {
		t.Errorf("node mutated by dropped arc: order=%v label=%q total=%v", n.Order, n.Label, n.Total)
	}
	// Sibling order still follows the applied arcs.
	want := []models.Tag{"p:Root", "p:Alpha", "p:Beta", "p:Other"}
	if got := tagsOf(tree, tree.Flatten()); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuildCycleDropsArcKeepsRest(t *testing.T) {
	rels := []Relation{
		{Parent: "p:A", Child: "p:B", Order: 1},
		{Parent: "p:B", Child: "p:C", Order: 1},
		{Parent: "p:C", Child: "p:A", Order: 1}, // closes A -> B -> C -> A
		{Parent: "p:A", Child: "p:D", Order: 2},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)

	if err := tree.CheckAcyclic(); err != nil {
		t.Fatalf("cycle survived: %v", err)
	}
	drops := tree.Dropped()
	if len(drops) != 1 || drops[0].Reason != DropCycle {
		t.Fatalf("dropped = %v, want one cycle drop", drops)
	}
	if drops[0].Relation.Parent != "p:C" || drops[0].Relation.Child != "p:A" {
		t.Errorf("wrong arc dropped: %v", drops[0].Relation)
	}
	// Everything else still builds.
	want := []models.Tag{"p:A", "p:B", "p:C", "p:D"}
	if got := tagsOf(tree, tree.Flatten()); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuildSelfReferenceDrops(t *testing.T) {
	rels := []Relation{
		{Parent: "p:A", Child: "p:A", Order: 1},
		{Parent: "p:A", Child: "p:B", Order: 2},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)
	drops := tree.Dropped()
	if len(drops) != 1 || drops[0].Reason != DropSelfReference {
		t.Errorf("dropped = %v, want one self_reference", drops)
	}
	if tree.Find("p:B") < 0 {
		t.Error("sibling arc lost alongside self reference")
	}
}

func TestBuildExcludedFilter(t *testing.T) {
	b := &Builder{Excluded: func(tag models.Tag) bool { return tag == "p:Noise" }}
	rels := []Relation{
		{Parent: "p:Root", Child: "p:Keep", Order: 1},
		{Parent: "p:Root", Child: "p:Noise", Order: 2},
		{Parent: "p:Noise", Child: "p:Orphaned", Order: 1},
	}
	tree := b.Build(models.RoleBalanceSheet, rels)

	if tree.Find("p:Noise") >= 0 {
		t.Error("excluded tag surfaced as a node")
	}
	if got := len(tree.Dropped()); got != 2 {
		t.Errorf("dropped %d arcs, want 2", got)
	}
	for _, d := range tree.Dropped() {
		if d.Reason != DropExcludedTag {
			t.Errorf("drop reason = %s, want excluded_tag", d.Reason)
		}
	}
}

func TestBuildOrderTieBreaksByFirstSeen(t *testing.T) {
	rels := []Relation{
		{Parent: "p:Root", Child: "p:Second", Order: 1},
		{Parent: "p:Root", Child: "p:First", Order: 1},
	}
	tree := NewBuilder().Build(models.RoleBalanceSheet, rels)
	want := []models.Tag{"p:Root", "p:Second", "p:First"}
	if got := tagsOf(tree, tree.Flatten()); !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break order = %v, want %v", got, want)
	}
}

func TestBuildDeterministic(t *testing.T) {
	rels := balanceSheetRelations()
	a := NewBuilder().Build(models.RoleBalanceSheet, rels)
	for i := 0; i < 10; i++ {
		b := NewBuilder().Build(models.RoleBalanceSheet, rels)
		if !reflect.DeepEqual(tagsOf(a, a.Flatten()), tagsOf(b, b.Flatten())) {
			t.Fatal("identical input produced different trees")
		}
	}
}

func TestViews(t *testing.T) {
	rels := []Relation{
		{Parent: "p:Root", Child: "us-gaap:Revenues", Order: 1},
		{Parent: "us-gaap:Revenues", Child: "srt:ProductOrServiceAxis", Order: 1},
		{Parent: "srt:ProductOrServiceAxis", Child: "us-gaap:ProductMember", Order: 1},
	}
	tree := NewBuilder().Build(models.RoleIncomeStatement, rels)

	counts := map[View]int{
		ViewDetailed: 4, // everything
		ViewStandard: 3, // face-level axis kept, nested member hidden
		ViewSummary:  2, // dimensional machinery gone entirely
	}
	for view, want := range counts {
		if got := len(tree.Rows(view)); got != want {
			t.Errorf("%s view rows = %d, want %d", view, got, want)
		}
	}
}

func TestDimensionalTag(t *testing.T) {
	tests := []struct {
		tag  models.Tag
		want bool
	}{
		{"srt:ProductOrServiceAxis", true},
		{"us-gaap:ProductMember", true},
		{"us-gaap:ProductsAndServicesDomain", true},
		{"us-gaap:ScheduleOfSegmentReportingTable", true},
		{"us-gaap:SegmentReportingLineItems", true},
		{"us-gaap:Assets", false},
	}
	for _, tt := range tests {
		if got := dimensionalTag(tt.tag); got != tt.want {
			t.Errorf("dimensionalTag(%s) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
