// Package standardize resolves ambiguous tag-to-concept mappings from local
// document context.
//
// Two strategies apply in order, stopping at the first concrete decision:
// calculation-parent derivation (fast, high confidence), then bottom-up
// section scanning over presentation order. A sign-based tie-break runs
// last where relevant. If everything is silent the fact keeps its original
// tag — the engine never guesses past its evidence.
package standardize

import (
	"xbrl_fundamentals/pkg/core/concepts"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/models"
)

// Context is the per-fact disambiguation context, derived at
// tree-construction time.
type Context struct {
	Role       string
	CalcParent models.Tag // calculation-tree parent, "" if none
	Position   int        // presentation-order position, -1 if absent
	Depth      int
	IsTotal    bool
	Balance    models.Balance
	ValueSign  int // sign of the reported numeric value: -1, 0, +1
}

// DeriveContext assembles the context for one fact from its statement's
// presentation tree and calculation graph. Either may be nil.
func DeriveContext(f *models.Fact, tree *presentation.Tree, calc *CalcGraph) Context {
	ctx := Context{
		Role:       f.Role,
		CalcParent: calc.Parent(f.Tag),
		Position:   -1,
		Balance:    f.Balance,
	}
	if f.Numeric {
		switch {
		case f.Value > 0:
			ctx.ValueSign = 1
		case f.Value < 0:
			ctx.ValueSign = -1
		}
	}
	if tree != nil {
		if i := tree.Find(f.Tag); i >= 0 {
			n := tree.Node(i)
			ctx.Position = tree.Position(f.Tag)
			ctx.Depth = n.Depth
			ctx.IsTotal = n.Total
		}
	}
	return ctx
}

// Disambiguator resolves ambiguous mappings against a reverse mapping
// store. It holds no mutable state; one instance serves any number of
// goroutines.
type Disambiguator struct {
	store *concepts.Store
}

// New creates a disambiguator over the given store.
func New(store *concepts.Store) *Disambiguator {
	return &Disambiguator{store: store}
}

// SectionScan reconstructs section membership purely from document layout:
// scanning presentation order from the last leaf upward, every node marked
// as a total defines a section boundary, and every node passed before the
// next boundary belongs to the section that boundary names.
//
// The returned map is keyed by tag; tags above the topmost boundary map to
// SectionNone.
func (d *Disambiguator) SectionScan(tree *presentation.Tree) map[models.Tag]concepts.Section {
	sections := make(map[models.Tag]concepts.Section)
	if tree == nil {
		return sections
	}
	flat := tree.Flatten()
	current := concepts.SectionNone
	for idx := len(flat) - 1; idx >= 0; idx-- {
		n := tree.Node(flat[idx])
		if n.Total {
			if s := d.sectionOfTotal(n); s != concepts.SectionNone {
				sections[n.Tag] = s
				current = s
				continue
			}
		}
		sections[n.Tag] = current
	}
	return sections
}

// sectionOfTotal names the section a boundary row defines, preferring the
// row's own concept mapping over its label text.
func (d *Disambiguator) sectionOfTotal(n *presentation.Node) concepts.Section {
	if res := d.store.Lookup(n.Tag); res.Kind == concepts.KindResolved {
		if s, ok := anchorSections[res.Concept]; ok {
			return s
		}
		if s := d.store.Section(res.Concept); s != concepts.SectionNone {
			return s
		}
	}
	return sectionForLabel(n.Label)
}

// Resolve picks one concept from the candidate set using document context.
// Identical (tag, context) input always yields the identical decision.
// The boolean is false when no strategy produced a concrete choice; the
// caller then keeps the original tag with an ambiguous marker.
func (d *Disambiguator) Resolve(tag models.Tag, candidates []models.Concept, ctx Context, sections map[models.Tag]concepts.Section) (models.Concept, bool) {
	if len(candidates) == 1 {
		return candidates[0], true
	}
	if len(candidates) == 0 {
		return "", false
	}

	// Strategy 1: calculation-parent derivation. If the parent resolves to
	// a known section anchor, the fact inherits that anchor's section.
	if ctx.CalcParent != "" {
		if res := d.store.Lookup(ctx.CalcParent); res.Kind == concepts.KindResolved {
			if anchor, ok := anchorSections[res.Concept]; ok {
				if c, ok := d.matchSection(candidates, anchor); ok {
					return c, true
				}
			}
		}
	}

	// Strategy 2: bottom-up section scanning over presentation order.
	if sections != nil {
		if sec, ok := sections[tag]; ok && sec != concepts.SectionNone {
			if c, ok := d.matchSection(candidates, sec); ok {
				return c, true
			}
		}
	}

	// Final sign-based tie-break: a positive reported value points at the
	// debit-balance candidate, a negative one at the credit-balance
	// candidate, provided exactly one candidate fits.
	if ctx.ValueSign != 0 {
		want := models.BalanceDebit
		if ctx.ValueSign < 0 {
			want = models.BalanceCredit
		}
		var match models.Concept
		count := 0
		for _, c := range candidates {
			if info, ok := d.store.Info(c); ok && info.Balance == want {
				match = c
				count++
			}
		}
		if count == 1 {
			return match, true
		}
	}

	return "", false
}

// matchSection returns the single candidate whose registry section falls
// under the derived section. More than one match keeps the ambiguity.
func (d *Disambiguator) matchSection(candidates []models.Concept, sec concepts.Section) (models.Concept, bool) {
	var match models.Concept
	count := 0
	for _, c := range candidates {
		if sec.Covers(d.store.Section(c)) {
			match = c
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return "", false
}
