// Package filing assembles one parsed document into an immutable filing
// instance: standardized facts plus one presentation tree per statement
// role.
//
// Instances share no mutable state during construction — each owns its own
// node arena — so any number may be built in parallel. The only shared
// object is the read-only concept store.
package filing

import (
	"strings"

	"github.com/google/uuid"

	"xbrl_fundamentals/pkg/core/concepts"
	"xbrl_fundamentals/pkg/core/facts"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/core/standardize"
	"xbrl_fundamentals/pkg/models"
)

// Input is the parsed tuple consumed from the document-retrieval
// collaborator: facts, raw presentation and calculation relations per
// statement role, and entity/period metadata.
type Input struct {
	Meta         models.FilingMetadata              `json:"meta"`
	Facts        []models.Fact                      `json:"facts"`
	Presentation map[string][]presentation.Relation `json:"presentation"`
	Calculation  map[string][]models.CalcRelation   `json:"calculation"`
}

// Instance is one parsed document. Immutable after Build; disposable and
// cacheable by the caller.
type Instance struct {
	ID   string
	Meta models.FilingMetadata

	store    *concepts.Store
	facts    *facts.Set
	trees    map[string]*presentation.Tree
	calc     map[string]*standardize.CalcGraph
	calcRels map[string][]models.CalcRelation
	excluded int // facts omitted because their tag is on the exclusion list
}

// Build parses one input tuple into a filing instance. It returns a
// *DocumentParseError when the document is structurally unusable; every
// lesser problem (cycles, unknown tags, unresolved ambiguity) degrades
// into diagnostics on the instance instead.
func Build(input Input, store *concepts.Store) (*Instance, error) {
	if input.Meta.CIK == "" && input.Meta.AccessionNumber == "" {
		return nil, &DocumentParseError{Reason: "missing entity identity"}
	}
	if len(input.Facts) == 0 && len(input.Presentation) == 0 {
		return nil, &DocumentParseError{
			Accession: input.Meta.AccessionNumber,
			Reason:    "no facts and no structure",
		}
	}

	inst := &Instance{
		ID:       uuid.New().String(),
		Meta:     input.Meta,
		store:    store,
		trees:    make(map[string]*presentation.Tree, len(input.Presentation)),
		calc:     make(map[string]*standardize.CalcGraph, len(input.Calculation)),
		calcRels: make(map[string][]models.CalcRelation, len(input.Calculation)),
	}

	builder := &presentation.Builder{Excluded: store.Excluded}
	for role, relations := range input.Presentation {
		inst.trees[role] = builder.Build(role, relations)
	}
	for role, relations := range input.Calculation {
		inst.calc[role] = standardize.NewCalcGraph(relations)
		inst.calcRels[role] = append([]models.CalcRelation(nil), relations...)
	}

	d := standardize.New(store)
	sections := make(map[string]map[models.Tag]concepts.Section, len(inst.trees))
	for role, tree := range inst.trees {
		sections[role] = d.SectionScan(tree)
	}

	standardized := make([]models.Fact, 0, len(input.Facts))
	for _, f := range input.Facts {
		if f.Role == "" {
			f.Role = inst.roleOf(f.Tag)
		}
		tree := inst.trees[f.Role]
		graph := inst.calc[f.Role]

		res := store.Lookup(f.Tag)
		switch res.Kind {
		case concepts.KindExcluded:
			inst.excluded++
			continue
		case concepts.KindResolved:
			f.Concept = res.Concept
			f.Resolution = models.ResolutionResolved
		case concepts.KindAmbiguous:
			ctx := standardize.DeriveContext(&f, tree, graph)
			if c, ok := d.Resolve(f.Tag, res.Candidates, ctx, sections[f.Role]); ok {
				f.Concept = c
				f.Resolution = models.ResolutionResolved
			} else {
				f.Resolution = models.ResolutionAmbiguous
			}
		default:
			f.Resolution = models.ResolutionUnmapped
		}

		if f.Weight == 0 {
			f.Weight = graph.Weight(f.Tag)
		}
		if f.PreferredSign == 0 {
			f.PreferredSign = preferredSignOf(tree, f.Tag)
		}
		if f.Label == "" && tree != nil {
			if i := tree.Find(f.Tag); i >= 0 {
				f.Label = tree.Node(i).Label
			}
		}
		standardized = append(standardized, f)
	}
	inst.facts = facts.NewSet(standardized)
	return inst, nil
}

// roleOf finds the statement role whose tree carries the tag. Roles are
// checked in a fixed order so assignment is deterministic.
func (inst *Instance) roleOf(tag models.Tag) string {
	for _, role := range []string{
		models.RoleBalanceSheet,
		models.RoleIncomeStatement,
		models.RoleCashFlow,
		models.RoleComprehensive,
		models.RoleEquity,
	} {
		if t, ok := inst.trees[role]; ok && t.Find(tag) >= 0 {
			return role
		}
	}
	for role, t := range inst.trees {
		if t.Find(tag) >= 0 {
			return role
		}
	}
	return ""
}

// preferredSignOf derives the presentation sign hint from the node's
// preferred label variant: negated label roles display sign-flipped.
func preferredSignOf(tree *presentation.Tree, tag models.Tag) float64 {
	if tree != nil {
		if i := tree.Find(tag); i >= 0 {
			if strings.Contains(strings.ToLower(tree.Node(i).PreferredLabel), "negated") {
				return -1
			}
		}
	}
	return 1
}

// Facts returns the instance's immutable fact set.
func (inst *Instance) Facts() *facts.Set { return inst.facts }

// Tree returns the presentation tree for a statement role, or nil.
func (inst *Instance) Tree(role string) *presentation.Tree { return inst.trees[role] }

// Roles returns the statement roles the instance carries trees for.
func (inst *Instance) Roles() []string {
	roles := make([]string, 0, len(inst.trees))
	for role := range inst.trees {
		roles = append(roles, role)
	}
	return roles
}

// CalcRelations returns the raw calculation arcs declared for a role.
func (inst *Instance) CalcRelations(role string) []models.CalcRelation {
	return inst.calcRels[role]
}

// Store returns the shared concept store the instance was built against.
func (inst *Instance) Store() *concepts.Store { return inst.store }

// ExcludedFacts reports how many input facts were silently omitted because
// their tag is on the exclusion list.
func (inst *Instance) ExcludedFacts() int { return inst.excluded }

// Label returns the display label for a fact: the concept's registry label
// when standardization succeeded, otherwise the filer's own label.
func (inst *Instance) Label(f *models.Fact) string {
	if f.Resolution == models.ResolutionResolved && f.Concept != "" {
		return inst.store.Label(f.Concept)
	}
	if f.Label != "" {
		return f.Label
	}
	return string(f.Tag)
}
