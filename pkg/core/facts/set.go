package facts

import (
	"sort"
	"time"

	"xbrl_fundamentals/pkg/models"
)

// Set is an immutable collection of facts with deterministic ordering.
// Once built it is never mutated, so any number of goroutines may query it
// without locking and every query is repeatable.
type Set struct {
	facts []models.Fact
}

// NewSet builds a set from a slice of facts. The input is copied and
// sorted into a stable canonical order (role, tag, period, dimensionality)
// so identical input yields identical iteration order across runs.
func NewSet(in []models.Fact) *Set {
	facts := append([]models.Fact(nil), in...)
	sort.SliceStable(facts, func(i, j int) bool {
		a, b := &facts[i], &facts[j]
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		if a.Tag != b.Tag {
			return a.Tag < b.Tag
		}
		if ak, bk := a.Period.Key(), b.Period.Key(); ak != bk {
			return ak < bk
		}
		return len(a.Dimensions) < len(b.Dimensions)
	})
	return &Set{facts: facts}
}

// Len returns the number of facts in the set.
func (s *Set) Len() int { return len(s.facts) }

// All returns a copy of every fact in canonical order.
func (s *Set) All() []models.Fact {
	return append([]models.Fact(nil), s.facts...)
}

// Query starts a fluent, lazily-evaluated filter over the set. Each filter
// call returns a derived query; nothing runs until All, First or Count.
func (s *Set) Query() *Query {
	return &Query{set: s}
}

// Query is a chainable, repeatable view over a fact set.
type Query struct {
	set   *Set
	preds []func(*models.Fact) bool
}

func (q *Query) clone(pred func(*models.Fact) bool) *Query {
	preds := make([]func(*models.Fact) bool, len(q.preds), len(q.preds)+1)
	copy(preds, q.preds)
	return &Query{set: q.set, preds: append(preds, pred)}
}

// Concept filters to facts resolved to the given standard concept.
func (q *Query) Concept(c models.Concept) *Query {
	return q.clone(func(f *models.Fact) bool { return f.Concept == c })
}

// Tag filters to facts reported under the given raw taxonomy tag.
func (q *Query) Tag(t models.Tag) *Query {
	return q.clone(func(f *models.Fact) bool { return f.Tag == t })
}

// Role filters to facts belonging to the given statement role.
func (q *Query) Role(role string) *Query {
	return q.clone(func(f *models.Fact) bool { return f.Role == role })
}

// Period filters to facts reported for exactly the given period.
func (q *Query) Period(p models.Period) *Query {
	key := p.Key()
	return q.clone(func(f *models.Fact) bool { return f.Period.Key() == key })
}

// PeriodEnding filters to facts whose period ends on the given date.
func (q *Query) PeriodEnding(end time.Time) *Query {
	return q.clone(func(f *models.Fact) bool { return f.Period.End.Equal(end) })
}

// Unit filters to facts carrying the given unit.
func (q *Query) Unit(unit string) *Query {
	return q.clone(func(f *models.Fact) bool { return f.Unit == unit })
}

// ValueBetween filters to numeric facts with lo <= raw value <= hi.
func (q *Query) ValueBetween(lo, hi float64) *Query {
	return q.clone(func(f *models.Fact) bool {
		return f.Numeric && f.Value >= lo && f.Value <= hi
	})
}

// FaceOnly filters out facts with any dimensional qualifier.
func (q *Query) FaceOnly() *Query {
	return q.clone(func(f *models.Fact) bool { return !f.Dimensional() })
}

// Resolved filters to facts successfully standardized to a concept.
func (q *Query) Resolved() *Query {
	return q.clone(func(f *models.Fact) bool { return f.Resolution == models.ResolutionResolved })
}

// Where adds an arbitrary predicate.
func (q *Query) Where(pred func(*models.Fact) bool) *Query {
	return q.clone(pred)
}

func (q *Query) match(f *models.Fact) bool {
	for _, pred := range q.preds {
		if !pred(f) {
			return false
		}
	}
	return true
}

// All evaluates the query and returns matching facts in canonical order.
func (q *Query) All() []models.Fact {
	var out []models.Fact
	for i := range q.set.facts {
		if q.match(&q.set.facts[i]) {
			out = append(out, q.set.facts[i])
		}
	}
	return out
}

// First returns the first matching fact in canonical order.
func (q *Query) First() (models.Fact, bool) {
	for i := range q.set.facts {
		if q.match(&q.set.facts[i]) {
			return q.set.facts[i], true
		}
	}
	return models.Fact{}, false
}

// Count returns the number of matching facts.
func (q *Query) Count() int {
	n := 0
	for i := range q.set.facts {
		if q.match(&q.set.facts[i]) {
			n++
		}
	}
	return n
}
