package stitch

import (
	"fmt"
	"sort"

	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/models"
)

// Stitcher aligns the same statement role across several filing instances
// of one entity into a single multi-column statement. It holds only read
// references into the instances and never mutates them; the result is
// derived on demand and not persisted.
type Stitcher struct {
	opts Options
}

// NewStitcher creates a stitcher with the given statement options.
func NewStitcher(opts Options) *Stitcher {
	return &Stitcher{opts: opts}
}

// contribution is one instance's claim on one period column.
type contribution struct {
	period models.Period
	inst   *filing.Instance
}

// Stitch aligns one statement role across the given instances. Instances
// must belong to the same entity; mixing entities is a caller error.
//
// Rules:
//   - overlapping end dates: a full annual period beats an interim one;
//   - identical period: the later filing date supersedes (amendments);
//   - one column per distinct (start, end) pair, descending by period end,
//     capped at the configured maximum;
//   - rows are keyed by standard concept, never raw tag, so retagged line
//     items land in the same row;
//   - row labels come from the most recent contributing filing;
//   - a period lacking a fact for a row leaves the cell explicitly absent.
func (s *Stitcher) Stitch(instances []*filing.Instance, role string) (*Statement, error) {
	if len(instances) == 0 {
		return nil, fmt.Errorf("stitch %s: no filing instances", role)
	}
	cik := instances[0].Meta.CIK
	for _, inst := range instances[1:] {
		if inst.Meta.CIK != cik {
			return nil, fmt.Errorf("stitch %s: mixed entities %s and %s", role, cik, inst.Meta.CIK)
		}
	}

	// Per-instance statements carry everything we align: rows in the
	// filer's presentation order plus that filing's period columns.
	perInstance := make(map[*filing.Instance]*Statement, len(instances))
	var contribs []contribution
	for _, inst := range instances {
		st := BuildStatement(inst, role, Options{View: s.opts.View, Mode: s.opts.Mode})
		perInstance[inst] = st
		for _, p := range st.Periods {
			contribs = append(contribs, contribution{period: p, inst: inst})
		}
	}

	winners := selectPeriods(contribs)

	// Newest filing first: its layout and labels drive the merged rows.
	ordered := append([]*filing.Instance(nil), instances...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Meta, ordered[j].Meta
		if !a.PeriodEnd.Equal(b.PeriodEnd) {
			return a.PeriodEnd.After(b.PeriodEnd)
		}
		return a.FilingDate.After(b.FilingDate)
	})

	out := &Statement{
		Role:    role,
		CIK:     cik,
		Company: ordered[0].Meta.CompanyName,
	}
	merged := make(map[string]*Row)
	for _, inst := range ordered {
		for _, row := range perInstance[inst].Rows {
			if row.Abstract || len(row.Cells) == 0 {
				continue
			}
			target, ok := merged[row.key()]
			if !ok {
				// First sighting is the most recent filing that carries
				// the row, so its label sticks.
				target = &Row{
					Concept:    row.Concept,
					Tag:        row.Tag,
					Label:      row.Label,
					Resolution: row.Resolution,
					Depth:      row.Depth,
					Total:      row.Total,
					Cells:      make(map[string]*Cell),
				}
				merged[row.key()] = target
				out.Rows = append(out.Rows, target)
			}
			for key, cell := range row.Cells {
				if winners[key] != inst {
					continue
				}
				if _, exists := target.Cells[key]; !exists {
					target.Cells[key] = cell
				}
			}
		}
	}

	seen := make(map[string]models.Period)
	for _, c := range contribs {
		key := c.period.Key()
		if winners[key] == c.inst {
			seen[key] = c.period
		}
	}
	out.Periods = sortPeriods(seen, s.opts.MaxPeriods)
	out.dropCapOverflow()
	return out, nil
}

// selectPeriods decides, for every distinct period, which instance's
// values populate the column.
//
// Two passes: first, interim durations lose to an annual duration ending
// on the same date (the column disappears in favor of the annual one);
// then, for each surviving period, the instance with the latest filing
// date wins — last filed wins, matching amendment semantics.
func selectPeriods(contribs []contribution) map[string]*filing.Instance {
	annualEnd := make(map[string]bool)
	for _, c := range contribs {
		if !c.period.Instant && c.period.Annual() {
			annualEnd[c.period.End.Format("2006-01-02")] = true
		}
	}

	winners := make(map[string]*filing.Instance)
	best := make(map[string]contribution)
	for _, c := range contribs {
		if !c.period.Instant && !c.period.Annual() && annualEnd[c.period.End.Format("2006-01-02")] {
			continue // interim column superseded by an annual one
		}
		key := c.period.Key()
		cur, ok := best[key]
		if !ok || c.inst.Meta.FilingDate.After(cur.inst.Meta.FilingDate) {
			best[key] = c
		}
	}
	for key, c := range best {
		winners[key] = c.inst
	}
	return winners
}
