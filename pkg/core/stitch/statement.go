// Package stitch builds analysis-ready statement tables: one per-statement
// table for a single filing instance, and the multi-period alignment of the
// same statement role across several instances.
package stitch

import (
	"sort"

	"xbrl_fundamentals/pkg/core/facts"
	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/models"
)

// Cell is one (row, period) value with its sign metadata. The metadata is
// always carried alongside, whichever value mode produced the figure.
type Cell struct {
	Value         float64        `json:"value"`
	Numeric       bool           `json:"numeric"`
	Unit          string         `json:"unit,omitempty"`
	Balance       models.Balance `json:"balance,omitempty"`
	Weight        float64        `json:"weight,omitempty"`
	PreferredSign float64        `json:"preferred_sign,omitempty"`
}

// Row is one statement line. Rows are keyed by standard concept whenever
// standardization succeeded; unresolved rows keep their raw tag so the
// reported values are never lost. A period with no cell for the row is
// explicitly absent, never zero.
type Row struct {
	Concept    models.Concept    `json:"concept,omitempty"`
	Tag        models.Tag        `json:"tag"`
	Label      string            `json:"label"`
	Resolution models.Resolution `json:"resolution,omitempty"`
	Abstract   bool              `json:"abstract,omitempty"`
	Depth      int               `json:"depth"`
	Total      bool              `json:"total,omitempty"`
	Cells      map[string]*Cell  `json:"cells,omitempty"` // by Period.Key()
}

// key aligns rows across periods: by concept when resolved, by raw tag
// otherwise.
func (r *Row) key() string {
	if r.Concept != "" {
		return "c|" + string(r.Concept)
	}
	return "t|" + string(r.Tag)
}

// Statement is a per-statement table: standard-concept rows by aligned
// period columns, descending by period end.
type Statement struct {
	Role    string          `json:"role"`
	CIK     string          `json:"cik"`
	Company string          `json:"company,omitempty"`
	Periods []models.Period `json:"periods"`
	Rows    []*Row          `json:"rows"`
}

// Options control statement construction. The zero value means standard
// view, raw values, no period cap.
type Options struct {
	View       presentation.View
	Mode       facts.ValueMode
	MaxPeriods int
}

// BuildStatement assembles the table for one statement role of one filing
// instance: rows in presentation order, one column per distinct period.
func BuildStatement(inst *filing.Instance, role string, opts Options) *Statement {
	st := &Statement{
		Role:    role,
		CIK:     inst.Meta.CIK,
		Company: inst.Meta.CompanyName,
	}

	tree := inst.Tree(role)
	set := inst.Facts()
	seenPeriods := make(map[string]models.Period)

	addFactCells := func(row *Row, fs []models.Fact) {
		for i := range fs {
			f := &fs[i]
			key := f.Period.Key()
			if _, ok := row.Cells[key]; ok {
				continue
			}
			row.Cells[key] = &Cell{
				Value:         facts.Value(f, opts.Mode),
				Numeric:       f.Numeric,
				Unit:          f.Unit,
				Balance:       f.Balance,
				Weight:        f.Weight,
				PreferredSign: f.PreferredSign,
			}
			seenPeriods[key] = f.Period
		}
	}

	if tree != nil {
		for _, n := range tree.Rows(opts.View) {
			row := &Row{
				Tag:      n.Tag,
				Concept:  n.Concept,
				Label:    n.Label,
				Abstract: n.Abstract,
				Depth:    n.Depth,
				Total:    n.Total,
				Cells:    make(map[string]*Cell),
			}
			if n.Abstract {
				st.Rows = append(st.Rows, row)
				continue
			}
			query := set.Query().Role(role).Tag(n.Tag)
			if !n.Dimensional {
				query = query.FaceOnly()
			}
			fs := query.All()
			if len(fs) > 0 {
				f := fs[0]
				row.Concept = f.Concept
				row.Resolution = f.Resolution
				row.Label = inst.Label(&f)
				addFactCells(row, fs)
			}
			st.Rows = append(st.Rows, row)
		}
	} else {
		// No structure declared for the role: fall back to flat fact order.
		for _, f := range set.Query().Role(role).FaceOnly().All() {
			row := st.findRowByAlignment(f)
			if row == nil {
				row = &Row{
					Tag:        f.Tag,
					Concept:    f.Concept,
					Label:      inst.Label(&f),
					Resolution: f.Resolution,
					Cells:      make(map[string]*Cell),
				}
				st.Rows = append(st.Rows, row)
			}
			addFactCells(row, []models.Fact{f})
		}
	}

	st.Periods = sortPeriods(seenPeriods, opts.MaxPeriods)
	st.dropCapOverflow()
	return st
}

func (st *Statement) findRowByAlignment(f models.Fact) *Row {
	probe := &Row{Concept: f.Concept, Tag: f.Tag}
	for _, r := range st.Rows {
		if r.key() == probe.key() {
			return r
		}
	}
	return nil
}

// sortPeriods orders columns strictly descending by period end (duration
// start breaks end ties) and applies the caller's column cap.
func sortPeriods(seen map[string]models.Period, max int) []models.Period {
	periods := make([]models.Period, 0, len(seen))
	for _, p := range seen {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if !periods[i].End.Equal(periods[j].End) {
			return periods[i].End.After(periods[j].End)
		}
		return periods[i].Start.After(periods[j].Start)
	})
	if max > 0 && len(periods) > max {
		periods = periods[:max]
	}
	return periods
}

// dropCapOverflow removes cells for periods cut by the column cap so rows
// and columns stay consistent.
func (st *Statement) dropCapOverflow() {
	keep := make(map[string]bool, len(st.Periods))
	for _, p := range st.Periods {
		keep[p.Key()] = true
	}
	for _, r := range st.Rows {
		for key := range r.Cells {
			if !keep[key] {
				delete(r.Cells, key)
			}
		}
	}
}

// Cell returns the cell for a period, or nil when the value is explicitly
// absent for that column.
func (r *Row) Cell(p models.Period) *Cell {
	return r.Cells[p.Key()]
}
