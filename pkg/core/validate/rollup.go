// Package validate cross-checks calculation-tree roll-ups against the
// totals a filer actually reported.
package validate

import (
	"math"
	"sort"

	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/models"
)

// Tolerance for matching calculated against reported totals (1%).
const Tolerance = 0.01

// RollupResult compares one calculated subtotal with its reported value.
type RollupResult struct {
	Parent      models.Tag `json:"parent"`
	Period      string     `json:"period"`
	Calculated  float64    `json:"calculated"`
	Reported    float64    `json:"reported"`
	Difference  float64    `json:"difference"`
	PercentDiff float64    `json:"percent_diff"`
	Match       bool       `json:"match"`
}

// RollupReport holds all roll-up checks for one statement role.
type RollupReport struct {
	Role       string          `json:"role"`
	Results    []*RollupResult `json:"results"`
	AllPassed  bool            `json:"all_passed"`
	ErrorCount int             `json:"error_count"`
}

// CheckRollups sums each calculation parent's children (weighted by their
// declared contribution signs) and compares the sum with the parent's own
// reported value, per period. Parents or children without face-level facts
// are skipped; this is a consistency report, not schema validation.
func CheckRollups(inst *filing.Instance, role string) *RollupReport {
	report := &RollupReport{Role: role, AllPassed: true}

	children := make(map[models.Tag][]models.CalcRelation)
	for _, rel := range inst.CalcRelations(role) {
		children[rel.Parent] = append(children[rel.Parent], rel)
	}

	set := inst.Facts()
	faceValue := func(tag models.Tag, periodKey string) (float64, bool) {
		f, ok := set.Query().Role(role).Tag(tag).FaceOnly().
			Where(func(f *models.Fact) bool { return f.Numeric && f.Period.Key() == periodKey }).
			First()
		if !ok {
			return 0, false
		}
		return f.Value, true
	}

	periods := make(map[string]bool)
	for _, f := range set.Query().Role(role).FaceOnly().All() {
		if f.Numeric {
			periods[f.Period.Key()] = true
		}
	}

	for parent, rels := range children {
		for periodKey := range periods {
			reported, ok := faceValue(parent, periodKey)
			if !ok {
				continue
			}
			var sum float64
			contributing := 0
			for _, rel := range rels {
				v, ok := faceValue(rel.Child, periodKey)
				if !ok {
					continue
				}
				w := rel.Weight
				if w == 0 {
					w = 1
				}
				sum += v * w
				contributing++
			}
			if contributing == 0 {
				continue
			}

			diff := sum - reported
			var pct float64
			var match bool
			if reported != 0 {
				pct = diff / reported
				match = math.Abs(pct) <= Tolerance
			} else {
				// No denominator to scale by; a zero total only matches a
				// (near-)zero sum.
				match = math.Abs(diff) <= Tolerance
			}
			report.Results = append(report.Results, &RollupResult{
				Parent:      parent,
				Period:      periodKey,
				Calculated:  sum,
				Reported:    reported,
				Difference:  diff,
				PercentDiff: pct * 100,
				Match:       match,
			})
			if !match {
				report.AllPassed = false
				report.ErrorCount++
			}
		}
	}
	sort.Slice(report.Results, func(i, j int) bool {
		a, b := report.Results[i], report.Results[j]
		if a.Parent != b.Parent {
			return a.Parent < b.Parent
		}
		return a.Period < b.Period
	})
	return report
}
