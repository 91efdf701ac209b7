// Package render produces human-readable markdown tables from standardized
// and stitched statements.
package render

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"xbrl_fundamentals/pkg/core/stitch"
)

// Markdown renders a statement as a markdown table: one label column plus
// one column per period, newest first. Absent cells render as em-dashes so
// a missing value is visibly distinct from zero.
func Markdown(st *stitch.Statement) string {
	var b strings.Builder

	title := st.Company
	if title == "" {
		title = st.CIK
	}
	fmt.Fprintf(&b, "## %s — %s\n\n", title, strings.ReplaceAll(st.Role, "_", " "))

	b.WriteString("| Line item |")
	for _, p := range st.Periods {
		fmt.Fprintf(&b, " %s |", p.End.Format("2006-01-02"))
	}
	b.WriteString("\n|---|")
	for range st.Periods {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, row := range st.Rows {
		label := row.Label
		if label == "" {
			label = string(row.Tag)
		}
		if row.Abstract {
			fmt.Fprintf(&b, "| **%s** |", label)
			for range st.Periods {
				b.WriteString(" |")
			}
			b.WriteString("\n")
			continue
		}
		indent := strings.Repeat("&nbsp;&nbsp;", row.Depth)
		fmt.Fprintf(&b, "| %s%s |", indent, label)
		for _, p := range st.Periods {
			cell := row.Cell(p)
			switch {
			case cell == nil:
				b.WriteString(" — |")
			case !cell.Numeric:
				b.WriteString(" · |")
			default:
				fmt.Fprintf(&b, " %s |", formatValue(cell.Value))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatValue prints a numeric cell with thousands separators,
// parenthesizing negatives by statement convention.
func formatValue(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	if v != float64(int64(v)) {
		s = fmt.Sprintf("%.2f", v)
	}

	intPart := s
	frac := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var parts []string
	for len(intPart) > 3 {
		parts = append([]string{intPart[len(intPart)-3:]}, parts...)
		intPart = intPart[:len(intPart)-3]
	}
	parts = append([]string{intPart}, parts...)
	out := strings.Join(parts, ",") + frac

	if neg {
		return "(" + out + ")"
	}
	return out
}

// Validate checks that rendered output parses as markdown. Goldmark is
// permissive, so this is a basic structural sanity check.
func Validate(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}
