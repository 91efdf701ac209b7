package edgar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/models"
)

// roleForURI maps an extended link role URI onto a statement role by
// keyword. Filers invent their own role URIs, but the statement name is
// embedded in them by convention.
func roleForURI(uri string) string {
	lower := strings.ToLower(uri)
	switch {
	case strings.Contains(lower, "parenthetical"):
		return "" // parenthetical variants duplicate the face statements
	case strings.Contains(lower, "balancesheet"), strings.Contains(lower, "financialposition"):
		return models.RoleBalanceSheet
	case strings.Contains(lower, "cashflow"):
		return models.RoleCashFlow
	case strings.Contains(lower, "comprehensive"):
		return models.RoleComprehensive
	case strings.Contains(lower, "operations"), strings.Contains(lower, "incomestatement"), strings.Contains(lower, "statementsofincome"), strings.Contains(lower, "statementofincome"):
		return models.RoleIncomeStatement
	case strings.Contains(lower, "stockholdersequity"), strings.Contains(lower, "shareholdersequity"):
		return models.RoleEquity
	}
	return ""
}

// hrefTag converts a locator href fragment like "#us-gaap_AssetsCurrent"
// into the tag "us-gaap:AssetsCurrent".
func hrefTag(href string) models.Tag {
	frag := href
	if i := strings.Index(frag, "#"); i >= 0 {
		frag = frag[i+1:]
	}
	if i := strings.Index(frag, "_"); i >= 0 {
		return models.Tag(frag[:i] + ":" + frag[i+1:])
	}
	return models.Tag(frag)
}

func abstractTag(tag models.Tag) bool {
	s := string(tag)
	return strings.HasSuffix(s, "Abstract") ||
		strings.HasSuffix(s, "Table") ||
		strings.HasSuffix(s, "LineItems") ||
		strings.HasSuffix(s, "Domain") ||
		strings.HasSuffix(s, "Axis")
}

// parsePresentationLinkbase extracts raw presentation relations grouped by
// statement role. Arcs are emitted in document order so downstream
// tie-breaking stays stable.
func parsePresentationLinkbase(data []byte) (map[string][]presentation.Relation, error) {
	relations := make(map[string][]presentation.Relation)

	dec := xml.NewDecoder(bytes.NewReader(data))
	var role string
	locs := make(map[string]models.Tag) // xlink label -> tag, per extended link
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenize presentation linkbase: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "presentationLink":
				role = roleForURI(xlinkAttr(t, "role"))
				locs = make(map[string]models.Tag)
			case "loc":
				locs[xlinkAttr(t, "label")] = hrefTag(xlinkAttr(t, "href"))
			case "presentationArc":
				if role == "" {
					continue
				}
				parent, pok := locs[xlinkAttr(t, "from")]
				child, cok := locs[xlinkAttr(t, "to")]
				if !pok || !cok {
					continue
				}
				order, _ := strconv.ParseFloat(attr(t, "order"), 64)
				relations[role] = append(relations[role], presentation.Relation{
					Parent:         parent,
					Child:          child,
					Order:          order,
					PreferredLabel: attr(t, "preferredLabel"),
					Abstract:       abstractTag(child),
				})
			}
		case xml.EndElement:
			if t.Name.Local == "presentationLink" {
				role = ""
			}
		}
	}
	return relations, nil
}

// parseCalculationLinkbase extracts weighted calculation arcs grouped by
// statement role.
func parseCalculationLinkbase(data []byte) (map[string][]models.CalcRelation, error) {
	relations := make(map[string][]models.CalcRelation)

	dec := xml.NewDecoder(bytes.NewReader(data))
	var role string
	locs := make(map[string]models.Tag)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenize calculation linkbase: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "calculationLink":
				role = roleForURI(xlinkAttr(t, "role"))
				locs = make(map[string]models.Tag)
			case "loc":
				locs[xlinkAttr(t, "label")] = hrefTag(xlinkAttr(t, "href"))
			case "calculationArc":
				if role == "" {
					continue
				}
				parent, pok := locs[xlinkAttr(t, "from")]
				child, cok := locs[xlinkAttr(t, "to")]
				if !pok || !cok {
					continue
				}
				weight, err := strconv.ParseFloat(attr(t, "weight"), 64)
				if err != nil {
					weight = 1
				}
				relations[role] = append(relations[role], models.CalcRelation{
					Parent: parent,
					Child:  child,
					Weight: weight,
				})
			}
		case xml.EndElement:
			if t.Name.Local == "calculationLink" {
				role = ""
			}
		}
	}
	return relations, nil
}

// xlinkAttr fetches an attribute that may or may not carry the xlink
// namespace prefix depending on the serializer.
func xlinkAttr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
