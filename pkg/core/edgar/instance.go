package edgar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"xbrl_fundamentals/pkg/models"
)

// xbrlContext is one xbrli:context: entity, period and dimensional segment.
type xbrlContext struct {
	ID         string
	Entity     string
	Period     models.Period
	Dimensions []models.Dimension
}

// rawFact is one tagged value before period/unit resolution.
type rawFact struct {
	Tag        models.Tag
	Value      string
	ContextRef string
	UnitRef    string
	Decimals   string
}

// instanceDoc is a tokenized XBRL instance document.
type instanceDoc struct {
	Contexts map[string]xbrlContext
	Units    map[string]string // unit id -> measure
	Facts    []rawFact
}

// factNamespaces are the element prefixes treated as reported facts.
// Everything else (linkbase machinery, footnotes) is skipped.
var factNamespaces = map[string]bool{
	"us-gaap": true,
	"ifrs":    true,
	"dei":     true,
	"srt":     true,
}

// parseInstance tokenizes an XBRL instance document. Facts are dynamic
// elements (us-gaap:Assets, us-gaap:Revenues, ...), so this walks the
// token stream instead of unmarshalling a fixed schema.
func parseInstance(data []byte) (*instanceDoc, error) {
	doc := &instanceDoc{
		Contexts: make(map[string]xbrlContext),
		Units:    make(map[string]string),
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenize instance: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			if start.Name.Local != "xbrl" {
				return nil, fmt.Errorf("root element %q is not an XBRL instance", start.Name.Local)
			}
			sawRoot = true
			continue
		}

		switch start.Name.Local {
		case "context":
			ctx, err := parseContext(dec, start)
			if err != nil {
				return nil, err
			}
			doc.Contexts[ctx.ID] = ctx
		case "unit":
			id, measure := parseUnit(dec, start)
			if id != "" {
				doc.Units[id] = measure
			}
		case "schemaRef", "linkbaseRef", "roleRef", "footnoteLink":
			dec.Skip()
		default:
			if f, ok := parseFactElement(dec, start); ok {
				doc.Facts = append(doc.Facts, f)
			}
		}
	}
	if !sawRoot {
		return nil, fmt.Errorf("no XBRL root element")
	}
	return doc, nil
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// parseContext reads one xbrli:context element.
func parseContext(dec *xml.Decoder, start xml.StartElement) (xbrlContext, error) {
	ctx := xbrlContext{ID: attr(start, "id")}
	var instant, startDate, endDate string
	var current string

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return ctx, fmt.Errorf("context %s: %w", ctx.ID, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			current = t.Name.Local
			if current == "explicitMember" {
				ctx.Dimensions = append(ctx.Dimensions, models.Dimension{
					Axis: models.Tag(attr(t, "dimension")),
				})
			}
		case xml.EndElement:
			depth--
			current = ""
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			switch current {
			case "identifier":
				ctx.Entity = text
			case "instant":
				instant = text
			case "startDate":
				startDate = text
			case "endDate":
				endDate = text
			case "explicitMember":
				if n := len(ctx.Dimensions); n > 0 {
					ctx.Dimensions[n-1].Member = models.Tag(text)
				}
			}
		}
	}

	switch {
	case instant != "":
		t, err := time.Parse("2006-01-02", instant)
		if err != nil {
			return ctx, fmt.Errorf("context %s: bad instant %q", ctx.ID, instant)
		}
		ctx.Period = models.Instant(t)
	case startDate != "" && endDate != "":
		s, err1 := time.Parse("2006-01-02", startDate)
		e, err2 := time.Parse("2006-01-02", endDate)
		if err1 != nil || err2 != nil {
			return ctx, fmt.Errorf("context %s: bad duration %q..%q", ctx.ID, startDate, endDate)
		}
		ctx.Period = models.Duration(s, e)
	}
	return ctx, nil
}

// parseUnit reads one xbrli:unit element, returning the first measure.
func parseUnit(dec *xml.Decoder, start xml.StartElement) (string, string) {
	id := attr(start, "id")
	var measure, current string
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return id, measure
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			current = t.Name.Local
		case xml.EndElement:
			depth--
			current = ""
		case xml.CharData:
			if current == "measure" && measure == "" {
				m := strings.TrimSpace(string(t))
				if i := strings.Index(m, ":"); i >= 0 {
					m = m[i+1:]
				}
				measure = m
			}
		}
	}
	return id, measure
}

// parseFactElement reads a candidate fact element; returns false for
// elements outside the fact namespaces or without a context reference.
func parseFactElement(dec *xml.Decoder, start xml.StartElement) (rawFact, bool) {
	prefix := nsPrefix(start.Name)
	ctxRef := attr(start, "contextRef")
	if ctxRef == "" || (prefix != "" && !factNamespaces[prefix] && !strings.Contains(start.Name.Space, "fasb.org") && !strings.Contains(start.Name.Space, "xbrl.sec.gov")) {
		dec.Skip()
		return rawFact{}, false
	}

	var value strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			value.Write(t)
		}
	}

	tag := models.Tag(start.Name.Local)
	if prefix != "" {
		tag = models.Tag(prefix + ":" + start.Name.Local)
	}
	return rawFact{
		Tag:        tag,
		Value:      strings.TrimSpace(value.String()),
		ContextRef: ctxRef,
		UnitRef:    attr(start, "unitRef"),
		Decimals:   attr(start, "decimals"),
	}, true
}

// nsPrefix recovers the conventional prefix for a namespace URI.
func nsPrefix(name xml.Name) string {
	space := name.Space
	switch {
	case strings.Contains(space, "us-gaap"), strings.Contains(space, "fasb.org/us-gaap"):
		return "us-gaap"
	case strings.Contains(space, "dei"):
		return "dei"
	case strings.Contains(space, "/srt"):
		return "srt"
	case strings.Contains(space, "ifrs"):
		return "ifrs"
	}
	return ""
}

// parseNumeric parses a reported numeric value. Parenthesized values are
// negative by filer convention.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "—" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.Trim(s, "()")
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}
