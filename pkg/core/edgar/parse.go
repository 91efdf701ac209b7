package edgar

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/models"
)

// filingFiles names the XBRL documents inside one filing archive.
type filingFiles struct {
	Instance     string
	Presentation string
	Calculation  string
	Label        string
}

// indexFiles scans the filing's index page for the XBRL document names.
// EDGAR index pages are plain HTML tables; goquery walks the anchors.
func indexFiles(indexHTML []byte) (filingFiles, error) {
	var files filingFiles
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(indexHTML))
	if err != nil {
		return files, fmt.Errorf("parse filing index: %w", err)
	}

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		name := href
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		lower := strings.ToLower(name)
		switch {
		case strings.HasSuffix(lower, "_pre.xml"):
			files.Presentation = name
		case strings.HasSuffix(lower, "_cal.xml"):
			files.Calculation = name
		case strings.HasSuffix(lower, "_lab.xml"):
			files.Label = name
		case strings.HasSuffix(lower, "_def.xml"), strings.HasSuffix(lower, ".xsd"):
			// definition linkbase and schema are not consumed
		case strings.HasSuffix(lower, "_htm.xml"), isInstanceName(lower):
			if files.Instance == "" {
				files.Instance = name
			}
		}
	})

	if files.Instance == "" {
		return files, fmt.Errorf("no XBRL instance document in filing index")
	}
	return files, nil
}

// isInstanceName matches conventional instance names like aapl-20240928.xml.
func isInstanceName(name string) bool {
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	for _, suffix := range []string{"_pre.xml", "_cal.xml", "_lab.xml", "_def.xml", "_ref.xml"} {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}
	base := strings.TrimSuffix(name, ".xml")
	if i := strings.LastIndex(base, "-"); i >= 0 {
		date := base[i+1:]
		if len(date) == 8 {
			return true
		}
	}
	return false
}

// FilingInput fetches one filing and parses it into the engine's input
// tuple. A structurally unparsable instance document surfaces as a
// *filing.DocumentParseError; missing linkbases degrade to an input
// without structure for the affected roles.
func (c *Client) FilingInput(ctx context.Context, ref FilingRef) (filing.Input, error) {
	var input filing.Input

	accession := strings.ReplaceAll(ref.AccessionNumber, "-", "")
	indexHTML, err := c.document(ctx, ref, accession+"-index.htm")
	if err != nil {
		// Older filings only expose the bare directory listing.
		indexHTML, err = c.document(ctx, ref, "")
		if err != nil {
			return input, fmt.Errorf("fetch filing index %s: %w", ref.AccessionNumber, err)
		}
	}
	files, err := indexFiles(indexHTML)
	if err != nil {
		return input, &filing.DocumentParseError{
			Accession: ref.AccessionNumber,
			Reason:    "unusable filing index",
			Err:       err,
		}
	}

	instanceXML, err := c.document(ctx, ref, files.Instance)
	if err != nil {
		return input, fmt.Errorf("fetch instance %s: %w", files.Instance, err)
	}
	doc, err := parseInstance(instanceXML)
	if err != nil {
		return input, &filing.DocumentParseError{
			Accession: ref.AccessionNumber,
			Reason:    "invalid instance document",
			Err:       err,
		}
	}

	presRel := map[string][]presentation.Relation{}
	calcRel := map[string][]models.CalcRelation{}
	labels := map[models.Tag]string{}

	if files.Presentation != "" {
		if data, err := c.document(ctx, ref, files.Presentation); err == nil {
			if presRel, err = parsePresentationLinkbase(data); err != nil {
				log.Printf("[EDGAR] %s: presentation linkbase dropped: %v", ref.AccessionNumber, err)
				presRel = map[string][]presentation.Relation{}
			}
		}
	}
	if files.Calculation != "" {
		if data, err := c.document(ctx, ref, files.Calculation); err == nil {
			if calcRel, err = parseCalculationLinkbase(data); err != nil {
				log.Printf("[EDGAR] %s: calculation linkbase dropped: %v", ref.AccessionNumber, err)
				calcRel = map[string][]models.CalcRelation{}
			}
		}
	}
	if files.Label != "" {
		if data, err := c.document(ctx, ref, files.Label); err == nil {
			if labels, err = parseLabelLinkbase(data); err != nil {
				log.Printf("[EDGAR] %s: label linkbase dropped: %v", ref.AccessionNumber, err)
				labels = map[models.Tag]string{}
			}
		}
	}

	for role, rels := range presRel {
		for i := range rels {
			if label, ok := labels[rels[i].Child]; ok {
				rels[i].Label = label
			}
		}
		presRel[role] = rels
	}

	input.Meta = models.FilingMetadata{
		CIK:             ref.CIK,
		CompanyName:     ref.CompanyName,
		AccessionNumber: ref.AccessionNumber,
		Form:            ref.Form,
		IsAmended:       strings.HasSuffix(ref.Form, "/A"),
		FiscalYear:      ref.ReportDate.Year(),
		FiscalPeriod:    fiscalPeriod(ref.Form),
		FilingDate:      ref.FilingDate,
		PeriodEnd:       ref.ReportDate,
	}
	input.Presentation = presRel
	input.Calculation = calcRel
	input.Facts = assembleFacts(doc, labels)
	return input, nil
}

// assembleFacts resolves contexts and units onto raw facts.
func assembleFacts(doc *instanceDoc, labels map[models.Tag]string) []models.Fact {
	facts := make([]models.Fact, 0, len(doc.Facts))
	for _, rf := range doc.Facts {
		ctx, ok := doc.Contexts[rf.ContextRef]
		if !ok {
			continue
		}
		f := models.Fact{
			Tag:        rf.Tag,
			Label:      labels[rf.Tag],
			Period:     ctx.Period,
			Dimensions: ctx.Dimensions,
			Unit:       doc.Units[rf.UnitRef],
			Decimals:   rf.Decimals,
		}
		if v, ok := parseNumeric(rf.Value); ok {
			f.Value = v
			f.Numeric = true
		} else {
			f.TextValue = rf.Value
		}
		facts = append(facts, f)
	}
	return facts
}

func fiscalPeriod(form string) string {
	if strings.HasPrefix(form, "10-Q") {
		return "Q"
	}
	return "FY"
}
