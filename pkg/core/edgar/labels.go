package edgar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"xbrl_fundamentals/pkg/models"
)

// parseLabelLinkbase extracts the filer's standard English labels per tag.
// Terse/verbose variants are ignored; the standard label is what a viewer
// displays and what bottom-up section scanning matches against.
func parseLabelLinkbase(data []byte) (map[models.Tag]string, error) {
	labels := make(map[models.Tag]string)

	dec := xml.NewDecoder(bytes.NewReader(data))
	locs := make(map[string]models.Tag)        // xlink label -> tag
	arcs := make(map[string][]string)          // from (loc label) -> to (label resource)
	texts := make(map[string]string)           // label resource -> text
	roles := make(map[string]string)           // label resource -> label role
	var currentResource, currentRole string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenize label linkbase: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "loc":
				locs[xlinkAttr(t, "label")] = hrefTag(xlinkAttr(t, "href"))
			case "labelArc":
				from := xlinkAttr(t, "from")
				arcs[from] = append(arcs[from], xlinkAttr(t, "to"))
			case "label":
				currentResource = xlinkAttr(t, "label")
				currentRole = xlinkAttr(t, "role")
			}
		case xml.CharData:
			if currentResource != "" {
				texts[currentResource] += string(t)
				roles[currentResource] = currentRole
			}
		case xml.EndElement:
			if t.Name.Local == "label" {
				currentResource = ""
				currentRole = ""
			}
		}
	}

	for from, tag := range locs {
		var standard, fallback string
		for _, to := range arcs[from] {
			text := strings.TrimSpace(texts[to])
			if text == "" {
				continue
			}
			role := roles[to]
			if strings.HasSuffix(role, "/label") || role == "" {
				standard = text
			} else if fallback == "" {
				fallback = text
			}
		}
		if standard == "" {
			standard = fallback
		}
		if standard != "" {
			labels[tag] = standard
		}
	}
	return labels, nil
}
