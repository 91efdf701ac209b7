package filing

import "fmt"

// DocumentParseError is the one hard failure the engine refuses to degrade
// past: the source document is structurally unparsable and no safe partial
// instance can be built. All other conditions degrade locally.
type DocumentParseError struct {
	Accession string
	Reason    string
	Err       error
}

func (e *DocumentParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document %s unparsable: %s: %v", e.Accession, e.Reason, e.Err)
	}
	return fmt.Sprintf("document %s unparsable: %s", e.Accession, e.Reason)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }
