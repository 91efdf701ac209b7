// Package facts provides read-time value transformation and ordered,
// filterable access to the immutable fact set of a filing instance.
package facts

import "xbrl_fundamentals/pkg/models"

// ValueMode selects how a numeric fact's value is produced on read.
// Modes transform on output only; stored data and sign metadata are never
// altered or discarded.
type ValueMode int

const (
	// ModeRaw returns the value exactly as declared in the source
	// document, matching the regulator's machine-facts feed.
	ModeRaw ValueMode = iota
	// ModePresentation applies the preferred display sign, matching how
	// a human-readable statement conventionally shows the figure.
	ModePresentation
)

func (m ValueMode) String() string {
	if m == ModePresentation {
		return "presentation"
	}
	return "raw"
}

// preferredSign normalizes the presentation hint: anything but an explicit
// -1 displays unchanged.
func preferredSign(f *models.Fact) float64 {
	if f.PreferredSign == -1 {
		return -1
	}
	return 1
}

// RawValue returns the value as reported.
func RawValue(f *models.Fact) float64 {
	return f.Value
}

// PresentationValue returns the human-conventional display value:
// value * preferred_sign when preferred_sign is -1, otherwise unchanged.
// PresentationValue(f) / preferredSign == RawValue(f) always holds.
func PresentationValue(f *models.Fact) float64 {
	return f.Value * preferredSign(f)
}

// Value returns the fact's numeric value in the given mode.
func Value(f *models.Fact, mode ValueMode) float64 {
	if mode == ModePresentation {
		return PresentationValue(f)
	}
	return RawValue(f)
}
