package concepts

import (
	"fmt"
	"sort"

	"xbrl_fundamentals/pkg/models"
)

// MappingKind is the outcome of a reverse mapping lookup. Callers must
// handle all four cases; none of them is an error.
type MappingKind int

const (
	// KindUnmapped means the tag is unknown to the mapping tables.
	KindUnmapped MappingKind = iota
	// KindExcluded means the tag must never be standardized or surfaced.
	KindExcluded
	// KindResolved means the tag maps to exactly one concept.
	KindResolved
	// KindAmbiguous means the tag has multiple candidate concepts and
	// needs document context to resolve.
	KindAmbiguous
)

func (k MappingKind) String() string {
	switch k {
	case KindExcluded:
		return "excluded"
	case KindResolved:
		return "resolved"
	case KindAmbiguous:
		return "ambiguous"
	default:
		return "unmapped"
	}
}

// MappingResult is the tagged result of Store.Lookup.
type MappingResult struct {
	Kind       MappingKind
	Concept    models.Concept   // set when Kind == KindResolved
	Candidates []models.Concept // set when Kind == KindAmbiguous, sorted
}

// Mapping is one reverse-mapping table entry, keyed by taxonomy tag.
type Mapping struct {
	Tag             models.Tag       `yaml:"tag"`
	Concepts        []models.Concept `yaml:"concepts"`
	Excluded        bool             `yaml:"excluded,omitempty"`
	DeprecatedSince int              `yaml:"deprecated_since,omitempty"` // informational only
}

// Store is the immutable reverse mapping store. It is built once at process
// start and shared by reference across all parsing goroutines; lookups need
// no synchronization because nothing mutates after construction.
type Store struct {
	concepts map[models.Concept]Info
	mappings map[models.Tag]Mapping
	labels   map[models.Concept]string
}

// NewStore builds a store from a concept registry, a mapping table and an
// excluded-tag list. Mapping entries referencing unknown concepts are
// rejected so a bad reference table fails loudly at startup, not at lookup.
func NewStore(registry []Info, mappings []Mapping, excluded []models.Tag) (*Store, error) {
	s := &Store{
		concepts: make(map[models.Concept]Info, len(registry)),
		mappings: make(map[models.Tag]Mapping, len(mappings)+len(excluded)),
		labels:   make(map[models.Concept]string, len(registry)),
	}
	for _, info := range registry {
		if info.Key == "" {
			return nil, fmt.Errorf("concept registry entry with empty key")
		}
		if _, dup := s.concepts[info.Key]; dup {
			return nil, fmt.Errorf("duplicate concept key %q", info.Key)
		}
		s.concepts[info.Key] = info
		s.labels[info.Key] = info.Label
	}
	for _, m := range mappings {
		if m.Tag == "" {
			return nil, fmt.Errorf("mapping entry with empty tag")
		}
		if !m.Excluded && len(m.Concepts) == 0 {
			return nil, fmt.Errorf("mapping for %q has no concepts and is not excluded", m.Tag)
		}
		for _, c := range m.Concepts {
			if _, ok := s.concepts[c]; !ok {
				return nil, fmt.Errorf("mapping for %q references unknown concept %q", m.Tag, c)
			}
		}
		// Candidate order must not depend on table declaration order.
		sorted := append([]models.Concept(nil), m.Concepts...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		m.Concepts = sorted
		s.mappings[m.Tag] = m
	}
	for _, tag := range excluded {
		s.mappings[tag] = Mapping{Tag: tag, Excluded: true}
	}
	return s, nil
}

// DefaultStore builds a store from the built-in registry and mapping tables.
func DefaultStore() *Store {
	s, err := NewStore(builtinConcepts, builtinMappings, builtinExcluded)
	if err != nil {
		// Built-in tables are checked by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("concepts: invalid built-in tables: %v", err))
	}
	return s
}

// Lookup maps a raw taxonomy tag to its standardization outcome.
// Unknown tags yield KindUnmapped, never an error.
func (s *Store) Lookup(tag models.Tag) MappingResult {
	m, ok := s.mappings[tag]
	if !ok {
		return MappingResult{Kind: KindUnmapped}
	}
	if m.Excluded {
		return MappingResult{Kind: KindExcluded}
	}
	if len(m.Concepts) == 1 {
		return MappingResult{Kind: KindResolved, Concept: m.Concepts[0]}
	}
	return MappingResult{Kind: KindAmbiguous, Candidates: m.Concepts}
}

// Info returns registry metadata for a concept.
func (s *Store) Info(c models.Concept) (Info, bool) {
	info, ok := s.concepts[c]
	return info, ok
}

// Label returns the display label for a concept, falling back to the key
// itself for unknown concepts.
func (s *Store) Label(c models.Concept) string {
	if label, ok := s.labels[c]; ok {
		return label
	}
	return string(c)
}

// Section returns the statement section a concept belongs to.
func (s *Store) Section(c models.Concept) Section {
	return s.concepts[c].Section
}

// Excluded reports whether a tag is on the exclusion list.
func (s *Store) Excluded(tag models.Tag) bool {
	m, ok := s.mappings[tag]
	return ok && m.Excluded
}

// Concepts returns all registry entries, sorted by key. The slice is a
// copy; the store itself stays immutable.
func (s *Store) Concepts() []Info {
	out := make([]Info, 0, len(s.concepts))
	for _, info := range s.concepts {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MappingCount returns the number of mapping table entries.
func (s *Store) MappingCount() int {
	return len(s.mappings)
}
