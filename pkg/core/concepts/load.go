package concepts

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"xbrl_fundamentals/pkg/core/utils"
	"xbrl_fundamentals/pkg/models"
)

// Reference data file names, resolved relative to the config directory.
const (
	mappingsFile  = "concept_mappings.yaml"
	labelsFile    = "concept_labels.yaml"
	excludedFile  = "excluded_tags.yaml"
	overridesFile = "mapping_overrides.hjson"
)

type mappingsDoc struct {
	Mappings []Mapping `yaml:"mappings"`
}

type labelsDoc struct {
	Labels map[string]string `yaml:"labels"`
}

type excludedDoc struct {
	Excluded []string `yaml:"excluded"`
}

// overridesDoc is the hand-maintained override file. HJSON so analysts can
// edit it with comments and trailing commas without breaking the loader.
type overridesDoc struct {
	Mappings []Mapping `json:"mappings"`
	Excluded []string  `json:"excluded"`
}

// Load builds a store from the versioned reference tables in dir, layered
// over the built-in defaults. Missing files are fine; the defaults stand.
// The optional HJSON override file is applied last and wins.
func Load(dir string) (*Store, error) {
	registry := append([]Info(nil), builtinConcepts...)
	byTag := make(map[models.Tag]Mapping, len(builtinMappings))
	for _, m := range builtinMappings {
		byTag[m.Tag] = m
	}
	excluded := append([]models.Tag(nil), builtinExcluded...)

	var mdoc mappingsDoc
	if err := readYAML(filepath.Join(dir, mappingsFile), &mdoc); err != nil {
		return nil, err
	}
	for _, m := range mdoc.Mappings {
		byTag[m.Tag] = m
	}

	var ldoc labelsDoc
	if err := readYAML(filepath.Join(dir, labelsFile), &ldoc); err != nil {
		return nil, err
	}
	if len(ldoc.Labels) > 0 {
		for i := range registry {
			if label, ok := ldoc.Labels[string(registry[i].Key)]; ok {
				registry[i].Label = label
			}
		}
	}

	var edoc excludedDoc
	if err := readYAML(filepath.Join(dir, excludedFile), &edoc); err != nil {
		return nil, err
	}
	for _, tag := range edoc.Excluded {
		excluded = append(excluded, models.Tag(tag))
	}

	odoc, err := readOverrides(filepath.Join(dir, overridesFile))
	if err != nil {
		return nil, err
	}
	if odoc != nil {
		for _, m := range odoc.Mappings {
			byTag[m.Tag] = m
		}
		for _, tag := range odoc.Excluded {
			excluded = append(excluded, models.Tag(tag))
		}
	}

	mappings := make([]Mapping, 0, len(byTag))
	for _, m := range byTag {
		mappings = append(mappings, m)
	}
	return NewStore(registry, mappings, excluded)
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func readOverrides(path string) (*overridesDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc overridesDoc
	if err := utils.ParseHJSONToStruct(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}
